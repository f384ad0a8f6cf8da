//go:build ignore
// +build ignore

package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/rajkrishnamurthy/namegram"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: tool.go (build|score)")
	}
	switch os.Args[1] {
	case "build":
		return build(os.Args[2:])
	case "score":
		return score(os.Args[2:])
	default:
		return fmt.Errorf("unknown command")
	}
}

func build(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: tool.go build <depth> <corpusfile> <outfile>")
	}

	depth, err := strconv.Atoi(args[0])
	if err != nil {
		return err
	}

	f, err := os.Open(args[1])
	if err != nil {
		return err
	}
	defer f.Close()

	tr, err := namegram.NewTrainer(depth)
	if err != nil {
		return err
	}
	if err := tr.AddReader(f); err != nil {
		return err
	}
	chain := tr.Compile()

	blob, err := namegram.Encode(chain)
	if err != nil {
		return err
	}
	return os.WriteFile(args[2], []byte(blob+"\n"), 0644)
}

func score(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: tool.go score [modelfile] <word>...")
	}

	var chain *namegram.Chain
	if bts, err := os.ReadFile(args[0]); err == nil {
		if chain, err = namegram.Decode(string(bts)); err != nil {
			return err
		}
		args = args[1:]
	} else {
		if chain, err = namegram.Load(); err != nil {
			return err
		}
	}

	for _, word := range args {
		v, err := chain.Evaluate(word)
		if err != nil {
			return err
		}
		fmt.Printf("%.6f  %s\n", v, word)
	}
	return nil
}
