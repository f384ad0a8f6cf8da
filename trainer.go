package namegram

import (
	"bufio"
	"fmt"
	"io"
)

// Trainer accumulates n-gram counts for a chain of a fixed depth. Feed it
// corpus tokens with Add or AddReader, then seal it with Compile.
//
// A Trainer must be driven from a single goroutine: concurrent Add calls
// would race on count updates and lazy slot creation. To parallelize,
// train one chain per corpus partition; merging partitions by recursively
// summing slots is a possible extension, not implemented here.
type Trainer struct {
	root    *trieNode
	depth   int
	bufSize int
}

type TrainerOption func(t *Trainer)

// TrainerBufferSize sets the line buffer capacity used by AddReader, for
// corpora whose lines exceed bufio.Scanner's default token limit.
func TrainerBufferSize(n int) TrainerOption {
	return func(t *Trainer) {
		t.bufSize = n
	}
}

func NewTrainer(depth int, opts ...TrainerOption) (*Trainer, error) {
	if depth < 1 {
		return nil, fmt.Errorf("namegram: depth must be positive, got %d", depth)
	}
	t := &Trainer{
		root:  newTrieNode(),
		depth: depth,
	}
	for _, o := range opts {
		o(t)
	}
	return t, nil
}

// Add records every contiguous depth-length window of line, sliding by one
// character. Lines shorter than the depth contribute nothing.
func (t *Trainer) Add(line string) error {
	if t.root == nil {
		return fmt.Errorf("namegram: trainer already compiled")
	}
	runes := []rune(line)
	for i := 0; i+t.depth <= len(runes); i++ {
		if err := t.root.increment(runes[i : i+t.depth]); err != nil {
			return err
		}
	}
	return nil
}

// AddReader feeds rdr to Add one line at a time.
func (t *Trainer) AddReader(rdr io.Reader) error {
	sc := bufio.NewScanner(rdr)
	if t.bufSize > 0 {
		sc.Buffer(make([]byte, 0, t.bufSize), t.bufSize)
	}
	for sc.Scan() {
		if err := t.Add(sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}

// Compile seals the trainer and returns the finished chain. The trainer
// cannot be added to afterwards; the chain owns the trie exclusively.
func (t *Trainer) Compile() *Chain {
	c := &Chain{root: t.root, depth: t.depth}
	t.root = nil
	return c
}
