package namegram

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zlib"
)

// The persisted form is three layers: a structural JSON encoding of the
// trie ({"depth": d, "root": {"count": c, "arr": [...]}}, where each arr
// entry is null, a non-negative integer, or a nested node), zlib
// compression of that JSON, and base64 text over the compressed bytes so
// the blob can be embedded in source or config. Counts travel as exact
// integers; probability division depends on them being lossless.

type encNode struct {
	Count int64     `json:"count"`
	Arr   []encSlot `json:"arr"`
}

type encSlot struct {
	s *trieSlot
}

func (e encSlot) MarshalJSON() ([]byte, error) {
	switch e.s.kind {
	case slotEmpty:
		return []byte("null"), nil
	case slotLeaf:
		return strconv.AppendInt(nil, e.s.leaf, 10), nil
	default:
		return json.Marshal(newEncNode(e.s.child))
	}
}

func newEncNode(n *trieNode) *encNode {
	out := &encNode{Count: n.count, Arr: make([]encSlot, branchWidth)}
	for i := range n.slots {
		out.Arr[i] = encSlot{&n.slots[i]}
	}
	return out
}

// Encode serializes a chain to its transportable text form. The encoding
// is lossless: Decode(Encode(c)) reproduces c exactly.
func Encode(c *Chain) (string, error) {
	payload, err := json.Marshal(struct {
		Depth int      `json:"depth"`
		Root  *encNode `json:"root"`
	}{c.depth, newEncNode(c.root)})
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(payload); err != nil {
		return "", err
	}
	if err := zw.Close(); err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode reverses Encode. It rebuilds the trie from whatever slot variants
// the blob declares without checking them against their levels; a blob
// whose variants contradict the depth is only caught when a traversal
// first touches the bad slot, as ErrMalformedTrie.
func Decode(text string) (*Chain, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return nil, fmt.Errorf("namegram: decode base64: %w", err)
	}

	zr, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("namegram: decompress model: %w", err)
	}
	payload, err := io.ReadAll(zr)
	zr.Close()
	if err != nil {
		return nil, fmt.Errorf("namegram: decompress model: %w", err)
	}

	var outer struct {
		Depth int             `json:"depth"`
		Root  json.RawMessage `json:"root"`
	}
	if err := json.Unmarshal(payload, &outer); err != nil {
		return nil, fmt.Errorf("namegram: parse model: %w", err)
	}
	if outer.Depth < 1 {
		return nil, fmt.Errorf("namegram: model depth must be positive, got %d", outer.Depth)
	}
	root, err := decodeNode(outer.Root)
	if err != nil {
		return nil, err
	}
	return &Chain{root: root, depth: outer.Depth}, nil
}

func decodeNode(raw json.RawMessage) (*trieNode, error) {
	var dn struct {
		Count int64             `json:"count"`
		Arr   []json.RawMessage `json:"arr"`
	}
	if err := json.Unmarshal(raw, &dn); err != nil {
		return nil, fmt.Errorf("namegram: parse model node: %w", err)
	}
	if len(dn.Arr) != branchWidth {
		return nil, fmt.Errorf("namegram: model node has %d slots, want %d", len(dn.Arr), branchWidth)
	}

	n := newTrieNode()
	n.count = dn.Count
	for i, entry := range dn.Arr {
		tok := strings.TrimSpace(string(entry))
		switch {
		case tok == "" || tok == "null":
		case tok[0] == '{':
			child, err := decodeNode(entry)
			if err != nil {
				return nil, err
			}
			n.slots[i] = trieSlot{kind: slotChild, child: child}
		default:
			leaf, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("namegram: parse model leaf at slot %d: %w", i, err)
			}
			n.slots[i] = trieSlot{kind: slotLeaf, leaf: leaf}
		}
	}
	return n, nil
}
