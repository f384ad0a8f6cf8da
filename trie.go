package namegram

import (
	"errors"
	"fmt"
)

// ErrMalformedTrie is reported when a traversal finds a slot whose variant
// contradicts what its level requires: a leaf count on an internal level,
// or a child node on the final level. It means the trie is structurally
// corrupt (typically a hand-edited or incompatible persisted blob) and is
// not recoverable; an n-gram that simply was never observed is not an
// error.
var ErrMalformedTrie = errors.New("namegram: malformed trie")

type slotKind uint8

const (
	slotEmpty slotKind = iota
	slotLeaf
	slotChild
)

// trieSlot is the tagged variant held in each of a node's branchWidth
// slots. Which non-empty variant is legal depends on the node's level:
// levels 0..depth-2 hold children, level depth-1 holds leaf counts.
type trieSlot struct {
	kind  slotKind
	leaf  int64
	child *trieNode
}

// trieNode records, in count, how many training observations share the
// character prefix leading to it. The invariant is that count equals the
// sum of leaf values (final level) or populated child counts (internal
// levels) across all slots.
type trieNode struct {
	count int64
	slots [branchWidth]trieSlot
}

func newTrieNode() *trieNode {
	return &trieNode{}
}

// increment records one observation of ngram, whose length fixes how many
// levels are walked. Intermediate slots lazily grow child nodes; the final
// slot becomes or stays a leaf and gains 1. count is bumped at every node
// on the path so the sum invariant holds at all levels.
func (n *trieNode) increment(ngram []rune) error {
	cur := n
	last := len(ngram) - 1
	for i, r := range ngram {
		sl := &cur.slots[bucketIndex(r)]
		if i == last {
			switch sl.kind {
			case slotEmpty:
				sl.kind = slotLeaf
			case slotLeaf:
			default:
				return fmt.Errorf("namegram: child node in final-level slot %d: %w", bucketIndex(r), ErrMalformedTrie)
			}
			sl.leaf++
			cur.count++
		} else {
			switch sl.kind {
			case slotEmpty:
				sl.kind = slotChild
				sl.child = newTrieNode()
			case slotChild:
			default:
				return fmt.Errorf("namegram: leaf count in internal slot %d at level %d: %w", bucketIndex(r), i, ErrMalformedTrie)
			}
			cur.count++
			cur = sl.child
		}
	}
	return nil
}

// lookup walks ngram read-only and returns the conditional probability of
// its final character given its prefix: leaf value over the holding node's
// count. ok is false when the n-gram was never observed; that is a
// first-class absence, not an error.
func (n *trieNode) lookup(ngram []rune) (prob float64, ok bool, err error) {
	cur := n
	last := len(ngram) - 1
	for i, r := range ngram {
		sl := &cur.slots[bucketIndex(r)]
		if i == last {
			switch sl.kind {
			case slotLeaf:
				return float64(sl.leaf) / float64(cur.count), true, nil
			case slotEmpty:
				return 0, false, nil
			default:
				return 0, false, fmt.Errorf("namegram: child node in final-level slot %d: %w", bucketIndex(r), ErrMalformedTrie)
			}
		}
		switch sl.kind {
		case slotChild:
			cur = sl.child
		case slotEmpty:
			return 0, false, nil
		default:
			return 0, false, fmt.Errorf("namegram: leaf count in internal slot %d at level %d: %w", bucketIndex(r), i, ErrMalformedTrie)
		}
	}
	return 0, false, nil
}
