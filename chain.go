package namegram

// Chain is a trained fixed-order n-gram model. It is immutable once
// returned from Trainer.Compile, Train, Decode or Load, and is safe for
// concurrent use without locking: evaluation only reads.
type Chain struct {
	root  *trieNode
	depth int
}

// Depth reports the n-gram order the chain was trained with.
func (c *Chain) Depth() int {
	return c.depth
}

// Observations reports the total number of n-gram windows the chain was
// trained on.
func (c *Chain) Observations() int64 {
	return c.root.count
}
