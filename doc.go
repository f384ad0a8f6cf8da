/*
Package namegram scores how plausible a string is as a natural-language-ish
identifier, using a fixed-order character n-gram model trained on a corpus
of real-world tokens. Names people actually write ("totalCount") score much
higher than random or machine-generated strings ("x7fQz9").

The model is a frequency trie: every path of `depth` characters from the
root records how often that exact sequence was observed, conditioned on its
prefix. Characters outside the first 128 code points all fold into a single
bucket, so non-ASCII statistics are merged; that loss is deliberate.


Usage

Train a chain from corpus lines, one token per line:

	chain, err := namegram.Train(lines, 3)

Or stream a large corpus through a Trainer:

	tr, err := namegram.NewTrainer(3)
	err = tr.AddReader(f)
	chain := tr.Compile()

Or use the embedded prebuilt model:

	chain, err := namegram.Load()

Score words. The result is in (0, 1]; higher means more plausible. Words
shorter than the model depth score 1 (not enough evidence to judge):

	chain.Evaluate("username")    // high
	chain.Evaluate("aqwxGdRkdF6") // low

Persist and restore a trained chain as transport-safe text, embeddable in
source or config:

	blob, err := namegram.Encode(chain)
	chain, err = namegram.Decode(blob)

A Chain is immutable once built; any number of goroutines may call
Evaluate against the same chain concurrently.
*/
package namegram
