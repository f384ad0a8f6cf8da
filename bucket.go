package namegram

// branchWidth is the number of child slots in every trie node, one per
// code point in the ASCII range.
const branchWidth = 128

// bucketIndex maps a rune to its slot index. Runes in [0, 128) map to
// their code point; everything else folds into bucket 0, merging the
// statistics of all non-ASCII characters. The merge is a deliberate
// precision trade, not an error condition.
func bucketIndex(r rune) int {
	if r >= 0 && r < branchWidth {
		return int(r)
	}
	return 0
}
