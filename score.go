package namegram

import "math"

// smoothingFloor is the probability substituted for n-grams never seen in
// training, so a single unseen window cannot zero out a whole score.
const smoothingFloor = 0.0001

// Evaluate scores how plausible word is under the chain's model. The
// result is in (0, 1]; higher means more natural. Words with fewer
// characters than the chain depth score 1: there is not enough evidence
// to judge them, and by convention they pass.
//
// Each sliding depth-length window contributes its conditional probability
// (or the smoothing floor if unseen); the score is the geometric mean of
// all window probabilities, which normalizes for word length so longer
// words are not penalized merely for having more windows.
func (c *Chain) Evaluate(word string) (float64, error) {
	runes := []rune(word)
	if len(runes) < c.depth {
		return 1, nil
	}

	windows := len(runes) - c.depth + 1
	product := 1.0
	for i := 0; i < windows; i++ {
		p, ok, err := c.root.lookup(runes[i : i+c.depth])
		if err != nil {
			return 0, err
		}
		if !ok {
			p = smoothingFloor
		}
		product *= p
	}

	return math.Pow(product, 1/float64(windows)), nil
}
