package namegram

// Train builds a chain of the given depth from corpus lines, one token per
// line. It is the batch convenience over NewTrainer/Add/Compile.
func Train(lines []string, depth int) (*Chain, error) {
	t, err := NewTrainer(depth)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		if err := t.Add(line); err != nil {
			return nil, err
		}
	}
	return t.Compile(), nil
}
