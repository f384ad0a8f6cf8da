package namegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrainWorkedExample(t *testing.T) {
	// "cat", "car", "can" at depth 2 yield the windows
	// "ca","at" / "ca","ar" / "ca","an".
	chain, err := Train([]string{"cat", "car", "can"}, 2)
	require.NoError(t, err)
	require.Equal(t, 2, chain.Depth())
	require.EqualValues(t, 6, chain.Observations())

	// All three observations under prefix 'c' continue with 'a'.
	p, ok, err := chain.root.lookup([]rune("ca"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1.0, p)

	// One of the three observations under prefix 'a' continues with 't'.
	p, ok, err = chain.root.lookup([]rune("at"))
	require.NoError(t, err)
	require.True(t, ok)
	require.InEpsilon(t, 1.0/3.0, p, 1e-12)

	checkCountInvariant(t, chain.root)
}

func TestLinesShorterThanDepthContributeNoWindows(t *testing.T) {
	chain, err := Train([]string{"ab", "c", ""}, 3)
	require.NoError(t, err)
	require.EqualValues(t, 0, chain.Observations())
}

func TestTrainRejectsNonPositiveDepth(t *testing.T) {
	_, err := Train([]string{"cat"}, 0)
	require.Error(t, err)

	_, err = NewTrainer(-1)
	require.Error(t, err)
}

func TestTrainerAddReaderMatchesBatchTrain(t *testing.T) {
	lines := []string{"cat", "car", "can", "cart", "antenna"}

	batch, err := Train(lines, 2)
	require.NoError(t, err)

	tr, err := NewTrainer(2)
	require.NoError(t, err)
	require.NoError(t, tr.AddReader(strings.NewReader(strings.Join(lines, "\n"))))
	streamed := tr.Compile()

	require.Equal(t, batch.root, streamed.root)
}

func TestTrainerRejectsAddAfterCompile(t *testing.T) {
	tr, err := NewTrainer(2)
	require.NoError(t, err)
	require.NoError(t, tr.Add("cat"))
	tr.Compile()

	require.Error(t, tr.Add("car"))
}

func TestTrainerBufferSizeAllowsLongLines(t *testing.T) {
	// Longer than bufio.Scanner's default 64KiB token limit.
	line := strings.Repeat("ab", 40_000)

	tr, err := NewTrainer(2)
	require.NoError(t, err)
	require.Error(t, tr.AddReader(strings.NewReader(line)))

	tr, err = NewTrainer(2, TrainerBufferSize(128*1024))
	require.NoError(t, err)
	require.NoError(t, tr.AddReader(strings.NewReader(line)))
	chain := tr.Compile()
	require.EqualValues(t, len(line)-1, chain.Observations())
}
