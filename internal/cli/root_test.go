package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai4da/courses.om-686/demand"
	"github.com/ai4da/courses.om-686/instance"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := NewRootCommand()

	want := []string{"productmix", "knapsack", "facility", "network", "newsvendor", "gendata"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestGenDataCommandWritesHistory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "hist.csv")

	root := NewRootCommand()
	root.SetArgs([]string{"gendata", "--n", "10", "--seed", "7", "--out", out})
	require.NoError(t, root.Execute())

	obs, err := instance.ReadDemandHistory(out)
	require.NoError(t, err)
	assert.Len(t, obs, 10)
}

func TestNewsvendorClosedForm(t *testing.T) {
	root := NewRootCommand()
	root.SetArgs([]string{"newsvendor", "--underage", "2", "--overage", "2",
		"--mean", "100", "--stddev", "10"})
	require.NoError(t, root.Execute())
}

func TestNewsvendorRejectsMissingDemandInput(t *testing.T) {
	root := NewRootCommand()
	root.SetArgs([]string{"newsvendor", "--underage", "2", "--overage", "2"})
	require.ErrorIs(t, root.Execute(), errNewsvendorInput)
}

func TestNewsvendorRejectsMeanWithoutStddev(t *testing.T) {
	root := NewRootCommand()
	root.SetArgs([]string{"newsvendor", "--underage", "2", "--overage", "2",
		"--mean", "100"})
	require.ErrorIs(t, root.Execute(), errNewsvendorInput)
}

func TestGenDataRejectsNegativeCount(t *testing.T) {
	out := filepath.Join(t.TempDir(), "hist.csv")

	root := NewRootCommand()
	root.SetArgs([]string{"gendata", "--n", "-1", "--out", out})
	require.ErrorIs(t, root.Execute(), demand.ErrBadCount)
}

func TestGenDataRequiresOut(t *testing.T) {
	root := NewRootCommand()
	root.SetArgs([]string{"gendata"})
	require.Error(t, root.Execute())
}
