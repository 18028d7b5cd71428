package table

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp switches the working directory to a fresh temp dir for the
// duration of the test, restoring the original directory on cleanup. Save
// and Load both resolve Filename against the working directory.
func chdirTemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(orig) })
}

func Test_Filename(t *testing.T) {
	assert.Equal(t, "dsl-parser_v1.0.0.json", Filename("1.0.0"))
}

func Test_SaveLoad_roundTrip(t *testing.T) {
	rs := arithRuleSet(t)
	built, err := Build(rs)
	require.NoError(t, err)

	chdirTemp(t)

	require.NoError(t, built.Save("test"))

	loaded, err := Load(rs, "test")
	require.NoError(t, err)

	assert.Equal(t, built.NumStates(), loaded.NumStates())
	assert.Nil(t, loaded.Collection())

	for s := 0; s < built.NumStates(); s++ {
		for _, symbol := range built.Symbols(s) {
			assert.Equal(t, built.Action(s, symbol), loaded.Action(s, symbol))
		}
	}
}

func Test_Load_missingFile(t *testing.T) {
	rs := arithRuleSet(t)
	chdirTemp(t)

	_, err := Load(rs, "nonexistent")
	assert.Error(t, err)
}
