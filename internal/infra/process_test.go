package infra

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProcessInspector_NameOfSelf verifies the test binary can resolve its own name
func TestProcessInspector_NameOfSelf(t *testing.T) {
	pi := NewProcessInspector()

	name, err := pi.NameOf(os.Getpid())

	require.NoError(t, err)
	assert.NotEmpty(t, name)
}

// TestProcessInspector_FindByNameSelf verifies FindByName finds the running test binary
func TestProcessInspector_FindByNameSelf(t *testing.T) {
	pi := NewProcessInspector()
	self, err := pi.NameOf(os.Getpid())
	require.NoError(t, err)

	pids, err := pi.FindByName(strings.ToUpper(self))

	require.NoError(t, err)
	assert.Contains(t, pids, os.Getpid())
}

func TestProcessInspector_FindByNameNoMatch(t *testing.T) {
	pi := NewProcessInspector()

	pids, err := pi.FindByName(filepath.Base(t.TempDir()) + "-no-such-process")

	require.NoError(t, err)
	assert.Empty(t, pids)
}

func TestProcessInspector_NameOfMissing(t *testing.T) {
	pi := NewProcessInspector()

	_, err := pi.NameOf(-1)

	assert.Error(t, err)
}
