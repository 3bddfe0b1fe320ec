package pack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadIgnoreFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ignore")
	content := "# comment\n\nvendor/**\n  spaced/**  \n\t\n# another\n*.tmp"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	patterns, err := ReadIgnoreFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"vendor/**", "spaced/**", "*.tmp"}, patterns)
}

func TestReadIgnoreFile_Missing(t *testing.T) {
	_, err := ReadIgnoreFile(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestReadIgnoreFile_OnlyCommentsAndBlanks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ignore")
	require.NoError(t, os.WriteFile(path, []byte("# a\n\n# b\n"), 0o644))

	patterns, err := ReadIgnoreFile(path)
	require.NoError(t, err)
	require.Empty(t, patterns)
}
