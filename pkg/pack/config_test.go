package pack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitList("a, b ,c"))
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList(" , ,"))
}

func TestNewFilterConfig_InvalidGlob(t *testing.T) {
	_, err := NewFilterConfig(Config{IgnoreGlobs: []string{"src/[oops"}})
	require.Error(t, err)
}

func TestNewFilterConfig_MissingIgnoreFile(t *testing.T) {
	_, err := NewFilterConfig(Config{IgnoreFile: filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
}

func TestNewFilterConfig_YAMLOverlay(t *testing.T) {
	overlay := filepath.Join(t.TempDir(), "filters.yml")
	require.NoError(t, os.WriteFile(overlay, []byte(`
include_exts: [zig]
ignore_globs: ["generated/**"]
name_overrides:
  Justfile: makefile
`), 0o644))

	fc := testFilterConfig(t, func(c *Config) { c.ConfigFile = overlay })

	zig := NewCandidate("/x/main.zig", "main.zig", 0)
	assert.Equal(t, VerdictInclude, fc.Decide(&zig), "overlay replaces the include extensions")

	rs := NewCandidate("/x/main.rs", "main.rs", 0)
	assert.Equal(t, VerdictNoMatch, fc.Decide(&rs), "the default extension set is replaced, not merged")

	gen := NewCandidate("/x/generated/out.zig", "generated/out.zig", 0)
	assert.Equal(t, VerdictGlobExcluded, fc.Decide(&gen), "overlay ignore globs are appended")

	just := NewCandidate("/x/Justfile", "Justfile", 0)
	assert.Equal(t, VerdictInclude, fc.Decide(&just), "overlay overrides merge into the defaults")
	assert.Equal(t, "makefile", fc.languageHint(&just))

	readme := NewCandidate("/x/README", "README", 0)
	assert.Equal(t, VerdictInclude, fc.Decide(&readme), "default overrides survive the merge")
}

func TestNewFilterConfig_BadYAML(t *testing.T) {
	overlay := filepath.Join(t.TempDir(), "filters.yml")
	require.NoError(t, os.WriteFile(overlay, []byte("include_exts: [unclosed"), 0o644))

	_, err := NewFilterConfig(Config{ConfigFile: overlay})
	require.Error(t, err)
}

func TestDefaultSetsAreCopies(t *testing.T) {
	dirs := DefaultExcludeDirs()
	dirs[0] = "mutated"
	assert.NotEqual(t, dirs[0], DefaultExcludeDirs()[0])

	overrides := DefaultNameOverrides()
	overrides["readme"] = "mutated"
	assert.Equal(t, "markdown", DefaultNameOverrides()["readme"])
}
