package pack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTree(t *testing.T) {
	files := []File{
		{RelPath: "z-top.txt"},
		{RelPath: "a/b.txt"},
		{RelPath: "a/c/d.txt"},
	}

	want := "/proj/\n" +
		"├── a/\n" +
		"│   ├── c/\n" +
		"│   │   └── d.txt\n" +
		"│   └── b.txt\n" +
		"└── z-top.txt\n"
	assert.Equal(t, want, RenderTree("/proj", files))
}

func TestRenderTree_Empty(t *testing.T) {
	assert.Equal(t, "/proj/\n", RenderTree("/proj", nil))
}

func TestRenderTree_SortsCaseInsensitively(t *testing.T) {
	files := []File{
		{RelPath: "Beta.txt"},
		{RelPath: "alpha.txt"},
	}

	want := "/proj/\n" +
		"├── alpha.txt\n" +
		"└── Beta.txt\n"
	assert.Equal(t, want, RenderTree("/proj", files))
}
