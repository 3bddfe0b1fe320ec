package pack

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// treeNode is one directory level in the accepted-set tree.
type treeNode struct {
	dirs  map[string]*treeNode
	files []string
}

func newTreeNode() *treeNode {
	return &treeNode{dirs: make(map[string]*treeNode)}
}

func (n *treeNode) insert(parts []string) {
	if len(parts) == 1 {
		n.files = append(n.files, parts[0])
		return
	}
	child, ok := n.dirs[parts[0]]
	if !ok {
		child = newTreeNode()
		n.dirs[parts[0]] = child
	}
	child.insert(parts[1:])
}

// RenderTree renders the accepted files as a connector-style directory tree
// rooted at root. Directories sort before files, both case-insensitively.
func RenderTree(root string, files []File) string {
	top := newTreeNode()
	for _, f := range files {
		top.insert(strings.Split(f.RelPath, "/"))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s/\n", root)
	renderNode(&b, top, "")
	return b.String()
}

func renderNode(b *strings.Builder, n *treeNode, prefix string) {
	type entry struct {
		name  string
		child *treeNode
	}

	entries := make([]entry, 0, len(n.dirs)+len(n.files))
	for name, child := range n.dirs {
		entries = append(entries, entry{name: name, child: child})
	}
	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].name) < strings.ToLower(entries[j].name)
	})

	files := append([]string(nil), n.files...)
	sort.Slice(files, func(i, j int) bool {
		return strings.ToLower(files[i]) < strings.ToLower(files[j])
	})
	for _, f := range files {
		entries = append(entries, entry{name: f})
	}

	for i, e := range entries {
		connector, extension := "├── ", "│   "
		if i == len(entries)-1 {
			connector, extension = "└── ", "    "
		}
		if e.child != nil {
			fmt.Fprintf(b, "%s%s%s/\n", prefix, connector, e.name)
			renderNode(b, e.child, prefix+extension)
		} else {
			fmt.Fprintf(b, "%s%s%s\n", prefix, connector, e.name)
		}
	}
}

// WriteTree writes the rendered tree of the accepted set to its own file.
func WriteTree(path, root string, files []File, logger *zap.Logger) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create tree output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(RenderTree(root, files)), 0o644); err != nil {
		return fmt.Errorf("write tree file: %w", err)
	}
	logger.Debug("wrote tree structure", zap.String("path", path))
	return nil
}
