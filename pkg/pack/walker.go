package pack

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Walker traverses a root directory and yields candidate files. Excluded
// directories are pruned by name before being descended into, so nothing
// beneath them is ever enumerated. A Walker is restartable but not safe for
// concurrent use.
type Walker struct {
	root    string
	fc      *FilterConfig
	logger  *zap.Logger
	visited map[string]struct{} // resolved paths of entered directories
	errs    int
}

func NewWalker(root string, fc *FilterConfig, logger *zap.Logger) *Walker {
	return &Walker{root: root, fc: fc, logger: logger}
}

// Errors reports how many directories or entries could not be read or
// statted during the last walk. Such paths are skipped, not fatal.
func (w *Walker) Errors() int { return w.errs }

// Walk runs a fresh traversal, calling fn for every candidate file. When
// symlink following is enabled, already-entered directories are tracked by
// resolved path so a symlink cycle terminates instead of looping.
func (w *Walker) Walk(fn func(Candidate)) {
	w.errs = 0
	w.visited = make(map[string]struct{})
	if w.fc.followSymlinks {
		if real, err := filepath.EvalSymlinks(w.root); err == nil {
			w.visited[real] = struct{}{}
		}
	}
	w.walkDir(w.root, fn)
}

func (w *Walker) walkDir(dir string, fn func(Candidate)) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		w.errs++
		w.logger.Warn("cannot read directory", zap.String("dir", dir), zap.Error(err))
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		entryPath := filepath.Join(dir, name)

		if entry.Type()&fs.ModeSymlink != 0 {
			w.walkSymlink(entryPath, name, fn)
			continue
		}

		if entry.IsDir() {
			if w.excludedDir(name) {
				w.logger.Debug("pruned directory", zap.String("dir", entryPath))
				continue
			}
			if w.fc.followSymlinks {
				// Remember real subtrees so a symlink pointing back in
				// does not re-enter them.
				if real, err := filepath.EvalSymlinks(entryPath); err == nil {
					w.visited[real] = struct{}{}
				}
			}
			w.walkDir(entryPath, fn)
			continue
		}

		info, err := entry.Info()
		if err != nil {
			w.errs++
			w.logger.Warn("cannot stat file", zap.String("path", entryPath), zap.Error(err))
			continue
		}
		w.yield(entryPath, info.Size(), fn)
	}
}

// walkSymlink resolves a symlink entry. Links to files are always yielded;
// links to directories are descended only when following is enabled and the
// target has not been entered before.
func (w *Walker) walkSymlink(entryPath, name string, fn func(Candidate)) {
	info, err := os.Stat(entryPath)
	if err != nil {
		w.errs++
		w.logger.Warn("cannot resolve symlink", zap.String("path", entryPath), zap.Error(err))
		return
	}

	if !info.IsDir() {
		w.yield(entryPath, info.Size(), fn)
		return
	}

	if !w.fc.followSymlinks || w.excludedDir(name) {
		return
	}
	real, err := filepath.EvalSymlinks(entryPath)
	if err != nil {
		w.errs++
		w.logger.Warn("cannot resolve symlink target", zap.String("path", entryPath), zap.Error(err))
		return
	}
	if _, seen := w.visited[real]; seen {
		w.logger.Debug("skipping symlink cycle", zap.String("path", entryPath))
		return
	}
	w.visited[real] = struct{}{}
	w.walkDir(entryPath, fn)
}

func (w *Walker) excludedDir(name string) bool {
	_, ok := w.fc.excludeDirs[strings.ToLower(name)]
	return ok
}

func (w *Walker) yield(entryPath string, size int64, fn func(Candidate)) {
	rel, err := filepath.Rel(w.root, entryPath)
	if err != nil {
		w.errs++
		w.logger.Warn("cannot relativize path", zap.String("path", entryPath), zap.Error(err))
		return
	}
	fn(NewCandidate(entryPath, rel, size))
}
