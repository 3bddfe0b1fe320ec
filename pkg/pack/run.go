// Package pack walks a directory tree, selects the text files worth
// keeping, and concatenates them into a single document with per-file
// boundaries. Selection is an ordered pipeline: directory pruning during
// the walk, glob and extension rules per candidate, a size gate, and a
// binary content sniff on whatever survives.
package pack

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Run executes the full pipeline against cfg. Per-file problems are counted
// in the returned stats; only an unusable root or an unwritable output is
// an error.
func Run(cfg Config, logger *zap.Logger) (Stats, error) {
	start := time.Now()

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return Stats{}, fmt.Errorf("resolve root %q: %w", cfg.Root, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return Stats{}, fmt.Errorf("root directory not found: %w", err)
	}
	if !info.IsDir() {
		return Stats{}, fmt.Errorf("root is not a directory: %s", root)
	}

	fc, err := NewFilterConfig(cfg)
	if err != nil {
		return Stats{}, err
	}

	logger.Info("starting pack run",
		zap.String("root", root),
		zap.String("output", cfg.Output))

	accepted, stats := Select(root, fc, logger)

	var files []File
	for _, r := range resolveFiles(accepted, fc, cfg.MaxWorkers, logger) {
		switch r.verdict {
		case VerdictBinary:
			stats.SkippedBinary++
		case VerdictReadError:
			stats.SkippedErrors++
		case VerdictInclude:
			if r.replaced {
				stats.Replacements++
			}
			files = append(files, r.file)
		}
	}

	SortFiles(files)
	stats.Written = len(files)

	if err := WriteOutput(cfg.Output, root, files, stats, cfg.NoCodeFences, logger); err != nil {
		return stats, err
	}
	if cfg.Tree != "" {
		if err := WriteTree(cfg.Tree, root, files, logger); err != nil {
			return stats, err
		}
	}

	logger.Info("pack run complete",
		zap.Int("written", stats.Written),
		zap.Int("skippedBinary", stats.SkippedBinary),
		zap.Int("skippedTooLarge", stats.SkippedTooLarge),
		zap.Int("skippedErrors", stats.SkippedErrors),
		zap.Int("dirErrors", stats.DirErrors),
		zap.Int("utf8Replacements", stats.Replacements),
		zap.Duration("elapsed", time.Since(start)))
	return stats, nil
}

// Select walks the tree and applies the selection policy, returning the
// accepted candidates in walk order plus the counters from the pass. Files
// over the size limit are rejected here, before anything opens them.
func Select(root string, fc *FilterConfig, logger *zap.Logger) ([]Candidate, Stats) {
	var (
		stats    Stats
		accepted []Candidate
	)

	w := NewWalker(root, fc, logger)
	w.Walk(func(c Candidate) {
		verdict := fc.Decide(&c)
		if verdict != VerdictInclude {
			logger.Debug("excluded",
				zap.String("path", c.RelPath),
				zap.Stringer("verdict", verdict))
			return
		}
		if fc.maxBytes > 0 && c.Size > fc.maxBytes {
			stats.SkippedTooLarge++
			logger.Debug("skipping oversized file",
				zap.String("path", c.RelPath),
				zap.Stringer("verdict", VerdictTooLarge),
				zap.Int64("size", c.Size))
			return
		}
		accepted = append(accepted, c)
	})

	stats.DirErrors = w.Errors()
	return accepted, stats
}

// SortFiles orders files by slash-normalized relative path,
// case-insensitively, falling back to the original bytes so paths differing
// only in case still sort totally.
func SortFiles(files []File) {
	sort.Slice(files, func(i, j int) bool {
		li, lj := strings.ToLower(files[i].RelPath), strings.ToLower(files[j].RelPath)
		if li != lj {
			return li < lj
		}
		return files[i].RelPath < files[j].RelPath
	})
}
