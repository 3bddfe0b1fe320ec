package pack

import (
	"fmt"
	"os"
	"strings"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Config holds the arguments for a single pack run, as collected by the CLI
// layer. FilterConfig is compiled from it once and is read-only afterwards.
type Config struct {
	Root           string
	Output         string
	Tree           string // optional tree structure output path
	ConfigFile     string // optional YAML filter overlay
	ExcludeDirs    []string
	IncludeExts    []string
	ExcludeExts    []string
	IncludeGlobs   []string
	IgnoreGlobs    []string
	IgnoreFile     string // newline-delimited extra ignore patterns
	PreferInclude  bool
	FollowSymlinks bool
	MaxBytes       int64 // 0 disables the size limit
	NoCodeFences   bool
	MaxWorkers     int // 0 means NumCPU
	SniffBytes     int // 0 means DefaultSniffBytes
	Verbose        bool
}

// FilterConfig is the compiled filtering policy. It is immutable once built;
// the engine and walker only read from it, so a single instance is safe to
// share across the sniff workers.
type FilterConfig struct {
	excludeDirs    map[string]struct{}
	includeExts    map[string]struct{}
	excludeExts    map[string]struct{}
	includeGlobs   []glob.Glob
	ignoreGlobs    []glob.Glob
	overrides      map[string]string // lowercase base name -> language hint
	preferInclude  bool
	followSymlinks bool
	maxBytes       int64
	sniffBytes     int
}

// Overlay mirrors the optional YAML configuration file. Non-empty lists
// replace the corresponding Config lists; name overrides are merged on top
// of the defaults.
type Overlay struct {
	ExcludeDirs   []string          `yaml:"exclude_dirs"`
	IncludeExts   []string          `yaml:"include_exts"`
	ExcludeExts   []string          `yaml:"exclude_exts"`
	IncludeGlobs  []string          `yaml:"include_globs"`
	IgnoreGlobs   []string          `yaml:"ignore_globs"`
	NameOverrides map[string]string `yaml:"name_overrides"`
}

// LoadOverlay reads and parses a YAML filter overlay file.
func LoadOverlay(path string) (*Overlay, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}
	var o Overlay
	if err := yaml.Unmarshal(raw, &o); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &o, nil
}

// NewFilterConfig compiles the filtering policy for a run: applies the YAML
// overlay if configured, folds the ignore-file patterns into the ignore
// globs, and compiles all glob patterns once.
func NewFilterConfig(cfg Config) (*FilterConfig, error) {
	excludeDirs := cfg.ExcludeDirs
	includeExts := cfg.IncludeExts
	excludeExts := cfg.ExcludeExts
	includeGlobs := cfg.IncludeGlobs
	ignoreGlobs := append([]string(nil), cfg.IgnoreGlobs...)
	overrides := DefaultNameOverrides()

	if cfg.ConfigFile != "" {
		overlay, err := LoadOverlay(cfg.ConfigFile)
		if err != nil {
			return nil, err
		}
		if len(overlay.ExcludeDirs) > 0 {
			excludeDirs = overlay.ExcludeDirs
		}
		if len(overlay.IncludeExts) > 0 {
			includeExts = overlay.IncludeExts
		}
		if len(overlay.ExcludeExts) > 0 {
			excludeExts = overlay.ExcludeExts
		}
		if len(overlay.IncludeGlobs) > 0 {
			includeGlobs = overlay.IncludeGlobs
		}
		ignoreGlobs = append(ignoreGlobs, overlay.IgnoreGlobs...)
		for name, lang := range overlay.NameOverrides {
			overrides[strings.ToLower(name)] = lang
		}
	}

	if cfg.IgnoreFile != "" {
		patterns, err := ReadIgnoreFile(cfg.IgnoreFile)
		if err != nil {
			return nil, err
		}
		ignoreGlobs = append(ignoreGlobs, patterns...)
	}

	compiledInclude, err := compileGlobs(includeGlobs)
	if err != nil {
		return nil, err
	}
	compiledIgnore, err := compileGlobs(ignoreGlobs)
	if err != nil {
		return nil, err
	}

	sniffBytes := cfg.SniffBytes
	if sniffBytes <= 0 {
		sniffBytes = DefaultSniffBytes
	}

	return &FilterConfig{
		excludeDirs:    lowerSet(excludeDirs),
		includeExts:    lowerSet(includeExts),
		excludeExts:    lowerSet(excludeExts),
		includeGlobs:   compiledInclude,
		ignoreGlobs:    compiledIgnore,
		overrides:      overrides,
		preferInclude:  cfg.PreferInclude,
		followSymlinks: cfg.FollowSymlinks,
		maxBytes:       cfg.MaxBytes,
		sniffBytes:     sniffBytes,
	}, nil
}

// SplitList splits a comma-separated flag value, dropping empty entries.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func lowerSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		if s := strings.ToLower(strings.TrimSpace(item)); s != "" {
			set[s] = struct{}{}
		}
	}
	return set
}
