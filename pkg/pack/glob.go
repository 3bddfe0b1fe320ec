package pack

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// compileGlobs compiles shell-style patterns for matching against
// root-relative slash paths. With '/' as the separator, '*' and '?' stop at
// path boundaries while '**' crosses them. Matching is case-insensitive:
// patterns are lowercased here and paths are lowercased by the walker.
func compileGlobs(patterns []string) ([]glob.Glob, error) {
	var globs []glob.Glob
	for _, pat := range patterns {
		p := normalizePattern(pat)
		if p == "" {
			continue
		}
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pat, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// normalizePattern lowercases a pattern, turns backslashes into forward
// slashes, and strips any leading slash so patterns anchor to the root.
func normalizePattern(pat string) string {
	p := strings.ToLower(strings.TrimSpace(pat))
	p = strings.ReplaceAll(p, `\`, "/")
	return strings.TrimLeft(p, "/")
}

func matchAny(matchPath string, globs []glob.Glob) bool {
	for _, g := range globs {
		if g.Match(matchPath) {
			return true
		}
	}
	return false
}
