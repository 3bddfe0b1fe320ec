package pack

import (
	"path"
	"path/filepath"
	"strings"
)

// Verdict is the single disposition the selection engine assigns to a
// candidate. Verdicts are mutually exclusive; Decide returns exactly one.
type Verdict int

const (
	VerdictInclude Verdict = iota
	VerdictGlobExcluded
	VerdictExtExcluded
	VerdictTooLarge
	VerdictBinary
	VerdictNoMatch
	VerdictReadError
)

func (v Verdict) String() string {
	switch v {
	case VerdictInclude:
		return "include"
	case VerdictGlobExcluded:
		return "excluded-by-glob"
	case VerdictExtExcluded:
		return "excluded-by-extension"
	case VerdictTooLarge:
		return "too-large"
	case VerdictBinary:
		return "binary"
	case VerdictNoMatch:
		return "no-match"
	case VerdictReadError:
		return "read-error"
	}
	return "unknown"
}

// Candidate is one file discovered by the walker. RelPath keeps the original
// case for output; MatchPath is the lowercased form used for all matching.
type Candidate struct {
	AbsPath   string // absolute filesystem path
	RelPath   string // root-relative, forward slashes, original case
	MatchPath string // lowercased RelPath
	Base      string // lowercased base name
	Ext       string // lowercased extension, no leading dot
	Size      int64
}

// NewCandidate describes the file at absPath, with rel being its
// root-relative path as reported by the walker.
func NewCandidate(absPath, rel string, size int64) Candidate {
	relPosix := filepath.ToSlash(rel)
	base := strings.ToLower(path.Base(relPosix))
	// A leading dot marks a hidden file, not an extension boundary:
	// ".env" has no extension while ".env.local" has "local".
	ext := strings.TrimPrefix(path.Ext(strings.TrimPrefix(base, ".")), ".")
	return Candidate{
		AbsPath:   absPath,
		RelPath:   relPosix,
		MatchPath: strings.ToLower(relPosix),
		Base:      base,
		Ext:       ext,
		Size:      size,
	}
}

// File is an accepted candidate with its content resolved for the formatter.
type File struct {
	RelPath string
	Content string
	Lang    string
}

// Stats holds the per-run counters reported once at the end. Per-file
// failures bump a counter and never abort the run.
type Stats struct {
	Written         int
	SkippedBinary   int
	SkippedTooLarge int
	SkippedErrors   int
	DirErrors       int
	Replacements    int // files whose content needed UTF-8 replacement
}
