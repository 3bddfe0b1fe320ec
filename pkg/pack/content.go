package pack

import (
	"os"
	"strings"
)

var newlineNormalizer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// loadContent reads an accepted file and normalizes it for the formatter:
// CRLF and lone CR become LF, and byte sequences invalid in UTF-8 are
// replaced with U+FFFD. The bool reports whether any replacement happened.
func loadContent(path string) (string, bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", false, err
	}
	normalized := newlineNormalizer.Replace(string(raw))
	clean := strings.ToValidUTF8(normalized, "�")
	return clean, clean != normalized, nil
}

// languageHint resolves the fence language tag for a candidate: exact name
// overrides win over the extension map, and unknown files fall back to text.
func (fc *FilterConfig) languageHint(c *Candidate) string {
	if lang, ok := fc.overrides[c.Base]; ok {
		return lang
	}
	if lang, ok := langByExt[c.Ext]; ok {
		return lang
	}
	return "text"
}
