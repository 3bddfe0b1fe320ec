package pack

import (
	"bytes"
	"errors"
	"io"
	"os"
)

// DefaultSniffBytes is the prefix length read when classifying file content.
const DefaultSniffBytes = 4096

// textBytes marks bytes expected in text content: printable ASCII plus
// bell, backspace, tab, line feed, form feed, carriage return and escape.
var textBytes = func() [256]bool {
	var t [256]bool
	for b := 0x20; b <= 0x7e; b++ {
		t[b] = true
	}
	for _, b := range []byte{0x07, 0x08, '\t', '\n', 0x0c, '\r', 0x1b} {
		t[b] = true
	}
	return t
}()

// isBinary reports whether a content prefix looks binary: any NUL byte, or
// more than 30% of the prefix outside the text byte set. An empty prefix is
// text. This is a heuristic, not an encoding detector; UTF-16 content with
// ASCII-range code points reads as binary (NUL bytes) and dense non-ASCII
// UTF-8 can trip the ratio. Both are accepted misclassifications.
func isBinary(prefix []byte) bool {
	if len(prefix) == 0 {
		return false
	}
	if bytes.IndexByte(prefix, 0) >= 0 {
		return true
	}
	nontext := 0
	for _, b := range prefix {
		if !textBytes[b] {
			nontext++
		}
	}
	return float64(nontext)/float64(len(prefix)) > 0.30
}

// sniffFile reads up to sniffBytes from the file and classifies the prefix.
// An unreadable file is reported as binary so it gets skipped rather than
// dumped unreadably into the output.
func sniffFile(path string, sniffBytes int) bool {
	f, err := os.Open(path)
	if err != nil {
		return true
	}
	defer f.Close()

	buf := make([]byte, sniffBytes)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	return isBinary(buf[:n])
}
