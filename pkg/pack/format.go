package pack

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

var backtickRuns = regexp.MustCompile("`+")

// chooseFence returns a backtick fence long enough that no backtick run in
// the content can close it early.
func chooseFence(content string) string {
	longest := 0
	for _, run := range backtickRuns.FindAllString(content, -1) {
		if len(run) > longest {
			longest = len(run)
		}
	}
	if longest >= 3 {
		return strings.Repeat("`", longest+2)
	}
	return "```"
}

// WriteOutput renders the accepted files into the combined document: a run
// header, one bounded block per file, and a trailing summary line. The
// output's parent directory is created if missing.
func WriteOutput(path, root string, files []File, stats Stats, noFences bool, logger *zap.Logger) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	rule := strings.Repeat("=", 80)

	fmt.Fprintf(w, "PROJECT_ROOT: %s\n", root)
	fmt.Fprintf(w, "FILE_COUNT: %d\n", len(files))
	fmt.Fprintf(w, "%s\n\n", rule)

	for _, f := range files {
		fmt.Fprintf(w, "===== START FILE: %s =====\n", f.RelPath)
		if noFences {
			writeContent(w, f.Content)
		} else {
			fence := chooseFence(f.Content)
			fmt.Fprintf(w, "%s%s\n", fence, f.Lang)
			writeContent(w, f.Content)
			fmt.Fprintf(w, "%s\n", fence)
		}
		fmt.Fprintf(w, "===== END FILE: %s =====\n\n", f.RelPath)
	}

	fmt.Fprintf(w, "%s\n", rule)
	fmt.Fprintf(w, "SUMMARY: written=%d, skipped_binary=%d, skipped_too_large=%d, skipped_errors=%d\n",
		stats.Written, stats.SkippedBinary, stats.SkippedTooLarge, stats.SkippedErrors)

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	logger.Debug("wrote combined output", zap.String("path", path), zap.Int("files", len(files)))
	return nil
}

// writeContent writes file content, ensuring it ends with a newline so the
// following fence or boundary starts on its own line.
func writeContent(w *bufio.Writer, content string) {
	w.WriteString(content)
	if !strings.HasSuffix(content, "\n") {
		w.WriteByte('\n')
	}
}
