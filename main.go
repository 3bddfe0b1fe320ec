package main

import (
	"log"
	"os"
	"strings"

	"treepack/cmd"
	"treepack/pkg/version"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	logger, err := zap.NewProduction(zap.Fields(
		zap.String("app", "treepack"),
		zap.String("version", version.Get().Version),
	))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	runErr := cmd.Execute(logger)

	// Sync only when stderr is a terminal or a regular file; zap reports a
	// spurious "invalid argument" on other descriptors.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logger.Sync(); syncErr != nil {
			if !strings.Contains(strings.ToLower(syncErr.Error()), "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}

	if runErr != nil {
		os.Exit(1)
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
