package cmd

import (
	"fmt"
	"strings"

	"treepack/pkg/logging"
	"treepack/pkg/pack"
	"treepack/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logger *zap.Logger
	cfg    pack.Config

	// Comma-separated flag values, split into cfg before the run.
	excludeDirs  string
	includeExts  string
	ignoreExts   string
	includeGlobs string
	ignoreGlobs  string
)

// RootCmd is the base command; invoking it without a subcommand runs a pack.
var RootCmd = &cobra.Command{
	Use:   "treepack",
	Short: "Treepack concatenates a directory tree into a single text document",
	Long: `Treepack walks a project directory, selects the text files worth keeping,
and concatenates them into one output document with clear per-file
boundaries, ready for review, archival, or LLM ingestion.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.ExcludeDirs = pack.SplitList(excludeDirs)
		cfg.IncludeExts = pack.SplitList(includeExts)
		cfg.ExcludeExts = pack.SplitList(ignoreExts)
		cfg.IncludeGlobs = pack.SplitList(includeGlobs)
		cfg.IgnoreGlobs = pack.SplitList(ignoreGlobs)

		runLogger := logger
		if cfg.Verbose {
			verbose, err := logging.Setup(true, "treepack", version.Get().Version)
			if err != nil {
				return fmt.Errorf("set up verbose logger: %w", err)
			}
			runLogger = verbose
		}

		stats, err := pack.Run(cfg, runLogger)
		if err != nil {
			return err
		}

		fmt.Printf("Done. Wrote %d files to %s. (binary skipped: %d, too large: %d, errors: %d)\n",
			stats.Written, cfg.Output, stats.SkippedBinary, stats.SkippedTooLarge, stats.SkippedErrors)
		return nil
	},
}

// Execute runs the root command with the provided logger.
func Execute(l *zap.Logger) error {
	logger = l
	return RootCmd.Execute()
}

func init() {
	flags := RootCmd.Flags()
	flags.StringVarP(&cfg.Root, "root", "r", "", "project root directory (required)")
	flags.StringVarP(&cfg.Output, "output", "o", "", "output file path (required)")
	flags.Int64Var(&cfg.MaxBytes, "max-bytes", pack.DefaultMaxBytes, "skip files larger than this many bytes (0 = no limit)")
	flags.BoolVar(&cfg.NoCodeFences, "no-code-fences", false, "do not wrap each file content in a code fence")
	flags.StringVar(&excludeDirs, "exclude-dirs", strings.Join(pack.DefaultExcludeDirs(), ","), "comma-separated directory names to prune")
	flags.StringVar(&includeExts, "exts", strings.Join(pack.DefaultIncludeExts(), ","), "comma-separated file extensions to include (without dots)")
	flags.StringVar(&ignoreExts, "ignore-exts", strings.Join(pack.DefaultExcludeExts(), ","), "comma-separated file extensions to skip (without dots)")
	flags.StringVar(&includeGlobs, "include-globs", "", "comma-separated glob patterns to force-include (supports *, **, ?)")
	flags.StringVar(&ignoreGlobs, "ignore-globs", "", "comma-separated glob patterns to skip")
	flags.StringVar(&cfg.IgnoreFile, "ignore-file", "", "file with one ignore pattern per line")
	flags.BoolVar(&cfg.PreferInclude, "prefer-include", false, "include-globs override ignore globs and extensions")
	flags.BoolVar(&cfg.FollowSymlinks, "follow-symlinks", false, "follow symbolic links to directories")
	flags.StringVar(&cfg.Tree, "tree", "", "also write a directory tree of the packed files to this path")
	flags.StringVar(&cfg.ConfigFile, "config", "", "YAML file overriding the default filter sets")
	flags.IntVar(&cfg.MaxWorkers, "workers", 0, "number of concurrent file readers (0 = NumCPU)")
	flags.BoolVar(&cfg.Verbose, "verbose", false, "log per-file decisions")

	_ = RootCmd.MarkFlagRequired("root")
	_ = RootCmd.MarkFlagRequired("output")
}
