package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/beachfall/Forgeon/pkg/icons"
	flog "github.com/beachfall/Forgeon/pkg/log"
	"github.com/beachfall/Forgeon/pkg/operation"
	"github.com/beachfall/Forgeon/pkg/text"
)

var (
	// Flags
	targetFile string
	dryRun     bool
	debug      bool
)

// newRootCmd creates the root command
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forgeon-icons",
		Short: "Replace emoji in the Forgeon web client with SVG icon markup",
		Long: `forgeon-icons rewrites script.js in place, swapping the fixed set of
decorative emoji for <img> tags referencing the bundled SVG icons.
Status, severity, ranking and theme glyphs are intentionally left alone.

The pass is idempotent: running it on an already-converted file is a no-op.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		RunE:          runReplace,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVarP(&targetFile, "file", "f", icons.TargetFile, "file to rewrite in place")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report replacements without writing the file")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")

	return cmd
}

// runReplace wires up and executes the replacement pass
func runReplace(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	reporter := flog.New(os.Stdout, level)
	reporter.Header("replacing emoji in " + targetFile)

	op, err := operation.NewReplaceOperation(operation.ReplaceOptions{
		Path:     targetFile,
		DryRun:   dryRun,
		Replacer: text.NewSimpleTextReplacer(),
		Reporter: reporter,
	})
	if err != nil {
		return err
	}

	runner := operation.NewRunner(zerolog.Ctx(ctx))
	if err := runner.Run(ctx, op); err != nil {
		reporter.Errorf("%v", err)
		return err
	}

	reporter.Success("Emoji replacements complete!")
	return nil
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
