package main

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"sortd/internal/config"
	"sortd/internal/journal"
	"sortd/internal/logging"
	"sortd/internal/organizer"
	"sortd/internal/rules"
	"sortd/internal/runlock"
	"sortd/internal/services"
)

type runReport struct {
	RunID   string            `json:"run_id"`
	Source  string            `json:"source"`
	DryRun  bool              `json:"dry_run"`
	Summary organizer.Summary `json:"summary"`
	Records []journal.Record  `json:"records"`
}

func newRunCommand(cctx *commandContext) *cobra.Command {
	var dryRun bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "run [source-dir]",
		Short: "Organize files into their category destinations",
		Long: `Run lists the direct entries of the source directory (default: the
configured source_dir), classifies each file by extension, and moves
matches into their category destination. Name collisions get a numeric
suffix; nothing is ever overwritten. Every decision is appended to the
activity journal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.EnsureLogDir(); err != nil {
				return services.Wrap(services.ErrConfiguration, "run", "ensure log dir", "Failed to create log directory", err)
			}

			sourceDir := cfg.Paths.SourceDir
			if len(args) == 1 {
				expanded, err := config.ExpandPath(args[0])
				if err != nil {
					return services.Wrap(services.ErrSourceDirectory, "run", "resolve source", "Invalid source directory", err)
				}
				sourceDir = expanded
			}

			logger, err := logging.NewForRun(cfg.Paths.LogDir, cfg.Logging.Level, cfg.Logging.Format)
			if err != nil {
				return services.Wrap(services.ErrConfiguration, "run", "init logger", "Failed to initialize logging", err)
			}

			lock, err := runlock.Acquire(cfg.LockPath())
			if err != nil {
				return err
			}
			defer func() {
				_ = lock.Release()
			}()

			jrnl, err := journal.Open(cfg.JournalPath())
			if err != nil {
				return services.Wrap(services.ErrConfiguration, "run", "open journal", "Failed to open activity journal", err)
			}
			defer jrnl.Close()

			runID := uuid.NewString()
			ctx := services.WithRunID(cmd.Context(), runID)
			ctx = services.WithSourceDir(ctx, sourceDir)

			org := organizer.New(cfg, rules.FromConfig(cfg), jrnl, logger)
			records, summary, err := org.Run(ctx, sourceDir, dryRun)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, runReport{
					RunID:   runID,
					Source:  sourceDir,
					DryRun:  dryRun,
					Summary: summary,
					Records: records,
				})
			}

			out := cmd.OutOrStdout()
			title := fmt.Sprintf("Organized %s", sourceDir)
			if dryRun {
				title = fmt.Sprintf("Dry run for %s (no files were moved)", sourceDir)
			}
			fmt.Fprintln(out, heading(out, title))
			fmt.Fprintln(out, renderTable(
				[]string{"Outcome", "Files"},
				[][]string{
					{"Moved", strconv.Itoa(summary.Moved)},
					{"Renamed and moved", strconv.Itoa(summary.Renamed)},
					{"Dry-run only", strconv.Itoa(summary.DryRun)},
					{"No matching category", strconv.Itoa(summary.NoMatch)},
					{"Failed", strconv.Itoa(summary.Failed)},
				},
				1,
			))
			fmt.Fprintf(out, "Journal: %s\n", jrnl.Path())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report intended actions without moving files")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit records and summary as JSON")
	return cmd
}
