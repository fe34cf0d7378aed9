package organizer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"sortd/internal/config"
	"sortd/internal/journal"
	"sortd/internal/logging"
	"sortd/internal/rules"
	"sortd/internal/services"
)

// Organizer moves files from the source directory into category destinations.
type Organizer struct {
	cfg     *config.Config
	rules   *rules.Set
	journal *journal.Journal
	logger  *slog.Logger
}

// New constructs an organizer. The journal may be nil, in which case
// decisions are returned to the caller but not persisted.
func New(cfg *config.Config, set *rules.Set, jrnl *journal.Journal, logger *slog.Logger) *Organizer {
	return &Organizer{
		cfg:     cfg,
		rules:   set,
		journal: jrnl,
		logger:  logging.NewComponentLogger(logger, "organizer"),
	}
}

// Summary aggregates the outcome counts of a run.
type Summary struct {
	Moved   int `json:"moved"`
	Renamed int `json:"renamed"`
	DryRun  int `json:"dry_run"`
	NoMatch int `json:"no_match"`
	Failed  int `json:"failed"`
}

// Total returns the number of files considered during the run.
func (s Summary) Total() int {
	return s.Moved + s.Renamed + s.DryRun + s.NoMatch + s.Failed
}

func (s *Summary) count(action journal.Action) {
	switch action {
	case journal.ActionMoved:
		s.Moved++
	case journal.ActionRenamedMoved:
		s.Renamed++
	case journal.ActionSkippedDryRun:
		s.DryRun++
	case journal.ActionSkippedNoMatch:
		s.NoMatch++
	case journal.ActionFailed:
		s.Failed++
	}
}

// Run lists the direct entries of sourceDir, classifies each file, and
// delegates matches to the mover. Subdirectories are skipped. Per-file move
// failures are recorded and do not abort the run; only a missing or
// unreadable source directory is fatal.
func (o *Organizer) Run(ctx context.Context, sourceDir string, dryRun bool) ([]journal.Record, Summary, error) {
	logger := logging.WithContext(ctx, o.logger)

	info, err := os.Stat(sourceDir)
	if err != nil {
		return nil, Summary{}, services.Wrap(services.ErrSourceDirectory, "organizer", "stat source", fmt.Sprintf("Source directory not accessible: %s", sourceDir), err)
	}
	if !info.IsDir() {
		return nil, Summary{}, services.Wrap(services.ErrSourceDirectory, "organizer", "stat source", fmt.Sprintf("%s is not a directory", sourceDir), nil)
	}

	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, Summary{}, services.Wrap(services.ErrSourceDirectory, "organizer", "list source", fmt.Sprintf("Failed to list %s", sourceDir), err)
	}

	logger.Info("scan started",
		logging.Int("entries", len(entries)),
		logging.Bool("dry_run", dryRun),
	)

	var (
		records []journal.Record
		summary Summary
	)
	journalPath := ""
	if o.journal != nil {
		journalPath = o.journal.Path()
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		sourcePath := filepath.Join(sourceDir, name)
		if journalPath != "" && sourcePath == journalPath {
			continue
		}

		rule, matched := o.rules.Match(name)
		if !matched {
			rec := o.record(ctx, journal.Record{
				Action: journal.ActionSkippedNoMatch,
				Source: sourcePath,
			})
			records = append(records, rec)
			summary.count(rec.Action)
			logger.Debug("no category for file", logging.String("file", name))
			continue
		}

		destPath, renamed, moveErr := o.place(ctx, sourcePath, rule.Destination, dryRun)
		if moveErr != nil {
			rec := o.record(ctx, journal.Record{
				Action:   journal.ActionFailed,
				Source:   sourcePath,
				Category: rule.Name,
				Detail:   moveErr.Error(),
			})
			records = append(records, rec)
			summary.count(rec.Action)
			logger.Error("move failed",
				logging.String("file", name),
				logging.String("category", rule.Name),
				logging.Error(moveErr),
			)
			continue
		}

		action := journal.ActionMoved
		switch {
		case dryRun:
			action = journal.ActionSkippedDryRun
		case renamed:
			action = journal.ActionRenamedMoved
		}
		rec := o.record(ctx, journal.Record{
			Action:      action,
			Source:      sourcePath,
			Destination: destPath,
			Category:    rule.Name,
		})
		records = append(records, rec)
		summary.count(rec.Action)
		logger.Info("file placed",
			logging.String(logging.FieldAction, string(action)),
			logging.String("file", name),
			logging.String("category", rule.Name),
			logging.String("destination", destPath),
		)
	}

	logger.Info("scan completed",
		logging.Int("moved", summary.Moved),
		logging.Int("renamed", summary.Renamed),
		logging.Int("dry_run", summary.DryRun),
		logging.Int("no_match", summary.NoMatch),
		logging.Int("failed", summary.Failed),
	)
	return records, summary, nil
}

// record stamps and journals a decision. A journal write failure is logged
// as a warning and never propagated; the move it describes already happened.
func (o *Organizer) record(ctx context.Context, rec journal.Record) journal.Record {
	rec.Timestamp = time.Now().UTC()
	if id, ok := services.RunIDFromContext(ctx); ok {
		rec.RunID = id
	}
	if o.journal == nil {
		return rec
	}
	if err := o.journal.Record(rec); err != nil {
		wrapped := services.Wrap(services.ErrJournal, "organizer", "append journal", "Journal entry was not persisted", err)
		logging.WithContext(ctx, o.logger).Warn("journal write failed", logging.Error(wrapped))
	}
	return rec
}
