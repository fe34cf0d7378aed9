package organizer_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sortd/internal/journal"
	"sortd/internal/logging"
	"sortd/internal/organizer"
	"sortd/internal/rules"
	"sortd/internal/services"
	"sortd/internal/testsupport"
)

func newOrganizer(t *testing.T) (*organizer.Organizer, string, string) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	if err := os.MkdirAll(cfg.Paths.SourceDir, 0o755); err != nil {
		t.Fatal(err)
	}
	jrnl, err := journal.Open(cfg.JournalPath())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { jrnl.Close() })

	org := organizer.New(cfg, rules.FromConfig(cfg), jrnl, logging.NewNop())
	return org, cfg.Paths.SourceDir, cfg.JournalPath()
}

func TestRunMovesRecognizedFiles(t *testing.T) {
	org, source, _ := newOrganizer(t)
	base := filepath.Dir(source)

	testsupport.WriteFile(t, filepath.Join(source, "photo.JPG"), "img")
	testsupport.WriteFile(t, filepath.Join(source, "notes.txt"), "text")
	testsupport.WriteFile(t, filepath.Join(source, "archive.unknownext"), "data")

	records, summary, err := org.Run(context.Background(), source, false)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Moved != 2 || summary.NoMatch != 1 || summary.Failed != 0 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	if testsupport.Exists(t, filepath.Join(source, "photo.JPG")) {
		t.Fatal("photo.JPG still in source")
	}
	if !testsupport.Exists(t, filepath.Join(base, "Pictures", "photo.JPG")) {
		t.Fatal("photo.JPG missing from Pictures")
	}
	if !testsupport.Exists(t, filepath.Join(base, "Documents", "notes.txt")) {
		t.Fatal("notes.txt missing from Documents")
	}
	if !testsupport.Exists(t, filepath.Join(source, "archive.unknownext")) {
		t.Fatal("unmatched file should stay in place")
	}

	var noMatch *journal.Record
	for i := range records {
		if records[i].Action == journal.ActionSkippedNoMatch {
			noMatch = &records[i]
		}
	}
	if noMatch == nil || !strings.HasSuffix(noMatch.Source, "archive.unknownext") {
		t.Fatalf("expected skipped-no-match record for archive.unknownext, got %+v", records)
	}
}

func TestRunResolvesCollisions(t *testing.T) {
	org, source, _ := newOrganizer(t)
	base := filepath.Dir(source)

	testsupport.WriteFile(t, filepath.Join(base, "Documents", "notes.txt"), "existing")
	testsupport.WriteFile(t, filepath.Join(source, "notes.txt"), "incoming")

	records, summary, err := org.Run(context.Background(), source, false)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Renamed != 1 || summary.Moved != 0 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if records[0].Action != journal.ActionRenamedMoved {
		t.Fatalf("unexpected action %q", records[0].Action)
	}

	data, err := os.ReadFile(filepath.Join(base, "Documents", "notes.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "existing" {
		t.Fatal("existing destination file was overwritten")
	}
	moved, err := os.ReadFile(filepath.Join(base, "Documents", "notes (1).txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(moved) != "incoming" {
		t.Fatalf("unexpected moved content %q", moved)
	}
}

func TestRunDryRunMutatesNothing(t *testing.T) {
	org, source, journalPath := newOrganizer(t)
	base := filepath.Dir(source)

	testsupport.WriteFile(t, filepath.Join(base, "Documents", "notes.txt"), "existing")
	testsupport.WriteFile(t, filepath.Join(source, "notes.txt"), "incoming")
	testsupport.WriteFile(t, filepath.Join(source, "photo.jpg"), "img")

	records, summary, err := org.Run(context.Background(), source, true)
	if err != nil {
		t.Fatal(err)
	}
	if summary.DryRun != 2 || summary.Moved != 0 || summary.Renamed != 0 {
		t.Fatalf("unexpected summary %+v", summary)
	}

	// Dry-run still reports the collision-resolved destination.
	var notesDest string
	for _, rec := range records {
		if strings.HasSuffix(rec.Source, "notes.txt") {
			notesDest = rec.Destination
		}
	}
	if notesDest != filepath.Join(base, "Documents", "notes (1).txt") {
		t.Fatalf("unexpected dry-run destination %q", notesDest)
	}

	if !testsupport.Exists(t, filepath.Join(source, "notes.txt")) {
		t.Fatal("dry-run moved a file")
	}
	if !testsupport.Exists(t, filepath.Join(source, "photo.jpg")) {
		t.Fatal("dry-run moved a file")
	}
	if testsupport.Exists(t, filepath.Join(base, "Pictures")) {
		t.Fatal("dry-run created a destination directory")
	}

	// The journal still records dry-run decisions.
	data, err := os.ReadFile(journalPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "action=skipped-dry-run") {
		t.Fatalf("journal missing dry-run records: %q", data)
	}
}

func TestRunIsIdempotentAcrossInvocations(t *testing.T) {
	org, source, _ := newOrganizer(t)
	base := filepath.Dir(source)

	testsupport.WriteFile(t, filepath.Join(source, "notes.txt"), "first")
	if _, _, err := org.Run(context.Background(), source, false); err != nil {
		t.Fatal(err)
	}

	// Same name arrives again; the second run must not overwrite.
	testsupport.WriteFile(t, filepath.Join(source, "notes.txt"), "second")
	_, summary, err := org.Run(context.Background(), source, false)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Renamed != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}

	first, _ := os.ReadFile(filepath.Join(base, "Documents", "notes.txt"))
	second, _ := os.ReadFile(filepath.Join(base, "Documents", "notes (1).txt"))
	if string(first) != "first" || string(second) != "second" {
		t.Fatalf("unexpected contents %q %q", first, second)
	}

	// A third run finds nothing left to move.
	_, summary, err = org.Run(context.Background(), source, false)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Total() != 0 {
		t.Fatalf("expected empty run, got %+v", summary)
	}
}

func TestRunSkipsSubdirectories(t *testing.T) {
	org, source, _ := newOrganizer(t)

	testsupport.WriteFile(t, filepath.Join(source, "nested", "photo.jpg"), "img")

	records, summary, err := org.Run(context.Background(), source, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 || summary.Total() != 0 {
		t.Fatalf("expected subdirectory to be skipped, got %+v", records)
	}
	if !testsupport.Exists(t, filepath.Join(source, "nested", "photo.jpg")) {
		t.Fatal("nested file was touched")
	}
}

func TestRunMissingSourceIsFatal(t *testing.T) {
	org, source, _ := newOrganizer(t)

	_, _, err := org.Run(context.Background(), filepath.Join(source, "missing"), false)
	if err == nil {
		t.Fatal("expected error for missing source directory")
	}
	if !errors.Is(err, services.ErrSourceDirectory) {
		t.Fatalf("expected ErrSourceDirectory, got %v", err)
	}
	if !services.IsFatal(err) {
		t.Fatal("source directory errors must be fatal")
	}
}

func TestRunSourceIsFileIsFatal(t *testing.T) {
	org, source, _ := newOrganizer(t)
	file := filepath.Join(source, "notafolder.txt")
	testsupport.WriteFile(t, file, "x")

	if _, _, err := org.Run(context.Background(), file, false); !errors.Is(err, services.ErrSourceDirectory) {
		t.Fatalf("expected ErrSourceDirectory, got %v", err)
	}
}

func TestRunIsolatesPerFileFailures(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := os.MkdirAll(cfg.Paths.SourceDir, 0o755); err != nil {
		t.Fatal(err)
	}
	// Point the documents category at a destination whose parent is a
	// regular file so MkdirAll fails for txt moves only.
	blocker := filepath.Join(filepath.Dir(cfg.Paths.SourceDir), "blocker")
	testsupport.WriteFile(t, blocker, "x")
	cfg.Categories[1].Destination = filepath.Join(blocker, "Documents")

	org := organizer.New(cfg, rules.FromConfig(cfg), nil, logging.NewNop())

	testsupport.WriteFile(t, filepath.Join(cfg.Paths.SourceDir, "notes.txt"), "text")
	testsupport.WriteFile(t, filepath.Join(cfg.Paths.SourceDir, "photo.jpg"), "img")

	records, summary, err := org.Run(context.Background(), cfg.Paths.SourceDir, false)
	if err != nil {
		t.Fatalf("per-file failure must not abort the run: %v", err)
	}
	if summary.Failed != 1 || summary.Moved != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	for _, rec := range records {
		if rec.Action == journal.ActionFailed && rec.Detail == "" {
			t.Fatal("failed record missing detail")
		}
	}
}

func TestRunStampsRunID(t *testing.T) {
	org, source, _ := newOrganizer(t)
	testsupport.WriteFile(t, filepath.Join(source, "photo.jpg"), "img")

	ctx := services.WithRunID(context.Background(), "run-abc")
	records, _, err := org.Run(ctx, source, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].RunID != "run-abc" {
		t.Fatalf("expected run id on records, got %+v", records)
	}
}
