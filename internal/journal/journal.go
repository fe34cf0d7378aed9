package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Action describes the outcome recorded for a single file.
type Action string

const (
	ActionMoved          Action = "moved"
	ActionRenamedMoved   Action = "renamed-and-moved"
	ActionSkippedDryRun  Action = "skipped-dry-run"
	ActionSkippedNoMatch Action = "skipped-no-match"
	ActionFailed         Action = "failed"
)

// Record captures one organizer decision at the moment it was made.
type Record struct {
	Timestamp   time.Time `json:"timestamp"`
	RunID       string    `json:"run_id"`
	Action      Action    `json:"action"`
	Source      string    `json:"source"`
	Destination string    `json:"destination,omitempty"`
	Category    string    `json:"category,omitempty"`
	Detail      string    `json:"detail,omitempty"`
}

// Line renders the record as a single journal line.
func (r Record) Line() string {
	var b strings.Builder
	b.Grow(96)
	ts := r.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	b.WriteString(ts.UTC().Format(time.RFC3339))
	if r.RunID != "" {
		b.WriteString(" run=")
		b.WriteString(r.RunID)
	}
	b.WriteString(" action=")
	b.WriteString(string(r.Action))
	b.WriteString(" src=")
	b.WriteString(strconv.Quote(r.Source))
	if r.Destination != "" {
		b.WriteString(" dest=")
		b.WriteString(strconv.Quote(r.Destination))
	}
	if r.Category != "" {
		b.WriteString(" category=")
		b.WriteString(r.Category)
	}
	if r.Detail != "" {
		b.WriteString(" detail=")
		b.WriteString(strconv.Quote(r.Detail))
	}
	return b.String()
}

// Journal is an append-only activity log.
type Journal struct {
	path string
	file *os.File
}

// Open opens the journal for appending, creating parent directories and the
// file itself as needed.
func Open(path string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create journal directory: %w", err)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", path, err)
	}
	return &Journal{path: path, file: file}, nil
}

// Path returns the journal file location.
func (j *Journal) Path() string {
	return j.path
}

// Record appends a single line for the given record.
func (j *Journal) Record(rec Record) error {
	if _, err := j.file.WriteString(rec.Line() + "\n"); err != nil {
		return fmt.Errorf("append journal entry: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (j *Journal) Close() error {
	if j == nil || j.file == nil {
		return nil
	}
	return j.file.Close()
}
