// Package testsupport provides fixtures shared by package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"sortd/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test:
// a source directory plus Pictures and Documents destinations for the jpg
// and txt extensions.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.SourceDir = filepath.Join(base, "downloads")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Categories = []config.Category{
		{
			Name:        "images",
			Destination: filepath.Join(base, "Pictures"),
			Extensions:  []string{"jpg", "jpeg", "png"},
		},
		{
			Name:        "documents",
			Destination: filepath.Join(base, "Documents"),
			Extensions:  []string{"txt", "pdf"},
		},
	}
	return &cfg
}
