package organizer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"sortd/internal/fileutil"
	"sortd/internal/logging"
	"sortd/internal/services"
)

const maxSuffixAttempts = 10000

// place resolves the collision-free destination for sourcePath inside
// destDir and performs the move unless dryRun is set. The boolean result
// reports whether collision resolution renamed the file.
func (o *Organizer) place(ctx context.Context, sourcePath, destDir string, dryRun bool) (string, bool, error) {
	if !dryRun {
		if err := os.MkdirAll(destDir, 0o755); err != nil {
			return "", false, services.Wrap(services.ErrMove, "organizer", "ensure destination", fmt.Sprintf("Failed to create %s", destDir), err)
		}
	}

	target, renamed, err := nextAvailablePath(destDir, filepath.Base(sourcePath))
	if err != nil {
		return "", false, services.Wrap(services.ErrMove, "organizer", "allocate destination name", "Unable to allocate a collision-free name", err)
	}

	if dryRun {
		return target, renamed, nil
	}

	if renameErr := os.Rename(sourcePath, target); renameErr != nil {
		var linkErr *os.LinkError
		if errors.As(renameErr, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
			if copyErr := fileutil.CopyFileVerified(sourcePath, target); copyErr != nil {
				return "", false, services.Wrap(services.ErrMove, "organizer", "copy across devices", "Failed to copy file into destination", copyErr)
			}
			if err := os.Remove(sourcePath); err != nil {
				logging.WithContext(ctx, o.logger).Warn("failed to remove source after cross-device copy", logging.Error(err))
			}
		} else {
			return "", false, services.Wrap(services.ErrMove, "organizer", "move file", fmt.Sprintf("Failed to move into %s", destDir), renameErr)
		}
	}
	return target, renamed, nil
}

// nextAvailablePath returns the first free path for name inside dir,
// appending " (1)", " (2)", ... before the extension when the plain name is
// taken. Never reuses an occupied name.
func nextAvailablePath(dir, name string) (string, bool, error) {
	candidate := filepath.Join(dir, name)
	free, err := pathFree(candidate)
	if err != nil {
		return "", false, err
	}
	if free {
		return candidate, false, nil
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for attempt := 1; attempt <= maxSuffixAttempts; attempt++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, attempt, ext))
		free, err := pathFree(candidate)
		if err != nil {
			return "", false, err
		}
		if free {
			return candidate, true, nil
		}
	}
	return "", false, fmt.Errorf("exhausted name suffixes for %s in %s", name, dir)
}

func pathFree(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return true, nil
	}
	return false, err
}
