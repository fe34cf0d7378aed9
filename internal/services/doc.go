// Package services defines shared utilities consumed by the organizer run
// and the CLI commands.
//
// Key responsibilities:
//   - Context helpers that stamp the run identifier for logging.
//   - Structured error markers plus the Wrap helper that separate fatal
//     startup failures (configuration, source directory) from per-file
//     failures that the run isolates and continues past.
//
// Use these helpers when wiring new behaviour so error handling and
// observability stay uniform across the codebase.
package services
