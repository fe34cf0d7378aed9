// Package organizer drives a single run: it scans the source directory,
// classifies each file, and moves matches into their category destination.
//
// Moves are collision-safe: an occupied destination name gets a numeric
// " (1)", " (2)" suffix and nothing is ever overwritten. Cross-device
// renames fall back to a verified copy followed by source removal. Dry-run
// computes every decision, including collision resolution, without touching
// the filesystem. Per-file failures are journaled and isolated so the rest
// of the run continues; error wrapping follows the shared services
// conventions so the CLI can separate fatal startup failures from recorded
// ones.
package organizer
