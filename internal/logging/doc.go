// Package logging builds the slog loggers used across sortd.
//
// It supports a console format (timestamp, level, component prefix, k=v
// attributes) and a JSON format with canonical ts/level/msg keys. Run logs
// append to a file under the configured log directory in addition to stdout.
// Attr helpers keep structured keys consistent, and WithContext derives
// fields such as the run identifier from a context.
package logging
