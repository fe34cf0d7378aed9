// Package journal appends one timestamped line per organizer decision to a
// persistent activity log.
//
// The journal is append-only and write-only from the program's point of
// view: sortd never truncates it and never reads it back. A write failure
// is reported to the caller so it can be surfaced as a warning, but it must
// never fail or reverse a completed file move.
package journal
