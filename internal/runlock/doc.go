// Package runlock enforces single-instance execution of an organizer run.
//
// Two invocations interleaving on the same source directory and journal
// would defeat the collision-safe naming guarantees, so the second
// invocation fails fast with a clear message instead.
package runlock
