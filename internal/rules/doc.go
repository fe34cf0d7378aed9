// Package rules compiles the configured categories into an ordered rule set
// and classifies filenames by extension.
//
// Classification is total: a filename with no extension or an extension that
// no rule claims yields no match rather than an error. Overlapping extension
// sets resolve in declaration order, first match wins.
package rules
