// Package roster collects email lines from a roster file or an interactive
// stream.
//
// Lines are trimmed and blank lines dropped; order is preserved and
// duplicates are kept. A file with only blank lines yields the same empty
// roster as an empty file.
package roster
