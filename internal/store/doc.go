// Package store provides file-based persistence for generated hash lists.
//
// HashFileStore writes a three-line comment header followed by a list
// declaration, one quoted hash per line, sorted ascending. Writes go through
// a temp file and rename, so a failed run never leaves a partial file. Load
// reads the quoted hashes back for validation.
package store
