package domain

import "sort"

// Email is a raw roster line. It is expected to look like user@domain but is
// not otherwise validated.
type Email string

// Username is the cleaned local part of an Email: lowercase ASCII letters and
// digits only. It may be empty.
type Username string

// Hash is the lowercase hex digest of a Username.
type Hash string

// HashList holds hashes in arrival order. Duplicates are kept.
type HashList []Hash

// Sorted returns an ascending copy of l; l itself is left untouched.
func (l HashList) Sorted() HashList {
	out := make(HashList, len(l))
	copy(out, l)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Strings returns the hashes as plain strings.
func (l HashList) Strings() []string {
	out := make([]string, len(l))
	for i, h := range l {
		out[i] = string(h)
	}
	return out
}

// Entry is the operator-facing confirmation for one accepted email.
type Entry struct {
	Masked string
	Hash   Hash
}

// Report is the outcome of processing one roster.
type Report struct {
	Hashes  HashList
	Entries []Entry
	Skipped []Email
}
