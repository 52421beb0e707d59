package domain

import "io"

// Hasher turns an email into its cleaned username and digest.
type Hasher interface {
	Username(email Email) Username
	Hash(u Username) Hash
}

// RosterService collects emails from a file or an interactive stream.
type RosterService interface {
	FromFile(path string) ([]Email, error)
	FromReader(r io.Reader) ([]Email, error)
}

// DigestService validates emails and hashes the accepted ones.
type DigestService interface {
	Process(emails []Email) Report
}

// HashStore persists a hash list as a fixture declaration and reads it back.
type HashStore interface {
	Save(hashes HashList) error
	Load() (HashList, error)
	Path() string
}
