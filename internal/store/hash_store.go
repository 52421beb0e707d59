package store

import (
	"errors"
	"fmt"
	"os"

	"hashgen/internal/domain"
)

const (
	// DefaultFilename is where hashes land when no output path is configured.
	DefaultFilename = "email_hashes.txt"

	// DefaultVarName names the list in the rendered declaration.
	DefaultVarName = "valid_hashes"

	// DefaultLabel identifies the assignment in the file header.
	DefaultLabel = "DS217 Assignment 01"

	// DefaultDigest is the hash named in the file header.
	DefaultDigest = "SHA256"
)

// Options configures a HashFileStore. Zero fields fall back to the package
// defaults.
type Options struct {
	Path    string
	VarName string
	Label   string
	Digest  string
}

// HashFileStore persists a hash list as a commented declaration.
type HashFileStore struct {
	opts Options
}

// NewHashFileStore returns a store configured by opts.
func NewHashFileStore(opts Options) *HashFileStore {
	if opts.Path == "" {
		opts.Path = DefaultFilename
	}
	if opts.VarName == "" {
		opts.VarName = DefaultVarName
	}
	if opts.Label == "" {
		opts.Label = DefaultLabel
	}
	if opts.Digest == "" {
		opts.Digest = DefaultDigest
	}
	return &HashFileStore{opts: opts}
}

// Path returns the file the store writes to.
func (s *HashFileStore) Path() string { return s.opts.Path }

// Render returns the exact file contents Save would write for hashes.
func (s *HashFileStore) Render(hashes domain.HashList) string {
	return Header(s.opts.Digest, s.opts.Label) + "\n" + Declaration(s.opts.VarName, hashes, "")
}

// Save overwrites the store file with hashes, sorted ascending.
func (s *HashFileStore) Save(hashes domain.HashList) error {
	if err := writeFile(s.opts.Path, []byte(s.Render(hashes)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.opts.Path, err)
	}
	return nil
}

// Load reads the hashes listed in the store file, in file order.
func (s *HashFileStore) Load() (domain.HashList, error) {
	b, err := os.ReadFile(s.opts.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: '%s'", domain.ErrFileNotFound, s.opts.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.opts.Path, err)
	}
	return parseDeclaration(b)
}

// Compile-time assertion that HashFileStore implements domain.HashStore.
var _ domain.HashStore = (*HashFileStore)(nil)
