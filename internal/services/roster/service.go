package roster

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"hashgen/internal/domain"
	"hashgen/internal/util/memzero"
)

// Service reads rosters.
type Service struct {
	log *slog.Logger
}

// New returns a roster service. A nil logger falls back to slog.Default().
func New(log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{log: log}
}

// FromFile reads every non-blank line of path. A missing path yields an
// error wrapping domain.ErrFileNotFound.
func (s *Service) FromFile(path string) ([]domain.Email, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: '%s'", domain.ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading roster %s: %w", path, err)
	}
	// Hygiene only: the parsed emails are still held as strings.
	defer memzero.Zero(raw)

	emails, err := readLines(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("reading roster %s: %w", path, err)
	}
	s.log.Debug("roster loaded", "path", path, "emails", len(emails))
	return emails, nil
}

// FromReader reads lines from r until EOF.
func (s *Service) FromReader(r io.Reader) ([]domain.Email, error) {
	emails, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	s.log.Debug("roster read from input", "emails", len(emails))
	return emails, nil
}

// NonEmpty returns domain.ErrEmptyInput when emails is empty.
func NonEmpty(emails []domain.Email) error {
	if len(emails) == 0 {
		return domain.ErrEmptyInput
	}
	return nil
}

// readLines returns the trimmed non-blank lines of r. Lines have no length
// limit and a final line without a newline is kept.
func readLines(r io.Reader) ([]domain.Email, error) {
	br := bufio.NewReader(r)

	var emails []domain.Email
	for {
		line, err := br.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			emails = append(emails, domain.Email(line))
		}
		if errors.Is(err, io.EOF) {
			return emails, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Compile-time assertion that Service implements domain.RosterService.
var _ domain.RosterService = (*Service)(nil)
