package digest

import (
	"log/slog"
	"strings"

	"hashgen/internal/crypto"
	"hashgen/internal/domain"
)

// Service turns a roster into a Report.
type Service struct {
	hasher domain.Hasher
	log    *slog.Logger
}

// New returns a digest service using h. A nil logger falls back to
// slog.Default().
func New(h domain.Hasher, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{hasher: h, log: log}
}

// Process hashes emails in order. Hashes in the report keep arrival order;
// sorting is left to the emitter.
func (s *Service) Process(emails []domain.Email) domain.Report {
	var rep domain.Report
	for _, e := range emails {
		e = domain.Email(strings.TrimSpace(string(e)))
		if e == "" {
			continue
		}
		if !strings.Contains(string(e), "@") {
			s.log.Warn("skipping line", "line", string(e), "error", domain.ErrMalformedEmail)
			rep.Skipped = append(rep.Skipped, e)
			continue
		}

		u := s.hasher.Username(e)
		h := s.hasher.Hash(u)
		rep.Hashes = append(rep.Hashes, h)
		rep.Entries = append(rep.Entries, domain.Entry{Masked: crypto.Mask(u), Hash: h})
	}
	return rep
}

// Compile-time assertion that Service implements domain.DigestService.
var _ domain.DigestService = (*Service)(nil)
