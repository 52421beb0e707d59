package app

import (
	"log/slog"

	"hashgen/internal/crypto"
	"hashgen/internal/domain"
	digestsvc "hashgen/internal/services/digest"
	rostersvc "hashgen/internal/services/roster"
	"hashgen/internal/store"
)

// Wire bundles the hasher, services and store for the CLI.
type Wire struct {
	Config Config
	Hasher domain.Hasher
	Roster domain.RosterService
	Digest domain.DigestService
	Hashes *store.HashFileStore
	Log    *slog.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, log *slog.Logger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}

	hasher := crypto.NewHasher(cfg.Algorithm)

	return &Wire{
		Config: cfg,
		Hasher: hasher,
		Roster: rostersvc.New(log),
		Digest: digestsvc.New(hasher, log),
		Hashes: store.NewHashFileStore(store.Options{
			Path:    cfg.Output,
			VarName: cfg.VarName,
			Label:   cfg.Label,
			Digest:  cfg.Algorithm.Title(),
		}),
		Log:    log,
	}, nil
}
