package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"hashgen/internal/domain"
)

// Algorithm names a 256-bit digest.
type Algorithm string

const (
	SHA256     Algorithm = "sha256"
	SHA3_256   Algorithm = "sha3-256"
	BLAKE2b256 Algorithm = "blake2b-256"
)

// Algorithms lists the supported digests, default first.
var Algorithms = []Algorithm{SHA256, SHA3_256, BLAKE2b256}

// ParseAlgorithm maps a name such as "sha256" to an Algorithm. An empty name
// selects SHA256.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return SHA256, nil
	}
	for _, a := range Algorithms {
		if string(a) == name {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownAlgorithm, name)
}

// Title returns the display name used in reports, e.g. "SHA256".
func (a Algorithm) Title() string {
	switch a {
	case SHA3_256:
		return "SHA3-256"
	case BLAKE2b256:
		return "BLAKE2b-256"
	default:
		return "SHA256"
	}
}

// Sum returns the lowercase hex digest of u's UTF-8 bytes.
func (a Algorithm) Sum(u domain.Username) domain.Hash {
	buf := []byte(u)
	var sum [32]byte
	switch a {
	case SHA3_256:
		sum = sha3.Sum256(buf)
	case BLAKE2b256:
		sum = blake2b.Sum256(buf)
	default:
		sum = sha256.Sum256(buf)
	}
	return domain.Hash(hex.EncodeToString(sum[:]))
}

// Digest returns the SHA-256 hex digest of u.
func Digest(u domain.Username) domain.Hash { return SHA256.Sum(u) }

// Hasher cleans and digests emails with a fixed Algorithm.
type Hasher struct {
	Algorithm Algorithm
}

// NewHasher returns a Hasher for a.
func NewHasher(a Algorithm) *Hasher { return &Hasher{Algorithm: a} }

// Username returns the cleaned username of email.
func (h *Hasher) Username(email domain.Email) domain.Username { return CleanUsername(email) }

// Hash returns the digest of u.
func (h *Hasher) Hash(u domain.Username) domain.Hash { return h.Algorithm.Sum(u) }

// Compile-time assertion that Hasher implements domain.Hasher.
var _ domain.Hasher = (*Hasher)(nil)
