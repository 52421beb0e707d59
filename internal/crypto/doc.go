// Package crypto holds the pure functions behind hashgen.
//
// Contents
//
//   - Username cleaning: the local part of an email, lowercased, trimmed and
//     reduced to [a-z0-9] (CleanUsername)
//   - Masked display of a username for operator checks (Mask)
//   - Hex digests of usernames, SHA-256 by default (Digest, Algorithm)
//
// # Notes
//
// Nothing here returns an error: every string has a username and every
// username has a digest. The only failure is asking for an algorithm that
// does not exist, which is caught by ParseAlgorithm.
package crypto
