// Package digest validates roster emails and hashes the accepted ones.
//
// Lines without an '@' are skipped with a warning. Every accepted line
// contributes exactly one hash, so duplicates in the roster stay duplicated.
package digest
