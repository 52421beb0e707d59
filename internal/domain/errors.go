package domain

import "errors"

var (
	// ErrFileNotFound is returned when the roster file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrEmptyInput is returned when no non-blank roster lines were collected.
	ErrEmptyInput = errors.New("no emails provided")

	// ErrMalformedEmail marks a roster line without an '@'. It is never fatal.
	ErrMalformedEmail = errors.New("not a valid email format")

	// ErrUnknownAlgorithm is returned for an unsupported digest name.
	ErrUnknownAlgorithm = errors.New("unknown digest algorithm")

	// ErrHashNotFound is returned by check when a username is not listed.
	ErrHashNotFound = errors.New("hash not listed")
)
