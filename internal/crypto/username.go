package crypto

import (
	"strings"

	"hashgen/internal/domain"
)

// CleanUsername extracts the part of email before its first '@' (the whole
// string when there is none), lowercases and trims it, and drops every byte
// outside [a-z0-9].
func CleanUsername(email domain.Email) domain.Username {
	local, _, _ := strings.Cut(string(email), "@")
	local = strings.TrimSpace(strings.ToLower(local))

	var b strings.Builder
	b.Grow(len(local))
	for i := 0; i < len(local); i++ {
		c := local[i]
		if ('a' <= c && c <= 'z') || ('0' <= c && c <= '9') {
			b.WriteByte(c)
		}
	}
	return domain.Username(b.String())
}

// Mask renders u as its first two characters, "***", and its last two
// characters when u is longer than four.
func Mask(u domain.Username) string {
	s := string(u)
	head := s
	if len(head) > 2 {
		head = head[:2]
	}
	masked := head + "***"
	if len(s) > 4 {
		masked += s[len(s)-2:]
	}
	return masked
}
