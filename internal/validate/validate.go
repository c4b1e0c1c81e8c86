package validate

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	ErrInvalidID = errors.New("id must be a positive integer")
	spaceRe      = regexp.MustCompile(`\s+`)
)

// CleanString trims, drops NUL bytes, collapses inner whitespace and applies
// NFC so visually equal names compare and sort equal in the database.
func CleanString(s string) string {
	s = strings.ReplaceAll(s, "\x00", "")
	s = norm.NFC.String(s)
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// OptionalString cleans p and maps blank values to nil (stored as NULL).
func OptionalString(p *string) *string {
	if p == nil {
		return nil
	}
	s := CleanString(*p)
	if s == "" {
		return nil
	}
	return &s
}

// OptionalInt maps zero to nil; clients send 0 or null for "no value".
func OptionalInt(p *int) *int {
	if p == nil || *p == 0 {
		return nil
	}
	v := *p
	return &v
}

// ParseID parses a path identifier. Only positive base-10 integers are accepted.
func ParseID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrInvalidID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
