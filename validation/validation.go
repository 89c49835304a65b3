package validation

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxQueryLength bounds a question in characters.
const MaxQueryLength = 10000

var (
	ErrEmptyQuery   = errors.New("query is empty")
	ErrQueryTooLong = errors.New("query is too long")
)

// NormalizeQuery trims the raw input and rejects blank or oversized questions.
func NormalizeQuery(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrEmptyQuery
	}
	if utf8.RuneCountInString(trimmed) > MaxQueryLength {
		return "", ErrQueryTooLong
	}
	return trimmed, nil
}
