package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxInputSize is 4KB (conservative default)
	DefaultMaxInputSize = 4096
	// EnvMaxInputSize is the environment variable to override the default
	EnvMaxInputSize = "WINNOW_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge    = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8      = errors.New("input contains invalid UTF-8 sequences")
	ErrControlCharacter = errors.New("input contains control characters")
)

// SanitizeInput checks user input against the configured size limit,
// valid UTF-8 and terminal control characters.
// Accepted input is returned unchanged; anything else is rejected, never rewritten.
func SanitizeInput(input string) (string, error) {
	return sanitize(input, getMaxInputSize())
}

func sanitize(input string, limit int) (string, error) {
	if len(input) > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), limit)
	}

	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}

	for i, r := range input {
		if unicode.IsControl(r) && !isSafeControl(r) {
			return "", fmt.Errorf("%w: %U at byte %d", ErrControlCharacter, r, i)
		}
	}
	return input, nil
}

func isSafeControl(r rune) bool {
	return r == '\n' || r == '\t' || r == '\r'
}

func getMaxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}
