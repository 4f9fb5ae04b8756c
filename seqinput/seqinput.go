// Package seqinput turns raw user text into a sequence the alignment engine
// accepts: line endings are normalised, an optional FASTA header line is
// dropped, lines are joined and the result is NFC-normalised so that a
// composed character counts as one symbol.
package seqinput

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// MaxLength is the longest sequence accepted by default.
const MaxLength = 30

var (
	// ErrEmptyInput indicates a sequence with no symbols after parsing.
	ErrEmptyInput = errors.New("seqinput: enter a sequence")

	// ErrTooLong indicates a sequence longer than the configured limit.
	ErrTooLong = errors.New("seqinput: sequence too long")
)

// Parse extracts the sequence from raw text. A first line starting with '>'
// is treated as a FASTA header and discarded.
func Parse(raw string) string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	lines := strings.Split(raw, "\n")
	if strings.HasPrefix(lines[0], ">") {
		lines = lines[1:]
	}

	return norm.NFC.String(strings.Join(lines, ""))
}

// Validate checks that seq has between 1 and maxLen symbols. A maxLen of 0
// or less selects MaxLength.
func Validate(seq string, maxLen int) error {
	if maxLen <= 0 {
		maxLen = MaxLength
	}
	n := utf8.RuneCountInString(seq)
	switch {
	case n == 0:
		return ErrEmptyInput
	case n > maxLen:
		return fmt.Errorf("%w: can't be more than %d symbols, this is %d", ErrTooLong, maxLen, n)
	}
	return nil
}

// Read parses raw and validates the result.
func Read(raw string, maxLen int) (string, error) {
	seq := Parse(raw)
	if err := Validate(seq, maxLen); err != nil {
		return "", err
	}
	return seq, nil
}
