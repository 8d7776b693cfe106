package protparam

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidSequence is matched by every *InvalidSequenceError.
var ErrInvalidSequence = errors.New("invalid amino acid sequence")

// InvalidSequenceError reports input that does not normalize to a
// non-empty string of standard residue codes.
type InvalidSequenceError struct {
	Input    string // raw input as given
	Cleaned  string // input after Normalize
	Residue  rune   // first offending character, 0 when Cleaned is empty
	Position int    // 1-based position of Residue in Cleaned
}

func (e *InvalidSequenceError) Error() string {
	if e.Cleaned == "" {
		return "invalid amino acid sequence: sequence is empty"
	}
	return fmt.Sprintf("invalid amino acid sequence: unknown residue %q at position %d", e.Residue, e.Position)
}

func (e *InvalidSequenceError) Is(target error) bool {
	return target == ErrInvalidSequence
}

// Normalize removes whitespace and digits and uppercases what is left.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) || (r >= '0' && r <= '9') {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Validate reports whether seq is non-empty and made only of standard codes.
func Validate(seq string) bool {
	return firstInvalid(seq) == -1 && seq != ""
}

// Clean normalizes raw and validates the result.
func Clean(raw string) (string, error) {
	seq := Normalize(raw)
	if seq == "" {
		return "", &InvalidSequenceError{Input: raw}
	}
	if i := firstInvalid(seq); i >= 0 {
		r := []rune(seq[i:])[0]
		return "", &InvalidSequenceError{
			Input:    raw,
			Cleaned:  seq,
			Residue:  r,
			Position: len([]rune(seq[:i])) + 1,
		}
	}
	return seq, nil
}

// firstInvalid returns the byte offset of the first non-standard residue, or -1.
func firstInvalid(seq string) int {
	for i := 0; i < len(seq); i++ {
		if !IsStandard(seq[i]) {
			return i
		}
	}
	return -1
}
