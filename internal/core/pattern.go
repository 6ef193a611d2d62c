package core

import (
	"errors"
	"fmt"
	"strings"
)

// Per-position feedback outcomes, packed as base-3 digits.
const (
	outcomeAbsent  uint8 = 0
	outcomePresent uint8 = 1
	outcomeCorrect uint8 = 2
)

// PatternCount is the number of distinct feedback patterns: 3^5.
const PatternCount = 243

// PatternAllCorrect is the pattern produced when the guess equals the
// candidate: every digit is Correct.
const PatternAllCorrect Pattern = PatternCount - 1

// Pattern is a feedback code in [0, 243). Position 0 is the
// least-significant base-3 digit; this convention is fixed across every
// comparison in the solver.
type Pattern uint8

// ComputePattern classifies guess against candidate under Wordle's
// duplicate-letter rules.
//
// Two passes are required for correctness with repeated letters: pass 1
// claims exact matches and decrements the candidate's per-letter counts;
// pass 2 scans the remaining positions left to right and marks Present
// only while the guessed letter still has unclaimed occurrences. A naive
// containment check would overcount duplicates (guess "speed" against
// candidate "abide" may credit at most one E).
//
// The comparison is intentionally asymmetric: guess letters are consumed
// against candidate occurrence counts, so swapping the arguments generally
// yields a different pattern.
func ComputePattern(guess, candidate Word) Pattern {
	counts := candidate.LetterCounts()
	var digits [WordLength]uint8

	for i := 0; i < WordLength; i++ {
		if guess.chars[i] == candidate.chars[i] {
			digits[i] = outcomeCorrect
			counts[guess.chars[i]-'a']--
		}
	}

	for i := 0; i < WordLength; i++ {
		if digits[i] == outcomeCorrect {
			continue
		}
		idx := guess.chars[i] - 'a'
		if counts[idx] > 0 {
			digits[i] = outcomePresent
			counts[idx]--
		}
	}

	var value Pattern
	mult := Pattern(1)
	for i := 0; i < WordLength; i++ {
		value += Pattern(digits[i]) * mult
		mult *= 3
	}
	return value
}

// PatternFromValue constructs a Pattern from its raw numeric value.
// The caller guarantees v < 243; used for tests and enumeration.
func PatternFromValue(v uint8) Pattern {
	return Pattern(v)
}

// Value returns the raw numeric encoding.
func (p Pattern) Value() uint8 {
	return uint8(p)
}

// Digit returns the outcome digit at position i: 0 absent, 1 present,
// 2 correct.
func (p Pattern) Digit(i int) uint8 {
	v := uint8(p)
	for ; i > 0; i-- {
		v /= 3
	}
	return v % 3
}

// String renders the pattern as five letters, position 0 first:
// B absent, Y present, G correct.
func (p Pattern) String() string {
	var b strings.Builder
	for i := 0; i < WordLength; i++ {
		switch p.Digit(i) {
		case outcomeCorrect:
			b.WriteByte('G')
		case outcomePresent:
			b.WriteByte('Y')
		default:
			b.WriteByte('B')
		}
	}
	return b.String()
}

// ParsePattern reads the five-letter B/Y/G form (case-insensitive),
// the inverse of String. Used by the interactive CLI to take feedback.
func ParsePattern(s string) (Pattern, error) {
	s = strings.ToUpper(s)
	if len(s) != WordLength {
		return 0, fmt.Errorf("feedback must be exactly %d characters, got %d", WordLength, len(s))
	}
	var value Pattern
	mult := Pattern(1)
	for i := 0; i < WordLength; i++ {
		var d uint8
		switch s[i] {
		case 'B':
			d = outcomeAbsent
		case 'Y':
			d = outcomePresent
		case 'G':
			d = outcomeCorrect
		default:
			return 0, errors.New("feedback characters must be one of B, Y, G")
		}
		value += Pattern(d) * mult
		mult *= 3
	}
	return value, nil
}
