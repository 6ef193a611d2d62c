// Package core provides the word and feedback-pattern value types that the
// solver is built on. A Word is a fixed 5-letter lowercase token; a Pattern
// is the base-3 encoded positional feedback produced by comparing a guess
// against a candidate answer.
package core

import (
	"errors"
	"fmt"
)

// WordLength is the fixed word length for the game.
const WordLength = 5

// Word construction errors. NewWord wraps these with detail, so callers
// should test with errors.Is.
var (
	ErrInvalidLength     = errors.New("word must be exactly 5 letters")
	ErrNonASCII          = errors.New("word must contain only ASCII characters")
	ErrInvalidCharacters = errors.New("word contains non-alphabetic characters")
)

// Word is an immutable 5-letter lowercase ASCII word.
// The zero value is not a valid word; construct via NewWord.
// Words are comparable and compare by exact byte content.
type Word struct {
	chars [WordLength]byte
}

// NewWord validates and normalizes text into a Word.
// ASCII letters are lowercased before the character check, so case is
// never itself an error. Lowercasing is byte-wise: running a Unicode
// lowercase over arbitrary bytes would rewrite invalid sequences to
// multi-byte replacement runes and misreport non-ASCII input as a
// length error.
func NewWord(text string) (Word, error) {
	if len(text) != WordLength {
		return Word{}, fmt.Errorf("%w: got %d", ErrInvalidLength, len(text))
	}

	var w Word
	for i := 0; i < WordLength; i++ {
		c := text[i]
		if c >= 0x80 {
			return Word{}, fmt.Errorf("%w: %q", ErrNonASCII, text)
		}
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c < 'a' || c > 'z' {
			return Word{}, fmt.Errorf("%w: %q", ErrInvalidCharacters, text)
		}
		w.chars[i] = c
	}
	return w, nil
}

// MustWord is NewWord that panics on invalid input. For tests and
// compile-time-known constants only.
func MustWord(text string) Word {
	w, err := NewWord(text)
	if err != nil {
		panic(err)
	}
	return w
}

// Text returns the word as a lowercase string.
func (w Word) Text() string {
	return string(w.chars[:])
}

// Bytes returns the raw 5-byte representation.
func (w Word) Bytes() [WordLength]byte {
	return w.chars
}

// CharAt returns the letter at position i (0-based).
// Panics if i is out of range; positions are always 0..4 in this domain.
func (w Word) CharAt(i int) byte {
	return w.chars[i]
}

// Contains reports whether the word contains the given letter.
func (w Word) Contains(letter byte) bool {
	for _, c := range w.chars {
		if c == letter {
			return true
		}
	}
	return false
}

// PositionsOf returns every position at which letter occurs, in order.
// Empty if the letter is absent.
func (w Word) PositionsOf(letter byte) []int {
	var positions []int
	for i, c := range w.chars {
		if c == letter {
			positions = append(positions, i)
		}
	}
	return positions
}

// LetterCounts returns a 26-slot occurrence table indexed by letter
// (a=0 .. z=25).
func (w Word) LetterCounts() [26]uint8 {
	var counts [26]uint8
	for _, c := range w.chars {
		counts[c-'a']++
	}
	return counts
}

func (w Word) String() string {
	return w.Text()
}
