// Package wordlists loads word lists into validated core.Word slices.
// Every external source, file or embedded, funnels through the Word
// construction contract; lines that fail it are skipped, never coerced.
package wordlists

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"wordlebot/internal/core"
)

// LoadFile reads a word list, one word per line. Blank lines and invalid
// entries are silently skipped. I/O failures are returned.
func LoadFile(path string) ([]core.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	var words []core.Word
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		w, err := core.NewWord(line)
		if err != nil {
			continue
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return words, nil
}

// FromStrings converts raw strings to Words, skipping invalid entries.
func FromStrings(texts []string) []core.Word {
	words := make([]core.Word, 0, len(texts))
	for _, s := range texts {
		w, err := core.NewWord(s)
		if err != nil {
			continue
		}
		words = append(words, w)
	}
	return words
}
