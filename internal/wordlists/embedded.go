package wordlists

import (
	_ "embed"
	"strings"
	"sync"

	"wordlebot/internal/core"
)

// Built-in fallback lists so the binary works with no word-list files on
// disk. Real deployments usually point the config at the full NYT lists
// (~2,315 answers, ~12,972 allowed guesses); these embedded lists are a
// curated subset with the same shape: answers are a strict subset of
// allowed.
var (
	//go:embed data/answers.txt
	rawAnswers string
	//go:embed data/allowed.txt
	rawAllowed string
)

var (
	answersOnce = sync.OnceValue(func() []core.Word {
		return FromStrings(strings.Split(rawAnswers, "\n"))
	})
	allowedOnce = sync.OnceValue(func() []core.Word {
		return FromStrings(strings.Split(rawAllowed, "\n"))
	})
)

// Answers returns the embedded answer list. The slice is shared; callers
// must not mutate it.
func Answers() []core.Word {
	return answersOnce()
}

// Allowed returns the embedded guess-pool list, a superset of Answers.
// The slice is shared; callers must not mutate it.
func Allowed() []core.Word {
	return allowedOnce()
}
