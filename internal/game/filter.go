// Package game runs the outer guess/feedback loop around the solver:
// candidate filtering, single-game sessions against a known answer, and
// parallel benchmarks over a whole answer list. The solver itself never
// filters; it only scores and selects what this package hands it.
package game

import "wordlebot/internal/core"

// FilterCandidates keeps the candidates that are still consistent with
// the observed feedback: exactly those producing the same pattern against
// the guess. The input slice is not modified.
func FilterCandidates(candidates []core.Word, guess core.Word, feedback core.Pattern) []core.Word {
	remaining := make([]core.Word, 0, len(candidates))
	for _, c := range candidates {
		if core.ComputePattern(guess, c) == feedback {
			remaining = append(remaining, c)
		}
	}
	return remaining
}
