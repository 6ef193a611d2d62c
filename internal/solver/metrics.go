// Package solver implements the guess-scoring engine and the selection
// strategies built on it. Every strategy is a pure function of a guess
// pool, a candidate list, and an immutable configuration: scoring a guess
// classifies every remaining candidate by feedback pattern, then derives
// information metrics from the resulting distribution.
package solver

import (
	"math"

	"wordlebot/internal/core"
)

// GuessMetrics holds the per-guess evaluation metrics derived from the
// feedback-pattern distribution of one guess over one candidate set.
type GuessMetrics struct {
	// Entropy is the expected information gain in bits.
	Entropy float64
	// ExpectedRemaining is the expected candidate-set size after the guess.
	ExpectedRemaining float64
	// MaxPartition is the worst-case candidates remaining over all
	// feedback outcomes.
	MaxPartition int
}

// groupByPattern buckets candidates by the pattern each produces against
// guess. A dense 243-slot array indexed by raw pattern value keeps the
// innermost loop free of hashing.
func groupByPattern(guess core.Word, candidates []core.Word) [core.PatternCount]int {
	var counts [core.PatternCount]int
	for _, c := range candidates {
		counts[core.ComputePattern(guess, c).Value()]++
	}
	return counts
}

// CalculateEntropy returns the Shannon entropy, in bits, of the feedback
// distribution guess induces over candidates.
//
// H = -Σ p·log2(p) over non-empty pattern buckets. An empty candidate set
// yields 0.0 by definition, not an error.
func CalculateEntropy(guess core.Word, candidates []core.Word) float64 {
	if len(candidates) == 0 {
		return 0.0
	}

	counts := groupByPattern(guess, candidates)
	total := float64(len(candidates))

	entropy := 0.0
	for _, count := range counts {
		if count > 0 {
			p := float64(count) / total
			entropy -= p * math.Log2(p)
		}
	}
	return entropy
}

// CalculateMetrics computes entropy, expected remaining candidates, and
// max partition size in a single pass over the pattern histogram.
// An empty candidate set yields the zero triple.
//
// ExpectedRemaining = Σ p·count = Σ count² / total. The squared counts
// accumulate as an integer and divide once, so the lower bound of 1 holds
// exactly; per-bucket division would drift below it for all-singleton
// distributions.
func CalculateMetrics(guess core.Word, candidates []core.Word) GuessMetrics {
	if len(candidates) == 0 {
		return GuessMetrics{}
	}

	counts := groupByPattern(guess, candidates)
	total := float64(len(candidates))

	var m GuessMetrics
	sumSquares := 0
	for _, count := range counts {
		if count > 0 {
			p := float64(count) / total
			m.Entropy -= p * math.Log2(p)
			sumSquares += count * count
			if count > m.MaxPartition {
				m.MaxPartition = count
			}
		}
	}
	m.ExpectedRemaining = float64(sumSquares) / total
	return m
}

// ShannonEntropy computes H = -Σ p·log2(p) from a sparse pattern-count
// mapping, for callers that already hold aggregated counts. Zero-count
// entries are ignored.
func ShannonEntropy(patternCounts map[core.Pattern]int) float64 {
	total := 0
	for _, count := range patternCounts {
		total += count
	}
	if total == 0 {
		return 0.0
	}

	totalF := float64(total)
	entropy := 0.0
	for _, count := range patternCounts {
		if count > 0 {
			p := float64(count) / totalF
			entropy -= p * math.Log2(p)
		}
	}
	return entropy
}
