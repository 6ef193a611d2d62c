package solver

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"wordlebot/internal/core"
)

// allMetrics evaluates every pool word against candidates in parallel.
// Each goroutine writes only its own slot, so no synchronization beyond
// the final Wait is needed, and selection order never depends on
// scheduling: callers rank the pre-sized result slice deterministically.
func allMetrics(pool, candidates []core.Word) []GuessMetrics {
	metrics := make([]GuessMetrics, len(pool))

	var eg errgroup.Group
	eg.SetLimit(runtime.NumCPU())
	for i := range pool {
		eg.Go(func() error {
			metrics[i] = CalculateMetrics(pool[i], candidates)
			return nil
		})
	}
	_ = eg.Wait() // workers never fail

	return metrics
}

// allEntropies is the entropy-only variant of allMetrics, for strategies
// that never look at partition sizes.
func allEntropies(pool, candidates []core.Word) []float64 {
	entropies := make([]float64, len(pool))

	var eg errgroup.Group
	eg.SetLimit(runtime.NumCPU())
	for i := range pool {
		eg.Go(func() error {
			entropies[i] = CalculateEntropy(pool[i], candidates)
			return nil
		})
	}
	_ = eg.Wait()

	return entropies
}

// candidateSet builds a membership set over candidates. Word is a plain
// comparable value, so map lookup replaces the quadratic text scan.
func candidateSet(candidates []core.Word) map[core.Word]struct{} {
	set := make(map[core.Word]struct{}, len(candidates))
	for _, c := range candidates {
		set[c] = struct{}{}
	}
	return set
}

// SelectByEntropy returns the pool word with the highest entropy over
// candidates, or nil when the pool is empty. Ties go to the first maximum.
//
// With at most one candidate left every guess scores zero bits, so the
// first pool word wins regardless of candidacy; entropy selection alone
// does not guarantee the remaining candidate is ever guessed. The
// adaptive strategy's endgame tier covers that case.
func SelectByEntropy(pool, candidates []core.Word) *core.Word {
	if len(pool) == 0 {
		return nil
	}

	entropies := allEntropies(pool, candidates)
	best := 0
	for i := 1; i < len(entropies); i++ {
		if entropies[i] > entropies[best] {
			best = i
		}
	}
	return &pool[best]
}

// SelectByMinimax returns the pool word with the smallest worst-case
// partition, or nil when the pool is empty. Ties go to the first minimum.
func SelectByMinimax(pool, candidates []core.Word) *core.Word {
	if len(pool) == 0 {
		return nil
	}

	metrics := allMetrics(pool, candidates)
	best := 0
	for i := 1; i < len(metrics); i++ {
		if metrics[i].MaxPartition < metrics[best].MaxPartition {
			best = i
		}
	}
	return &pool[best]
}

// SelectWithExpectedTiebreaker ranks by entropy (descending), then
// expected remaining (ascending), then max partition (ascending).
// Returns nil when the pool is empty.
func SelectWithExpectedTiebreaker(pool, candidates []core.Word) *core.Word {
	if len(pool) == 0 {
		return nil
	}

	metrics := allMetrics(pool, candidates)
	best := 0
	for i := 1; i < len(metrics); i++ {
		if betterByExpectedTiebreak(metrics[i], metrics[best]) {
			best = i
		}
	}
	return &pool[best]
}

func betterByExpectedTiebreak(a, b GuessMetrics) bool {
	if a.Entropy != b.Entropy {
		return a.Entropy > b.Entropy
	}
	if a.ExpectedRemaining != b.ExpectedRemaining {
		return a.ExpectedRemaining < b.ExpectedRemaining
	}
	return a.MaxPartition < b.MaxPartition
}

// SelectWithHybridScoring ranks by score = entropy·entropyWeight −
// maxPartition·minimaxPenalty, tiebreaking on expected remaining
// (ascending). Returns nil when the pool is empty.
//
// Scores are compared in full float64 precision. The historical
// implementation narrowed the weighted score to an integer before
// comparing, which collapsed near ties at scale; the tuned default
// weights (100, 10) behave identically under both comparisons for
// realistic metric ranges, so the precise comparison is kept.
func SelectWithHybridScoring(pool, candidates []core.Word, entropyWeight, minimaxPenalty float64) *core.Word {
	if len(pool) == 0 {
		return nil
	}

	metrics := allMetrics(pool, candidates)
	score := func(m GuessMetrics) float64 {
		return m.Entropy*entropyWeight - float64(m.MaxPartition)*minimaxPenalty
	}

	best := 0
	bestScore := score(metrics[0])
	for i := 1; i < len(metrics); i++ {
		s := score(metrics[i])
		if s > bestScore || (s == bestScore && metrics[i].ExpectedRemaining < metrics[best].ExpectedRemaining) {
			best = i
			bestScore = s
		}
	}
	return &pool[best]
}

// SelectMinimaxFirst filters the pool to the guesses achieving the global
// minimum max partition, then picks by entropy within that subset with an
// epsilon-greedy candidate preference: if any subset guess is itself a
// remaining candidate and its entropy deficit from the subset maximum is
// strictly below epsilon, the highest-entropy such candidate wins.
// Guessing a live candidate can end the game this turn; a purely
// discriminating guess cannot, however well it splits the field.
//
// Returns nil when the pool is empty.
func SelectMinimaxFirst(pool, candidates []core.Word, epsilon float64) *core.Word {
	if len(pool) == 0 {
		return nil
	}

	metrics := allMetrics(pool, candidates)
	isCandidate := candidateSet(candidates)

	minMaxPartition := metrics[0].MaxPartition
	for _, m := range metrics[1:] {
		if m.MaxPartition < minMaxPartition {
			minMaxPartition = m.MaxPartition
		}
	}

	subset := make([]int, 0, len(pool))
	maxEntropy := 0.0
	for i, m := range metrics {
		if m.MaxPartition == minMaxPartition {
			subset = append(subset, i)
			if m.Entropy > maxEntropy {
				maxEntropy = m.Entropy
			}
		}
	}

	// Candidate preference: strict <, and the deficit is a subtraction of
	// entropies. A candidate sitting exactly epsilon below the maximum is
	// excluded.
	bestCandidate := -1
	for _, i := range subset {
		if _, ok := isCandidate[pool[i]]; !ok {
			continue
		}
		if maxEntropy-metrics[i].Entropy < epsilon {
			if bestCandidate < 0 || metrics[i].Entropy > metrics[bestCandidate].Entropy {
				bestCandidate = i
			}
		}
	}
	if bestCandidate >= 0 {
		return &pool[bestCandidate]
	}

	best := subset[0]
	for _, i := range subset[1:] {
		if metrics[i].Entropy > metrics[best].Entropy {
			best = i
		}
	}
	return &pool[best]
}

// SelectWithCandidatePreference filters the pool to guesses within epsilon
// of the maximum entropy, then prefers an actual candidate with the
// smallest max partition, falling back to the smallest max partition in
// the filtered set when none of it is a candidate.
//
// Note the gate order is the inverse of SelectMinimaxFirst: here entropy
// filters before minimax is ever consulted. The two orders can disagree
// and both are preserved as distinct behaviors.
//
// Returns nil when the pool is empty.
func SelectWithCandidatePreference(pool, candidates []core.Word, epsilon float64) *core.Word {
	if len(pool) == 0 {
		return nil
	}

	entropies := allEntropies(pool, candidates)
	isCandidate := candidateSet(candidates)

	maxEntropy := entropies[0]
	for _, e := range entropies[1:] {
		if e > maxEntropy {
			maxEntropy = e
		}
	}

	bestCandidate, bestAny := -1, -1
	candPartition, anyPartition := 0, 0
	for i, e := range entropies {
		if maxEntropy-e >= epsilon {
			continue
		}
		m := CalculateMetrics(pool[i], candidates)
		if bestAny < 0 || m.MaxPartition < anyPartition {
			bestAny = i
			anyPartition = m.MaxPartition
		}
		if _, ok := isCandidate[pool[i]]; ok {
			if bestCandidate < 0 || m.MaxPartition < candPartition {
				bestCandidate = i
				candPartition = m.MaxPartition
			}
		}
	}

	if bestCandidate >= 0 {
		return &pool[bestCandidate]
	}
	if bestAny >= 0 {
		return &pool[bestAny]
	}
	// Epsilon <= 0 admits nothing; fall back to the entropy maximum.
	best := 0
	for i := 1; i < len(entropies); i++ {
		if entropies[i] > entropies[best] {
			best = i
		}
	}
	return &pool[best]
}
