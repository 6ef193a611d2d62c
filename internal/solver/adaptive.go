package solver

import (
	"math/rand/v2"

	"wordlebot/internal/core"
)

// AdaptiveConfig holds the tuned tier thresholds and scoring parameters
// for the adaptive strategy. The defaults are an empirically tuned
// configuration, not derived constants; every field is overridable.
//
// Tiers are picked by cascading strict > comparisons, first match wins:
//
//	count > PureEntropyThreshold     -> TierPureEntropy
//	count > EntropyMinimaxThreshold  -> TierEntropyMinimax
//	count > HybridThreshold          -> TierHybrid
//	count > MinimaxFirstThreshold    -> TierMinimaxFirst
//	otherwise                        -> TierRandom
type AdaptiveConfig struct {
	// PureEntropyThreshold: counts above this use pure entropy (default 80).
	PureEntropyThreshold int
	// EntropyMinimaxThreshold: counts above this use the expected-value
	// tiebreaker (default 21).
	EntropyMinimaxThreshold int
	// HybridThreshold: counts above this use hybrid weighted scoring
	// (default 15).
	HybridThreshold int
	// MinimaxFirstThreshold: counts above this use minimax-first selection
	// (default 2). At or below, selection is random among candidates.
	MinimaxFirstThreshold int
	// MinimaxEpsilon is the candidate-preference margin for the
	// minimax-first tier (default 0.2).
	MinimaxEpsilon float64
	// HybridEntropyWeight is the entropy coefficient for hybrid scoring
	// (default 100).
	HybridEntropyWeight float64
	// HybridMinimaxPenalty is the max-partition penalty for hybrid scoring
	// (default 10).
	HybridMinimaxPenalty float64
}

// DefaultAdaptiveConfig returns the tuned defaults: tier bands 81+,
// 22-80, 16-21, 3-15, and 1-2 candidates.
func DefaultAdaptiveConfig() AdaptiveConfig {
	return AdaptiveConfig{
		PureEntropyThreshold:    80,
		EntropyMinimaxThreshold: 21,
		HybridThreshold:         15,
		MinimaxFirstThreshold:   2,
		MinimaxEpsilon:          0.2,
		HybridEntropyWeight:     100.0,
		HybridMinimaxPenalty:    10.0,
	}
}

// Tier identifies the selection regime the adaptive strategy applies for
// a given candidate count.
type Tier int

const (
	// TierPureEntropy maximizes Shannon entropy alone.
	TierPureEntropy Tier = iota
	// TierEntropyMinimax ranks by entropy with expected-size and minimax
	// tiebreaks.
	TierEntropyMinimax
	// TierHybrid applies the weighted entropy/minimax score.
	TierHybrid
	// TierMinimaxFirst minimizes the worst case with epsilon-greedy
	// candidate preference.
	TierMinimaxFirst
	// TierRandom picks uniformly among candidates in the pool.
	TierRandom
)

func (t Tier) String() string {
	switch t {
	case TierPureEntropy:
		return "pure-entropy"
	case TierEntropyMinimax:
		return "entropy-minimax"
	case TierHybrid:
		return "hybrid"
	case TierMinimaxFirst:
		return "minimax-first"
	default:
		return "random"
	}
}

// TierFor selects the tier for the given candidate count. Pure function:
// the adaptive strategy keeps no memory across turns.
func (c AdaptiveConfig) TierFor(numCandidates int) Tier {
	switch {
	case numCandidates > c.PureEntropyThreshold:
		return TierPureEntropy
	case numCandidates > c.EntropyMinimaxThreshold:
		return TierEntropyMinimax
	case numCandidates > c.HybridThreshold:
		return TierHybrid
	case numCandidates > c.MinimaxFirstThreshold:
		return TierMinimaxFirst
	default:
		return TierRandom
	}
}

// selectAdaptive dispatches to the tier's selection algorithm for the
// current candidate count.
func selectAdaptive(cfg AdaptiveConfig, rng *rand.Rand, pool, candidates []core.Word) *core.Word {
	if len(pool) == 0 {
		return nil
	}

	switch cfg.TierFor(len(candidates)) {
	case TierPureEntropy:
		return SelectByEntropy(pool, candidates)
	case TierEntropyMinimax:
		return SelectWithExpectedTiebreaker(pool, candidates)
	case TierHybrid:
		return SelectWithHybridScoring(pool, candidates, cfg.HybridEntropyWeight, cfg.HybridMinimaxPenalty)
	case TierMinimaxFirst:
		return SelectMinimaxFirst(pool, candidates, cfg.MinimaxEpsilon)
	default:
		// Endgame, at most MinimaxFirstThreshold candidates left. A
		// non-candidate guess cannot win this turn, so pick uniformly
		// among pool words that are still candidates.
		if len(candidates) == 0 {
			return &pool[0]
		}
		isCandidate := candidateSet(candidates)
		var live []int
		for i := range pool {
			if _, ok := isCandidate[pool[i]]; ok {
				live = append(live, i)
			}
		}
		if len(live) == 0 {
			return &pool[0]
		}
		return &pool[live[rng.IntN(len(live))]]
	}
}
