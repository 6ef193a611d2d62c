package solver

import (
	"math/rand/v2"

	"wordlebot/internal/core"
)

// Kind identifies a strategy variant. The set is closed: Select switches
// over it exhaustively, so adding a variant is a compile-checked change.
type Kind int

const (
	// KindAdaptive picks a selection algorithm per turn from the
	// candidate count (default).
	KindAdaptive Kind = iota
	// KindEntropy always maximizes Shannon entropy.
	KindEntropy
	// KindMinimax always minimizes the worst-case partition.
	KindMinimax
	// KindHybrid uses entropy until few candidates remain, then minimax.
	KindHybrid
	// KindRandom picks a random remaining candidate.
	KindRandom
)

func (k Kind) String() string {
	switch k {
	case KindAdaptive:
		return "adaptive"
	case KindEntropy:
		return "entropy"
	case KindMinimax:
		return "minimax"
	case KindHybrid:
		return "hybrid"
	default:
		return "random"
	}
}

// DefaultHybridMinimaxThreshold is the candidate count at or below which
// the fixed hybrid strategy switches from entropy to minimax selection.
const DefaultHybridMinimaxThreshold = 5

// Strategy is the uniform selection surface over all variants. Construct
// via the New* constructors or FromName; the zero value is a usable
// adaptive strategy with default configuration once normalized through
// Select.
type Strategy struct {
	kind             Kind
	adaptive         AdaptiveConfig
	minimaxThreshold int
	rng              *rand.Rand
}

// NewAdaptive returns the adaptive strategy with the given tier
// configuration.
func NewAdaptive(cfg AdaptiveConfig) Strategy {
	return Strategy{kind: KindAdaptive, adaptive: cfg, rng: newRNG()}
}

// NewEntropy returns the pure entropy-maximization strategy.
func NewEntropy() Strategy {
	return Strategy{kind: KindEntropy}
}

// NewMinimax returns the pure minimax strategy.
func NewMinimax() Strategy {
	return Strategy{kind: KindMinimax}
}

// NewHybrid returns the fixed-threshold hybrid strategy: entropy selection
// while more than minimaxThreshold candidates remain, minimax at or below.
// The threshold is taken literally: 0 switches to minimax only when the
// candidate list is empty, so entropy selection runs on every live turn.
func NewHybrid(minimaxThreshold int) Strategy {
	return Strategy{kind: KindHybrid, minimaxThreshold: minimaxThreshold}
}

// NewRandom returns the random-pick strategy.
func NewRandom() Strategy {
	return Strategy{kind: KindRandom, rng: newRNG()}
}

func newRNG() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// FromName maps a configuration string to a strategy variant.
// Recognized: "adaptive", "entropy", "pure-entropy", "minimax", "hybrid",
// "random". Anything else gets the adaptive default; unknown names never
// fail.
func FromName(name string) Strategy {
	switch name {
	case "entropy", "pure-entropy":
		return NewEntropy()
	case "minimax":
		return NewMinimax()
	case "hybrid":
		return NewHybrid(DefaultHybridMinimaxThreshold)
	case "random":
		return NewRandom()
	default:
		return NewAdaptive(DefaultAdaptiveConfig())
	}
}

// Kind reports the strategy variant.
func (s Strategy) Kind() Kind {
	return s.kind
}

// WithSeed returns a copy of the strategy whose random paths draw from a
// deterministic source. Benchmarks use this for reproducible runs.
func (s Strategy) WithSeed(seed uint64) Strategy {
	s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return s
}

// Select returns a pointer into pool at the chosen guess, or nil when the
// pool is empty. The Random variant may additionally return nil when no
// candidate word appears in the pool at all; see selectRandom. Pool and
// candidates are borrowed read-only for the duration of the call.
func (s Strategy) Select(pool, candidates []core.Word) *core.Word {
	if len(pool) == 0 {
		return nil
	}

	switch s.kind {
	case KindAdaptive:
		cfg := s.adaptive
		if cfg == (AdaptiveConfig{}) {
			cfg = DefaultAdaptiveConfig()
		}
		return selectAdaptive(cfg, s.ensureRNG(), pool, candidates)

	case KindEntropy:
		return SelectByEntropy(pool, candidates)

	case KindMinimax:
		return SelectByMinimax(pool, candidates)

	case KindHybrid:
		if len(candidates) <= s.minimaxThreshold {
			return SelectByMinimax(pool, candidates)
		}
		return SelectByEntropy(pool, candidates)

	default: // KindRandom
		return s.selectRandom(pool, candidates)
	}
}

// selectRandom prefers a uniformly random candidate that appears in the
// pool. With no candidate in the pool it falls back to the pool occurrence
// of the first candidate; if that is absent too the result is nil for this
// call.
func (s Strategy) selectRandom(pool, candidates []core.Word) *core.Word {
	poolIndex := make(map[core.Word]int, len(pool))
	for i := range pool {
		if _, seen := poolIndex[pool[i]]; !seen {
			poolIndex[pool[i]] = i
		}
	}

	var inPool []int
	for _, c := range candidates {
		if i, ok := poolIndex[c]; ok {
			inPool = append(inPool, i)
		}
	}
	if len(inPool) > 0 {
		return &pool[inPool[s.ensureRNG().IntN(len(inPool))]]
	}

	if len(candidates) > 0 {
		if i, ok := poolIndex[candidates[0]]; ok {
			return &pool[i]
		}
	}
	return nil
}

func (s Strategy) ensureRNG() *rand.Rand {
	if s.rng == nil {
		return newRNG()
	}
	return s.rng
}
