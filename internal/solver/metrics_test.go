package solver

import (
	"math"
	"testing"

	"wordlebot/internal/core"
)

func words(t *testing.T, texts ...string) []core.Word {
	t.Helper()
	out := make([]core.Word, len(texts))
	for i, s := range texts {
		w, err := core.NewWord(s)
		if err != nil {
			t.Fatalf("bad test word %q: %v", s, err)
		}
		out[i] = w
	}
	return out
}

func TestCalculateEntropyEmptyCandidates(t *testing.T) {
	if e := CalculateEntropy(core.MustWord("crane"), nil); e != 0.0 {
		t.Errorf("expected 0.0 for empty candidates, got %v", e)
	}
}

func TestCalculateEntropySinglePattern(t *testing.T) {
	// All candidates all-gray against zzzzz: one bucket, zero bits.
	e := CalculateEntropy(core.MustWord("zzzzz"), words(t, "aaaaa", "bbbbb", "ccccc"))
	if math.Abs(e) > 1e-9 {
		t.Errorf("expected 0 entropy for a single pattern, got %v", e)
	}
}

func TestCalculateEntropyPerfectBinarySplit(t *testing.T) {
	e := CalculateEntropy(core.MustWord("slate"), words(t, "slate", "zzzzz"))
	if math.Abs(e-1.0) > 1e-3 {
		t.Errorf("expected 1 bit for a perfect split, got %v", e)
	}
}

func TestCalculateEntropyRealWords(t *testing.T) {
	e := CalculateEntropy(core.MustWord("crane"), words(t, "slate", "irate", "trace", "raise"))
	if e <= 1.0 || e > 2.0 {
		t.Errorf("expected entropy in (1, 2] for 4 diverse candidates, got %v", e)
	}
}

func TestCalculateMetricsEmptyCandidates(t *testing.T) {
	m := CalculateMetrics(core.MustWord("crane"), nil)
	if m != (GuessMetrics{}) {
		t.Errorf("expected zero metrics, got %+v", m)
	}
}

func TestCalculateMetricsPerfectBinarySplit(t *testing.T) {
	m := CalculateMetrics(core.MustWord("slate"), words(t, "slate", "zzzzz"))

	if math.Abs(m.Entropy-1.0) > 1e-3 {
		t.Errorf("entropy: expected 1.0, got %v", m.Entropy)
	}
	if math.Abs(m.ExpectedRemaining-1.0) > 1e-3 {
		t.Errorf("expected remaining: expected 1.0, got %v", m.ExpectedRemaining)
	}
	if m.MaxPartition != 1 {
		t.Errorf("max partition: expected 1, got %d", m.MaxPartition)
	}
}

func TestCalculateMetricsSkewedDistribution(t *testing.T) {
	// abcde splits fghij/fghik/fghil (one all-gray bucket of 3) from the
	// exact match: H = -(0.75 log 0.75 + 0.25 log 0.25) ~ 0.811.
	m := CalculateMetrics(core.MustWord("abcde"), words(t, "fghij", "fghik", "fghil", "abcde"))

	if math.Abs(m.Entropy-0.811) > 0.01 {
		t.Errorf("entropy: expected ~0.811, got %v", m.Entropy)
	}
	if math.Abs(m.ExpectedRemaining-2.5) > 1e-3 {
		t.Errorf("expected remaining: expected 2.5, got %v", m.ExpectedRemaining)
	}
	if m.MaxPartition != 3 {
		t.Errorf("max partition: expected 3, got %d", m.MaxPartition)
	}
}

func TestCalculateMetricsExpectedRemainingExactForSingletons(t *testing.T) {
	// crane splits all six candidates into singleton buckets. The expected
	// remaining count must then be exactly 1.0, not six accumulated 1/6
	// terms drifting just below it.
	m := CalculateMetrics(core.MustWord("crane"),
		words(t, "crane", "slate", "irate", "blond", "dumpy", "coral"))

	if m.MaxPartition != 1 {
		t.Fatalf("fixture drift: expected all-singleton buckets, max partition %d", m.MaxPartition)
	}
	if m.ExpectedRemaining != 1.0 {
		t.Errorf("expected remaining: expected exactly 1.0, got %v", m.ExpectedRemaining)
	}
	if math.Abs(m.Entropy-math.Log2(6)) > 1e-9 {
		t.Errorf("entropy: expected log2(6), got %v", m.Entropy)
	}
}

func TestCalculateMetricsInvariants(t *testing.T) {
	pools := [][]core.Word{
		words(t, "slate"),
		words(t, "slate", "crate", "irate", "grate"),
		words(t, "speed", "abide", "erase", "aaaaa", "zzzzz", "crane"),
	}
	guesses := words(t, "crane", "slate", "speed", "zzzzz")

	for _, candidates := range pools {
		n := float64(len(candidates))
		for _, g := range guesses {
			m := CalculateMetrics(g, candidates)

			if m.Entropy < 0 || m.Entropy > math.Log2(n)+1e-9 {
				t.Errorf("entropy %v out of [0, log2(%v)] for guess %s", m.Entropy, n, g)
			}
			if m.ExpectedRemaining < 1 || m.ExpectedRemaining > n {
				t.Errorf("expected remaining %v out of [1, %v] for guess %s", m.ExpectedRemaining, n, g)
			}
			if m.MaxPartition < 1 || m.MaxPartition > len(candidates) {
				t.Errorf("max partition %d out of [1, %d] for guess %s", m.MaxPartition, len(candidates), g)
			}

			achieved := 0
			counts := groupByPattern(g, candidates)
			for _, c := range counts {
				if c > 0 {
					achieved++
				}
			}
			lower := (len(candidates) + achieved - 1) / achieved
			if m.MaxPartition < lower {
				t.Errorf("max partition %d below ceil(%d/%d) for guess %s", m.MaxPartition, len(candidates), achieved, g)
			}
		}
	}
}

func TestShannonEntropyUniform(t *testing.T) {
	counts := map[core.Pattern]int{
		core.PatternFromValue(0): 25,
		core.PatternFromValue(1): 25,
		core.PatternFromValue(2): 25,
		core.PatternFromValue(3): 25,
	}
	if e := ShannonEntropy(counts); math.Abs(e-2.0) > 1e-3 {
		t.Errorf("expected 2 bits for uniform 4-way split, got %v", e)
	}
}

func TestShannonEntropyCertainOutcome(t *testing.T) {
	counts := map[core.Pattern]int{core.PatternFromValue(7): 10}
	if e := ShannonEntropy(counts); math.Abs(e) > 1e-9 {
		t.Errorf("expected 0 bits for a certain outcome, got %v", e)
	}
}

func TestShannonEntropyIgnoresZeroCounts(t *testing.T) {
	counts := map[core.Pattern]int{
		core.PatternFromValue(0): 0,
		core.PatternFromValue(1): 10,
		core.PatternFromValue(2): 0,
		core.PatternFromValue(3): 10,
	}
	if e := ShannonEntropy(counts); math.Abs(e-1.0) > 1e-3 {
		t.Errorf("zero buckets must not contribute: expected 1 bit, got %v", e)
	}
}

func TestShannonEntropyEmpty(t *testing.T) {
	if e := ShannonEntropy(nil); e != 0.0 {
		t.Errorf("expected 0.0 for empty counts, got %v", e)
	}
}

func TestShannonEntropySkewedBelowUniform(t *testing.T) {
	uniform := map[core.Pattern]int{
		core.PatternFromValue(0): 25,
		core.PatternFromValue(1): 25,
		core.PatternFromValue(2): 25,
		core.PatternFromValue(3): 25,
	}
	skewed := map[core.Pattern]int{
		core.PatternFromValue(0): 97,
		core.PatternFromValue(1): 1,
		core.PatternFromValue(2): 1,
		core.PatternFromValue(3): 1,
	}
	if ShannonEntropy(skewed) >= ShannonEntropy(uniform) {
		t.Error("skewed distribution must have lower entropy than uniform")
	}
}
