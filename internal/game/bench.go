package game

import (
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"wordlebot/internal/core"
	"wordlebot/internal/solver"
)

// BenchOptions configures a benchmark run.
type BenchOptions struct {
	// StrategyName selects the strategy via solver.FromName; unrecognized
	// names run Adaptive.
	StrategyName string
	// Seed makes the random paths reproducible; each game derives its own
	// sub-seed so results do not depend on scheduling.
	Seed uint64
	// MaxTurns per game; DefaultMaxTurns when zero.
	MaxTurns int
	// Workers caps parallel games; NumCPU when zero.
	Workers int
}

// BenchResult aggregates a full benchmark run.
type BenchResult struct {
	RunID      string
	Strategy   string
	Games      int
	Solved     int
	TotalTurns int
	MaxTurns   int // worst solved game
	AvgGuesses float64
	SolveRate  float64
}

// RunBenchmark plays every answer with the configured strategy and
// aggregates the results. Games fan out across workers; each slot of the
// results slice is written by exactly one goroutine and aggregation is a
// single deterministic pass afterwards, so the summary is identical for a
// fixed seed regardless of how the work is scheduled.
func RunBenchmark(opts BenchOptions, pool, answers []core.Word, log *zap.Logger) (BenchResult, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if len(answers) == 0 {
		return BenchResult{}, fmt.Errorf("benchmark needs at least one answer")
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	result := BenchResult{
		RunID:    uuid.NewString(),
		Strategy: solver.FromName(opts.StrategyName).Kind().String(),
		Games:    len(answers),
	}
	log.Info("benchmark started",
		zap.String("run", result.RunID),
		zap.String("strategy", result.Strategy),
		zap.Int("answers", len(answers)),
		zap.Int("pool", len(pool)),
		zap.Int("workers", workers))

	results := make([]Result, len(answers))

	var eg errgroup.Group
	eg.SetLimit(workers)
	for i := range answers {
		eg.Go(func() error {
			strategy := solver.FromName(opts.StrategyName).WithSeed(opts.Seed + uint64(i))
			session := NewSession(strategy, opts.MaxTurns, zap.NewNop())
			r, err := session.Play(answers[i], pool, answers)
			if err != nil {
				return fmt.Errorf("answer %s: %w", answers[i], err)
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return BenchResult{}, err
	}

	for _, r := range results {
		result.TotalTurns += r.Guesses
		if r.Solved {
			result.Solved++
			if r.Guesses > result.MaxTurns {
				result.MaxTurns = r.Guesses
			}
		}
	}
	result.AvgGuesses = float64(result.TotalTurns) / float64(result.Games)
	result.SolveRate = float64(result.Solved) / float64(result.Games)

	log.Info("benchmark finished",
		zap.String("run", result.RunID),
		zap.Int("solved", result.Solved),
		zap.Float64("avg_guesses", result.AvgGuesses),
		zap.Float64("solve_rate", result.SolveRate))
	return result, nil
}
