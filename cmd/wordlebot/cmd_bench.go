package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordlebot/internal/game"
)

var (
	benchSeed    uint64
	benchWorkers int
	benchGames   int
)

// benchCmd plays the strategy against every answer and reports aggregate
// solve rate and guess counts.
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark a strategy against the answer list",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		pool, answers, err := loadWordLists(cfg)
		if err != nil {
			return err
		}
		if benchGames > 0 && benchGames < len(answers) {
			answers = answers[:benchGames]
		}

		result, err := game.RunBenchmark(game.BenchOptions{
			StrategyName: cfg.Strategy,
			Seed:         benchSeed,
			Workers:      benchWorkers,
		}, pool, answers, logger)
		if err != nil {
			return err
		}

		fmt.Printf("run:         %s\n", result.RunID)
		fmt.Printf("strategy:    %s\n", result.Strategy)
		fmt.Printf("games:       %d\n", result.Games)
		fmt.Printf("solved:      %d (%.1f%%)\n", result.Solved, result.SolveRate*100)
		fmt.Printf("avg guesses: %.3f\n", result.AvgGuesses)
		fmt.Printf("worst solve: %d\n", result.MaxTurns)
		return nil
	},
}

func init() {
	benchCmd.Flags().Uint64Var(&benchSeed, "seed", 0, "base seed for reproducible runs")
	benchCmd.Flags().IntVar(&benchWorkers, "workers", 0, "parallel games (0 = NumCPU)")
	benchCmd.Flags().IntVar(&benchGames, "games", 0, "limit the number of answers played (0 = all)")
}
