package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordlebot/internal/core"
	"wordlebot/internal/game"
)

var (
	playAnswer string
	playTurns  int
	playSeed   uint64
)

// playCmd self-plays a full game against a known answer and shows every
// turn. Useful for eyeballing strategy behavior on a specific word.
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a full game against a known answer",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		pool, answers, err := loadWordLists(cfg)
		if err != nil {
			return err
		}

		answer, err := core.NewWord(playAnswer)
		if err != nil {
			return fmt.Errorf("invalid answer: %w", err)
		}

		strategy := buildStrategy(cfg)
		if cmd.Flags().Changed("seed") {
			strategy = strategy.WithSeed(playSeed)
		}

		session := game.NewSession(strategy, playTurns, logger)
		result, err := session.Play(answer, pool, answers)
		if err != nil {
			return err
		}

		for i, turn := range result.Turns {
			fmt.Printf("%d: %s  %s\n", i+1,
				renderGuess(turn.Guess, turn.Feedback),
				dimStyle.Render(fmt.Sprintf("%d left", turn.Remaining)))
		}
		if result.Solved {
			fmt.Printf("Solved %q in %d guesses.\n", answer.Text(), result.Guesses)
		} else {
			fmt.Printf("Failed to solve %q in %d guesses.\n", answer.Text(), result.Guesses)
		}
		return nil
	},
}

func init() {
	playCmd.Flags().StringVar(&playAnswer, "answer", "", "the answer word to play against")
	playCmd.Flags().IntVar(&playTurns, "turns", game.DefaultMaxTurns, "maximum number of guesses")
	playCmd.Flags().Uint64Var(&playSeed, "seed", 0, "seed for random strategy paths")
	_ = playCmd.MarkFlagRequired("answer")
}
