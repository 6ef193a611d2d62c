package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wordlebot/internal/core"
	"wordlebot/internal/game"
	"wordlebot/internal/solver"
)

// solveCmd assists with a live game: suggest a guess, read the feedback
// the game gave, narrow the candidates, repeat.
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Interactively solve a Wordle puzzle",
	Long: `Suggests a guess each turn and reads back the feedback you received.

Enter feedback as five letters: G for green (correct position), Y for
yellow (present elsewhere), B for black/gray (absent). To play a word
other than the suggestion, type it before the feedback, e.g. "crane GYBBB".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		pool, answers, err := loadWordLists(cfg)
		if err != nil {
			return err
		}
		strategy := buildStrategy(cfg)

		candidates := answers
		scanner := bufio.NewScanner(os.Stdin)

		for turn := 1; ; turn++ {
			guess := strategy.Select(pool, candidates)
			if guess == nil {
				return fmt.Errorf("no guess available: %d candidates remain", len(candidates))
			}

			m := solver.CalculateMetrics(*guess, candidates)
			fmt.Printf("\nTurn %d  (%d candidates)\n", turn, len(candidates))
			fmt.Printf("Suggestion: %s  %s\n",
				suggestStyle.Render(strings.ToUpper(guess.Text())),
				dimStyle.Render(fmt.Sprintf("entropy %.2f bits, worst case %d, expected %.1f",
					m.Entropy, m.MaxPartition, m.ExpectedRemaining)))

			played, feedback, err := readFeedback(scanner, *guess)
			if err != nil {
				return err
			}

			fmt.Println(renderGuess(played, feedback))
			if feedback == core.PatternAllCorrect {
				fmt.Printf("Solved in %d!\n", turn)
				return nil
			}

			candidates = game.FilterCandidates(candidates, played, feedback)
			logger.Debug("candidates narrowed",
				zap.Int("turn", turn),
				zap.String("guess", played.Text()),
				zap.String("feedback", feedback.String()),
				zap.Int("remaining", len(candidates)))

			switch len(candidates) {
			case 0:
				return fmt.Errorf("no candidate matches that feedback; check the entered patterns")
			case 1:
				fmt.Printf("Only one candidate left: %s\n",
					suggestStyle.Render(strings.ToUpper(candidates[0].Text())))
			}
		}
	},
}

// readFeedback reads one line of feedback. A bare pattern applies to the
// suggestion; "word pattern" records a different played word.
func readFeedback(scanner *bufio.Scanner, suggestion core.Word) (core.Word, core.Pattern, error) {
	for {
		fmt.Print("Feedback (G/Y/B, or 'word GYBBB'): ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return core.Word{}, 0, fmt.Errorf("read feedback: %w", err)
			}
			return core.Word{}, 0, fmt.Errorf("input closed")
		}

		fields := strings.Fields(scanner.Text())
		switch len(fields) {
		case 1:
			p, err := core.ParsePattern(fields[0])
			if err != nil {
				fmt.Println(err)
				continue
			}
			return suggestion, p, nil
		case 2:
			w, err := core.NewWord(fields[0])
			if err != nil {
				fmt.Println(err)
				continue
			}
			p, err := core.ParsePattern(fields[1])
			if err != nil {
				fmt.Println(err)
				continue
			}
			return w, p, nil
		default:
			fmt.Println("enter a pattern like GYBBB, optionally preceded by the word you played")
		}
	}
}
