package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wordlebot/internal/config"
	"wordlebot/internal/core"
	"wordlebot/internal/logging"
	"wordlebot/internal/solver"
	"wordlebot/internal/wordlists"
)

var (
	// Global flags
	configPath   string
	debug        bool
	strategyName string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wordlebot",
	Short: "wordlebot - an information-theoretic Wordle solver",
	Long: `wordlebot suggests Wordle guesses by measuring how much each legal
guess is expected to reveal about the remaining answers.

It scores guesses by Shannon entropy over feedback patterns, worst-case
partition size, or a tunable blend of both, and by default adapts the
scoring to how many candidates are still alive.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(debug)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// loadConfig reads the config file and folds the --strategy flag on top.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if strategyName != "" {
		cfg.Strategy = strategyName
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadWordLists resolves the configured word lists, falling back to the
// embedded ones when no paths are configured.
func loadWordLists(cfg config.Config) (pool, answers []core.Word, err error) {
	answers = wordlists.Answers()
	pool = wordlists.Allowed()

	if p := cfg.WordLists.AnswersPath; p != "" {
		answers, err = wordlists.LoadFile(p)
		if err != nil {
			return nil, nil, fmt.Errorf("load answers: %w", err)
		}
	}
	if p := cfg.WordLists.AllowedPath; p != "" {
		pool, err = wordlists.LoadFile(p)
		if err != nil {
			return nil, nil, fmt.Errorf("load allowed guesses: %w", err)
		}
	}

	logger.Debug("word lists loaded",
		zap.Int("answers", len(answers)),
		zap.Int("pool", len(pool)))
	return pool, answers, nil
}

func buildStrategy(cfg config.Config) solver.Strategy {
	s := cfg.BuildStrategy()
	logger.Debug("strategy built", zap.String("kind", s.Kind().String()))
	return s
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "wordlebot.yaml", "path to the config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&strategyName, "strategy", "", "override the configured strategy (adaptive, entropy, minimax, hybrid, random)")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(benchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
