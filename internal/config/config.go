// Package config holds all wordlebot configuration: strategy selection,
// tuned solver parameters, word-list locations, and logging. One yaml
// file, environment overrides on top, defaults when neither is present.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"wordlebot/internal/solver"
)

// Config holds all wordlebot configuration.
type Config struct {
	// Strategy names the selection strategy: adaptive, entropy,
	// pure-entropy, minimax, hybrid, or random. Unrecognized names run
	// adaptive.
	Strategy string `yaml:"strategy"`

	// Solver tunes the adaptive tiers and hybrid scoring.
	Solver SolverConfig `yaml:"solver"`

	// WordLists points at the answer and guess-pool files. Empty paths
	// fall back to the embedded lists.
	WordLists WordListsConfig `yaml:"word_lists"`

	// Logging controls log verbosity.
	Logging LoggingConfig `yaml:"logging"`
}

// SolverConfig tunes the adaptive tiering controller and the hybrid
// scorer. These are empirically tuned parameters, not derived constants;
// every field is overridable.
type SolverConfig struct {
	PureEntropyThreshold    int     `yaml:"pure_entropy_threshold"`
	EntropyMinimaxThreshold int     `yaml:"entropy_minimax_threshold"`
	HybridThreshold         int     `yaml:"hybrid_threshold"`
	MinimaxFirstThreshold   int     `yaml:"minimax_first_threshold"`
	MinimaxEpsilon          float64 `yaml:"minimax_epsilon"`
	HybridEntropyWeight     float64 `yaml:"hybrid_entropy_weight"`
	HybridMinimaxPenalty    float64 `yaml:"hybrid_minimax_penalty"`

	// HybridMinimaxThreshold is the switch point for the fixed hybrid
	// strategy (not the adaptive hybrid tier).
	HybridMinimaxThreshold int `yaml:"hybrid_minimax_threshold"`
}

// WordListsConfig locates the word lists on disk.
type WordListsConfig struct {
	AnswersPath string `yaml:"answers_path"`
	AllowedPath string `yaml:"allowed_path"`
}

// LoggingConfig controls logging.
type LoggingConfig struct {
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	d := solver.DefaultAdaptiveConfig()
	return Config{
		Strategy: "adaptive",
		Solver: SolverConfig{
			PureEntropyThreshold:    d.PureEntropyThreshold,
			EntropyMinimaxThreshold: d.EntropyMinimaxThreshold,
			HybridThreshold:         d.HybridThreshold,
			MinimaxFirstThreshold:   d.MinimaxFirstThreshold,
			MinimaxEpsilon:          d.MinimaxEpsilon,
			HybridEntropyWeight:     d.HybridEntropyWeight,
			HybridMinimaxPenalty:    d.HybridMinimaxPenalty,
			HybridMinimaxThreshold:  solver.DefaultHybridMinimaxThreshold,
		},
	}
}

// Load reads a yaml config file and applies environment overrides.
// A missing file yields the defaults (still with overrides), not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the config as yaml, creating parent directories as needed.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// applyEnvOverrides lets the environment win over the file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("WORDLEBOT_STRATEGY"); v != "" {
		c.Strategy = v
	}
	if v := os.Getenv("WORDLEBOT_ANSWERS"); v != "" {
		c.WordLists.AnswersPath = v
	}
	if v := os.Getenv("WORDLEBOT_ALLOWED"); v != "" {
		c.WordLists.AllowedPath = v
	}
}

// Validate checks numeric sanity. Strategy names are never validated:
// unknown names intentionally fall back to adaptive.
func (c Config) Validate() error {
	s := c.Solver
	if s.MinimaxEpsilon < 0 {
		return fmt.Errorf("minimax_epsilon must be non-negative, got %v", s.MinimaxEpsilon)
	}
	if s.HybridEntropyWeight < 0 || s.HybridMinimaxPenalty < 0 {
		return fmt.Errorf("hybrid weights must be non-negative")
	}
	for name, v := range map[string]int{
		"pure_entropy_threshold":    s.PureEntropyThreshold,
		"entropy_minimax_threshold": s.EntropyMinimaxThreshold,
		"hybrid_threshold":          s.HybridThreshold,
		"minimax_first_threshold":   s.MinimaxFirstThreshold,
	} {
		if v < 0 {
			return fmt.Errorf("%s must be non-negative", name)
		}
	}
	if !(s.PureEntropyThreshold >= s.EntropyMinimaxThreshold &&
		s.EntropyMinimaxThreshold >= s.HybridThreshold &&
		s.HybridThreshold >= s.MinimaxFirstThreshold) {
		return fmt.Errorf("tier thresholds must be non-increasing: %d >= %d >= %d >= %d",
			s.PureEntropyThreshold, s.EntropyMinimaxThreshold, s.HybridThreshold, s.MinimaxFirstThreshold)
	}
	return nil
}

// AdaptiveConfig converts the solver section into the tiering
// controller's configuration.
func (c Config) AdaptiveConfig() solver.AdaptiveConfig {
	return solver.AdaptiveConfig{
		PureEntropyThreshold:    c.Solver.PureEntropyThreshold,
		EntropyMinimaxThreshold: c.Solver.EntropyMinimaxThreshold,
		HybridThreshold:         c.Solver.HybridThreshold,
		MinimaxFirstThreshold:   c.Solver.MinimaxFirstThreshold,
		MinimaxEpsilon:          c.Solver.MinimaxEpsilon,
		HybridEntropyWeight:     c.Solver.HybridEntropyWeight,
		HybridMinimaxPenalty:    c.Solver.HybridMinimaxPenalty,
	}
}

// BuildStrategy assembles the configured strategy: named variants with
// their configured parameters, adaptive (with this config's tiers) for
// anything else.
func (c Config) BuildStrategy() solver.Strategy {
	switch c.Strategy {
	case "entropy", "pure-entropy", "minimax", "random":
		return solver.FromName(c.Strategy)
	case "hybrid":
		// An absent yaml field decodes to 0, so non-positive means unset
		// here. A literal zero threshold is only expressible through
		// solver.NewHybrid directly.
		threshold := c.Solver.HybridMinimaxThreshold
		if threshold <= 0 {
			threshold = solver.DefaultHybridMinimaxThreshold
		}
		return solver.NewHybrid(threshold)
	default:
		return solver.NewAdaptive(c.AdaptiveConfig())
	}
}
