package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wordlebot/internal/core"
	"wordlebot/internal/solver"
)

// DefaultMaxTurns bounds a session; standard Wordle allows six guesses.
const DefaultMaxTurns = 6

// ErrNoGuess is returned when the strategy produces no guess, which only
// happens with an empty or exhausted guess pool.
var ErrNoGuess = errors.New("strategy returned no guess")

// Turn records one guess and the feedback it received.
type Turn struct {
	Guess     core.Word
	Feedback  core.Pattern
	Remaining int // candidates left after filtering on this feedback
}

// Result is the outcome of one played game.
type Result struct {
	ID      string
	Answer  core.Word
	Turns   []Turn
	Solved  bool
	Guesses int
}

// Session plays complete games against a known answer using one strategy.
type Session struct {
	strategy solver.Strategy
	maxTurns int
	log      *zap.Logger
}

// NewSession builds a session. A nil logger disables logging.
func NewSession(strategy solver.Strategy, maxTurns int, log *zap.Logger) *Session {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{strategy: strategy, maxTurns: maxTurns, log: log}
}

// Play runs one game to completion: select a guess, compute the feedback
// the answer would give, filter the candidates, repeat until solved or out
// of turns. Pool and candidates are read-only; filtering builds new slices.
func (s *Session) Play(answer core.Word, pool, candidates []core.Word) (Result, error) {
	result := Result{
		ID:     uuid.NewString(),
		Answer: answer,
	}

	remaining := candidates
	for turn := 0; turn < s.maxTurns; turn++ {
		guess := s.strategy.Select(pool, remaining)
		if guess == nil {
			return result, fmt.Errorf("%w: turn %d, %d candidates", ErrNoGuess, turn+1, len(remaining))
		}

		feedback := core.ComputePattern(*guess, answer)
		remaining = FilterCandidates(remaining, *guess, feedback)
		result.Turns = append(result.Turns, Turn{
			Guess:     *guess,
			Feedback:  feedback,
			Remaining: len(remaining),
		})
		result.Guesses = turn + 1

		s.log.Debug("turn played",
			zap.String("session", result.ID),
			zap.Int("turn", turn+1),
			zap.String("guess", guess.Text()),
			zap.String("feedback", feedback.String()),
			zap.Int("remaining", len(remaining)))

		if feedback == core.PatternAllCorrect {
			result.Solved = true
			s.log.Info("solved",
				zap.String("session", result.ID),
				zap.String("answer", answer.Text()),
				zap.Int("guesses", result.Guesses))
			return result, nil
		}
	}

	s.log.Info("unsolved",
		zap.String("session", result.ID),
		zap.String("answer", answer.Text()),
		zap.Int("turns", s.maxTurns))
	return result, nil
}
