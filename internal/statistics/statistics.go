package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/warsim/internal/game"
)

// GameOutcome represents the result of a single simulated game
type GameOutcome struct {
	Result game.Result
	Turns  uint64
	Seed   int64 // RNG seed for this game (for replay)
}

// Statistics aggregates the outcomes of many simulated games. Counters track
// who wins; the moment sums and the Values slice track game length in turns.
type Statistics struct {
	Games       int
	Player1Wins int
	Player2Wins int
	Draws       int

	SumTurns  float64
	SumTurns2 float64   // Sum of squares for variance calculation
	Values    []float64 // All turn counts, for median/percentile calculation

	MaxTurns     uint64 // Longest game observed
	MaxTurnsSeed int64  // Seed of the longest game, for replay
}

// Add incorporates a new game outcome into the statistics
func (s *Statistics) Add(outcome GameOutcome) {
	s.Games++
	switch outcome.Result {
	case game.Player1Win:
		s.Player1Wins++
	case game.Player2Win:
		s.Player2Wins++
	case game.Draw:
		s.Draws++
	}

	turns := float64(outcome.Turns)
	s.SumTurns += turns
	s.SumTurns2 += turns * turns
	s.Values = append(s.Values, turns)

	if outcome.Turns > s.MaxTurns {
		s.MaxTurns = outcome.Turns
		s.MaxTurnsSeed = outcome.Seed
	}
}

// Merge folds another statistics value into this one. Used to combine the
// per-worker aggregates of a parallel simulation.
func (s *Statistics) Merge(other *Statistics) {
	s.Games += other.Games
	s.Player1Wins += other.Player1Wins
	s.Player2Wins += other.Player2Wins
	s.Draws += other.Draws

	s.SumTurns += other.SumTurns
	s.SumTurns2 += other.SumTurns2
	s.Values = append(s.Values, other.Values...)

	if other.MaxTurns > s.MaxTurns {
		s.MaxTurns = other.MaxTurns
		s.MaxTurnsSeed = other.MaxTurnsSeed
	}
}

// WinRate returns the fraction of games won by p.
func (s *Statistics) WinRate(p game.Player) float64 {
	if s.Games == 0 {
		return 0
	}
	switch p {
	case game.Player1:
		return float64(s.Player1Wins) / float64(s.Games)
	case game.Player2:
		return float64(s.Player2Wins) / float64(s.Games)
	default:
		return 0
	}
}

// DrawRate returns the fraction of games that ended in a draw.
func (s *Statistics) DrawRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Draws) / float64(s.Games)
}

// Mean returns the arithmetic mean game length in turns
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumTurns / float64(s.Games)
}

// Variance returns the sample variance of game length
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumTurns2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of game length
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	se := s.StdError()
	margin := 1.96 * se // 95% confidence
	return mean - margin, mean + margin
}

// Median returns the median game length
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the game length at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate performs consistency checks on the aggregated data
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}

	if total := s.Player1Wins + s.Player2Wins + s.Draws; total != s.Games {
		return fmt.Errorf("outcome counts total (%d) does not match games count (%d)",
			total, s.Games)
	}

	if len(s.Values) != s.Games {
		return fmt.Errorf("values array length (%d) does not match games count (%d)",
			len(s.Values), s.Games)
	}

	return nil
}
