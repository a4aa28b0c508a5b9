package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/warsim/internal/deck"
	"github.com/lox/warsim/internal/game"
	"github.com/lox/warsim/internal/randutil"
	"github.com/lox/warsim/internal/statistics"
)

// maxWorkers caps the worker pool; the per-game work is small enough that
// more workers stop paying off.
const maxWorkers = 8

// Config holds configuration for running a batch of games.
type Config struct {
	Games    int
	Params   game.Params
	DeckSize int // 0 plays the standard 52-card deck
	Seed     int64
	Workers  int // 0 sizes the pool from GOMAXPROCS, capped at maxWorkers
	Logger   *log.Logger
	Clock    quartz.Clock // nil uses the real clock
}

// Simulator plays batches of independent games and aggregates their outcomes.
// Every game gets its own seed (derived deterministically from the master
// seed) and its own rng, so a batch is reproducible regardless of how it is
// scheduled across workers.
type Simulator struct {
	config Config
	logger *log.Logger
	clock  quartz.Clock
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := config.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Simulator{config: config, logger: logger, clock: clock}
}

// Run executes the batch and returns the aggregated statistics along with the
// wall-clock time spent simulating.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, time.Duration, error) {
	if s.config.Games <= 0 {
		return nil, 0, fmt.Errorf("games must be positive, got %d", s.config.Games)
	}
	if s.config.DeckSize != 0 && s.config.DeckSize < 2 {
		return nil, 0, fmt.Errorf("deck size must be at least 2, got %d", s.config.DeckSize)
	}

	workers := s.config.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
		if workers > maxWorkers {
			workers = maxWorkers
		}
	}
	if workers > s.config.Games {
		workers = s.config.Games
	}

	seeds := randutil.Seeds(s.config.Seed, s.config.Games)

	s.logger.Debug("starting batch",
		"games", s.config.Games, "workers", workers,
		"k", s.config.Params.K, "honor_threshold", s.config.Params.HonorThreshold,
		"deck_size", s.deckSize(), "seed", s.config.Seed)

	start := s.clock.Now()

	// Shard the seed list across the workers; each worker aggregates locally
	// and the shards are merged once everything has finished.
	g, ctx := errgroup.WithContext(ctx)
	results := make(chan *statistics.Statistics, workers)

	per := s.config.Games / workers
	rem := s.config.Games % workers
	next := 0
	for w := 0; w < workers; w++ {
		count := per
		if w < rem {
			count++
		}
		shard := seeds[next : next+count]
		next += count

		g.Go(func() error {
			local := &statistics.Statistics{}
			for _, seed := range shard {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				local.Add(s.playGame(seed))
			}
			select {
			case results <- local:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	go func() {
		g.Wait()
		close(results)
	}()

	stats := &statistics.Statistics{}
	for local := range results {
		stats.Merge(local)
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	elapsed := s.clock.Since(start)

	if err := stats.Validate(); err != nil {
		return nil, 0, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.logger.Debug("batch finished",
		"games", stats.Games, "elapsed", elapsed,
		"player1_wins", stats.Player1Wins, "player2_wins", stats.Player2Wins,
		"draws", stats.Draws)

	return stats, elapsed, nil
}

func (s *Simulator) deckSize() int {
	if s.config.DeckSize == 0 {
		return deck.StandardSize
	}
	return s.config.DeckSize
}

// playGame simulates one game from a freshly composed deck split evenly
// between the two players.
func (s *Simulator) playGame(seed int64) statistics.GameOutcome {
	rng := randutil.New(seed)

	d1, d2 := deck.Split(deck.Sized(s.deckSize()), rng)
	g := game.New(s.config.Params, rng, deck.New(d1), deck.New(d2))
	result, turns := g.Play()

	return statistics.GameOutcome{Result: result, Turns: turns, Seed: seed}
}
