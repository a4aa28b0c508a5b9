package main

import (
	"context"
	"fmt"

	"github.com/lox/warsim/internal/deck"
	"github.com/lox/warsim/internal/game"
	"github.com/lox/warsim/internal/randutil"
	"github.com/lox/warsim/internal/simulator"
)

type SimulateCmd struct {
	Games          int   `default:"10000" help:"Number of games to simulate"`
	K              int   `default:"3" help:"Face-down cards wagered per war"`
	HonorThreshold uint8 `default:"0" help:"Margin at or under which a losing card is removed from the game"`
	DeckSize       int   `default:"52" help:"Cards dealt out between the players"`
	Seed           int64 `default:"0" help:"Master RNG seed (0 picks one from the clock)"`
	Workers        int   `default:"0" help:"Worker goroutines (0 sizes the pool from available CPUs)"`
	Verbose        bool  `help:"Verbose logging"`
}

func (c *SimulateCmd) Run() error {
	seed := randutil.PickSeed(c.Seed)
	logger := setupLogger(c.Verbose)

	sim := simulator.New(simulator.Config{
		Games:    c.Games,
		Params:   game.Params{K: c.K, HonorThreshold: deck.Rank(c.HonorThreshold)},
		DeckSize: c.DeckSize,
		Seed:     seed,
		Workers:  c.Workers,
		Logger:   logger,
	})

	stats, elapsed, err := sim.Run(context.Background())
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	fmt.Println(renderSummary(fmt.Sprintf("%d games, k=%d, honor=%d, seed %d",
		c.Games, c.K, c.HonorThreshold, seed), stats, elapsed))
	return nil
}
