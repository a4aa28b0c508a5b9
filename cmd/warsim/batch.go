package main

import (
	"context"
	"fmt"

	"github.com/lox/warsim/internal/randutil"
	"github.com/lox/warsim/internal/simulator"
)

type BatchCmd struct {
	File    string `arg:"" help:"HCL scenario file"`
	Verbose bool   `help:"Verbose logging"`
}

func (c *BatchCmd) Run() error {
	logger := setupLogger(c.Verbose)

	file, err := simulator.LoadScenarios(c.File)
	if err != nil {
		return err
	}

	for _, sc := range file.Scenarios {
		seed := randutil.PickSeed(sc.Seed)
		params := sc.Params()

		sim := simulator.New(simulator.Config{
			Games:    sc.Games,
			Params:   params,
			DeckSize: sc.DeckSize,
			Seed:     seed,
			Workers:  sc.NumWorkers(),
			Logger:   logger.WithPrefix(sc.Name),
		})

		stats, elapsed, err := sim.Run(context.Background())
		if err != nil {
			return fmt.Errorf("scenario %s: %w", sc.Name, err)
		}

		fmt.Println(renderSummary(fmt.Sprintf("%s: %d games, k=%d, honor=%d, seed %d",
			sc.Name, sc.Games, params.K, params.HonorThreshold, seed), stats, elapsed))
	}
	return nil
}
