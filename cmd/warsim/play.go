package main

import (
	"fmt"

	"github.com/lox/warsim/internal/deck"
	"github.com/lox/warsim/internal/game"
	"github.com/lox/warsim/internal/randutil"
)

type PlayCmd struct {
	K              int   `default:"3" help:"Face-down cards wagered per war"`
	HonorThreshold uint8 `default:"0" help:"Margin at or under which a losing card is removed from the game"`
	DeckSize       int   `default:"52" help:"Cards dealt out between the players"`
	Seed           int64 `default:"0" help:"RNG seed (0 picks one from the clock)"`
	Verbose        bool  `help:"Verbose logging"`
}

func (c *PlayCmd) Run() error {
	if c.DeckSize < 2 {
		return fmt.Errorf("deck-size must be at least 2, got %d", c.DeckSize)
	}

	seed := randutil.PickSeed(c.Seed)
	logger := setupLogger(c.Verbose)

	params := game.Params{K: c.K, HonorThreshold: deck.Rank(c.HonorThreshold)}
	logger.Debug("playing single game", "seed", seed,
		"k", params.K, "honor_threshold", params.HonorThreshold, "deck_size", c.DeckSize)

	rng := randutil.New(seed)
	d1, d2 := deck.Split(deck.Sized(c.DeckSize), rng)
	g := game.New(params, rng, deck.New(d1), deck.New(d2))
	result, turns := g.Play()

	switch result {
	case game.Draw:
		fmt.Printf("draw after %d turns (seed %d)\n", turns, seed)
	default:
		fmt.Printf("%s wins after %d turns (seed %d)\n", result, turns, seed)
	}
	return nil
}
