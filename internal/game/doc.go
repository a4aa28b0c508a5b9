// Package game implements a two-player game of War with two configurable
// variants: the war depth k (face-down cards wagered per tie) and an honor
// threshold under which a narrowly-losing card is removed from the game
// instead of joining the winner's pile.
//
// The main type is Game, which owns both player decks, the rule parameters
// and an injected rng, and is driven to completion by a single Play call:
//
//	rng := randutil.New(42)
//	d1, d2 := deck.Split(deck.Standard(), rng)
//	g := game.New(game.DefaultParams(), rng, deck.New(d1), deck.New(d2))
//	result, turns := g.Play()
//
// A Game is single-use and not safe for concurrent access. To run many games
// in parallel, give each its own Game and rng; see internal/simulator.
package game
