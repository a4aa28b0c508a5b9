package game

import (
	rand "math/rand/v2"

	"github.com/lox/warsim/internal/deck"
)

// Game drives two player decks to a terminal outcome. It owns its rng and
// both decks exclusively for its lifetime and is mutated in place by Play,
// so one Game serves exactly one simulated game.
type Game struct {
	params  Params
	rng     *rand.Rand
	player1 *deck.PlayerDeck
	player2 *deck.PlayerDeck

	// work accumulates every card wagered in the round in progress. It is
	// cleared at the start of each round and awarded wholesale to the round
	// winner's discard pile; nothing in it survives across rounds.
	work []deck.Rank
}

// New creates (but does not simulate) a game with the given player decks.
func New(params Params, rng *rand.Rand, player1, player2 *deck.PlayerDeck) *Game {
	return &Game{
		params:  params,
		rng:     rng,
		player1: player1,
		player2: player2,
	}
}

// Play runs the game to completion, returning the outcome and the number of
// rounds played, counted from 1. There is no turn cap: a sufficiently cyclic
// shuffle sequence could loop indefinitely, which is inherent to the game.
func (g *Game) Play() (Result, uint64) {
	var turn uint64
	for {
		turn++

		round := g.playRound()
		if round.terminal {
			return round.result, turn
		}
		switch round.winner {
		case Player1:
			g.player1.WinLoot(g.work)
		case Player2:
			g.player2.WinLoot(g.work)
		}
	}
}

// playRound resolves one round: a face-off comparison plus any chain of wars
// it escalates into. Wagered cards accumulate in g.work across escalations;
// the caller awards them when the round resolves decisively.
func (g *Game) playRound() roundResult {
	g.work = g.work[:0]

	for {
		// Each player plays a card if they can. Running out of cards loses
		// the game on the spot.
		card1, ok1 := g.player1.Draw(g.rng)
		card2, ok2 := g.player2.Draw(g.rng)
		switch {
		case !ok1 && !ok2:
			return roundResult{terminal: true, result: Draw}
		case !ok1:
			return roundResult{terminal: true, result: Player2Win}
		case !ok2:
			return roundResult{terminal: true, result: Player1Win}
		}

		// Honorable loss: a card beaten by no more than the threshold is
		// removed from the game rather than joining the stake. Otherwise
		// both cards are at stake.
		if card1 != card2 && card1.Diff(card2) <= g.params.HonorThreshold {
			g.work = append(g.work, max(card1, card2))
		} else {
			g.work = append(g.work, card1, card2)
		}

		switch {
		case card1 > card2:
			return roundResult{winner: Player1}
		case card2 > card1:
			return roundResult{winner: Player2}
		}

		// War. Each side independently wagers up to K face-down cards and we
		// loop back for the next face-off with the stake still on the table.
		g.wager(g.player1)
		g.wager(g.player2)
	}
}

// wager moves up to K face-down cards from p into the round's stake, always
// leaving p at least one card for the next face-off.
func (g *Game) wager(p *deck.PlayerDeck) {
	n := min(g.params.K, p.Cards()-1)
	for i := 0; i < n; i++ {
		card, ok := p.Draw(g.rng)
		if !ok {
			// The cap above makes this impossible; reaching it means the
			// Cards bookkeeping is broken.
			panic("game: draw failed during war escalation despite wager cap")
		}
		g.work = append(g.work, card)
	}
}
