package game

import (
	"github.com/lox/warsim/internal/deck"
)

// Params holds the rule parameters for a game. A Game copies its Params at
// construction; they are immutable for the game's lifetime.
type Params struct {
	// K is the number of face-down cards each player wagers per war
	// escalation. Players never wager below one remaining card, so a
	// low-stacked player may commit fewer than K.
	K int

	// HonorThreshold removes a losing card from the game entirely when the
	// rank difference of the compared cards is at or under this margin.
	// Equal cards never trigger honor removal; they start a war instead,
	// which means zero disables the rule.
	HonorThreshold deck.Rank
}

// DefaultParams is classic War: three-card wars and no honor rule.
func DefaultParams() Params {
	return Params{K: 3}
}
