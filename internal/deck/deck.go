package deck

import (
	rand "math/rand/v2"
)

// PlayerDeck holds one player's cards as two piles: a draw pile that face-off
// and war cards come from, and a discard pile that won cards accumulate in.
// When the draw pile runs dry the discard pile is shuffled and swapped in, so
// cards keep circulating until the player loses them all.
type PlayerDeck struct {
	draw    []Rank
	discard []Rank
}

// New creates a player deck from an initial set of cards. Everything starts in
// the discard pile, so the first draw shuffles it; the ordering of initial
// carries no meaning.
func New(initial []Rank) *PlayerDeck {
	return &PlayerDeck{
		draw:    make([]Rank, 0, len(initial)),
		discard: append([]Rank(nil), initial...),
	}
}

// Stacked creates a player deck whose draw pile is exactly the given cards,
// with the top card last. It bypasses the initial shuffle for deterministic
// setups in tests and replays.
func Stacked(draw []Rank) *PlayerDeck {
	return &PlayerDeck{
		draw: append([]Rank(nil), draw...),
	}
}

// Cards returns the total number of cards the player still holds.
func (d *PlayerDeck) Cards() int {
	return len(d.draw) + len(d.discard)
}

// Draw removes and returns the top card of the draw pile. When the draw pile
// is empty, the discard pile is first shuffled uniformly with rng and swapped
// in. Returns false when the player has no cards at all; exhaustion is a
// normal terminal state, not an error.
func (d *PlayerDeck) Draw(rng *rand.Rand) (Rank, bool) {
	if len(d.draw) == 0 {
		rng.Shuffle(len(d.discard), func(i, j int) {
			d.discard[i], d.discard[j] = d.discard[j], d.discard[i]
		})
		d.draw, d.discard = d.discard, d.draw
	}
	if len(d.draw) == 0 {
		return 0, false
	}
	card := d.draw[len(d.draw)-1]
	d.draw = d.draw[:len(d.draw)-1]
	return card, true
}

// WinLoot appends won cards to the discard pile in the order given. No
// shuffling happens here; the pile is shuffled lazily by whichever draw
// empties the draw pile next.
func (d *PlayerDeck) WinLoot(cards []Rank) {
	d.discard = append(d.discard, cards...)
}
