package deck

import (
	rand "math/rand/v2"
)

const suits = 4

// StandardSize is the number of cards in a standard deck.
const StandardSize = suits * int(Ace-Two+1)

// Standard returns the ranks of a standard 52-card deck: four copies of each
// rank from Two through Ace.
func Standard() []Rank {
	return Sized(StandardSize)
}

// Sized returns the ranks of a deck with the given number of cards, cycling
// through the Two..Ace sequence so every rank stays as evenly represented as
// the size allows. Sized(StandardSize) is the standard deck.
func Sized(size int) []Rank {
	if size <= 0 {
		return nil
	}
	cards := make([]Rank, 0, size)
	r := Two
	for len(cards) < size {
		cards = append(cards, r)
		if r == Ace {
			r = Two
		} else {
			r++
		}
	}
	return cards
}

// Split shuffles cards uniformly with rng and cuts the result into two
// starting decks. Odd totals give the first player the extra card.
func Split(cards []Rank, rng *rand.Rand) ([]Rank, []Rank) {
	shuffled := append([]Rank(nil), cards...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	half := (len(shuffled) + 1) / 2
	return shuffled[:half], shuffled[half:]
}
