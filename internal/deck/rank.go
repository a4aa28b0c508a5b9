package deck

import "strconv"

// Rank is the comparable strength of a card. There are no suits, so two cards
// can share a rank; equal ranks are what trigger wars.
type Rank uint8

// Standard deck ranks run Two through Ace, aces high.
const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return strconv.FormatUint(uint64(r), 10)
	}
}

// Diff returns the absolute difference between two ranks
func (r Rank) Diff(other Rank) Rank {
	if r > other {
		return r - other
	}
	return other - r
}
