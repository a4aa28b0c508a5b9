package game

// Player identifies one of the two sides.
type Player int

const (
	Player1 Player = iota + 1
	Player2
)

// String returns the string representation of a player
func (p Player) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return "?"
	}
}

// Result is the terminal outcome of a full game. The game may draw if both
// players flip their last card during the same war.
type Result int

const (
	Player1Win Result = iota
	Player2Win
	Draw
)

// String returns the string representation of a result
func (r Result) String() string {
	switch r {
	case Player1Win:
		return "player1"
	case Player2Win:
		return "player2"
	case Draw:
		return "draw"
	default:
		return "?"
	}
}

// Winner returns the winning player, or false on a draw.
func (r Result) Winner() (Player, bool) {
	switch r {
	case Player1Win:
		return Player1, true
	case Player2Win:
		return Player2, true
	default:
		return 0, false
	}
}

// roundResult is the outcome of a single round: either the game ended
// (terminal), or one player won the round and the wagered cards are still to
// be awarded to them.
type roundResult struct {
	terminal bool
	result   Result // set when terminal
	winner   Player // set when not terminal
}
