package game

import (
	"testing"

	"github.com/lox/warsim/internal/deck"
	"github.com/lox/warsim/internal/randutil"
)

func TestDecisiveComparison(t *testing.T) {
	t.Parallel()

	g := New(DefaultParams(), randutil.New(1),
		deck.Stacked([]deck.Rank{deck.Nine}),
		deck.Stacked([]deck.Rank{deck.Four}))

	round := g.playRound()
	if round.terminal {
		t.Fatal("round resolved terminally, want a decisive round win")
	}
	if round.winner != Player1 {
		t.Errorf("winner = %v, want %v", round.winner, Player1)
	}
	if !equalRanks(g.work, []deck.Rank{deck.Nine, deck.Four}) {
		t.Errorf("wager buffer = %v, want [9 4]", g.work)
	}
}

func TestHonorRemoval(t *testing.T) {
	t.Parallel()

	g := New(Params{K: 3, HonorThreshold: 2}, randutil.New(1),
		deck.Stacked([]deck.Rank{deck.Nine}),
		deck.Stacked([]deck.Rank{deck.Eight}))

	round := g.playRound()
	if round.terminal || round.winner != Player1 {
		t.Fatalf("round = %+v, want decisive win for player1", round)
	}
	// The 8 lost by 1 <= 2, so it leaves the game; only the 9 is at stake
	if !equalRanks(g.work, []deck.Rank{deck.Nine}) {
		t.Errorf("wager buffer = %v, want [9]", g.work)
	}

	g.player1.WinLoot(g.work)
	if g.player1.Cards() != 1 {
		t.Errorf("player1 holds %d cards, want 1", g.player1.Cards())
	}
	if g.player2.Cards() != 0 {
		t.Errorf("player2 holds %d cards, want 0", g.player2.Cards())
	}
}

func TestHonorDisabledAtZeroThreshold(t *testing.T) {
	t.Parallel()

	g := New(DefaultParams(), randutil.New(1),
		deck.Stacked([]deck.Rank{deck.Nine}),
		deck.Stacked([]deck.Rank{deck.Eight}))

	round := g.playRound()
	if round.terminal || round.winner != Player1 {
		t.Fatalf("round = %+v, want decisive win for player1", round)
	}
	if !equalRanks(g.work, []deck.Rank{deck.Nine, deck.Eight}) {
		t.Errorf("wager buffer = %v, want [9 8]", g.work)
	}
}

func TestWarEscalation(t *testing.T) {
	t.Parallel()

	// Top card last: both players face off with a 5, wager three face-down
	// cards each, then player1's 9 beats player2's 4.
	g := New(DefaultParams(), randutil.New(1),
		deck.Stacked([]deck.Rank{deck.Two, deck.Nine, deck.Three, deck.Three, deck.Three, deck.Five}),
		deck.Stacked([]deck.Rank{deck.Two, deck.Four, deck.Six, deck.Six, deck.Six, deck.Five}))

	round := g.playRound()
	if round.terminal || round.winner != Player1 {
		t.Fatalf("round = %+v, want decisive win for player1", round)
	}

	want := []deck.Rank{
		deck.Five, deck.Five, // tied face-off
		deck.Three, deck.Three, deck.Three, // player1's war wager
		deck.Six, deck.Six, deck.Six, // player2's war wager
		deck.Nine, deck.Four, // deciding face-off
	}
	if !equalRanks(g.work, want) {
		t.Errorf("wager buffer = %v, want %v", g.work, want)
	}
	if g.player1.Cards() != 1 || g.player2.Cards() != 1 {
		t.Errorf("remaining cards = %d/%d, want 1/1", g.player1.Cards(), g.player2.Cards())
	}
}

func TestWarShortStackWagersFewer(t *testing.T) {
	t.Parallel()

	// Player1 enters the war with only two cards behind the face-off, so the
	// cap holds them to a single face-down wager while player2 puts up three.
	// The held-back 9 still wins the deciding face-off and both players are
	// alive once the stake is awarded.
	g := New(DefaultParams(), randutil.New(1),
		deck.Stacked([]deck.Rank{deck.Nine, deck.Three, deck.Five}),
		deck.Stacked([]deck.Rank{deck.Two, deck.Two, deck.Four, deck.Six, deck.Six, deck.Six, deck.Five}))

	round := g.playRound()
	if round.terminal || round.winner != Player1 {
		t.Fatalf("round = %+v, want decisive win for player1", round)
	}

	want := []deck.Rank{
		deck.Five, deck.Five, // tied face-off
		deck.Three, // player1's capped war wager
		deck.Six, deck.Six, deck.Six, // player2's full war wager
		deck.Nine, deck.Four, // deciding face-off
	}
	if !equalRanks(g.work, want) {
		t.Errorf("wager buffer = %v, want %v", g.work, want)
	}

	g.player1.WinLoot(g.work)
	if g.player1.Cards() != 8 || g.player2.Cards() != 2 {
		t.Errorf("remaining cards = %d/%d, want 8/2", g.player1.Cards(), g.player2.Cards())
	}
}

func TestWarFloorKeepsLastCard(t *testing.T) {
	t.Parallel()

	// One card each: the tie escalates but neither side can wager, and the
	// next face-off exhausts both simultaneously.
	g := New(DefaultParams(), randutil.New(1),
		deck.Stacked([]deck.Rank{deck.Five}),
		deck.Stacked([]deck.Rank{deck.Five}))

	result, turns := g.Play()
	if result != Draw {
		t.Errorf("result = %v, want %v", result, Draw)
	}
	if turns != 1 {
		t.Errorf("turns = %d, want 1", turns)
	}
}

func TestWarFloorAsymmetric(t *testing.T) {
	t.Parallel()

	// Player1 keeps their second card back instead of wagering it, so they
	// still have a face-off card when player2 runs out.
	g := New(DefaultParams(), randutil.New(1),
		deck.Stacked([]deck.Rank{deck.Seven, deck.Five}),
		deck.Stacked([]deck.Rank{deck.Five}))

	result, turns := g.Play()
	if result != Player1Win {
		t.Errorf("result = %v, want %v", result, Player1Win)
	}
	if turns != 1 {
		t.Errorf("turns = %d, want 1", turns)
	}
}

func TestTerminationOnExhaustion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		deck1  []deck.Rank
		deck2  []deck.Rank
		result Result
	}{
		{"player1 empty", nil, []deck.Rank{deck.Five}, Player2Win},
		{"player2 empty", []deck.Rank{deck.Five}, nil, Player1Win},
		{"both empty", nil, nil, Draw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(DefaultParams(), randutil.New(1), deck.New(tt.deck1), deck.New(tt.deck2))
			result, turns := g.Play()
			if result != tt.result {
				t.Errorf("result = %v, want %v", result, tt.result)
			}
			if turns != 1 {
				t.Errorf("turns = %d, want 1", turns)
			}
		})
	}
}

func TestConservationWithoutHonorRule(t *testing.T) {
	t.Parallel()

	rng := randutil.New(7)
	d1, d2 := deck.Split(deck.Standard(), rng)
	g := New(DefaultParams(), rng, deck.New(d1), deck.New(d2))

	const maxRounds = 1_000_000
	for round := 0; round < maxRounds; round++ {
		rr := g.playRound()
		if rr.terminal {
			return
		}

		// Decks plus the undistributed stake always account for every card
		total := g.player1.Cards() + g.player2.Cards() + len(g.work)
		if total != deck.StandardSize {
			t.Fatalf("round %d: %d cards in play, want %d", round+1, total, deck.StandardSize)
		}

		switch rr.winner {
		case Player1:
			g.player1.WinLoot(g.work)
		case Player2:
			g.player2.WinLoot(g.work)
		}
	}
	t.Fatalf("game did not terminate within %d rounds", maxRounds)
}

func TestPlayDeterministic(t *testing.T) {
	t.Parallel()

	play := func(seed int64) (Result, uint64) {
		rng := randutil.New(seed)
		d1, d2 := deck.Split(deck.Standard(), rng)
		return New(Params{K: 2, HonorThreshold: 1}, rng, deck.New(d1), deck.New(d2)).Play()
	}

	for _, seed := range []int64{1, 42, 12345} {
		r1, t1 := play(seed)
		r2, t2 := play(seed)
		if r1 != r2 || t1 != t2 {
			t.Errorf("seed %d: (%v, %d) != (%v, %d)", seed, r1, t1, r2, t2)
		}
	}
}

func TestResultWinner(t *testing.T) {
	t.Parallel()

	if p, ok := Player1Win.Winner(); !ok || p != Player1 {
		t.Errorf("Player1Win.Winner() = %v, %v", p, ok)
	}
	if p, ok := Player2Win.Winner(); !ok || p != Player2 {
		t.Errorf("Player2Win.Winner() = %v, %v", p, ok)
	}
	if _, ok := Draw.Winner(); ok {
		t.Error("Draw.Winner() reported a winner")
	}
}

func equalRanks(a, b []deck.Rank) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
