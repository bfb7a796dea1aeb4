package movepick

import (
	"testing"

	"github.com/subarashikihibi/rapfi/internal/board"
	"github.com/subarashikihibi/rapfi/internal/color"
	"github.com/subarashikihibi/rapfi/internal/history"
	"github.com/subarashikihibi/rapfi/internal/pattern4"
)

func newTables(size int) Tables {
	return Tables{
		Main:        history.NewMain(size),
		CounterMove: history.NewCounterMove(size),
	}
}

func drain(t *testing.T, p *Picker) []board.Pos {
	t.Helper()
	var out []board.Pos
	for i := 0; i <= MaxMoves+1; i++ {
		pos, ok := p.Next()
		if !ok {
			return out
		}
		out = append(out, pos)
	}
	t.Fatalf("picker did not exhaust within MAX_MOVES+1 yields")
	return nil
}

func TestRootSelfFiveYieldsOnlyWinningCells(t *testing.T) {
	b := board.New(15, color.Freestyle)
	black := []board.Pos{board.MakePos(0, 3), board.MakePos(1, 3), board.MakePos(2, 3), board.MakePos(3, 3)}
	white := []board.Pos{board.MakePos(0, 0), board.MakePos(0, 1), board.MakePos(0, 2), board.MakePos(10, 10)}
	for i := range black {
		b.Move(black[i])
		b.Move(white[i])
	}

	p := NewRoot(b, newTables(15))
	out := drain(t, p)
	if len(out) != 1 || out[0] != board.MakePos(4, 3) {
		t.Fatalf("expected exactly [(4,3)], got %v", out)
	}
}

func TestRootOppoFiveYieldsOnlyDefense(t *testing.T) {
	b := board.New(15, color.Freestyle)
	// Black's stones are spread out so that black has no threat of its own.
	blackDummy := []board.Pos{board.MakePos(8, 8), board.MakePos(12, 12), board.MakePos(8, 12), board.MakePos(12, 8)}
	white := []board.Pos{board.MakePos(0, 3), board.MakePos(1, 3), board.MakePos(2, 3), board.MakePos(3, 3)}
	for i := range white {
		b.Move(blackDummy[i])
		b.Move(white[i])
	}
	// side to move is black, white threatens five at (4,3)
	p := NewRoot(b, newTables(15))
	out := drain(t, p)
	if len(out) != 1 || out[0] != board.MakePos(4, 3) {
		t.Fatalf("expected exactly [(4,3)], got %v", out)
	}
}

func TestMainNoThreatsYieldsTTFirstThenSkipsIt(t *testing.T) {
	b := board.New(9, color.Freestyle)
	b.Move(board.MakePos(4, 4))
	tt := board.MakePos(5, 5)

	p := NewMain(b, newTables(9), tt)
	out := drain(t, p)
	if len(out) == 0 || out[0] != tt {
		t.Fatalf("expected first yield to be TT move %s, got %v", tt, out)
	}
	for _, pos := range out[1:] {
		if pos == tt {
			t.Fatalf("TT move %s yielded again in later stages: %v", tt, out)
		}
	}
}

func TestMainInvalidTTIsNotYielded(t *testing.T) {
	b := board.New(9, color.Freestyle)
	b.Move(board.MakePos(4, 4)) // occupies (4,4); using it as TT makes it invalid
	tt := board.MakePos(4, 4)

	p := NewMain(b, newTables(9), tt)
	if !p.ttMove.IsNone() {
		t.Fatalf("expected ttMove accessor to report NONE for invalid TT")
	}
	out := drain(t, p)
	if len(out) == 0 || out[0] == tt {
		t.Fatalf("expected first yield not to be the invalid TT move, got %v", out)
	}
}

func TestAllMovesNeverYieldsForbiddenPointForBlack(t *testing.T) {
	b := board.New(15, color.Renju)
	b.Move(board.MakePos(6, 7))   // black
	b.Move(board.MakePos(0, 0))   // white
	b.Move(board.MakePos(8, 7))   // black
	b.Move(board.MakePos(0, 1))   // white
	b.Move(board.MakePos(7, 6))   // black
	b.Move(board.MakePos(0, 2))   // white
	b.Move(board.MakePos(7, 8))   // black
	b.Move(board.MakePos(10, 10)) // white, irrelevant
	// black to move; (7,7) is now forbidden (double three)

	p := NewRoot(b, newTables(15))
	out := drain(t, p)
	for _, pos := range out {
		if pos == board.MakePos(7, 7) {
			t.Fatalf("forbidden point (7,7) was yielded: %v", out)
		}
	}
}

func TestExhaustionBoundedByMaxMovesPlusOne(t *testing.T) {
	b := board.New(15, color.Freestyle)
	p := NewMain(b, newTables(15), board.NONE)
	out := drain(t, p)
	if len(out) > MaxMoves {
		t.Fatalf("expected at most MAX_MOVES yields, got %d", len(out))
	}
}

func TestAllMovesOrderingIsDescendingAboveZero(t *testing.T) {
	b := board.New(9, color.Freestyle)
	b.Move(board.MakePos(4, 4))
	p := NewMain(b, newTables(9), board.NONE)
	var scores []board.Score
	for {
		_, ok := p.Next()
		if !ok {
			break
		}
		scores = append(scores, p.CurMoveScore())
	}
	for i := 1; i < len(scores); i++ {
		if scores[i-1] >= 0 && scores[i] >= 0 && scores[i-1] < scores[i] {
			t.Fatalf("scores not descending at %d: %v", i, scores)
		}
	}
}

func TestQVCFUsesPlainVCFAtFullDepth(t *testing.T) {
	b := board.New(15, color.Freestyle)
	black := []board.Pos{board.MakePos(3, 3), board.MakePos(4, 3), board.MakePos(5, 3)}
	white := []board.Pos{board.MakePos(0, 0), board.MakePos(0, 1)}
	b.Move(black[0])
	b.Move(white[0])
	b.Move(black[1])
	b.Move(white[1])
	b.Move(black[2])
	b.Move(board.MakePos(10, 10)) // white, irrelevant
	// black to move, last black move at (5,3)

	prev := [2]pattern4.Pattern4{pattern4.NONE, pattern4.NONE}
	p := NewQVCF(b, newTables(15), board.NONE, DepthQVCFFull, prev)
	if !p.allowPlainB4InVCF {
		t.Fatalf("expected allowPlainB4InVCF at depth >= DepthQVCFFull")
	}
	out := drain(t, p)
	seed := b.GetLastActualMoveOfSide(color.Black)
	for _, pos := range out {
		if !boardWithin(seed, pos) {
			t.Fatalf("yielded move %s outside RANGE_SQUARE2_LINE4 of seed %s", pos, seed)
		}
	}
}

func boardWithin(seed, p board.Pos) bool {
	dx := int(p.X) - int(seed.X)
	dy := int(p.Y) - int(seed.Y)
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	cheb := dx
	if dy > cheb {
		cheb = dy
	}
	if cheb <= 2 {
		return true
	}
	onLine := dx == 0 || dy == 0 || dx == dy
	return onLine && cheb <= 4
}
