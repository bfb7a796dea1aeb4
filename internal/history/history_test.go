package history

import (
	"testing"

	"github.com/subarashikihibi/rapfi/internal/board"
	"github.com/subarashikihibi/rapfi/internal/color"
	"github.com/subarashikihibi/rapfi/internal/pattern4"
)

func TestMainHistoryUpdateAndGet(t *testing.T) {
	m := NewMain(15)
	p := board.MakePos(3, 4)
	if got := m.Get(color.Black, p, Quiet); got != 0 {
		t.Fatalf("expected zero-initialized history, got %d", got)
	}
	m.Update(color.Black, p, Quiet, 800)
	if got := m.Get(color.Black, p, Quiet); got <= 0 {
		t.Fatalf("expected positive history after positive bonus, got %d", got)
	}
	if got := m.Get(color.Black, p, Attack); got != 0 {
		t.Fatalf("expected Attack bucket untouched, got %d", got)
	}
}

func TestMainHistoryClampsToBounds(t *testing.T) {
	m := NewMain(15)
	p := board.MakePos(0, 0)
	for i := 0; i < 1000; i++ {
		m.Update(color.Black, p, Attack, historyMax)
	}
	if got := m.Get(color.Black, p, Attack); got > historyMax {
		t.Fatalf("expected history clamped to %d, got %d", historyMax, got)
	}
}

func TestCounterMoveRoundTrip(t *testing.T) {
	cm := NewCounterMove(15)
	last := board.MakePos(7, 7)
	if got, gotP4 := cm.Get(color.White, last); !got.IsNone() || gotP4 != pattern4.NONE {
		t.Fatalf("expected no counter-move recorded, got %s/%s", got, gotP4)
	}
	reply := board.MakePos(8, 8)
	cm.Set(color.White, last, reply, pattern4.E_BLOCK4)
	got, gotP4 := cm.Get(color.White, last)
	if got != reply || gotP4 != pattern4.E_BLOCK4 {
		t.Fatalf("expected reply %s/%s, got %s/%s", reply, pattern4.E_BLOCK4, got, gotP4)
	}
}

func TestCounterMoveIgnoresNoneLastMove(t *testing.T) {
	cm := NewCounterMove(15)
	cm.Set(color.Black, board.NONE, board.MakePos(1, 1), pattern4.H_FLEX3)
	if got, _ := cm.Get(color.Black, board.NONE); !got.IsNone() {
		t.Fatalf("expected NONE last-move lookups to stay unset, got %s", got)
	}
}
