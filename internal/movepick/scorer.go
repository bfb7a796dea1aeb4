package movepick

import (
	"math"

	"github.com/subarashikihibi/rapfi/internal/board"
	"github.com/subarashikihibi/rapfi/internal/color"
	"github.com/subarashikihibi/rapfi/internal/history"
	"github.com/subarashikihibi/rapfi/internal/pattern4"
	"github.com/subarashikihibi/rapfi/internal/policy"
)

type ScoreType uint32

const (
	Attack ScoreType = 1 << iota
	Defend
	Policy
	MainHistory
	CounterMove
	ContHistory

	Balanced = Attack | Defend
)

const minScoreSentinel = board.Score(math.MinInt32 / 2)

type Tables struct {
	Main         *history.Main
	CounterMove  *history.CounterMove
	Continuation history.Continuation
	Evaluator    policy.Evaluator
}

func scoreMoves(b *board.Board, self color.Color, tables Tables, buf *policy.Buffer, moves []board.Move, types ScoreType) (maxPolicyScore board.Score, hasPolicy bool) {
	oppo := self.Opponent()
	maxPolicyScore = minScoreSentinel

	usePolicy := types&Policy == Policy && tables.Evaluator != nil && buf != nil
	if usePolicy {
		for i := range moves {
			buf.SetComputeFlag(moves[i].Pos)
		}
		tables.Evaluator.EvaluatePolicy(b, buf)
		hasPolicy = true
		for i := range moves {
			v := buf.Score(moves[i].Pos)
			moves[i].Score = v
			moves[i].RawScore = v
			if v > maxPolicyScore {
				maxPolicyScore = v
			}
		}
	} else {
		for i := range moves {
			cell := b.Cell(moves[i].Pos)
			selfScore := board.Score(cell.Score(int(self)))
			oppoScore := board.Score(cell.Score(int(oppo)))
			var s board.Score
			switch {
			case types&Balanced == Balanced:
				s = selfScore
			case types&Attack == Attack:
				s = (2*selfScore + oppoScore) / 3
			case types&Defend == Defend:
				s = (selfScore + 2*oppoScore) / 3
			}
			moves[i].Score = s
			moves[i].RawScore = s
		}
	}

	last := b.GetLastMove()
	var cmPos board.Pos
	var cmP4 pattern4.Pattern4
	haveCM := false
	if types&CounterMove == CounterMove && !last.IsNone() {
		cmPos, cmP4 = tables.CounterMove.Get(oppo, last)
		haveCM = !cmPos.IsNone()
	}

	for i := range moves {
		cell := b.Cell(moves[i].Pos)
		selfP4 := cell.Pattern4(int(self))

		if types&MainHistory == MainHistory {
			if selfP4 >= pattern4.H_FLEX3 {
				moves[i].Score += board.Score(tables.Main.Get(self, moves[i].Pos, history.Attack) >> 7)
			} else {
				moves[i].Score += board.Score(tables.Main.Get(self, moves[i].Pos, history.Quiet) >> 8)
			}
		}
		if types&CounterMove == CounterMove && haveCM && moves[i].Pos == cmPos && cmP4 <= selfP4 {
			moves[i].Score += 21
		}
		// ContHistory is reserved; it never contributes (see history.Continuation).
	}

	return maxPolicyScore, hasPolicy
}
