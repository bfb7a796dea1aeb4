package movepick

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/subarashikihibi/rapfi/internal/board"
	"github.com/subarashikihibi/rapfi/internal/color"
	"github.com/subarashikihibi/rapfi/internal/movegen"
	"github.com/subarashikihibi/rapfi/internal/pattern4"
	"github.com/subarashikihibi/rapfi/internal/policy"
)

const DepthQVCFFull = 6

type Picker struct {
	id     uuid.UUID
	b      *board.Board
	self   color.Color
	tables Tables

	buf   [MaxMoves]board.Move
	n     int
	cur   int
	stage Stage

	ttMove board.Pos
	pred   func(board.Pos) bool

	curScore          board.Score
	curPolicyScore    board.Score
	maxPolicyScore    board.Score
	hasPolicy         bool
	policyBuf         *policy.Buffer
	allowPlainB4InVCF bool
}

func newPicker(b *board.Board, tables Tables) *Picker {
	return &Picker{
		id:             uuid.New(),
		b:              b,
		self:           b.SideToMove(),
		tables:         tables,
		ttMove:         board.NONE,
		maxPolicyScore: minScoreSentinel,
		pred:           func(board.Pos) bool { return true },
	}
}

func (p *Picker) policyBuffer() *policy.Buffer {
	if p.policyBuf == nil {
		p.policyBuf = policy.NewBuffer(p.b.Size())
	}
	return p.policyBuf
}

func NewRoot(b *board.Board, tables Tables) *Picker {
	p := newPicker(b, tables)
	oppo := p.self.Opponent()

	switch {
	case b.P4Count(p.self, pattern4.A_FIVE) > 0:
		p.n = movegen.Generate(b, p.self, movegen.Winning, p.buf[:])
	case b.P4Count(oppo, pattern4.A_FIVE) > 0:
		p.n = movegen.Generate(b, p.self, movegen.DefendFive, p.buf[:])
	case b.P4Count(p.self, pattern4.B_FLEX4) > 0:
		p.n = movegen.Generate(b, p.self, movegen.Winning, p.buf[:])
	case b.P4Count(oppo, pattern4.B_FLEX4) > 0:
		p.n = movegen.Generate(b, p.self, movegen.DefendFour|movegen.All, p.buf[:])
		p.n += movegen.Generate(b, p.self, movegen.VCF, p.buf[p.n:])
	case b.P4Count(oppo, pattern4.C_BLOCK4_FLEX3) > 0 && (b.Rule() != color.Renju || b.HasValidOpponentCMove(oppo)):
		p.n = movegen.Generate(b, p.self, movegen.DefendB4F3, p.buf[:])
		if p.n == 0 {
			p.n = movegen.Generate(b, p.self, movegen.All, p.buf[:])
		} else {
			p.n += movegen.Generate(b, p.self, movegen.VCF, p.buf[p.n:])
		}
	default:
		p.n = movegen.Generate(b, p.self, movegen.All, p.buf[:])
	}

	p.stage = AllMoves
	log.Debug().Str("picker", p.id.String()).Str("kind", "root").Int("n", p.n).Msg("movepick constructed")
	return p
}

func NewMain(b *board.Board, tables Tables, ttMove board.Pos) *Picker {
	p := newPicker(b, tables)
	oppo := p.self.Opponent()
	ttCell := board.Cell{}
	if !ttMove.IsNone() && b.IsInBoard(ttMove) {
		ttCell = b.Cell(ttMove)
	}

	var ttValid bool
	switch {
	case b.P4Count(oppo, pattern4.A_FIVE) > 0:
		p.stage = DefendFiveTT
		ttValid = ttCell.Pattern4(int(oppo)) == pattern4.A_FIVE
	case b.P4Count(oppo, pattern4.B_FLEX4) > 0:
		p.stage = DefendFourTT
		ttValid = ttCell.Pattern4(int(color.Black)) >= pattern4.E_BLOCK4 ||
			ttCell.Pattern4(int(color.Black)) == pattern4.FORBID ||
			ttCell.Pattern4(int(color.White)) >= pattern4.E_BLOCK4
	case b.P4Count(oppo, pattern4.C_BLOCK4_FLEX3) > 0 && (b.Rule() != color.Renju || b.HasValidOpponentCMove(oppo)):
		p.stage = DefendB4F3TT
		ttValid = true
	default:
		p.stage = MainTT
		ttValid = true
	}

	ttValid = ttValid && !ttMove.IsNone() && b.IsInBoard(ttMove) && b.IsEmpty(ttMove)
	if ttValid {
		p.ttMove = ttMove
	} else {
		p.ttMove = board.NONE
		p.stage++
	}

	log.Debug().Str("picker", p.id.String()).Str("kind", "main").Str("stage", p.stage.String()).Bool("tt_valid", ttValid).Msg("movepick constructed")
	return p
}

func NewQVCF(b *board.Board, tables Tables, ttMove board.Pos, depth int, previousSelfP4 [2]pattern4.Pattern4) *Picker {
	p := newPicker(b, tables)
	oppo := p.self.Opponent()
	p.allowPlainB4InVCF = depth >= DepthQVCFFull ||
		(previousSelfP4[0] >= pattern4.D_BLOCK4_PLUS && previousSelfP4[1] >= pattern4.D_BLOCK4_PLUS)

	ttCell := board.Cell{}
	if !ttMove.IsNone() && b.IsInBoard(ttMove) {
		ttCell = b.Cell(ttMove)
	}

	var ttValid bool
	if b.P4Count(oppo, pattern4.A_FIVE) > 0 {
		p.stage = DefendFiveTT
		ttValid = ttCell.Pattern4(int(oppo)) == pattern4.A_FIVE
	} else {
		p.stage = QVCFTT
		ttValid = ttCell.Pattern4(int(p.self)) >= pattern4.E_BLOCK4
	}

	ttValid = ttValid && !ttMove.IsNone() && b.IsInBoard(ttMove) && b.IsEmpty(ttMove)
	if ttValid {
		p.ttMove = ttMove
	} else {
		p.ttMove = board.NONE
		p.stage++
	}

	log.Debug().Str("picker", p.id.String()).Str("kind", "qvcf").Str("stage", p.stage.String()).Bool("allow_plain_b4", p.allowPlainB4InVCF).Msg("movepick constructed")
	return p
}

func (p *Picker) SetPredicate(pred func(board.Pos) bool) {
	if pred == nil {
		pred = func(board.Pos) bool { return true }
	}
	p.pred = pred
}

func (p *Picker) Next() (board.Pos, bool) {
	for {
		switch p.stage {
		case MainTT, DefendFiveTT, DefendFourTT, DefendB4F3TT, QVCFTT:
			mv := p.ttMove
			p.stage++
			p.recordYield(board.Move{Pos: mv, Score: 0, RawScore: 0})
			return mv, true

		case MainMoves:
			p.n = movegen.Generate(p.b, p.self, movegen.All, p.buf[:])
			p.score(Balanced | Policy | MainHistory | CounterMove | ContHistory)
			partialSort(p.buf[:p.n], 0)
			p.cur = 0
			p.stage = AllMoves

		case DefendFiveMoves:
			if p.ttMove.IsNone() {
				p.n = movegen.Generate(p.b, p.self, movegen.DefendFive, p.buf[:])
			} else {
				p.n = 0
			}
			p.cur = 0
			p.stage = AllMoves

		case DefendFourMoves:
			p.n = movegen.Generate(p.b, p.self, movegen.DefendFour, p.buf[:])
			p.n += movegen.Generate(p.b, p.self, movegen.VCF, p.buf[p.n:])
			p.score(Balanced | Policy | MainHistory)
			partialSort(p.buf[:p.n], 0)
			p.cur = 0
			p.stage = AllMoves

		case DefendB4F3Moves:
			p.n = movegen.Generate(p.b, p.self, movegen.DefendB4F3, p.buf[:])
			if p.n == 0 {
				p.stage = MainMoves
				continue
			}
			p.n += movegen.Generate(p.b, p.self, movegen.VCF, p.buf[p.n:])
			p.score(Balanced | Policy | MainHistory)
			partialSort(p.buf[:p.n], 0)
			p.cur = 0
			p.stage = AllMoves

		case QVCFMoves:
			seed := p.b.GetLastActualMoveOfSide(p.self)
			kind := movegen.VCF | movegen.Comb
			if p.allowPlainB4InVCF {
				kind = movegen.VCF
			}
			p.n = movegen.GenerateNeighbors(p.b, p.self, kind, seed, p.buf[:])
			p.score(Balanced)
			partialSort(p.buf[:p.n], 0)
			p.cur = 0
			p.stage = AllMoves

		case AllMoves:
			for p.cur < p.n {
				m := p.buf[p.cur]
				p.cur++
				if !p.acceptAtAllMoves(m.Pos) {
					continue
				}
				p.recordYield(m)
				return m.Pos, true
			}
			return board.NONE, false

		default:
			return board.NONE, false
		}
	}
}

func (p *Picker) acceptAtAllMoves(pos board.Pos) bool {
	if pos == p.ttMove {
		return false
	}
	if p.b.Rule() == color.Renju && p.self == color.Black && p.b.CheckForbiddenPoint(pos) {
		return false
	}
	return p.pred(pos)
}

func (p *Picker) score(types ScoreType) {
	var buf *policy.Buffer
	if types&Policy == Policy {
		buf = p.policyBuffer()
	}
	maxPolicy, hasPolicy := scoreMoves(p.b, p.self, p.tables, buf, p.buf[:p.n], types)
	if hasPolicy {
		p.hasPolicy = true
	}
	if maxPolicy > p.maxPolicyScore {
		p.maxPolicyScore = maxPolicy
	}
}

func (p *Picker) recordYield(m board.Move) {
	p.curScore = m.Score
	p.curPolicyScore = m.RawScore
}

func (p *Picker) HasPolicyScore() bool { return p.hasPolicy }

func (p *Picker) CurMoveScore() board.Score { return p.curScore }

func (p *Picker) CurMovePolicy() board.Score { return p.curPolicyScore }

func (p *Picker) MaxMovePolicy() board.Score { return p.maxPolicyScore }

func (p *Picker) CurMovePolicyDiff() board.Score { return p.maxPolicyScore - p.curPolicyScore }

// CurMoveScoreDiff's baseline is policy, not score, same as CurMovePolicyDiff.
func (p *Picker) CurMoveScoreDiff() board.Score { return p.maxPolicyScore - p.curScore }
