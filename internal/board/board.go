package board

import (
	"github.com/subarashikihibi/rapfi/internal/color"
	"github.com/subarashikihibi/rapfi/internal/pattern4"
)

type Board struct {
	size      int
	rule      color.Rule
	cells     []Cell
	toMove    color.Color
	moves     []Pos
	lastOfCol [2]Pos
	p4Count   [2]pattern4.Count
}

func New(size int, rule color.Rule) *Board {
	b := &Board{
		size:      size,
		rule:      rule,
		cells:     make([]Cell, size*size),
		toMove:    color.Black,
		lastOfCol: [2]Pos{NONE, NONE},
	}
	b.recomputeAll()
	return b
}

func (b *Board) Size() int { return b.size }

func (b *Board) Rule() color.Rule { return b.rule }

func (b *Board) SideToMove() color.Color { return b.toMove }

func (b *Board) inBoundsXY(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.size && y < b.size
}

func (b *Board) IsInBoard(p Pos) bool { return b.inBoundsXY(int(p.X), int(p.Y)) }

func (b *Board) index(x, y int) int { return y*b.size + x }

func (b *Board) stoneAt(x, y int) Stone { return b.cells[b.index(x, y)].stone }

func (b *Board) IsEmpty(p Pos) bool { return b.cells[b.index(int(p.X), int(p.Y))].stone == stoneEmpty }

// StoneAt reports false for an empty cell; the board has no stone to name.
func (b *Board) StoneAt(p Pos) (color.Color, bool) {
	switch b.cells[b.index(int(p.X), int(p.Y))].stone {
	case stoneBlack:
		return color.Black, true
	case stoneWhite:
		return color.White, true
	default:
		return color.Black, false
	}
}

func (b *Board) Cell(p Pos) Cell { return b.cells[b.index(int(p.X), int(p.Y))] }

func (b *Board) P4Count(c color.Color, pat pattern4.Pattern4) int {
	return b.p4Count[c].Get(pat)
}

func (b *Board) GetLastMove() Pos {
	if len(b.moves) == 0 {
		return NONE
	}
	return b.moves[len(b.moves)-1]
}

func (b *Board) GetLastActualMoveOfSide(c color.Color) Pos { return b.lastOfCol[c] }

func stoneOf(c color.Color) Stone {
	if c == color.Black {
		return stoneBlack
	}
	return stoneWhite
}

func (b *Board) Move(p Pos) {
	idx := b.index(int(p.X), int(p.Y))
	b.cells[idx].stone = stoneOf(b.toMove)
	b.moves = append(b.moves, p)
	b.lastOfCol[b.toMove] = p
	b.toMove = b.toMove.Opponent()
	b.recomputeAll()
}

func (b *Board) Undo() {
	if len(b.moves) == 0 {
		return
	}
	p := b.moves[len(b.moves)-1]
	b.moves = b.moves[:len(b.moves)-1]
	b.toMove = b.toMove.Opponent()
	idx := b.index(int(p.X), int(p.Y))
	b.cells[idx].stone = stoneEmpty
	b.lastOfCol[b.toMove] = NONE
	for i := len(b.moves) - 1; i >= 0; i-- {
		if stoneOf(b.toMove) == b.cells[b.index(int(b.moves[i].X), int(b.moves[i].Y))].stone {
			b.lastOfCol[b.toMove] = b.moves[i]
			break
		}
	}
	b.recomputeAll()
}

// recomputeAll is O(size^2) per move rather than incremental; fine for
// the board sizes this core runs against.
func (b *Board) recomputeAll() {
	b.p4Count[0] = pattern4.Count{}
	b.p4Count[1] = pattern4.Count{}
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			idx := b.index(x, y)
			cell := &b.cells[idx]
			if cell.stone != stoneEmpty {
				cell.pattern4[0] = pattern4.NONE
				cell.pattern4[1] = pattern4.NONE
				cell.score[0] = 0
				cell.score[1] = 0
				continue
			}
			p := MakePos(x, y)
			for _, c := range [2]color.Color{color.Black, color.White} {
				pat, score := b.classifyCell(p, c)
				cell.pattern4[c] = pat
				cell.score[c] = score
				b.p4Count[c].Add(pat)
			}
		}
	}
}

func (b *Board) classifyCell(p Pos, c color.Color) (pattern4.Pattern4, int) {
	self := stoneOf(c)
	var fours, openThrees, openTwos int
	var anyFive, anyOpen4, overline bool
	score := 0
	for _, d := range lineDirs {
		win := b.buildWindow(p, d[0], d[1], self)
		t := classifyLine(win)
		switch {
		case t.five:
			anyFive = true
			score += 100000
		case t.open4:
			anyOpen4 = true
			fours++
			score += 10000
		case t.closed4:
			fours++
			score += 2000
		case t.open3:
			openThrees++
			score += 500
		case t.open2:
			openTwos++
			score += 50
		}
		if t.overline {
			overline = true
		}
	}

	if c == color.Black && b.rule == color.Renju {
		if forbid := b.isForbidden(overline, anyFive, anyOpen4, fours, openThrees); forbid {
			return pattern4.FORBID, score
		}
	}

	switch {
	case anyFive:
		return pattern4.A_FIVE, score
	case anyOpen4:
		return pattern4.B_FLEX4, score
	case fours >= 1 && openThrees >= 1:
		return pattern4.C_BLOCK4_FLEX3, score
	case fours >= 2:
		return pattern4.D_BLOCK4_PLUS, score
	case fours == 1:
		return pattern4.E_BLOCK4, score
	case openThrees >= 2:
		return pattern4.G_FLEX3_PLUS, score
	case openThrees == 1:
		return pattern4.H_FLEX3, score
	case openTwos >= 2:
		return pattern4.I_FLEX2_PLUS, score
	case openTwos == 1:
		return pattern4.J_FLEX2, score
	default:
		return pattern4.NONE, score
	}
}

func (b *Board) isForbidden(overline, five, open4 bool, fours, openThrees int) bool {
	if five || open4 {
		return false
	}
	if overline {
		return true
	}
	if fours >= 2 {
		return true
	}
	if openThrees >= 2 {
		return true
	}
	return false
}

func (b *Board) CheckForbiddenPoint(p Pos) bool {
	if b.rule != color.Renju {
		return false
	}
	return b.Cell(p).Pattern4(int(color.Black)) == pattern4.FORBID
}

func (b *Board) HasValidOpponentCMove(opponent color.Color) bool {
	if opponent != color.Black || b.rule != color.Renju {
		return true
	}
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			p := MakePos(x, y)
			idx := b.index(x, y)
			if b.cells[idx].stone != stoneEmpty {
				continue
			}
			if b.cells[idx].pattern4[opponent] == pattern4.C_BLOCK4_FLEX3 && !b.CheckForbiddenPoint(p) {
				return true
			}
		}
	}
	return false
}

func (b *Board) ValidateOpponentCMove(p Pos, opponent color.Color) bool {
	if opponent != color.Black || b.rule != color.Renju {
		return true
	}
	return !b.CheckForbiddenPoint(p)
}
