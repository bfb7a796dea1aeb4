package movegen

import (
	"github.com/subarashikihibi/rapfi/internal/board"
	"github.com/subarashikihibi/rapfi/internal/color"
	"github.com/subarashikihibi/rapfi/internal/pattern4"
)

// Kind's base values are mutually exclusive; All and Comb are modifiers
// OR'd with a base kind, and All on its own selects every empty cell.
type Kind uint32

const (
	Winning Kind = 1 << iota
	DefendFive
	DefendFour
	DefendB4F3
	VCF
	All
	Comb
)

func hasKind(k, base Kind) bool { return k&base == base }

func RangeSquare2Line4(seed, p board.Pos) bool {
	dx := int(p.X) - int(seed.X)
	dy := int(p.Y) - int(seed.Y)
	cheb := absInt(dx)
	if absInt(dy) > cheb {
		cheb = absInt(dy)
	}
	if cheb <= 2 {
		return true
	}
	onLine := dx == 0 || dy == 0 || absInt(dx) == absInt(dy)
	return onLine && cheb <= 4
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func legalForSelf(b *board.Board, self color.Color, p board.Pos) bool {
	if self != color.Black {
		return true
	}
	return !b.CheckForbiddenPoint(p)
}

// Generate writes positions matching kind for self into dst (up to its
// length) and returns the count written.
func Generate(b *board.Board, self color.Color, kind Kind, dst []board.Move) int {
	oppo := self.Opponent()
	n := 0
	emit := func(p board.Pos) bool {
		if n >= len(dst) {
			return false
		}
		dst[n] = board.Move{Pos: p}
		n++
		return true
	}

	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			p := board.MakePos(x, y)
			if !b.IsEmpty(p) {
				continue
			}
			cell := b.Cell(p)
			if !matchesKind(cell, self, oppo, kind) {
				continue
			}
			if !legalForSelf(b, self, p) {
				continue
			}
			if !emit(p) {
				return n
			}
		}
	}
	return n
}

func matchesKind(cell board.Cell, self, oppo color.Color, kind Kind) bool {
	switch {
	case hasKind(kind, Winning):
		return cell.Pattern4(int(self)) == pattern4.A_FIVE
	case hasKind(kind, DefendFive):
		return cell.Pattern4(int(oppo)) == pattern4.A_FIVE
	case hasKind(kind, DefendFour):
		if cell.Pattern4(int(oppo)) == pattern4.B_FLEX4 || cell.Pattern4(int(oppo)) == pattern4.A_FIVE {
			return true
		}
		return kind&All == All
	case hasKind(kind, DefendB4F3):
		return cell.Pattern4(int(oppo)) == pattern4.C_BLOCK4_FLEX3
	case hasKind(kind, VCF):
		if cell.Pattern4(int(self)) >= pattern4.E_BLOCK4 {
			return true
		}
		if kind&Comb == Comb {
			return cell.Pattern4(int(self)) >= pattern4.H_FLEX3 && cell.Pattern4(int(self)) != pattern4.FORBID
		}
		return false
	case kind == All:
		return true
	default:
		return false
	}
}

// GenerateNeighbors is Generate restricted to RangeSquare2Line4 around seed.
func GenerateNeighbors(b *board.Board, self color.Color, kind Kind, seed board.Pos, dst []board.Move) int {
	oppo := self.Opponent()
	n := 0
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			p := board.MakePos(x, y)
			if !RangeSquare2Line4(seed, p) {
				continue
			}
			if !b.IsEmpty(p) {
				continue
			}
			cell := b.Cell(p)
			if !matchesKind(cell, self, oppo, kind) {
				continue
			}
			if !legalForSelf(b, self, p) {
				continue
			}
			if n >= len(dst) {
				return n
			}
			dst[n] = board.Move{Pos: p}
			n++
		}
	}
	return n
}

func ValidateOpponentCMove(b *board.Board, p board.Pos, opponent color.Color) bool {
	return b.ValidateOpponentCMove(p, opponent)
}
