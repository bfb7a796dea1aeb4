package board

import "fmt"

type Pos struct {
	X, Y int16
}

// NONE marks an absent TT move, a terminal pick, or an unset last-move slot.
var NONE = Pos{X: -1, Y: -1}

func MakePos(x, y int) Pos { return Pos{X: int16(x), Y: int16(y)} }

func (p Pos) IsNone() bool { return p == NONE }

func (p Pos) MoveIndex(size int) int { return int(p.Y)*size + int(p.X) }

func (p Pos) String() string {
	if p.IsNone() {
		return "none"
	}
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
