package board

import "github.com/subarashikihibi/rapfi/internal/pattern4"

type Stone uint8

const (
	stoneEmpty Stone = iota
	stoneBlack
	stoneWhite
)

// Cell caches, per color, the pattern4 classification and static score a
// stone would have if played here. Occupied cells report pattern4.NONE.
type Cell struct {
	stone    Stone
	pattern4 [2]pattern4.Pattern4
	score    [2]int
}

func (c Cell) Pattern4(colorIdx int) pattern4.Pattern4 { return c.pattern4[colorIdx] }
func (c Cell) Score(colorIdx int) int                  { return c.score[colorIdx] }
