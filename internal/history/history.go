package history

import (
	"github.com/subarashikihibi/rapfi/internal/board"
	"github.com/subarashikihibi/rapfi/internal/color"
	"github.com/subarashikihibi/rapfi/internal/pattern4"
)

type Bucket int

const (
	Attack Bucket = iota
	Quiet
	numBuckets
)

const historyMax = 1 << 14

type Main struct {
	size  int
	table [2][][numBuckets]int32
}

func NewMain(size int) *Main {
	m := &Main{size: size}
	m.table[0] = make([][numBuckets]int32, size*size)
	m.table[1] = make([][numBuckets]int32, size*size)
	return m
}

func (m *Main) Get(c color.Color, p board.Pos, bucket Bucket) int {
	return int(m.table[c][p.MoveIndex(m.size)][bucket])
}

// Update's gravity term shrinks the bonus as the counter nears historyMax,
// so it self-limits instead of needing a periodic reset.
func (m *Main) Update(c color.Color, p board.Pos, bucket Bucket, bonus int) {
	idx := p.MoveIndex(m.size)
	cur := int(m.table[c][idx][bucket])
	delta := bonus - cur*abs(bonus)/historyMax
	cur += delta
	if cur > historyMax {
		cur = historyMax
	}
	if cur < -historyMax {
		cur = -historyMax
	}
	m.table[c][idx][bucket] = int32(cur)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

type CounterMove struct {
	size  int
	reply [2][]board.Pos
	p4    [2][]pattern4.Pattern4
}

func NewCounterMove(size int) *CounterMove {
	cm := &CounterMove{size: size}
	cm.reply[0] = make([]board.Pos, size*size)
	cm.reply[1] = make([]board.Pos, size*size)
	cm.p4[0] = make([]pattern4.Pattern4, size*size)
	cm.p4[1] = make([]pattern4.Pattern4, size*size)
	for i := range cm.reply[0] {
		cm.reply[0][i] = board.NONE
		cm.reply[1][i] = board.NONE
	}
	return cm
}

func (cm *CounterMove) Get(c color.Color, lastMove board.Pos) (board.Pos, pattern4.Pattern4) {
	if lastMove.IsNone() {
		return board.NONE, pattern4.NONE
	}
	idx := lastMove.MoveIndex(cm.size)
	return cm.reply[c][idx], cm.p4[c][idx]
}

func (cm *CounterMove) Set(c color.Color, lastMove, reply board.Pos, p4 pattern4.Pattern4) {
	if lastMove.IsNone() {
		return
	}
	idx := lastMove.MoveIndex(cm.size)
	cm.reply[c][idx] = reply
	cm.p4[c][idx] = p4
}

// Continuation is reserved; nothing populates or reads it yet.
type Continuation struct{}

func (Continuation) Get(color.Color, board.Pos) int { return 0 }
