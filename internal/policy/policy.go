package policy

import "github.com/subarashikihibi/rapfi/internal/board"

// Buffer is a per-cell score grid filled by an Evaluator. Score for a
// cell never flagged via SetComputeFlag is undefined.
type Buffer struct {
	size    int
	compute []bool
	scores  []board.Score
}

func NewBuffer(size int) *Buffer {
	return &Buffer{size: size, compute: make([]bool, size*size), scores: make([]board.Score, size*size)}
}

func (b *Buffer) SetComputeFlag(pos board.Pos) { b.compute[pos.MoveIndex(b.size)] = true }

func (b *Buffer) ShouldCompute(pos board.Pos) bool { return b.compute[pos.MoveIndex(b.size)] }

func (b *Buffer) Set(pos board.Pos, score board.Score) { b.scores[pos.MoveIndex(b.size)] = score }

func (b *Buffer) Score(pos board.Pos) board.Score { return b.scores[pos.MoveIndex(b.size)] }

// Evaluator is treated as a synchronous pure function with no failure
// mode; a backend that can fail to load handles that at construction.
type Evaluator interface {
	EvaluatePolicy(b *board.Board, buf *Buffer)
}
