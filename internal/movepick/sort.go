package movepick

import "github.com/subarashikihibi/rapfi/internal/board"

// MaxMoves bounds the inline move buffer, sized above any board this
// core is exercised against (up to 20x20).
const MaxMoves = 512

const (
	insertionSortLimit = MaxMoves / 4
	sortLimit          = MaxMoves * 2 / 3
)

func partialSort(moves []board.Move, limit board.Score) {
	n := len(moves)
	switch {
	case n <= insertionSortLimit:
		insertionSort(moves, limit)
	case n <= sortLimit:
		fullSort(moves)
	default:
		boundedPartialSort(moves, sortLimit)
	}
}

func insertionSort(moves []board.Move, limit board.Score) {
	w := 0
	for i := 0; i < len(moves); i++ {
		if moves[i].Score >= limit {
			moves[i], moves[w] = moves[w], moves[i]
			w++
		}
	}
	prefix := moves[:w]
	for i := 1; i < len(prefix); i++ {
		m := prefix[i]
		j := i - 1
		for j >= 0 && prefix[j].Score < m.Score {
			prefix[j+1] = prefix[j]
			j--
		}
		prefix[j+1] = m
	}
}

func fullSort(moves []board.Move) {
	for i := 1; i < len(moves); i++ {
		m := moves[i]
		j := i - 1
		for j >= 0 && moves[j].Score < m.Score {
			moves[j+1] = moves[j]
			j--
		}
		moves[j+1] = m
	}
}

// boundedPartialSort selects the k highest-value elements regardless of
// limit; callers only invoke this with limit 0, so that doesn't matter.
func boundedPartialSort(moves []board.Move, k int) {
	if k > len(moves) {
		k = len(moves)
	}
	for i := 0; i < k; i++ {
		best := i
		for j := i + 1; j < len(moves); j++ {
			if moves[j].Score > moves[best].Score {
				best = j
			}
		}
		moves[i], moves[best] = moves[best], moves[i]
	}
}
