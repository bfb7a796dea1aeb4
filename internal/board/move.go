package board

type Score int32

type Move struct {
	Pos      Pos
	Score    Score
	RawScore Score
}
