package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/subarashikihibi/rapfi/internal/board"
	"github.com/subarashikihibi/rapfi/internal/color"
	"github.com/subarashikihibi/rapfi/internal/history"
	"github.com/subarashikihibi/rapfi/internal/movepick"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	const size = 15
	b := board.New(size, color.Freestyle)
	for _, p := range []board.Pos{
		board.MakePos(7, 7), board.MakePos(0, 0),
		board.MakePos(8, 7), board.MakePos(0, 1),
		board.MakePos(7, 8), board.MakePos(0, 2),
	} {
		b.Move(p)
	}

	tables := movepick.Tables{
		Main:        history.NewMain(size),
		CounterMove: history.NewCounterMove(size),
	}

	picker := movepick.NewRoot(b, tables)
	var yielded []board.Pos
	for {
		pos, ok := picker.Next()
		if !ok {
			break
		}
		yielded = append(yielded, pos)
	}

	coords := lo.Map(yielded, func(p board.Pos, _ int) string { return p.String() })
	log.Info().Strs("moves", coords).Int("count", len(coords)).Msg("root picker exhausted")
}
