package random

import (
	"math/rand"

	"github.com/they4kman/termsweep/game"
	"github.com/they4kman/termsweep/play"
)

// Director reveals hidden tiles in a random order, leaving flagged ones alone
type Director struct {
	rand  *rand.Rand
	order []game.Coord
}

func NewDirector(r *rand.Rand) *Director {
	return &Director{rand: r}
}

func (director *Director) shuffle(board *game.Board) {
	size := board.Size()
	director.order = make([]game.Coord, 0, board.NumTiles())
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			director.order = append(director.order, game.Coord{Row: row, Col: col})
		}
	}

	director.rand.Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

func (director *Director) Next(board *game.Board) (play.Command, bool) {
	if director.order == nil {
		director.shuffle(board)
	}

	for len(director.order) > 0 {
		coord := director.order[0]
		director.order = director.order[1:]

		tile, err := board.TileAt(coord.Row, coord.Col)
		if err != nil {
			return play.Command{}, false
		}
		if !tile.IsRevealed() && !tile.IsFlagged() {
			return play.Command{Action: play.Reveal, Row: coord.Row, Col: coord.Col}, true
		}
	}

	return play.Command{}, false
}
