package game

import "fmt"

// Symbol is what a single cell shows to the player
type Symbol int

const (
	Hidden Symbol = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Flag
)

var Symbols = []Symbol{
	Hidden,
	Empty,
	Number1,
	Number2,
	Number3,
	Number4,
	Number5,
	Number6,
	Number7,
	Number8,
	Flag,
}

func (symbol Symbol) String() string {
	switch {
	case symbol == Hidden:
		return "*"
	case symbol == Flag:
		return "F"
	case symbol == Empty:
		return "_"
	case symbol >= Number1 && symbol <= Number8:
		return fmt.Sprint(int(symbol))
	default:
		return "?"
	}
}

// RevealOutcome tells the driver whether the session goes on after a reveal
type RevealOutcome int

const (
	Continue RevealOutcome = iota
	Win
	Loss
)

func (outcome RevealOutcome) String() string {
	switch outcome {
	case Continue:
		return "continue"
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return fmt.Sprintf("RevealOutcome(%d)", int(outcome))
	}
}

// Coord addresses a tile by row and column
type Coord struct {
	Row, Col int
}

func (coord Coord) String() string {
	return fmt.Sprintf("(%d, %d)", coord.Row, coord.Col)
}

// Offsets of the eight surrounding tiles, in the order neighbors are reported
var neighborOffsets = [8]Coord{
	{-1, -1},
	{-1, 0},
	{-1, 1},
	{0, -1},
	{0, 1},
	{1, -1},
	{1, 0},
	{1, 1},
}
