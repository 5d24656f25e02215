package game

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Board is a square grid of tiles, indexed [row][col]. It starts out empty
// and is filled exactly once, either by Populate or by RestoreBoard.
type Board struct {
	size     int // in number of tiles per side
	numMines int
	tiles    [][]Tile
}

// NewBoard returns an empty board; Populate must be called before play.
func NewBoard(size, numMines int) (*Board, error) {
	if err := validateParams(size, numMines); err != nil {
		return nil, err
	}

	return &Board{
		size:     size,
		numMines: numMines,
	}, nil
}

// RestoreBoard builds an already-populated board from captured tiles. It is
// the counterpart of the Size, MineCount and TileAt getters.
func RestoreBoard(size, numMines int, tiles [][]Tile) (*Board, error) {
	if err := validateParams(size, numMines); err != nil {
		return nil, err
	}
	if len(tiles) != size {
		return nil, errors.Wrapf(ErrInvalidParams, "expected %d rows, got %d", size, len(tiles))
	}

	board := &Board{
		size:     size,
		numMines: numMines,
		tiles:    make([][]Tile, size),
	}

	mines := 0
	for row, rowTiles := range tiles {
		if len(rowTiles) != size {
			return nil, errors.Wrapf(ErrInvalidParams, "row %d: expected %d tiles, got %d", row, size, len(rowTiles))
		}

		board.tiles[row] = make([]Tile, size)
		for col, tile := range rowTiles {
			restored, err := RestoreTile(tile.isMine, tile.revealed, tile.flagged)
			if err != nil {
				return nil, errors.Wrapf(err, "tile (%d, %d)", row, col)
			}
			if restored.isMine {
				mines++
			}
			board.tiles[row][col] = restored
		}
	}

	if mines != numMines {
		return nil, errors.Wrapf(ErrInvalidParams, "expected %d mines, found %d", numMines, mines)
	}

	return board, nil
}

func validateParams(size, numMines int) error {
	if size < 1 {
		return errors.Wrapf(ErrInvalidParams, "size must be at least 1, got %d", size)
	}
	if numMines < 0 || numMines >= size*size {
		return errors.Wrapf(ErrInvalidParams, "mine count must be in [0, %d), got %d", size*size, numMines)
	}
	return nil
}

func (board *Board) Size() int {
	return board.size
}

func (board *Board) MineCount() int {
	return board.numMines
}

func (board *Board) NumTiles() int {
	return board.size * board.size
}

func (board *Board) IsPopulated() bool {
	return board.tiles != nil
}

// FlagCount is the number of tiles currently flagged
func (board *Board) FlagCount() int {
	numFlags := 0
	for _, row := range board.tiles {
		for _, tile := range row {
			if tile.flagged {
				numFlags++
			}
		}
	}
	return numFlags
}

// RemainingMines is the mine count minus the flags placed, which may go
// negative when the player over-flags.
func (board *Board) RemainingMines() int {
	return board.numMines - board.FlagCount()
}

// TileAt returns a copy of the tile at the given coordinates
func (board *Board) TileAt(row, col int) (Tile, error) {
	tile, err := board.tileAt(row, col)
	if err != nil {
		return Tile{}, err
	}
	return *tile, nil
}

func (board *Board) inBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < board.size && col < board.size
}

func (board *Board) checkBounds(row, col int) error {
	if !board.inBounds(row, col) {
		return errors.Wrapf(ErrOutOfBounds, "(%d, %d) on a %dx%d board", row, col, board.size, board.size)
	}
	return nil
}

func (board *Board) tileAt(row, col int) (*Tile, error) {
	if err := board.checkBounds(row, col); err != nil {
		return nil, err
	}
	if !board.IsPopulated() {
		return nil, ErrNotPopulated
	}
	return &board.tiles[row][col], nil
}

// Populate fills the board with tiles, exactly MineCount of them mines. A
// flat list of mine flags is fully shuffled and then handed out in row-major
// order, so every arrangement is equally likely. Passing a nil rng seeds one
// from the clock.
func (board *Board) Populate(r *rand.Rand) error {
	if board.IsPopulated() {
		return ErrAlreadyPopulated
	}
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	mineOrder := make([]bool, board.NumTiles())
	for i := 0; i < board.numMines; i++ {
		mineOrder[i] = true
	}
	r.Shuffle(len(mineOrder), func(i, j int) {
		mineOrder[i], mineOrder[j] = mineOrder[j], mineOrder[i]
	})

	tiles := make([][]Tile, board.size)
	for row := range tiles {
		tiles[row] = make([]Tile, board.size)
		for col := range tiles[row] {
			tiles[row][col] = newTile(mineOrder[row*board.size+col])
		}
	}
	board.tiles = tiles

	Log.WithFields(logrus.Fields{
		"size":  board.size,
		"mines": board.numMines,
	}).Debug("board populated")

	return nil
}

// NeighborsOf returns the in-bounds coordinates surrounding (row, col), in a
// fixed order: the row above left to right, then left and right, then the
// row below.
func (board *Board) NeighborsOf(row, col int) ([]Coord, error) {
	if err := board.checkBounds(row, col); err != nil {
		return nil, err
	}
	return board.neighbors(Coord{row, col}), nil
}

func (board *Board) neighbors(coord Coord) []Coord {
	neighbors := make([]Coord, 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		neighbor := Coord{coord.Row + offset.Row, coord.Col + offset.Col}
		if board.inBounds(neighbor.Row, neighbor.Col) {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

// NumMinesAround counts the mines adjacent to (row, col)
func (board *Board) NumMinesAround(row, col int) (int, error) {
	if _, err := board.tileAt(row, col); err != nil {
		return 0, err
	}
	return board.numMinesAround(Coord{row, col}), nil
}

func (board *Board) numMinesAround(coord Coord) int {
	numMines := 0
	for _, neighbor := range board.neighbors(coord) {
		if board.tiles[neighbor.Row][neighbor.Col].isMine {
			numMines++
		}
	}
	return numMines
}

// isClear reports whether no neighbor of coord is a mine or flagged; only
// then does a reveal spread past coord.
func (board *Board) isClear(coord Coord) bool {
	for _, neighbor := range board.neighbors(coord) {
		tile := &board.tiles[neighbor.Row][neighbor.Col]
		if tile.isMine || tile.flagged {
			return false
		}
	}
	return true
}

// Reveal opens the tile at (row, col). Hitting a mine reports Loss and leaves
// the board untouched. Otherwise the tile is revealed and, if it has neither
// mines nor flags around it, the reveal cascades through its neighbors until
// it reaches tiles that border a mine or a flag.
func (board *Board) Reveal(row, col int) (RevealOutcome, error) {
	tile, err := board.tileAt(row, col)
	if err != nil {
		return Continue, err
	}

	if tile.isMine {
		Log.WithFields(logrus.Fields{
			"row": row,
			"col": col,
		}).Debug("revealed a mine")
		return Loss, nil
	}
	if tile.revealed {
		return Continue, nil
	}

	numVisited := flood(
		Coord{row, col},
		func(coord Coord) bool {
			tile := &board.tiles[coord.Row][coord.Col]
			if tile.revealed {
				return false
			}
			tile.reveal()
			return board.isClear(coord)
		},
		board.neighbors,
	)

	Log.WithFields(logrus.Fields{
		"row":     row,
		"col":     col,
		"visited": numVisited,
	}).Debug("revealed tile")

	if board.IsWon() {
		return Win, nil
	}
	return Continue, nil
}

// SetFlag flags or unflags the tile at (row, col). It has no effect on any
// other tile.
func (board *Board) SetFlag(row, col int, isFlagged bool) error {
	tile, err := board.tileAt(row, col)
	if err != nil {
		return err
	}
	if err := tile.SetFlagged(isFlagged); err != nil {
		return errors.Wrapf(err, "(%d, %d)", row, col)
	}
	return nil
}

// IsWon reports whether every tile is a winning tile. An unpopulated board is
// never won.
func (board *Board) IsWon() bool {
	if !board.IsPopulated() {
		return false
	}

	for _, row := range board.tiles {
		for i := range row {
			if !row[i].IsWinningTile() {
				return false
			}
		}
	}
	return true
}

// Render returns what every tile shows to the player: Hidden or Flag while
// unrevealed, otherwise the number of adjacent mines.
func (board *Board) Render() ([][]Symbol, error) {
	if !board.IsPopulated() {
		return nil, ErrNotPopulated
	}

	symbols := make([][]Symbol, board.size)
	for row := range symbols {
		symbols[row] = make([]Symbol, board.size)
		for col := range symbols[row] {
			tile := &board.tiles[row][col]
			switch {
			case tile.revealed:
				symbols[row][col] = Symbol(board.numMinesAround(Coord{row, col}))
			case tile.flagged:
				symbols[row][col] = Flag
			default:
				symbols[row][col] = Hidden
			}
		}
	}
	return symbols, nil
}
