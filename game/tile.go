package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// Tile is a single square of the board. Whether it holds a mine is decided
// when it is created and never changes.
type Tile struct {
	isMine, revealed, flagged bool
}

func newTile(isMine bool) Tile {
	return Tile{isMine: isMine}
}

// RestoreTile rebuilds a tile from previously captured state. Revealed tiles
// can be neither flagged nor mines, since a revealed mine ends the game
// without being marked.
func RestoreTile(isMine, revealed, flagged bool) (Tile, error) {
	if revealed && flagged {
		return Tile{}, errors.Wrap(ErrInvalidTile, "revealed tile cannot be flagged")
	}
	if revealed && isMine {
		return Tile{}, errors.Wrap(ErrInvalidTile, "mine cannot be revealed")
	}
	return Tile{isMine: isMine, revealed: revealed, flagged: flagged}, nil
}

func (tile Tile) String() string {
	return fmt.Sprintf("Tile(mine=%v, revealed=%v, flagged=%v)", tile.isMine, tile.revealed, tile.flagged)
}

func (tile *Tile) IsMine() bool {
	return tile.isMine
}

func (tile *Tile) IsRevealed() bool {
	return tile.revealed
}

func (tile *Tile) IsFlagged() bool {
	return tile.flagged
}

// reveal is idempotent. A revealed tile is never flagged, so any flag is
// dropped.
func (tile *Tile) reveal() {
	tile.revealed = true
	tile.flagged = false
}

// SetFlagged marks or unmarks the tile as a suspected mine. Flags only make
// sense on hidden tiles; a revealed tile is left untouched and
// ErrFlagOnRevealed is returned.
func (tile *Tile) SetFlagged(isFlagged bool) error {
	if tile.revealed {
		return ErrFlagOnRevealed
	}
	tile.flagged = isFlagged
	return nil
}

// IsWinningTile reports whether the tile is already in its won state: a
// flagged mine, or a revealed safe tile.
func (tile *Tile) IsWinningTile() bool {
	if tile.isMine {
		return tile.flagged
	}
	return tile.revealed
}
