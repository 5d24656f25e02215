// Package snapshot saves and restores whole boards as YAML documents.
package snapshot

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/they4kman/termsweep/game"
	"gopkg.in/yaml.v2"
)

var ErrMalformed = errors.New("malformed snapshot")

// Characters used to store each tile in the serialized board
const (
	hiddenMine  = 'O'
	flaggedMine = 'F'
	hiddenSafe  = '#'
	flaggedSafe = 'f'
	revealed    = '.'
)

type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	Size            int    `yaml:"size"`
	NumMines        int    `yaml:"mines"`
	SerializedBoard string `yaml:"board"`
}

// Take captures the full state of a populated board
func Take(board *game.Board, seed int64) (*BoardSnapshot, error) {
	if !board.IsPopulated() {
		return nil, game.ErrNotPopulated
	}

	size := board.Size()
	rows := make([]string, size)
	for row := 0; row < size; row++ {
		var rowBuilder strings.Builder
		for col := 0; col < size; col++ {
			tile, err := board.TileAt(row, col)
			if err != nil {
				return nil, err
			}
			rowBuilder.WriteByte(serializeTile(tile))
		}
		rows[row] = rowBuilder.String()
	}

	return &BoardSnapshot{
		Seed:            seed,
		Size:            size,
		NumMines:        board.MineCount(),
		SerializedBoard: strings.Join(rows, "\n"),
	}, nil
}

func serializeTile(tile game.Tile) byte {
	switch {
	case tile.IsMine():
		if tile.IsFlagged() {
			return flaggedMine
		}
		return hiddenMine
	case tile.IsFlagged():
		return flaggedSafe
	case tile.IsRevealed():
		return revealed
	default:
		return hiddenSafe
	}
}

func deserializeTile(c rune, fresh bool) (game.Tile, error) {
	var isMine, isRevealed, isFlagged bool
	switch c {
	case hiddenMine:
		isMine = true
	case flaggedMine:
		isMine, isFlagged = true, true
	case flaggedSafe:
		isFlagged = true
	case revealed:
		isRevealed = true
	case hiddenSafe:
	default:
		return game.Tile{}, errors.Wrapf(ErrMalformed, "unknown tile character %q", c)
	}

	if fresh {
		isRevealed, isFlagged = false, false
	}
	return game.RestoreTile(isMine, isRevealed, isFlagged)
}

func (snapshot *BoardSnapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", errors.Wrap(err, "marshalling snapshot")
	}
	return string(out), nil
}

// Restore rebuilds the board. With fresh set, all reveal and flag progress is
// discarded and only the mine layout is kept.
func (snapshot *BoardSnapshot) Restore(fresh bool) (*game.Board, error) {
	rows := strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")
	if len(rows) != snapshot.Size {
		return nil, errors.Wrapf(ErrMalformed, "size is %d but board has %d rows", snapshot.Size, len(rows))
	}

	tiles := make([][]game.Tile, len(rows))
	for row, line := range rows {
		line = strings.TrimSpace(line)
		tiles[row] = make([]game.Tile, 0, snapshot.Size)
		for _, c := range line {
			tile, err := deserializeTile(c, fresh)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d", row)
			}
			tiles[row] = append(tiles[row], tile)
		}
		if len(tiles[row]) != snapshot.Size {
			return nil, errors.Wrapf(ErrMalformed, "row %d has %d tiles, expected %d", row, len(tiles[row]), snapshot.Size)
		}
	}

	board, err := game.RestoreBoard(snapshot.Size, snapshot.NumMines, tiles)
	if err != nil {
		return nil, errors.Wrap(err, "restoring board")
	}
	return board, nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}
	return &snapshot, nil
}

func LoadFile(path string) (*BoardSnapshot, error) {
	in, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading snapshot %s", path)
	}
	return LoadSnapshot(string(in))
}

func SaveFile(path string, snapshot *BoardSnapshot) error {
	out, err := snapshot.Serialize()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return errors.Wrapf(err, "writing snapshot %s", path)
	}
	return nil
}
