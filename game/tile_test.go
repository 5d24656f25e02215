package game

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileReveal(t *testing.T) {
	tile := newTile(false)
	assert.False(t, tile.IsRevealed())

	tile.reveal()
	assert.True(t, tile.IsRevealed())

	tile.reveal()
	assert.True(t, tile.IsRevealed())
	assert.False(t, tile.IsFlagged())
}

func TestTileRevealDropsFlag(t *testing.T) {
	tile := newTile(false)
	require.NoError(t, tile.SetFlagged(true))

	tile.reveal()
	assert.True(t, tile.IsRevealed())
	assert.False(t, tile.IsFlagged())
}

func TestTileSetFlagged(t *testing.T) {
	tile := newTile(true)

	require.NoError(t, tile.SetFlagged(true))
	assert.True(t, tile.IsFlagged())

	require.NoError(t, tile.SetFlagged(false))
	assert.False(t, tile.IsFlagged())

	require.NoError(t, tile.SetFlagged(false))
	assert.False(t, tile.IsFlagged())
}

func TestTileSetFlaggedOnRevealed(t *testing.T) {
	tile := newTile(false)
	tile.reveal()

	err := tile.SetFlagged(true)
	assert.True(t, errors.Is(err, ErrFlagOnRevealed))
	assert.False(t, tile.IsFlagged())
	assert.True(t, tile.IsRevealed())
}

func TestTileIsWinningTile(t *testing.T) {
	tests := []struct {
		name                      string
		isMine, revealed, flagged bool
		want                      bool
	}{
		{name: "hidden mine", isMine: true},
		{name: "flagged mine", isMine: true, flagged: true, want: true},
		{name: "hidden safe"},
		{name: "flagged safe", flagged: true},
		{name: "revealed safe", revealed: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile, err := RestoreTile(tt.isMine, tt.revealed, tt.flagged)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tile.IsWinningTile())
		})
	}
}

func TestRestoreTileRejectsImpossibleStates(t *testing.T) {
	_, err := RestoreTile(false, true, true)
	assert.True(t, errors.Is(err, ErrInvalidTile))

	_, err = RestoreTile(true, true, false)
	assert.True(t, errors.Is(err, ErrInvalidTile))
}
