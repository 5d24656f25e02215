package play

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/termsweep/game"
	"github.com/they4kman/termsweep/snapshot"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	os.Exit(m.Run())
}

// configFromLayout returns a config whose board has mines at the 'x' positions
// of the layout, one string per row.
func configFromLayout(t *testing.T, layout ...string) GameConfig {
	t.Helper()

	numMines := strings.Count(strings.Join(layout, ""), "x")
	serialized := strings.NewReplacer("x", "O", ".", "#").Replace(strings.Join(layout, "\n"))

	config := NewGameConfig()
	config.Snapshot = &snapshot.BoardSnapshot{
		Size:            len(layout),
		NumMines:        numMines,
		SerializedBoard: serialized,
	}
	config.SavePath = filepath.Join(t.TempDir(), "save.yaml")
	return config
}

func runSession(t *testing.T, config GameConfig, input string) (game.RevealOutcome, string) {
	t.Helper()

	var out bytes.Buffer
	session, err := NewSession(config, strings.NewReader(input), &out)
	require.NoError(t, err)

	outcome, err := session.Run()
	require.NoError(t, err)
	return outcome, out.String()
}

func TestSessionEmptyBoardWins(t *testing.T) {
	config := configFromLayout(t, "...", "...", "...")

	outcome, out := runSession(t, config, "reveal, 1, 1\n")
	assert.Equal(t, game.Win, outcome)
	assert.Contains(t, out, "You win!")
	assert.Contains(t, out, "0  _ _ _\n")
}

func TestSessionRevealMineLoses(t *testing.T) {
	config := configFromLayout(t, "x..", "...", "...")

	outcome, out := runSession(t, config, "reveal, 0, 0\nreveal, 2, 2\n")
	assert.Equal(t, game.Loss, outcome)
	assert.Contains(t, out, "You lose!")
	assert.Equal(t, 1, strings.Count(out, prompt))
}

func TestSessionRejectsBadMoves(t *testing.T) {
	config := configFromLayout(t, "x..", "...", "...")

	input := strings.Join([]string{
		"dance",
		"reveal, 9, 9",
		"reveal, 2, 2",
		"flag, 1, 1",
		"flag, 0, 0",
	}, "\n")

	outcome, out := runSession(t, config, input)
	assert.Equal(t, game.Win, outcome)
	assert.Equal(t, 3, strings.Count(out, "Invalid move"))
	assert.Contains(t, out, "Mines left: 1\n")
	assert.Contains(t, out, "Mines left: 0\n")
}

func TestSessionEndsWithInput(t *testing.T) {
	config := configFromLayout(t, "x..", "...", "...")

	outcome, out := runSession(t, config, "flag, 0, 0\nunflag, 0, 0\n")
	assert.Equal(t, game.Continue, outcome)
	assert.NotContains(t, out, "You win!")
	assert.NotContains(t, out, "You lose!")
}

func TestSessionSave(t *testing.T) {
	config := configFromLayout(t, "x..", "...", "...")

	_, out := runSession(t, config, "flag, 0, 0\nreveal, 1, 1\nsave\n")
	assert.Contains(t, out, "Game saved to "+config.SavePath)

	snap, err := snapshot.LoadFile(config.SavePath)
	require.NoError(t, err)
	assert.Equal(t, "F##\n#.#\n###", snap.SerializedBoard)

	config.Snapshot = snap
	outcome, _ := runSession(t, config, "reveal, 2, 2\n")
	assert.Equal(t, game.Win, outcome)
}

func TestSessionSavesFinalSnapshot(t *testing.T) {
	config := configFromLayout(t, "...", "...", "...")
	config.SavedSnapshotsDir = filepath.Join(t.TempDir(), "replays")

	runSession(t, config, "reveal, 0, 0\n")

	entries, err := os.ReadDir(config.SavedSnapshotsDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), "_win.yaml"))
}

func TestSessionFreshBoard(t *testing.T) {
	config := NewGameConfig()
	config.Size = 4
	config.NumMines = 3
	config.Seed = 99

	var out bytes.Buffer
	session, err := NewSession(config, strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.Equal(t, 4, session.Board().Size())
	assert.Equal(t, 3, session.Board().MineCount())
	assert.True(t, session.Board().IsPopulated())
}

func TestSessionInvalidConfig(t *testing.T) {
	config := NewGameConfig()
	config.Size = 2
	config.NumMines = 4

	_, err := NewSession(config, strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorIs(t, err, game.ErrInvalidParams)
}

type scriptedDirector struct {
	moves []Command
}

func (director *scriptedDirector) Next(board *game.Board) (Command, bool) {
	if len(director.moves) == 0 {
		return Command{}, false
	}
	command := director.moves[0]
	director.moves = director.moves[1:]
	return command, true
}

func TestSessionWithDirector(t *testing.T) {
	config := configFromLayout(t, "x..", "...", "...")
	config.Director = &scriptedDirector{moves: []Command{
		{Action: Flag, Row: 0, Col: 0},
		{Action: Reveal, Row: 2, Col: 2},
	}}

	outcome, out := runSession(t, config, "")
	assert.Equal(t, game.Win, outcome)
	assert.Contains(t, out, "> flag, 0, 0\n")
	assert.Contains(t, out, "> reveal, 2, 2\n")
	assert.NotContains(t, out, prompt)
}

func TestGenerateReplayFilename(t *testing.T) {
	at := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

	assert.Equal(t, "20240309_140507_win.yaml", generateReplayFilename(game.Win, at))
	assert.Equal(t, "20240309_140507_loss.yaml", generateReplayFilename(game.Loss, at))
	assert.Equal(t, "20240309_140507_other.yaml", generateReplayFilename(game.Continue, at))
}
