package play

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/termsweep/game"
	"github.com/they4kman/termsweep/snapshot"
)

type GameConfig struct {
	Size     int
	NumMines int

	Seed int64

	// Snapshot to load board configuration from
	Snapshot *snapshot.BoardSnapshot
	// Whether to set all cells as unrevealed when loading the Snapshot
	LoadSnapshotFresh bool

	// Computer player making the moves; nil reads them from the input
	Director Director

	// File written by the save command
	SavePath string
	// Path to directory where final snapshots of boards should be saved
	SavedSnapshotsDir string
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Size:              8,
		NumMines:          10,
		Snapshot:          nil,
		LoadSnapshotFresh: false,
		Director:          nil,
		SavePath:          "termsweep.yaml",
	}
}

// createBoard returns a ready-to-play board, either freshly populated or
// restored from the configured snapshot.
func (config GameConfig) createBoard() (*game.Board, error) {
	if config.Snapshot == nil {
		board, err := game.NewBoard(config.Size, config.NumMines)
		if err != nil {
			return nil, err
		}
		if err := board.Populate(rand.New(rand.NewSource(config.Seed))); err != nil {
			return nil, err
		}
		return board, nil
	}

	return config.Snapshot.Restore(config.LoadSnapshotFresh)
}

func (config GameConfig) onGameEnd(board *game.Board, outcome game.RevealOutcome) {
	if err := config.saveFinalSnapshot(board, outcome, time.Now()); err != nil {
		Log.WithError(err).Error("could not save final snapshot")
	}
}

func (config GameConfig) saveFinalSnapshot(board *game.Board, outcome game.RevealOutcome, t time.Time) error {
	if config.SavedSnapshotsDir == "" {
		return nil
	}

	stat, err := os.Stat(config.SavedSnapshotsDir)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		if err := os.MkdirAll(config.SavedSnapshotsDir, 0777); err != nil {
			return err
		}
	} else if !stat.Mode().IsDir() {
		return errors.Errorf("%s is not a directory; cannot save snapshots to it", config.SavedSnapshotsDir)
	}

	snap, err := snapshot.Take(board, config.Seed)
	if err != nil {
		return err
	}

	path := filepath.Join(config.SavedSnapshotsDir, generateReplayFilename(outcome, t))
	if err := snapshot.SaveFile(path, snap); err != nil {
		return err
	}

	Log.WithFields(logrus.Fields{
		"path": path,
	}).Info("saved final snapshot")
	return nil
}

func generateReplayFilename(outcome game.RevealOutcome, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))

	var stateStr string
	switch outcome {
	case game.Win:
		stateStr = "win"
	case game.Loss:
		stateStr = "loss"
	default:
		stateStr = "other"
	}
	filenameBuilder.WriteString(stateStr)

	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}
