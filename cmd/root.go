package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/termsweep/director/random"
	"github.com/they4kman/termsweep/game"
	"github.com/they4kman/termsweep/play"
	"github.com/they4kman/termsweep/snapshot"
)

var gameConfig = play.NewGameConfig()
var (
	useDirector  = false
	snapshotPath = ""
	logLevel     = "warning"
)

var rootCmd = &cobra.Command{
	Use:   "termsweep",
	Short: "Play Minesweeper in the terminal",
	Long: `termsweep is a terminal Minesweeper game which supports human- or
computer-driven playing.

Run with no arguments to play manually
	termsweep

Moves are typed as "action, row, col", e.g.
	reveal, 3, 4
	flag, 0, 2
	unflag, 0, 2
	save

Use the director flag to make the computer play for you
	termsweep --director
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		for _, log := range []*logrus.Logger{game.Log, play.Log} {
			log.SetOutput(os.Stderr)
			log.SetLevel(level)
		}

		if !cmd.Flags().Changed("seed") {
			gameConfig.Seed = time.Now().UnixNano()
		}

		if snapshotPath != "" {
			snap, err := snapshot.LoadFile(snapshotPath)
			if err != nil {
				return err
			}
			gameConfig.Snapshot = snap
			if !cmd.Flags().Changed("seed") {
				gameConfig.Seed = snap.Seed
			}
		}

		if useDirector {
			gameConfig.Director = random.NewDirector(rand.New(rand.NewSource(gameConfig.Seed)))
		}

		session, err := play.NewSession(gameConfig, os.Stdin, os.Stdout)
		if err != nil {
			return err
		}

		outcome, err := session.Run()
		if err != nil {
			return err
		}
		if outcome == game.Loss {
			os.Exit(2)
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().IntVarP(&gameConfig.Size, "size", "s", gameConfig.Size, "Width and height of the game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.NumMines, "mines", "m", gameConfig.NumMines, "Number of mines to place in the game board")
	rootCmd.Flags().Int64Var(&gameConfig.Seed, "seed", 0, "Seed for mine placement (defaults to the current time)")
	rootCmd.Flags().StringVarP(&snapshotPath, "load", "l", "", "Load the board from a saved snapshot")
	rootCmd.Flags().BoolVar(&gameConfig.LoadSnapshotFresh, "fresh", gameConfig.LoadSnapshotFresh, "When loading a snapshot, keep only its mines and start over")
	rootCmd.Flags().StringVar(&gameConfig.SavePath, "save", gameConfig.SavePath, "File written by the save move")
	rootCmd.Flags().StringVar(&gameConfig.SavedSnapshotsDir, "snapshots-dir", "", "Directory where a snapshot of every finished game is saved")
	rootCmd.Flags().BoolVarP(&useDirector, "director", "d", false, "Make the computer play")
	rootCmd.Flags().StringVar(&logLevel, "log-level", logLevel, "Log level (debug, info, warning, error)")
}
