package play

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/termsweep/game"
	"github.com/they4kman/termsweep/snapshot"
)

var Log = logrus.New()

const prompt = "Enter your move: (flag/unflag/reveal, row, col) or save"

// Session drives a single game: it shows the board, takes moves from the
// player or the director and stops once the game is won or lost.
type Session struct {
	config GameConfig
	board  *game.Board

	in  *bufio.Scanner
	out io.Writer
}

func NewSession(config GameConfig, in io.Reader, out io.Writer) (*Session, error) {
	board, err := config.createBoard()
	if err != nil {
		return nil, errors.Wrap(err, "creating board")
	}

	return &Session{
		config: config,
		board:  board,
		in:     bufio.NewScanner(in),
		out:    out,
	}, nil
}

func (session *Session) Board() *game.Board {
	return session.board
}

// Run plays until the game ends, returning Win or Loss. If the input or the
// director runs out of moves first, Continue is returned with a nil error.
func (session *Session) Run() (game.RevealOutcome, error) {
	Log.WithFields(logrus.Fields{
		"size":     session.board.Size(),
		"mines":    session.board.MineCount(),
		"seed":     session.config.Seed,
		"director": session.config.Director != nil,
	}).Info("game started")

	if session.board.IsWon() {
		return session.end(game.Win), nil
	}

	for {
		if err := session.display(); err != nil {
			return game.Continue, err
		}

		command, err := session.nextCommand()
		if err == io.EOF {
			Log.Info("no more moves, leaving game unfinished")
			return game.Continue, nil
		}
		if err != nil {
			if !errors.Is(err, ErrBadCommand) {
				return game.Continue, err
			}
			session.reject(err)
			continue
		}

		outcome, err := session.apply(command)
		if err != nil {
			session.reject(err)
			continue
		}
		if outcome != game.Continue {
			return session.end(outcome), nil
		}
	}
}

func (session *Session) display() error {
	symbols, err := session.board.Render()
	if err != nil {
		return err
	}
	fmt.Fprint(session.out, FormatBoard(symbols))
	fmt.Fprintf(session.out, "Mines left: %d\n", session.board.RemainingMines())
	return nil
}

func (session *Session) nextCommand() (Command, error) {
	if session.config.Director != nil {
		command, ok := session.config.Director.Next(session.board)
		if !ok {
			return Command{}, io.EOF
		}
		fmt.Fprintf(session.out, "> %s\n", command)
		return command, nil
	}

	fmt.Fprintln(session.out, prompt)
	if !session.in.Scan() {
		if err := session.in.Err(); err != nil {
			return Command{}, errors.Wrap(err, "reading move")
		}
		return Command{}, io.EOF
	}
	return ParseCommand(strings.TrimSpace(session.in.Text()))
}

// apply makes a single move. Flagging can finish the game as well, when the
// last mine gets flagged.
func (session *Session) apply(command Command) (game.RevealOutcome, error) {
	Log.WithFields(logrus.Fields{
		"action": command.Action,
		"row":    command.Row,
		"col":    command.Col,
	}).Debug("applying move")

	switch command.Action {
	case Reveal:
		return session.board.Reveal(command.Row, command.Col)
	case Flag, Unflag:
		if err := session.board.SetFlag(command.Row, command.Col, command.Action == Flag); err != nil {
			return game.Continue, err
		}
	case Save:
		if err := session.save(); err != nil {
			return game.Continue, err
		}
	default:
		return game.Continue, errors.Wrapf(ErrBadCommand, "unknown action %v", command.Action)
	}

	if session.board.IsWon() {
		return game.Win, nil
	}
	return game.Continue, nil
}

func (session *Session) save() error {
	snap, err := snapshot.Take(session.board, session.config.Seed)
	if err != nil {
		return err
	}
	if err := snapshot.SaveFile(session.config.SavePath, snap); err != nil {
		return err
	}
	fmt.Fprintf(session.out, "Game saved to %s\n", session.config.SavePath)
	return nil
}

func (session *Session) reject(err error) {
	Log.WithError(err).Warn("move rejected")
	fmt.Fprintf(session.out, "Invalid move: %v\n", err)
}

func (session *Session) end(outcome game.RevealOutcome) game.RevealOutcome {
	if outcome == game.Win {
		if err := session.display(); err != nil {
			Log.WithError(err).Error("could not display final board")
		}
		fmt.Fprintln(session.out, "You win!")
	} else {
		fmt.Fprintln(session.out, "You lose!")
	}

	Log.WithFields(logrus.Fields{
		"outcome": outcome,
	}).Info("game over")

	session.config.onGameEnd(session.board, outcome)
	return outcome
}
