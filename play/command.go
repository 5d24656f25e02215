package play

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrBadCommand = errors.New("invalid move")

type Action int

const (
	Reveal Action = iota
	Flag
	Unflag
	Save
)

var actionNames = map[string]Action{
	"reveal": Reveal,
	"flag":   Flag,
	"unflag": Unflag,
	"save":   Save,
}

func (action Action) String() string {
	for name, a := range actionNames {
		if a == action {
			return name
		}
	}
	return fmt.Sprintf("Action(%d)", int(action))
}

// Command is a single player move
type Command struct {
	Action   Action
	Row, Col int
}

func (command Command) String() string {
	if command.Action == Save {
		return command.Action.String()
	}
	return fmt.Sprintf("%s, %d, %d", command.Action, command.Row, command.Col)
}

// ParseCommand reads a move such as "reveal, 3, 4" or "flag 0 2". "save"
// takes no coordinates.
func ParseCommand(line string) (Command, error) {
	fields := strings.FieldsFunc(strings.ToLower(line), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return Command{}, errors.Wrap(ErrBadCommand, "empty input")
	}

	action, isValid := actionNames[fields[0]]
	if !isValid {
		return Command{}, errors.Wrapf(ErrBadCommand, "unknown action %q", fields[0])
	}

	if action == Save {
		if len(fields) != 1 {
			return Command{}, errors.Wrap(ErrBadCommand, "save takes no coordinates")
		}
		return Command{Action: Save}, nil
	}

	if len(fields) != 3 {
		return Command{}, errors.Wrapf(ErrBadCommand, "%s needs a row and a column", action)
	}

	row, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{}, errors.Wrapf(ErrBadCommand, "row %q is not a number", fields[1])
	}
	col, err := strconv.Atoi(fields[2])
	if err != nil {
		return Command{}, errors.Wrapf(ErrBadCommand, "column %q is not a number", fields[2])
	}

	return Command{Action: action, Row: row, Col: col}, nil
}
