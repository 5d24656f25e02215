package play

import (
	"fmt"
	"strings"

	"github.com/they4kman/termsweep/game"
)

// FormatBoard lays the symbol grid out as text, with column numbers on top
// and row numbers down the left side.
func FormatBoard(symbols [][]game.Symbol) string {
	var b strings.Builder

	labelWidth := len(fmt.Sprint(len(symbols) - 1))
	cellWidth := labelWidth + 1

	fmt.Fprintf(&b, "%*s ", labelWidth, "")
	for col := range symbols {
		fmt.Fprintf(&b, "%*d", cellWidth, col)
	}
	b.WriteString("\n")

	for row, rowSymbols := range symbols {
		fmt.Fprintf(&b, "%*d ", labelWidth, row)
		for _, symbol := range rowSymbols {
			fmt.Fprintf(&b, "%*s", cellWidth, symbol)
		}
		b.WriteString("\n")
	}

	return b.String()
}
