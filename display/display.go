// Package display draws boards for the console.
package display

import (
	"fmt"
	"io"
	"othello/game"
	"strings"

	"github.com/muesli/termenv"
)

const columns = "abcdefgh"

// CoordName is the algebraic name of c, columns a-h and rows 1-8.
func CoordName(c game.Coord) string {
	return fmt.Sprintf("%c%d", columns[c.Col], c.Row+1)
}

// Render writes board to w. Cells in hints are marked as playable. Colours
// are used only when w is a terminal that supports them.
func Render(w io.Writer, board *game.Board, hints game.Moves) error {
	out := termenv.NewOutput(w)
	black := func(s string) string { return out.String(s).Foreground(out.Color("1")).Bold().String() }
	white := func(s string) string { return out.String(s).Foreground(out.Color("7")).Bold().String() }
	hint := func(s string) string { return out.String(s).Foreground(out.Color("2")).Faint().String() }

	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < game.Size; col++ {
		fmt.Fprintf(&sb, " %c", columns[col])
	}
	sb.WriteString("\n")

	for row := 0; row < game.Size; row++ {
		fmt.Fprintf(&sb, "%2d", row+1)
		for col := 0; col < game.Size; col++ {
			cell := board.Cell(game.Coord{Row: row, Col: col})
			sb.WriteString(" ")
			switch cell.Kind {
			case game.Black:
				sb.WriteString(black("X"))
			case game.White:
				sb.WriteString(white("O"))
			default:
				if _, ok := hints[cell.Coord]; ok {
					sb.WriteString(hint("*"))
				} else {
					sb.WriteString(".")
				}
			}
		}
		sb.WriteString("\n")
	}

	blackCount, whiteCount := board.Count(game.Black), board.Count(game.White)
	fmt.Fprintf(&sb, "%s %d  %s %d\n", black("X"), blackCount, white("O"), whiteCount)

	_, err := io.WriteString(w, sb.String())
	return err
}
