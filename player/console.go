package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"othello/display"
	"othello/game"
	"strconv"
	"strings"
)

var ErrBadCoord = errors.New("bad coordinate")

// Console reads moves typed by a person, redrawing the board before each prompt.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

func (c *Console) ReadMove(g *game.Game, p *game.Player, moves game.Moves) (game.Coord, error) {
	for {
		if err := display.Render(c.out, &g.Board, moves); err != nil {
			return game.Coord{}, err
		}
		fmt.Fprintf(c.out, "%v to move: ", p)

		line, err := c.in.ReadString('\n')
		line = strings.TrimSpace(line)
		if err != nil && line == "" {
			return game.Coord{}, fmt.Errorf("%w: %v", ErrNoInput, err)
		}

		dest, perr := ParseCoord(line)
		if perr != nil {
			fmt.Fprintln(c.out, perr)
			continue
		}
		if _, ok := moves[dest]; !ok {
			fmt.Fprintf(c.out, "%s is not a legal move\n", display.CoordName(dest))
			continue
		}
		return dest, nil
	}
}

// ParseCoord accepts algebraic names such as "d3" or a zero-based
// "row col" pair such as "2 3".
func ParseCoord(s string) (game.Coord, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' }); len(fields) == 2 {
		row, rerr := strconv.Atoi(fields[0])
		col, cerr := strconv.Atoi(fields[1])
		c := game.Coord{Row: row, Col: col}
		if rerr != nil || cerr != nil || !c.InBounds() {
			return game.Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
		}
		return c, nil
	}

	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return game.Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	return game.Coord{Row: int(s[1] - '1'), Col: int(s[0] - 'a')}, nil
}
