package game

import "sort"

// Player is a colour and the set of cells it currently owns. The owned set
// must always agree with the board of the game the player belongs to.
type Player struct {
	Color Kind
	owned map[Coord]struct{}
}

// NewPlayer creates a player of the given colour owning nothing.
func NewPlayer(color Kind) *Player {
	return &Player{Color: color, owned: make(map[Coord]struct{})}
}

// Owns reports whether c is in the player's owned set.
func (p *Player) Owns(c Coord) bool {
	_, ok := p.owned[c]
	return ok
}

// Owned returns the owned cells in row-major order.
func (p *Player) Owned() []Coord {
	coords := make([]Coord, 0, len(p.owned))
	for c := range p.owned {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Row != coords[j].Row {
			return coords[i].Row < coords[j].Row
		}
		return coords[i].Col < coords[j].Col
	})
	return coords
}

// Count returns the number of owned cells.
func (p *Player) Count() int { return len(p.owned) }

func (p *Player) add(c Coord) { p.owned[c] = struct{}{} }

func (p *Player) remove(c Coord) { delete(p.owned, c) }

func (p *Player) reset() { p.owned = make(map[Coord]struct{}) }

func (p *Player) String() string { return p.Color.String() }
