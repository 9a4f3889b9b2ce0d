package strategy

import (
	"fmt"
	"othello/game"
	"othello/searcher"
)

// Ply is the payload of every search tree node: the snapshot after a move
// and the move that produced it.
type Ply struct {
	State  game.State
	Move   game.Coord
	Played bool // false for the root and for passes
	Pass   bool
}

// Label describes a ply for tree dumps.
func Label(p Ply) string {
	switch {
	case p.Pass:
		return fmt.Sprintf("%v passes", p.State.Opponent())
	case p.Played:
		return fmt.Sprintf("%v plays %v", p.State.Opponent(), p.Move)
	}
	return fmt.Sprintf("%v to move", p.State.Mover())
}

// continuations lists the plies reachable from p: one per legal destination
// in row-major order, a single pass when only the opponent can move, and
// nothing once the game is over.
func continuations(p Ply) []Ply {
	moves := p.State.LegalMoves()
	if len(moves) == 0 {
		swapped := p.State.Swap()
		if len(swapped.LegalMoves()) == 0 {
			return nil
		}
		return []Ply{{State: swapped, Pass: true}}
	}

	plies := make([]Ply, 0, len(moves))
	for _, dest := range moves.Destinations() {
		plies = append(plies, Ply{State: p.State.Play(dest), Move: dest, Played: true})
	}
	return plies
}

// newRoot snapshots the live game and adds one child per legal destination of actor.
func newRoot(g *game.Game, actor, opponent *game.Player) *searcher.Node[Ply] {
	root := searcher.NewNode(Ply{State: game.NewState(g.Board, actor, opponent)})
	for _, p := range continuations(root.Data) {
		root.Add(p)
	}
	return root
}

// grow extends the tree under node until depth plies lie below it and
// returns the number of nodes added.
func grow(node *searcher.Node[Ply], depth int) int {
	if depth == 0 {
		return 0
	}
	added := 0
	if node.IsLeaf() {
		for _, p := range continuations(node.Data) {
			node.Add(p)
			added++
		}
	}
	for _, child := range node.Children() {
		added += grow(child, depth-1)
	}
	return added
}
