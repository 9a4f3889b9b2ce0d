package searcher

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"
)

// ToDot renders the tree under root in Graphviz dot syntax. label describes
// a payload; visits, rewards and score are appended to it.
func ToDot[T any](root *Node[T], label func(T) string) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		return "", err
	}
	if err := g.SetDir(true); err != nil {
		return "", err
	}

	id := 0
	var walk func(n *Node[T]) (string, error)
	walk = func(n *Node[T]) (string, error) {
		name := fmt.Sprintf("n%d", id)
		id++
		text := fmt.Sprintf("%s\nvisits=%d rewards=%.2f\nscore=%.2f", label(n.Data), n.visits, n.rewards, n.Score)
		attrs := map[string]string{
			"shape": "box",
			"label": strconv.Quote(text),
		}
		if err := g.AddNode("G", name, attrs); err != nil {
			return "", err
		}
		for _, child := range n.children {
			childName, err := walk(child)
			if err != nil {
				return "", err
			}
			if err := g.AddEdge(name, childName, true, nil); err != nil {
				return "", err
			}
		}
		return name, nil
	}

	if _, err := walk(root); err != nil {
		return "", err
	}
	return g.String(), nil
}
