package searcher

import (
	"fmt"
	"othello/meta"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Playout is what MCTS needs to know about the game behind its payloads.
type Playout[T any] interface {
	// Continuations lists every payload one ply on from data, none once the game is over.
	Continuations(data T) []T
	// Simulate plays random moves from data. complete reports whether the
	// game ended before the move budget ran out.
	Simulate(data T, rng *rand.Rand) (final T, complete bool)
	// Reward scores final between LOSS and WIN for the player who moved into perspective.
	Reward(final T, perspective T) float64
}

type Option func(s *settings)

type settings struct {
	simulations int
	exploration float64
	seed        uint64
	metrics     MetricsCollector
}

func WithSimulations(simulations int) Option {
	return func(s *settings) {
		s.simulations = simulations
	}
}

func WithExploration(c float64) Option {
	return func(s *settings) {
		s.exploration = c
	}
}

// WithSeed fixes the random source; 0 seeds from the clock.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
	}
}

func WithMetrics(collector MetricsCollector) Option {
	return func(s *settings) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

// MCTS runs a fixed number of select, expand, simulate and backpropagate
// episodes over a tree of T payloads.
type MCTS[T any] struct {
	settings
	playout Playout[T]
	rng     *rand.Rand
	untried map[*Node[T]][]T
}

func NewMCTS[T any](playout Playout[T], options ...Option) (*MCTS[T], error) {
	s := settings{ // Default values
		simulations: meta.SIMULATIONS,
		exploration: meta.EXPLORATION,
		metrics:     NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	if playout == nil {
		return nil, fmt.Errorf("%w: no playout", ErrInvalidSearch)
	}
	if s.simulations <= 0 {
		return nil, fmt.Errorf("%w: simulations must be positive, got %d", ErrInvalidSearch, s.simulations)
	}
	if s.exploration < 0 {
		return nil, fmt.Errorf("%w: exploration must not be negative, got %v", ErrInvalidSearch, s.exploration)
	}
	if s.seed == 0 {
		s.seed = uint64(time.Now().UnixNano())
	}

	return &MCTS[T]{
		settings: s,
		playout:  playout,
		rng:      rand.New(rand.NewSource(s.seed)),
	}, nil
}

// Search grows the tree under root and returns root's most visited child,
// or nil when root has no continuation.
func (m *MCTS[T]) Search(root *Node[T]) *Node[T] {
	m.untried = make(map[*Node[T]][]T)
	for i := 0; i < m.simulations; i++ {
		m.simulate(root)
		m.metrics.AddEpisode()
	}
	m.untried = nil

	best := MostVisited(root)
	if best != nil {
		log.Debug().Msgf("mcts: %d simulations, best child visited %d times with mean reward %.3f",
			m.simulations, best.visits, best.rewards/float64(max(best.visits, 1)))
	}
	return best
}

func (m *MCTS[T]) simulate(root *Node[T]) {
	selected := m.selects(root)
	expanded := m.expands(selected)
	final, complete := m.playout.Simulate(expanded.Data, m.rng)
	if complete {
		m.metrics.AddFullPlayout()
	}
	m.metrics.AddEvaluation()
	backup(expanded, m.playout.Reward(final, expanded.Data))
}

// selects descends through fully expanded nodes. An unvisited child is
// picked uniformly at random before any UCB1 comparison is made.
func (m *MCTS[T]) selects(root *Node[T]) *Node[T] {
	node := root
	for !node.IsLeaf() && len(m.pending(node)) == 0 {
		var unvisited []*Node[T]
		for _, child := range node.children {
			if child.visits == 0 {
				unvisited = append(unvisited, child)
			}
		}
		if len(unvisited) > 0 {
			return unvisited[m.rng.Intn(len(unvisited))]
		}
		node = m.pickChild(node)
	}
	return node
}

func (m *MCTS[T]) pickChild(node *Node[T]) *Node[T] {
	var best *Node[T]
	bestScore := 0.0
	for _, child := range node.children {
		if score := child.UCB1(m.exploration); best == nil || score > bestScore {
			best = child
			bestScore = score
		}
	}
	return best
}

// expands appends one untried continuation to node. A node with nothing left
// to try is returned unchanged and the playout starts from it.
func (m *MCTS[T]) expands(node *Node[T]) *Node[T] {
	rest := m.pending(node)
	if len(rest) == 0 {
		return node
	}
	i := m.rng.Intn(len(rest))
	data := rest[i]
	rest[i] = rest[len(rest)-1]
	m.untried[node] = rest[:len(rest)-1]
	m.metrics.AddNodes(1)
	return node.Add(data)
}

// pending returns the continuations of node not yet in the tree. Nodes that
// already had children when first reached count as fully expanded.
func (m *MCTS[T]) pending(node *Node[T]) []T {
	rest, ok := m.untried[node]
	if !ok {
		if node.IsLeaf() {
			rest = m.playout.Continuations(node.Data)
		}
		m.untried[node] = rest
	}
	return rest
}

// backup credits reward to node and its complement to each ancestor in turn,
// so every node holds rewards for the player who moved into it.
func backup[T any](node *Node[T], reward float64) {
	for node != nil {
		node.Update(reward)
		reward = WIN - reward
		node = node.parent
	}
}

// MostVisited returns the first child with the highest visit count, or nil for a leaf.
func MostVisited[T any](node *Node[T]) *Node[T] {
	var best *Node[T]
	for _, child := range node.children {
		if best == nil || child.visits > best.visits {
			best = child
		}
	}
	return best
}
