package depgraph

import (
	"github.com/bramblecore/attrflow/attrerr"
	"github.com/bramblecore/attrflow/attrid"
)

// Three-color DFS state, matching the teacher's White/Gray/Black vertex
// marking convention.
const (
	white = 0
	gray  = 1
	black = 2
)

// Graph is a directed graph over attrid.Identifier nodes. An edge always
// points from a dependency to its dependent: AddEdge(dependent, dependency)
// records that dependent cannot resolve until dependency has.
type Graph struct {
	order   []attrid.Identifier
	present map[attrid.Identifier]struct{}
	// forward[dependency] lists, in edge-insertion order, the dependents
	// that read it.
	forward map[attrid.Identifier][]attrid.Identifier
	// reverse[dependent] lists, in edge-insertion order, the dependencies
	// it reads.
	reverse map[attrid.Identifier][]attrid.Identifier
	edgeSet map[attrid.Identifier]map[attrid.Identifier]struct{}
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		present: make(map[attrid.Identifier]struct{}),
		forward: make(map[attrid.Identifier][]attrid.Identifier),
		reverse: make(map[attrid.Identifier][]attrid.Identifier),
		edgeSet: make(map[attrid.Identifier]map[attrid.Identifier]struct{}),
	}
}

// AddNode registers id as a graph node if it is not already one. Idempotent.
func (g *Graph) AddNode(id attrid.Identifier) {
	if _, ok := g.present[id]; ok {
		return
	}
	g.present[id] = struct{}{}
	g.order = append(g.order, id)
}

// Contains reports whether id has been added as a node, directly or via an
// edge.
func (g *Graph) Contains(id attrid.Identifier) bool {
	_, ok := g.present[id]
	return ok
}

// AddEdge records that dependent reads dependency: dependency must resolve
// before dependent. Both identifiers become nodes if they were not already.
// Duplicate edges are ignored.
func (g *Graph) AddEdge(dependent, dependency attrid.Identifier) {
	g.AddNode(dependency)
	g.AddNode(dependent)

	if g.edgeSet[dependency] == nil {
		g.edgeSet[dependency] = make(map[attrid.Identifier]struct{})
	}
	if _, ok := g.edgeSet[dependency][dependent]; ok {
		return
	}
	g.edgeSet[dependency][dependent] = struct{}{}
	g.forward[dependency] = append(g.forward[dependency], dependent)
	g.reverse[dependent] = append(g.reverse[dependent], dependency)
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []attrid.Identifier {
	out := make([]attrid.Identifier, len(g.order))
	copy(out, g.order)
	return out
}

// Dependents returns the dependents of id, in edge-insertion order.
func (g *Graph) Dependents(id attrid.Identifier) []attrid.Identifier {
	return g.forward[id]
}

// Dependencies returns the identifiers id reads, in edge-insertion order.
func (g *Graph) Dependencies(id attrid.Identifier) []attrid.Identifier {
	return g.reverse[id]
}

// DetectCycle runs a three-color DFS over the graph, returning the exact
// identifier path that closes a loop (path[0] == path[len(path)-1]) and true
// if one exists. A self-loop reports path [X, X].
func (g *Graph) DetectCycle() ([]attrid.Identifier, bool) {
	state := make(map[attrid.Identifier]int, len(g.order))
	index := make(map[attrid.Identifier]int, len(g.order))
	var path []attrid.Identifier

	var visit func(id attrid.Identifier) []attrid.Identifier
	visit = func(id attrid.Identifier) []attrid.Identifier {
		state[id] = gray
		index[id] = len(path)
		path = append(path, id)

		for _, next := range g.forward[id] {
			switch state[next] {
			case white:
				if cyc := visit(next); cyc != nil {
					return cyc
				}
			case gray:
				idx := index[next]
				cyc := make([]attrid.Identifier, 0, len(path)-idx+1)
				cyc = append(cyc, path[idx:]...)
				cyc = append(cyc, next)
				return cyc
			case black:
				// already fully explored, no back-edge
			}
		}

		state[id] = black
		path = path[:len(path)-1]
		return nil
	}

	for _, id := range g.order {
		if state[id] == white {
			if cyc := visit(id); cyc != nil {
				return cyc, true
			}
		}
	}
	return nil, false
}

// TopologicalSort returns a linear order of all nodes such that for every
// edge dependency->dependent, dependency precedes dependent. Returns
// *attrerr.CycleError if the graph is not acyclic.
func (g *Graph) TopologicalSort() ([]attrid.Identifier, error) {
	if cyc, found := g.DetectCycle(); found {
		return nil, &attrerr.CycleError{Path: cyc}
	}

	state := make(map[attrid.Identifier]int, len(g.order))
	postorder := make([]attrid.Identifier, 0, len(g.order))

	var visit func(id attrid.Identifier)
	visit = func(id attrid.Identifier) {
		state[id] = gray
		for _, next := range g.forward[id] {
			if state[next] == white {
				visit(next)
			}
		}
		state[id] = black
		postorder = append(postorder, id)
	}

	for _, id := range g.order {
		if state[id] == white {
			visit(id)
		}
	}

	for i, j := 0, len(postorder)-1; i < j; i, j = i+1, j-1 {
		postorder[i], postorder[j] = postorder[j], postorder[i]
	}
	return postorder, nil
}

// SubgraphFor returns the subgraph reachable by walking dependency edges
// backward from targets: targets themselves plus every node that, directly
// or transitively, a target depends on. Used by batch resolves so the
// topological sort only orders what a batch actually needs.
func (g *Graph) SubgraphFor(targets []attrid.Identifier) *Graph {
	sub := New()
	seen := make(map[attrid.Identifier]struct{})

	var walk func(id attrid.Identifier)
	walk = func(id attrid.Identifier) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		sub.AddNode(id)
		for _, dependency := range g.reverse[id] {
			sub.AddEdge(id, dependency)
			walk(dependency)
		}
	}

	for _, t := range targets {
		if g.Contains(t) {
			walk(t)
		}
	}
	return sub
}
