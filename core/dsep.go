// Package core - d-separation over the structural graph.
//
// DConnected implements the standard "reachable via active trails"
// procedure (Bayes-ball): a breadth-first walk over (node, direction)
// states where chains and forks are blocked by observed nodes and
// colliders are opened by observed descendants.
package core

import "fmt"

// trail direction: how the walk arrived at a node.
const (
	fromChild  = 0 // traveling upward, against edge direction
	fromParent = 1 // traveling downward, along edge direction
)

// DConnected reports whether x and y are d-connected given the
// conditioning set. x and y are d-separated exactly when this is false.
//
// Errors: ErrNodeNotFound for x, y, or any conditioning node.
//
// Complexity: O(V + E).
func (d *Diagram) DConnected(x, y string, given []string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	// 1. Presence checks.
	for _, id := range append([]string{x, y}, given...) {
		if _, ok := d.nodes[id]; !ok {
			return false, fmt.Errorf("core: DConnected: node %q: %w", id, ErrNodeNotFound)
		}
	}

	// 2. Snapshot adjacency into plain maps and delegate.
	parents := make(map[string][]string, len(d.nodes))
	children := make(map[string][]string, len(d.nodes))
	for id, n := range d.nodes {
		parents[id] = n.parents
		children[id] = d.children[id]
	}

	reach := ActiveTrails(parents, children, x, given)
	_, ok := reach[y]

	return ok, nil
}

// ActiveTrails returns the set of nodes reachable from src via trails
// that are active given the conditioning set. src itself is included.
// The adjacency is passed explicitly so derived-graph analyses
// (mechanism parents, requisite pruning) can query modified structures
// without mutating a Diagram.
func ActiveTrails(parents, children map[string][]string, src string, given []string) map[string]struct{} {
	obs := make(map[string]struct{}, len(given))
	for _, z := range given {
		obs[z] = struct{}{}
	}

	// 1. Ancestors of the conditioning set (opens colliders).
	anc := make(map[string]struct{}, len(obs))
	stack := make([]string, 0, len(obs))
	for z := range obs {
		stack = append(stack, z)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := anc[n]; seen {
			continue
		}
		anc[n] = struct{}{}
		stack = append(stack, parents[n]...)
	}

	// 2. Walk (node, direction) states.
	type state struct {
		id  string
		dir int
	}
	visited := make(map[state]struct{})
	reach := map[string]struct{}{src: {}}
	queue := []state{{src, fromChild}}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if _, seen := visited[s]; seen {
			continue
		}
		visited[s] = struct{}{}

		_, observed := obs[s.id]
		if !observed {
			reach[s.id] = struct{}{}
		}

		if s.dir == fromChild && !observed {
			// Chain upward and fork downward both stay active.
			for _, p := range parents[s.id] {
				queue = append(queue, state{p, fromChild})
			}
			for _, c := range children[s.id] {
				queue = append(queue, state{c, fromParent})
			}
		}
		if s.dir == fromParent {
			// Chain downward is active while the node is unobserved.
			if !observed {
				for _, c := range children[s.id] {
					queue = append(queue, state{c, fromParent})
				}
			}
			// Collider: active only when the node has an observed descendant
			// (equivalently, when it is an ancestor of the conditioning set).
			if _, openCollider := anc[s.id]; openCollider {
				for _, p := range parents[s.id] {
					queue = append(queue, state{p, fromChild})
				}
			}
		}
	}

	return reach
}
