// Package relevance - relevance-graph construction.
package relevance

import (
	"fmt"

	"github.com/katalvlaran/macid/core"
)

// New builds the relevance graph of diagram d: nodes are d's decision
// nodes, and an edge D1 → D2 exists iff D2 is s-reachable from {D1}
// (D1 strategically relies on D2). Self pairs are skipped.
//
// The diagram's structural validity is re-checked first; a diagram that
// is not a DAG surfaces core.ErrCycle.
//
// Complexity: O(D² · (V+E)).
func New(d *core.Diagram) (*Graph, error) {
	// 1. Preconditions.
	if d == nil {
		return nil, ErrNilDiagram
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("relevance: New: %w", err)
	}

	// 2. Pairwise s-reachability over sorted decisions.
	decs := d.Decisions()
	g := &Graph{nodes: decs, adj: make(map[string][]string, len(decs))}
	for _, d1 := range decs {
		for _, d2 := range decs {
			if d1 == d2 {
				continue
			}
			relies, err := d.SReachable([]string{d1}, d2)
			if err != nil {
				return nil, fmt.Errorf("relevance: New: %w", err)
			}
			if relies {
				g.adj[d1] = append(g.adj[d1], d2)
			}
		}
	}
	// Adjacency is built from sorted decs, so it is already sorted.

	return g, nil
}

// restricted returns the relevance subgraph induced by keep, reusing
// already-computed edges.
func (g *Graph) restricted(keep map[string]struct{}) *Graph {
	sub := &Graph{adj: make(map[string][]string, len(keep))}
	for _, n := range g.nodes {
		if _, in := keep[n]; !in {
			continue
		}
		sub.nodes = append(sub.nodes, n)
		for _, m := range g.adj[n] {
			if _, in := keep[m]; in {
				sub.adj[n] = append(sub.adj[n], m)
			}
		}
	}

	return sub
}
