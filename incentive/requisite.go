// Package incentive - requisite-graph reduction.
package incentive

import (
	"fmt"

	"github.com/katalvlaran/macid/core"
)

// requisiteGraph returns the pruned parent/children adjacency of d's
// minimal reduction: for each decision, observation edges whose source
// cannot influence the deciding agent's downstream utilities are
// removed. Decisions are processed in reverse topological order and the
// pruning evaluates each step on the already-reduced graph.
//
// Complexity: O(D · P · (V + E)).
func requisiteGraph(d *core.Diagram) (map[string][]string, map[string][]string, error) {
	// 1. Mutable adjacency snapshot.
	parents := make(map[string][]string)
	children := make(map[string][]string)
	for _, id := range d.Nodes() {
		ps, err := d.Parents(id)
		if err != nil {
			return nil, nil, err
		}
		parents[id] = ps
		cs, err := d.Children(id)
		if err != nil {
			return nil, nil, err
		}
		children[id] = cs
	}

	topo, err := d.TopoOrder()
	if err != nil {
		return nil, nil, fmt.Errorf("incentive: requisite graph: %w", err)
	}

	// 2. Decisions from late to early.
	for i := len(topo) - 1; i >= 0; i-- {
		dec := topo[i]
		if kind, _ := d.KindOf(dec); kind != core.Decision {
			continue
		}
		owner, _ := d.OwnerOf(dec)

		// Utilities of the deciding agent among the decision's
		// descendants in the current reduction.
		desc := reachableFrom(children, dec)
		var targets []string
		for _, u := range d.AgentUtilities(owner) {
			if _, in := desc[u]; in {
				targets = append(targets, u)
			}
		}

		// 3. Drop every non-requisite observation edge.
		var kept []string
		for _, p := range parents[dec] {
			if isRequisite(parents, children, dec, p, targets) {
				kept = append(kept, p)

				continue
			}
			children[p] = without(children[p], dec)
		}
		parents[dec] = kept
	}

	return parents, children, nil
}

// isRequisite reports whether observation p of decision dec can carry
// information about any target utility given the decision's remaining
// context: p is d-connected to a target given {dec} ∪ Pa(dec) \ {p}.
func isRequisite(parents, children map[string][]string, dec, p string, targets []string) bool {
	if len(targets) == 0 {
		return false
	}
	cond := []string{dec}
	for _, q := range parents[dec] {
		if q != p {
			cond = append(cond, q)
		}
	}

	reach := core.ActiveTrails(parents, children, p, cond)
	for _, u := range targets {
		if _, hit := reach[u]; hit {
			return true
		}
	}

	return false
}

// reachableFrom returns all nodes reachable from src by directed edges
// (src excluded).
func reachableFrom(children map[string][]string, src string) map[string]struct{} {
	out := make(map[string]struct{})
	stack := append([]string(nil), children[src]...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := out[n]; seen {
			continue
		}
		out[n] = struct{}{}
		stack = append(stack, children[n]...)
	}

	return out
}

// without returns s with every occurrence of v removed.
func without(s []string, v string) []string {
	out := s[:0]
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}

	return out
}
