// Package core - strategic reachability (r-reachability / s-reachability).
//
// A node W is r-reachable from a decision D when a freshly added
// "mechanism" parent Ŵ of W is d-connected to some utility node of D's
// agent among D's descendants, given {D} ∪ Pa(D). s-reachability of W
// from a decision set is r-reachability from any decision in the set;
// it is the relation that makes W strategically relevant to solving
// those decisions.
package core

import "fmt"

// mechPrefix builds the synthetic mechanism-parent ID for a node. The
// NUL byte cannot appear in user node IDs that come from text formats,
// so the augmented graph never collides with real nodes.
const mechPrefix = "\x00mech:"

// SReachable reports whether node w is s-reachable from the decision
// set: strategically relevant to an agent solving those decisions.
//
// Errors: ErrNodeNotFound, ErrNotDecision.
//
// Complexity: O(|decisions| · (V + E)).
func (d *Diagram) SReachable(decisions []string, w string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if _, ok := d.nodes[w]; !ok {
		return false, fmt.Errorf("core: SReachable: node %q: %w", w, ErrNodeNotFound)
	}

	// Augmented adjacency: every query shares one snapshot with the
	// mechanism parent of w patched in.
	parents := make(map[string][]string, len(d.nodes)+1)
	children := make(map[string][]string, len(d.nodes)+1)
	for id, n := range d.nodes {
		parents[id] = n.parents
		children[id] = d.children[id]
	}
	mech := mechPrefix + w
	parents[w] = append(cloneStrings(parents[w]), mech)
	children[mech] = []string{w}

	for _, dec := range decisions {
		n, ok := d.nodes[dec]
		if !ok {
			return false, fmt.Errorf("core: SReachable: decision %q: %w", dec, ErrNodeNotFound)
		}
		if n.kind != Decision {
			return false, fmt.Errorf("core: SReachable: node %q: %w", dec, ErrNotDecision)
		}

		// Conditioning set Fa(D) = {D} ∪ Pa(D).
		cond := append([]string{dec}, n.parents...)

		// Utilities of D's agent restricted to Desc(D).
		desc := d.descendantsOf(dec)
		var targets []string
		for _, u := range d.agentUtilities[n.agent] {
			if _, in := desc[u]; in {
				targets = append(targets, u)
			}
		}
		if len(targets) == 0 {
			continue
		}

		reach := ActiveTrails(parents, children, mech, cond)
		for _, u := range targets {
			if _, hit := reach[u]; hit {
				return true, nil
			}
		}
	}

	return false, nil
}

// RReachable is SReachable for a single decision, kept as a named
// entry point to mirror the two notions from the MAID literature.
func (d *Diagram) RReachable(decision, w string) (bool, error) {
	return d.SReachable([]string{decision}, w)
}
