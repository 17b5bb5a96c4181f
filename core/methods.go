// Package core - read-only structural queries on Diagram.
package core

import (
	"fmt"
	"sort"
)

// HasNode reports whether node id exists.
func (d *Diagram) HasNode(id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.nodes[id]

	return ok
}

// Nodes returns all node IDs in insertion order.
func (d *Diagram) Nodes() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return cloneStrings(d.order)
}

// KindOf returns the kind of node id.
func (d *Diagram) KindOf(id string) (Kind, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	n, ok := d.nodes[id]
	if !ok {
		return 0, fmt.Errorf("core: KindOf(%q): %w", id, ErrNodeNotFound)
	}

	return n.kind, nil
}

// OwnerOf returns the owning agent of a decision or utility node.
// Chance nodes return the empty string.
func (d *Diagram) OwnerOf(id string) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	n, ok := d.nodes[id]
	if !ok {
		return "", fmt.Errorf("core: OwnerOf(%q): %w", id, ErrNodeNotFound)
	}

	return n.agent, nil
}

// DomainOf returns the declared domain of a chance or decision node,
// in declaration order. Utility nodes have no domain and return nil.
func (d *Diagram) DomainOf(id string) ([]string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	n, ok := d.nodes[id]
	if !ok {
		return nil, fmt.Errorf("core: DomainOf(%q): %w", id, ErrNodeNotFound)
	}

	return cloneStrings(n.domain), nil
}

// Parents returns the declared parents of node id, in declaration order.
func (d *Diagram) Parents(id string) ([]string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	n, ok := d.nodes[id]
	if !ok {
		return nil, fmt.Errorf("core: Parents(%q): %w", id, ErrNodeNotFound)
	}

	return cloneStrings(n.parents), nil
}

// Children returns the nodes that declare id as a parent, in insertion order.
func (d *Diagram) Children(id string) ([]string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if _, ok := d.nodes[id]; !ok {
		return nil, fmt.Errorf("core: Children(%q): %w", id, ErrNodeNotFound)
	}

	return cloneStrings(d.children[id]), nil
}

// CPDOf returns the CPD of a chance node.
func (d *Diagram) CPDOf(id string) (CPD, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	n, ok := d.nodes[id]
	if !ok {
		return nil, fmt.Errorf("core: CPDOf(%q): %w", id, ErrNodeNotFound)
	}
	if n.kind != Chance {
		return nil, fmt.Errorf("core: CPDOf(%q): node is %s: %w", id, n.kind, ErrNodeNotFound)
	}

	return cloneCPD(n.cpd), nil
}

// PayoffOf returns the payoff table of a utility node.
func (d *Diagram) PayoffOf(id string) (Payoff, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	n, ok := d.nodes[id]
	if !ok {
		return nil, fmt.Errorf("core: PayoffOf(%q): %w", id, ErrNodeNotFound)
	}
	if n.kind != Utility {
		return nil, fmt.Errorf("core: PayoffOf(%q): node is %s: %w", id, n.kind, ErrNodeNotFound)
	}

	return clonePayoff(n.payoff), nil
}

// Decisions returns all decision node IDs, sorted lexicographically.
func (d *Diagram) Decisions() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.decisionsSorted()
}

// decisionsSorted lists decisions sorted; caller must hold the lock.
func (d *Diagram) decisionsSorted() []string {
	var out []string
	for _, id := range d.order {
		if d.nodes[id].kind == Decision {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}

// Agents returns all agent labels, sorted lexicographically.
func (d *Diagram) Agents() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	seen := make(map[string]struct{}, len(d.agentDecisions)+len(d.agentUtilities))
	var out []string
	for a := range d.agentDecisions {
		if _, ok := seen[a]; !ok {
			seen[a] = struct{}{}
			out = append(out, a)
		}
	}
	for a := range d.agentUtilities {
		if _, ok := seen[a]; !ok {
			seen[a] = struct{}{}
			out = append(out, a)
		}
	}
	sort.Strings(out)

	return out
}

// AgentDecisions returns the decisions owned by agent, sorted.
func (d *Diagram) AgentDecisions(agent string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := cloneStrings(d.agentDecisions[agent])
	sort.Strings(out)

	return out
}

// AgentUtilities returns the utility nodes owned by agent, sorted.
func (d *Diagram) AgentUtilities(agent string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := cloneStrings(d.agentUtilities[agent])
	sort.Strings(out)

	return out
}

// Descendants returns the set of nodes reachable from id by directed
// edges (id itself excluded).
//
// Complexity: O(V + E).
func (d *Diagram) Descendants(id string) (map[string]struct{}, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if _, ok := d.nodes[id]; !ok {
		return nil, fmt.Errorf("core: Descendants(%q): %w", id, ErrNodeNotFound)
	}

	return d.descendantsOf(id), nil
}

// descendantsOf walks forward adjacency; caller must hold the lock.
func (d *Diagram) descendantsOf(id string) map[string]struct{} {
	out := make(map[string]struct{})
	stack := cloneStrings(d.children[id])
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := out[n]; seen {
			continue
		}
		out[n] = struct{}{}
		stack = append(stack, d.children[n]...)
	}

	return out
}

// TopoOrder returns a topological ordering of all nodes: every parent
// precedes its children. Ties are broken lexicographically, so the
// ordering is deterministic for a given structure.
//
// Errors: ErrCycle if the structural graph is not a DAG (unreachable
// through the public insertion API, kept for the structural contract).
//
// Complexity: O(V log V + E).
func (d *Diagram) TopoOrder() ([]string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	// 1. In-degree per node.
	indeg := make(map[string]int, len(d.nodes))
	for id, n := range d.nodes {
		indeg[id] = len(n.parents)
	}

	// 2. Seed the ready set with all roots, kept sorted for determinism.
	var ready []string
	for id, deg := range indeg {
		if deg == 0 {
			ready = append(ready, id)
		}
	}
	sort.Strings(ready)

	// 3. Kahn's algorithm with lexicographic tie-break.
	out := make([]string, 0, len(d.nodes))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		out = append(out, id)

		var unlocked []string
		for _, c := range d.children[id] {
			indeg[c]--
			if indeg[c] == 0 {
				unlocked = append(unlocked, c)
			}
		}
		if len(unlocked) > 0 {
			ready = append(ready, unlocked...)
			sort.Strings(ready)
		}
	}

	if len(out) != len(d.nodes) {
		return nil, fmt.Errorf("core: TopoOrder: %w", ErrCycle)
	}

	return out, nil
}

// Validate re-checks the structural invariants of the diagram as a whole:
// acyclicity and per-node table completeness. A diagram built through the
// insertion API without errors always validates.
func (d *Diagram) Validate() error {
	if _, err := d.TopoOrder(); err != nil {
		return err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, id := range d.order {
		n := d.nodes[id]
		switch n.kind {
		case Chance:
			if err := d.checkTable(id, n.parents, n.domain, n.cpd); err != nil {
				return err
			}
		case Decision:
			if n.rule != nil {
				if err := d.checkTable(id, n.parents, n.domain, CPD(n.rule)); err != nil {
					return err
				}
			}
		case Utility:
			for _, ctx := range d.contextsOf(n.parents) {
				if _, ok := n.payoff[Key(n.parents, ctx)]; !ok {
					return fmt.Errorf("core: node %q: %w", id, ErrIncompletePayoff)
				}
			}
		}
	}

	return nil
}
