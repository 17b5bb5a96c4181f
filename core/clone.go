// Package core - deep copying of Diagram instances.
//
// Solvers follow a copy-on-entry discipline: every solve call operates on
// its own Copy, so concurrent solves over one source diagram are safe as
// long as the source itself is not mutated mid-call.
package core

// Copy returns a fully independent deep copy of the diagram: structure,
// domains, CPDs, payoff tables, and any already-fixed decision rules.
//
// Complexity: O(V + E + table sizes).
func (d *Diagram) Copy() *Diagram {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := New()
	for _, id := range d.order {
		n := d.nodes[id]
		cp := &node{
			id:      n.id,
			kind:    n.kind,
			agent:   n.agent,
			parents: cloneStrings(n.parents),
			domain:  cloneStrings(n.domain),
		}
		switch n.kind {
		case Chance:
			cp.cpd = cloneCPD(n.cpd)
		case Decision:
			cp.rule = cloneRule(n.rule)
		case Utility:
			cp.payoff = clonePayoff(n.payoff)
		}
		out.insert(cp)
		switch n.kind {
		case Decision:
			out.agentDecisions[n.agent] = append(out.agentDecisions[n.agent], id)
		case Utility:
			out.agentUtilities[n.agent] = append(out.agentUtilities[n.agent], id)
		}
	}

	return out
}
