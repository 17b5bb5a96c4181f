// Package relevance - the sufficient-recall predicate.
package relevance

import (
	"github.com/katalvlaran/macid/core"
)

// SufficientRecall reports whether agent has sufficient recall in d:
// the relevance graph restricted to the agent's own decisions is
// acyclic. Agents without sufficient recall admit absent-minded
// strategies that the extensive-form reduction cannot express.
//
// Errors: ErrUnknownAgent when the agent owns no decisions; those of
// New otherwise.
func SufficientRecall(d *core.Diagram, agent string) (bool, error) {
	if d == nil {
		return false, ErrNilDiagram
	}
	own := d.AgentDecisions(agent)
	if len(own) == 0 {
		return false, ErrUnknownAgent
	}

	g, err := New(d)
	if err != nil {
		return false, err
	}

	keep := make(map[string]struct{}, len(own))
	for _, dec := range own {
		keep[dec] = struct{}{}
	}

	return acyclic(g.restricted(keep)), nil
}

// SufficientRecallAll reports whether every agent of d has sufficient
// recall. Diagrams without decisions trivially qualify.
func SufficientRecallAll(d *core.Diagram) (bool, error) {
	if d == nil {
		return false, ErrNilDiagram
	}

	g, err := New(d)
	if err != nil {
		return false, err
	}

	for _, agent := range d.Agents() {
		own := d.AgentDecisions(agent)
		if len(own) == 0 {
			continue
		}
		keep := make(map[string]struct{}, len(own))
		for _, dec := range own {
			keep[dec] = struct{}{}
		}
		if !acyclic(g.restricted(keep)) {
			return false, nil
		}
	}

	return true, nil
}

// acyclic reports whether every SCC of g is a singleton.
func acyclic(g *Graph) bool {
	for _, comp := range stronglyConnected(g) {
		if len(comp) > 1 {
			return false
		}
	}

	return true
}
