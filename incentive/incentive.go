// Package incentive - response-incentive admission.
package incentive

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/macid/core"
	"github.com/katalvlaran/macid/relevance"
)

var (
	// ErrNilDiagram is returned when a nil *core.Diagram is supplied.
	ErrNilDiagram = errors.New("incentive: diagram is nil")

	// ErrMultiAgent indicates the diagram has more than one agent; this
	// analysis is defined for single-agent diagrams only.
	ErrMultiAgent = errors.New("incentive: analysis requires a single-agent diagram")

	// ErrInsufficientRecall indicates the diagram fails the
	// sufficient-recall well-formedness property.
	ErrInsufficientRecall = errors.New("incentive: diagram lacks sufficient recall")
)

// AdmitsResponse reports whether the diagram admits a response incentive
// on node with respect to decision: whether the requisite graph retains
// a directed path node → decision. Querying the decision itself always
// reports false.
//
// Errors: ErrNilDiagram, ErrMultiAgent, core.ErrNodeNotFound,
// core.ErrNotDecision, ErrInsufficientRecall.
func AdmitsResponse(d *core.Diagram, decision, node string) (bool, error) {
	// 1. Preconditions, failed fast and loud.
	if d == nil {
		return false, ErrNilDiagram
	}
	if agents := d.Agents(); len(agents) != 1 {
		return false, fmt.Errorf("incentive: AdmitsResponse: diagram has %d agents: %w", len(agents), ErrMultiAgent)
	}
	if !d.HasNode(node) {
		return false, fmt.Errorf("incentive: AdmitsResponse: node %q: %w", node, core.ErrNodeNotFound)
	}
	if kind, err := d.KindOf(decision); err != nil {
		return false, fmt.Errorf("incentive: AdmitsResponse: %w", err)
	} else if kind != core.Decision {
		return false, fmt.Errorf("incentive: AdmitsResponse: node %q: %w", decision, core.ErrNotDecision)
	}
	recall, err := relevance.SufficientRecallAll(d)
	if err != nil {
		return false, fmt.Errorf("incentive: AdmitsResponse: %w", err)
	}
	if !recall {
		return false, ErrInsufficientRecall
	}

	// A node never admits a response incentive on itself.
	if node == decision {
		return false, nil
	}

	// 2. Directed-path reachability in the minimal reduction.
	_, children, err := requisiteGraph(d)
	if err != nil {
		return false, err
	}
	_, reachable := reachableFrom(children, node)[decision]

	return reachable, nil
}

// AdmitsResponseList returns every node of d that admits a response
// incentive with respect to decision, in the diagram's node order.
func AdmitsResponseList(d *core.Diagram, decision string) ([]string, error) {
	if d == nil {
		return nil, ErrNilDiagram
	}

	var out []string
	for _, node := range d.Nodes() {
		admits, err := AdmitsResponse(d, decision, node)
		if err != nil {
			return nil, err
		}
		if admits {
			out = append(out, node)
		}
	}

	return out, nil
}
