// Package core - neutral decision rules and imputation.
package core

import "fmt"

// UniformRule builds the neutral rule for decision id: the uniform
// distribution over the decision's domain for every parent context.
// This is the placeholder imputed onto strategically irrelevant,
// unconstrained decisions before a subgame is reduced to a game tree.
//
// Errors: ErrNodeNotFound, ErrNotDecision.
//
// Complexity: O(C·|domain|) over C parent contexts.
func (d *Diagram) UniformRule(id string) (Rule, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	n, ok := d.nodes[id]
	if !ok {
		return nil, fmt.Errorf("core: UniformRule(%q): %w", id, ErrNodeNotFound)
	}
	if n.kind != Decision {
		return nil, fmt.Errorf("core: UniformRule(%q): %w", id, ErrNotDecision)
	}

	r := make(Rule)
	for _, ctx := range d.contextsOf(n.parents) {
		r[Key(n.parents, ctx)] = Uniform(n.domain)
	}

	return r, nil
}

// ImputeUniform fixes the uniform rule on decision id. Decisions that
// already carry a rule are left untouched and reported via ok=false.
func (d *Diagram) ImputeUniform(id string) (bool, error) {
	if _, fixed := d.RuleOf(id); fixed {
		return false, nil
	}
	r, err := d.UniformRule(id)
	if err != nil {
		return false, err
	}

	return true, d.SetRule(id, r)
}
