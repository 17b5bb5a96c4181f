// Package core - node insertion and rule assignment for Diagram.
//
// Insertion is parents-first: every declared parent must already exist.
// CPDs and payoff tables are validated for completeness at insertion
// time, so a Diagram that was built without errors is always solvable.
package core

import "fmt"

// AddChance inserts a chance node with the given parents, domain, and CPD.
// The CPD must provide a Distribution over domain for every parent context.
//
// Errors: ErrEmptyNodeID, ErrDuplicateNode, ErrUnknownParent,
// ErrUtilityParent, ErrEmptyDomain, ErrIncompleteCPD, ErrBadDistribution.
//
// Complexity: O(P·C) where C is the number of parent contexts.
func (d *Diagram) AddChance(id string, parents, domain []string, cpd CPD) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	// 1. Structural checks shared by all node kinds.
	if err := d.checkInsert(id, parents); err != nil {
		return err
	}
	if len(domain) == 0 {
		return fmt.Errorf("core: AddChance(%q): %w", id, ErrEmptyDomain)
	}

	// 2. CPD completeness: one valid distribution per parent context.
	if err := d.checkTable(id, parents, domain, cpd); err != nil {
		return err
	}

	// 3. Commit.
	d.insert(&node{id: id, kind: Chance, parents: cloneStrings(parents), domain: cloneStrings(domain), cpd: cloneCPD(cpd)})

	return nil
}

// AddDecision inserts a decision node owned by agent, with the given
// parents and domain. The decision starts unconstrained (no rule fixed).
//
// Errors: ErrEmptyNodeID, ErrDuplicateNode, ErrUnknownParent,
// ErrUtilityParent, ErrEmptyAgent, ErrEmptyDomain.
//
// Complexity: O(P).
func (d *Diagram) AddDecision(id, agent string, parents, domain []string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.checkInsert(id, parents); err != nil {
		return err
	}
	if agent == "" {
		return fmt.Errorf("core: AddDecision(%q): %w", id, ErrEmptyAgent)
	}
	if len(domain) == 0 {
		return fmt.Errorf("core: AddDecision(%q): %w", id, ErrEmptyDomain)
	}

	d.insert(&node{id: id, kind: Decision, agent: agent, parents: cloneStrings(parents), domain: cloneStrings(domain)})
	d.agentDecisions[agent] = append(d.agentDecisions[agent], id)

	return nil
}

// AddUtility inserts a utility node owned by agent. The payoff table must
// provide a value for every parent context. Utility nodes are leaves and
// can never be used as parents of later nodes.
//
// Errors: ErrEmptyNodeID, ErrDuplicateNode, ErrUnknownParent,
// ErrUtilityParent, ErrEmptyAgent, ErrIncompletePayoff.
//
// Complexity: O(P·C) where C is the number of parent contexts.
func (d *Diagram) AddUtility(id, agent string, parents []string, payoff Payoff) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.checkInsert(id, parents); err != nil {
		return err
	}
	if agent == "" {
		return fmt.Errorf("core: AddUtility(%q): %w", id, ErrEmptyAgent)
	}

	// Payoff completeness over every parent context.
	ctxs := d.contextsOf(parents)
	for _, ctx := range ctxs {
		if _, ok := payoff[Key(parents, ctx)]; !ok {
			return fmt.Errorf("core: AddUtility(%q): context %q: %w", id, Key(parents, ctx), ErrIncompletePayoff)
		}
	}

	d.insert(&node{id: id, kind: Utility, agent: agent, parents: cloneStrings(parents), payoff: clonePayoff(payoff)})
	d.agentUtilities[agent] = append(d.agentUtilities[agent], id)

	return nil
}

// SetRule fixes a decision rule on decision node id, replacing any prior
// rule. The rule must provide a valid Distribution over the decision's
// domain for every parent context.
//
// Errors: ErrNodeNotFound, ErrNotDecision, ErrIncompleteCPD, ErrBadDistribution.
func (d *Diagram) SetRule(id string, r Rule) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	n, ok := d.nodes[id]
	if !ok {
		return fmt.Errorf("core: SetRule(%q): %w", id, ErrNodeNotFound)
	}
	if n.kind != Decision {
		return fmt.Errorf("core: SetRule(%q): %w", id, ErrNotDecision)
	}
	if err := d.checkTable(id, n.parents, n.domain, CPD(r)); err != nil {
		return err
	}
	n.rule = cloneRule(r)

	return nil
}

// ClearRule removes any fixed rule from decision node id, returning it
// to the unconstrained state.
func (d *Diagram) ClearRule(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	n, ok := d.nodes[id]
	if !ok {
		return fmt.Errorf("core: ClearRule(%q): %w", id, ErrNodeNotFound)
	}
	if n.kind != Decision {
		return fmt.Errorf("core: ClearRule(%q): %w", id, ErrNotDecision)
	}
	n.rule = nil

	return nil
}

// RuleOf returns the fixed rule of decision id, or ok=false when the
// decision is unconstrained or id is not a decision node.
func (d *Diagram) RuleOf(id string) (Rule, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	n, ok := d.nodes[id]
	if !ok || n.kind != Decision || n.rule == nil {
		return nil, false
	}

	return cloneRule(n.rule), true
}

// checkInsert validates the shared structural preconditions of an insertion.
// Caller must hold the write lock.
func (d *Diagram) checkInsert(id string, parents []string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if _, dup := d.nodes[id]; dup {
		return fmt.Errorf("core: node %q: %w", id, ErrDuplicateNode)
	}
	seen := make(map[string]struct{}, len(parents))
	for _, p := range parents {
		pn, ok := d.nodes[p]
		if !ok {
			return fmt.Errorf("core: node %q: parent %q: %w", id, p, ErrUnknownParent)
		}
		if pn.kind == Utility {
			return fmt.Errorf("core: node %q: parent %q: %w", id, p, ErrUtilityParent)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("core: node %q: parent %q declared twice: %w", id, p, ErrDuplicateNode)
		}
		seen[p] = struct{}{}
	}

	return nil
}

// checkTable validates that tbl covers every parent context with a valid
// distribution over domain. Caller must hold the lock (read or write).
func (d *Diagram) checkTable(id string, parents, domain []string, tbl CPD) error {
	for _, ctx := range d.contextsOf(parents) {
		key := Key(parents, ctx)
		dist, ok := tbl[key]
		if !ok {
			return fmt.Errorf("core: node %q: context %q: %w", id, key, ErrIncompleteCPD)
		}
		if err := checkDistribution(dist, domain); err != nil {
			return fmt.Errorf("core: node %q: context %q: %w", id, key, err)
		}
	}

	return nil
}

// checkDistribution validates non-negativity, domain membership, and unit mass.
func checkDistribution(dist Distribution, domain []string) error {
	allowed := make(map[string]struct{}, len(domain))
	for _, v := range domain {
		allowed[v] = struct{}{}
	}
	var total float64
	for v, p := range dist {
		if _, ok := allowed[v]; !ok {
			return fmt.Errorf("%w: unknown outcome %q", ErrBadDistribution, v)
		}
		if p < 0 {
			return fmt.Errorf("%w: negative mass on %q", ErrBadDistribution, v)
		}
		total += p
	}
	if total < 1-probTol || total > 1+probTol {
		return fmt.Errorf("%w: mass %v != 1", ErrBadDistribution, total)
	}

	return nil
}

// insert commits a validated node record. Caller must hold the write lock.
func (d *Diagram) insert(n *node) {
	d.nodes[n.id] = n
	d.order = append(d.order, n.id)
	for _, p := range n.parents {
		d.children[p] = append(d.children[p], n.id)
	}
}
