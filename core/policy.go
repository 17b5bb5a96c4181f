// Package core - policy profiles: ordered assignments of decision rules.
//
// Profiles are accumulated functionally: Extend and Merge return new
// profiles and never mutate the receiver, so multiple branches of a
// backward-induction search can share a common prefix without
// interference.
package core

import "fmt"

// RuleAssignment binds one fixed Rule to one decision node.
type RuleAssignment struct {
	// Decision is the decision node ID.
	Decision string

	// Rule is the fixed decision rule.
	Rule Rule
}

// Profile is an ordered policy profile: one RuleAssignment per decision,
// partial when it covers a strict subset of the diagram's decisions and
// joint when it covers all of them. Order records how the profile was
// assembled (per-block during backward induction) and is stable.
type Profile []RuleAssignment

// Get returns the rule bound to decision, if any.
func (p Profile) Get(decision string) (Rule, bool) {
	for _, ra := range p {
		if ra.Decision == decision {
			return ra.Rule, true
		}
	}

	return nil, false
}

// Decisions lists the bound decision IDs in profile order.
func (p Profile) Decisions() []string {
	out := make([]string, len(p))
	for i, ra := range p {
		out[i] = ra.Decision
	}

	return out
}

// Extend returns a new Profile with one more binding appended.
// The receiver is never mutated.
//
// Errors: ErrDuplicateDecision when the profile already binds decision.
func (p Profile) Extend(decision string, r Rule) (Profile, error) {
	if _, dup := p.Get(decision); dup {
		return nil, fmt.Errorf("core: Profile.Extend(%q): %w", decision, ErrDuplicateDecision)
	}

	out := make(Profile, len(p), len(p)+1)
	copy(out, p)

	return append(out, RuleAssignment{Decision: decision, Rule: r}), nil
}

// Merge returns a new Profile with every binding of other appended after
// the receiver's bindings, preserving both orders.
//
// Errors: ErrDuplicateDecision on any overlap.
func (p Profile) Merge(other Profile) (Profile, error) {
	out := make(Profile, len(p), len(p)+len(other))
	copy(out, p)
	for _, ra := range other {
		if _, dup := Profile(out).Get(ra.Decision); dup {
			return nil, fmt.Errorf("core: Profile.Merge(%q): %w", ra.Decision, ErrDuplicateDecision)
		}
		out = append(out, ra)
	}

	return out, nil
}

// Apply fixes every rule in the profile on the diagram, in profile order.
//
// Errors: those of SetRule (unknown decision, malformed rule).
func (d *Diagram) Apply(p Profile) error {
	for _, ra := range p {
		if err := d.SetRule(ra.Decision, ra.Rule); err != nil {
			return err
		}
	}

	return nil
}
