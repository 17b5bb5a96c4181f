// Package core - canonical parent-context keys and context enumeration.
//
// Every probability table in this module (CPDs, payoffs, rules) is keyed
// by a canonical textual context: the node's parents sorted
// lexicographically, each rendered as "parent=value", joined with "|".
// The empty parent set maps to the single empty key "".
package core

import (
	"fmt"
	"sort"
	"strings"
)

// Key renders the canonical context key for the given scope under
// assignment a. Scope entries are sorted lexicographically; values
// missing from a render as the empty string.
//
// Complexity: O(S log S) for the sort.
func Key(scope []string, a Assignment) string {
	if len(scope) == 0 {
		return ""
	}
	sorted := cloneStrings(scope)
	sort.Strings(sorted)

	parts := make([]string, len(sorted))
	for i, p := range sorted {
		parts[i] = p + "=" + a[p]
	}

	return strings.Join(parts, "|")
}

// ParentContexts enumerates every assignment of node id's parents, in a
// deterministic order: parents sorted lexicographically, outer-to-inner
// loops over each parent's domain in declaration order. A node without
// parents yields exactly one empty Assignment.
//
// Errors: ErrNodeNotFound; ErrUtilityParent cannot occur for nodes that
// passed insertion.
//
// Complexity: O(Π|dom(p)|) assignments - exponential in parent count.
func (d *Diagram) ParentContexts(id string) ([]Assignment, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	n, ok := d.nodes[id]
	if !ok {
		return nil, fmt.Errorf("core: ParentContexts(%q): %w", id, ErrNodeNotFound)
	}

	return d.contextsOf(n.parents), nil
}

// contextsOf enumerates assignments over the given parent scope.
// Caller must hold the lock (read or write).
func (d *Diagram) contextsOf(parents []string) []Assignment {
	sorted := cloneStrings(parents)
	sort.Strings(sorted)

	// Start from the single empty context and extend one parent at a time.
	ctxs := []Assignment{{}}
	for _, p := range sorted {
		dom := d.nodes[p].domain
		next := make([]Assignment, 0, len(ctxs)*len(dom))
		for _, ctx := range ctxs {
			for _, v := range dom {
				ext := make(Assignment, len(ctx)+1)
				for k, val := range ctx {
					ext[k] = val
				}
				ext[p] = v
				next = append(next, ext)
			}
		}
		ctxs = next
	}

	return ctxs
}

// Restrict returns the sub-assignment of a over scope.
func Restrict(a Assignment, scope []string) Assignment {
	out := make(Assignment, len(scope))
	for _, s := range scope {
		if v, ok := a[s]; ok {
			out[s] = v
		}
	}

	return out
}

// Uniform returns the uniform Distribution over domain.
func Uniform(domain []string) Distribution {
	dist := make(Distribution, len(domain))
	p := 1.0 / float64(len(domain))
	for _, v := range domain {
		dist[v] = p
	}

	return dist
}

// Deterministic returns the Distribution placing all mass on value.
func Deterministic(value string) Distribution {
	return Distribution{value: 1}
}

// cloneStrings copies a string slice (nil-safe).
func cloneStrings(src []string) []string {
	if src == nil {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)

	return out
}

// cloneDistribution copies a Distribution.
func cloneDistribution(src Distribution) Distribution {
	out := make(Distribution, len(src))
	for v, p := range src {
		out[v] = p
	}

	return out
}

// cloneCPD deep-copies a CPD.
func cloneCPD(src CPD) CPD {
	out := make(CPD, len(src))
	for k, dist := range src {
		out[k] = cloneDistribution(dist)
	}

	return out
}

// cloneRule deep-copies a Rule.
func cloneRule(src Rule) Rule {
	if src == nil {
		return nil
	}

	return Rule(cloneCPD(CPD(src)))
}

// clonePayoff copies a Payoff table.
func clonePayoff(src Payoff) Payoff {
	out := make(Payoff, len(src))
	for k, u := range src {
		out[k] = u
	}

	return out
}
