// Package efg - behavior strategies: validation, rule extraction, payoffs.
package efg

import (
	"fmt"

	"github.com/katalvlaran/macid/core"
)

// Rules translates a behavior strategy into one concrete decision Rule
// per in-scope decision, by mapping every information set back to its
// originating parent context through the mapping stored at Build time.
//
// The returned profile binds decisions in sorted scope order. Because
// the tree branches over full domains, every parent context of an
// in-scope decision occurs as an information set, so the extracted
// rules are always complete.
//
// Errors: ErrNilGame, ErrIncompleteBehavior, ErrBadBehavior.
func Rules(g *Game, b Behavior) (core.Profile, error) {
	if g == nil {
		return nil, ErrNilGame
	}
	if err := checkBehavior(g, b); err != nil {
		return nil, err
	}

	var profile core.Profile
	for _, dec := range g.Scope {
		rule := make(core.Rule)
		for idx, is := range g.InfoSets {
			if is.Decision != dec {
				continue
			}
			// Context keys are computed over the infoset's own scope.
			scope := make([]string, 0, len(is.Context))
			for p := range is.Context {
				scope = append(scope, p)
			}
			rule[core.Key(scope, is.Context)] = cloneDist(b[idx])
		}

		ext, err := profile.Extend(dec, rule)
		if err != nil {
			return nil, fmt.Errorf("efg: Rules: %w", err)
		}
		profile = ext
	}

	return profile, nil
}

// ExpectedPayoffs evaluates each player's expected utility under the
// behavior strategy by a weighted walk of the game tree.
//
// Errors: ErrNilGame, ErrIncompleteBehavior, ErrBadBehavior.
//
// Complexity: O(size of the tree).
func ExpectedPayoffs(g *Game, b Behavior) (map[string]float64, error) {
	if g == nil {
		return nil, ErrNilGame
	}
	if err := checkBehavior(g, b); err != nil {
		return nil, err
	}

	out := make(map[string]float64, len(g.Players))
	walkPayoffs(g.Root, b, 1, out)

	return out, nil
}

// walkPayoffs accumulates weight·payoff over terminals.
func walkPayoffs(n *Node, b Behavior, weight float64, acc map[string]float64) {
	switch n.Type {
	case TerminalNode:
		for p, u := range n.Payoffs {
			acc[p] += weight * u
		}
	case ChanceNode:
		for j, child := range n.Children {
			if n.Probs[j] == 0 {
				continue
			}
			walkPayoffs(child, b, weight*n.Probs[j], acc)
		}
	case DecisionNode:
		dist := b[n.InfoSet]
		for j, child := range n.Children {
			p := dist[n.Actions[j]]
			if p == 0 {
				continue
			}
			walkPayoffs(child, b, weight*p, acc)
		}
	}
}

// checkBehavior validates that b covers every information set of g with
// a well-formed distribution over that set's actions.
func checkBehavior(g *Game, b Behavior) error {
	for idx, is := range g.InfoSets {
		dist, ok := b[idx]
		if !ok {
			return fmt.Errorf("efg: infoset %d (%s): %w", idx, is.Decision, ErrIncompleteBehavior)
		}
		allowed := make(map[string]struct{}, len(is.Actions))
		for _, a := range is.Actions {
			allowed[a] = struct{}{}
		}
		var total float64
		for a, p := range dist {
			if _, in := allowed[a]; !in {
				return fmt.Errorf("efg: infoset %d: action %q: %w", idx, a, ErrBadBehavior)
			}
			if p < 0 {
				return fmt.Errorf("efg: infoset %d: negative mass: %w", idx, ErrBadBehavior)
			}
			total += p
		}
		if total < 1-1e-9 || total > 1+1e-9 {
			return fmt.Errorf("efg: infoset %d: mass %v: %w", idx, total, ErrBadBehavior)
		}
	}

	return nil
}

// cloneDist copies a distribution.
func cloneDist(src core.Distribution) core.Distribution {
	out := make(core.Distribution, len(src))
	for v, p := range src {
		out[v] = p
	}

	return out
}
