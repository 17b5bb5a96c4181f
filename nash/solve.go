// Package nash - imputation and single-subgame equilibrium computation.
package nash

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/macid/core"
	"github.com/katalvlaran/macid/efg"
	"github.com/katalvlaran/macid/oracle"
)

// Impute fixes the uniform placeholder rule on every unconstrained
// decision of d that is not in the target set and not s-reachable from
// it. Decisions already carrying a rule (threaded in from an outer
// backward-induction step) are left untouched.
//
// Mutates d: call it on a working copy.
//
// Errors: ErrOpenSubgame when an unconstrained decision outside the
// target is s-reachable - the target is not a legitimate subgame and
// guessing a policy for that decision would be wrong.
func Impute(d *core.Diagram, target []string) error {
	if d == nil {
		return ErrNilDiagram
	}
	inTarget := make(map[string]struct{}, len(target))
	for _, id := range target {
		inTarget[id] = struct{}{}
	}

	for _, dec := range d.Decisions() {
		if _, in := inTarget[dec]; in {
			continue
		}
		if _, fixed := d.RuleOf(dec); fixed {
			continue
		}
		relevant, err := d.SReachable(target, dec)
		if err != nil {
			return fmt.Errorf("nash: Impute: %w", err)
		}
		if relevant {
			return fmt.Errorf("nash: Impute: decision %q: %w", dec, ErrOpenSubgame)
		}
		if _, err = d.ImputeUniform(dec); err != nil {
			return fmt.Errorf("nash: Impute: %w", err)
		}
	}

	return nil
}

// InSubgame returns all Nash equilibria restricted to the given decision
// set as policy profiles, one per equilibrium, in the oracle's result
// order. A nil or empty set means the whole diagram. The caller's
// diagram is never mutated (copy-on-entry); already-fixed rules on
// decisions inside the set are treated as solved and re-derived.
//
// Errors: ErrNilDiagram, core.ErrNotDecision, core.ErrNodeNotFound,
// ErrOpenSubgame, oracle.ErrUnknownAlgorithm; structural oracle
// incompatibilities are recovered per the package policy.
func InSubgame(d *core.Diagram, decisions []string, opts ...Option) ([]core.Profile, error) {
	if d == nil {
		return nil, ErrNilDiagram
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Oracle == nil {
		return nil, ErrNilOracle
	}

	// 1. Default to the full decision set.
	if len(decisions) == 0 {
		decisions = d.Decisions()
	}

	// 2. Copy-on-entry; solving in the subgame clears any stale rules on
	//    the target decisions themselves so the reduction re-branches them.
	work := d.Copy()
	for _, dec := range decisions {
		if _, fixed := work.RuleOf(dec); fixed {
			if err := work.ClearRule(dec); err != nil {
				return nil, fmt.Errorf("nash: InSubgame: %w", err)
			}
		}
	}

	// 3. Impute irrelevant unconstrained decisions outside the subgame.
	if err := Impute(work, decisions); err != nil {
		return nil, err
	}

	// 4. Reduce to the extensive form.
	game, err := efg.Build(work, decisions)
	if err != nil {
		return nil, fmt.Errorf("nash: InSubgame: %w", err)
	}

	// 5. Oracle call under the selection policy.
	behaviors, err := solveGame(game, o)
	if err != nil {
		return nil, err
	}

	// 6. Strategies back into decision rules.
	out := make([]core.Profile, 0, len(behaviors))
	for _, b := range behaviors {
		profile, rerr := efg.Rules(game, b)
		if rerr != nil {
			return nil, fmt.Errorf("nash: InSubgame: %w", rerr)
		}
		out = append(out, profile)
	}

	return out, nil
}

// All returns all Nash equilibria of the full diagram - InSubgame over
// every decision node.
func All(d *core.Diagram, opts ...Option) ([]core.Profile, error) {
	return InSubgame(d, nil, opts...)
}

// solveGame applies the documented selection, substitution, and fallback
// policy around a single oracle invocation.
func solveGame(game *efg.Game, o Options) ([]efg.Behavior, error) {
	players := len(game.Players)
	algo := selectAlgorithm(o, players)

	behaviors, err := o.Oracle.Solve(game, algo)
	if err != nil {
		if !errors.Is(err, oracle.ErrIncompatible) {
			return nil, fmt.Errorf("nash: solve: %w", err)
		}
		// Pinned-but-ineligible instance shape discovered by the oracle
		// (e.g. LP on a non-constant-sum game): substitute the default.
		def := defaultFor(players)
		o.Warn("solver %s incompatible with this game; using %s instead", algo, def)
		algo = def
		if behaviors, err = o.Oracle.Solve(game, algo); err != nil {
			return nil, fmt.Errorf("nash: solve: %w", err)
		}
	}

	// Empty-pure fallback, unpinned calls only.
	if algo == oracle.EnumPure && len(behaviors) == 0 && !o.Pinned {
		o.Warn("no pure NEs found using enumpure; trying simpdiv")
		if behaviors, err = o.Oracle.Solve(game, oracle.SimpDiv); err != nil {
			return nil, fmt.Errorf("nash: solve: %w", err)
		}
	}

	return behaviors, nil
}

// selectAlgorithm resolves the effective selector for the player count,
// substituting (with a warning) pinned selectors that can never run on
// this many players.
func selectAlgorithm(o Options, players int) oracle.Algorithm {
	if !o.Pinned {
		return defaultFor(players)
	}
	if o.Algorithm.TwoPlayerOnly() && players != 2 {
		o.Warn("solver %s not allowed for %d-player games; using %s instead",
			o.Algorithm, players, oracle.EnumPure)

		return oracle.EnumPure
	}

	return o.Algorithm
}

// defaultFor returns the unpinned default selector per player count.
func defaultFor(players int) oracle.Algorithm {
	if players == 2 {
		return oracle.EnumMixed
	}

	return oracle.EnumPure
}
