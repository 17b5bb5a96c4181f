// Package oracle - unified Solve dispatcher for the Enumerative backend.
//
// Mirrors the module's dispatcher convention: validate the selector and
// the instance shape first, then route to the algorithm. Structural
// mismatches surface ErrIncompatible for the adapter to recover from;
// they are never silently downgraded here.
package oracle

import (
	"fmt"

	"github.com/katalvlaran/macid/efg"
)

// constantSumTol is the tolerance of the LP constant-sum admission check.
const constantSumTol = 1e-6

// Solve finds Nash equilibria of g with the selected algorithm.
//
// Result order is deterministic for a given game: pure equilibria in
// lexicographic joint-strategy order, mixed ones in ascending support
// order. An empty (non-nil-error) result means the algorithm completed
// and found nothing - pure-only enumeration on games without pure
// equilibria does exactly that.
//
// EnumMixed and LCP scan equal-sized support pairs only. On
// nondegenerate two-player games that covers every equilibrium; on
// degenerate games, extreme equilibria with unequal support sizes are
// not reported.
//
// Errors: ErrNilGame, ErrUnknownAlgorithm, ErrIncompatible.
func (o *Enumerative) Solve(g *efg.Game, algo Algorithm) ([]efg.Behavior, error) {
	// 1. Instance and selector validation.
	if g == nil {
		return nil, ErrNilGame
	}
	if int(algo) >= len(algoNames) {
		return nil, fmt.Errorf("oracle: selector %d: %w", algo, ErrUnknownAlgorithm)
	}
	twoPlayer := len(g.Players) == 2
	if algo.TwoPlayerOnly() && !twoPlayer {
		return nil, fmt.Errorf("oracle: %s requires exactly 2 players, got %d: %w",
			algo, len(g.Players), ErrIncompatible)
	}
	if algo.ConstantSumOnly() && !constantSum(g.Root, constantSumTol) {
		return nil, fmt.Errorf("oracle: %s requires a constant-sum game: %w", algo, ErrIncompatible)
	}

	// 2. Reduce to strategic form once; all routes read from it.
	s := newStrategic(g)

	// 3. Route by algorithm.
	switch algo {
	case EnumPure:
		combos := s.enumPure(o.eps)
		out := make([]efg.Behavior, 0, len(combos))
		for _, combo := range combos {
			out = append(out, s.pureBehavior(combo))
		}

		return out, nil

	case EnumMixed, LCP:
		pts := s.supportEnum(supportTol(o.eps))
		out := make([]efg.Behavior, 0, len(pts))
		for _, pt := range pts {
			out = append(out, s.mixedBehavior([][]float64{pt[0], pt[1]}))
		}

		return out, nil

	case LP:
		pts := s.supportEnum(supportTol(o.eps))
		if len(pts) == 0 {
			return nil, nil
		}

		return []efg.Behavior{s.mixedBehavior([][]float64{pts[0][0], pts[0][1]})}, nil

	case SimpDiv, IPA, GNM:
		// Cheap exact scan first: a pure equilibrium is a valid answer.
		if combos := s.enumPure(o.eps); len(combos) > 0 {
			return []efg.Behavior{s.pureBehavior(combos[0])}, nil
		}
		if twoPlayer {
			if pts := s.supportEnum(supportTol(o.eps)); len(pts) > 0 {
				return []efg.Behavior{s.mixedBehavior([][]float64{pts[0][0], pts[0][1]})}, nil
			}

			return nil, nil
		}
		if mix, ok := s.findOneMixed(o.iters); ok {
			return []efg.Behavior{s.mixedBehavior(mix)}, nil
		}

		return nil, nil
	}

	return nil, fmt.Errorf("oracle: selector %d: %w", algo, ErrUnknownAlgorithm)
}

// supportTol widens very tight tolerances for the floating-point
// feasibility checks of support enumeration.
func supportTol(eps float64) float64 {
	if eps < 1e-9 {
		return 1e-9
	}

	return eps
}
