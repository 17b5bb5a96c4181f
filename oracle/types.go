// Package oracle - selector, contract, sentinel errors, and the
// Enumerative backend's configuration.
package oracle

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/macid/efg"
)

var (
	// ErrUnknownAlgorithm indicates a selector outside the enumerated set.
	ErrUnknownAlgorithm = errors.New("oracle: unknown algorithm")

	// ErrIncompatible indicates the selected algorithm is structurally
	// inapplicable to the instance (player count or payoff structure).
	ErrIncompatible = errors.New("oracle: algorithm incompatible with game")

	// ErrNilGame is returned when a nil *efg.Game is supplied.
	ErrNilGame = errors.New("oracle: game is nil")
)

// Algorithm selects an equilibrium-finding algorithm.
type Algorithm uint8

const (
	// EnumPure enumerates all pure Nash equilibria; any player count.
	EnumPure Algorithm = iota

	// EnumMixed enumerates all extreme mixed equilibria; 2-player only.
	EnumMixed

	// LCP computes equilibria via linear complementarity; 2-player only.
	LCP

	// LP computes one equilibrium via linear programming; 2-player
	// constant-sum only.
	LP

	// SimpDiv computes one mixed equilibrium via simplicial subdivision.
	SimpDiv

	// IPA computes one mixed equilibrium via iterative partial assignment.
	IPA

	// GNM computes one mixed equilibrium via the global Newton method.
	GNM
)

// algoNames aligns with the Algorithm constants.
var algoNames = [...]string{"enumpure", "enummixed", "lcp", "lp", "simpdiv", "ipa", "gnm"}

// String returns the canonical selector name.
func (a Algorithm) String() string {
	if int(a) < len(algoNames) {
		return algoNames[a]
	}

	return "unknown"
}

// Parse converts a selector name into an Algorithm.
//
// Errors: ErrUnknownAlgorithm naming the invalid selector.
func Parse(s string) (Algorithm, error) {
	for i, n := range algoNames {
		if n == s {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("oracle: %q: %w", s, ErrUnknownAlgorithm)
}

// TwoPlayerOnly reports whether the algorithm is restricted to
// exactly-two-player games.
func (a Algorithm) TwoPlayerOnly() bool {
	return a == EnumMixed || a == LCP || a == LP
}

// ConstantSumOnly reports whether the algorithm additionally requires a
// constant-sum payoff structure.
func (a Algorithm) ConstantSumOnly() bool { return a == LP }

// Oracle is the capability interface of an equilibrium solver: one
// operation mapping a game description and a selector to a sequence of
// behavior strategies, possibly empty. Structurally inapplicable
// selections fail with an error wrapping ErrIncompatible; adapters catch
// that and apply their fallback policy.
type Oracle interface {
	Solve(g *efg.Game, algo Algorithm) ([]efg.Behavior, error)
}

// Option configures the Enumerative backend.
type Option func(*Enumerative)

// WithEpsilon sets the numerical tolerance used for deviation checks and
// support feasibility. Non-positive values are ignored.
func WithEpsilon(eps float64) Option {
	return func(o *Enumerative) {
		if eps > 0 {
			o.eps = eps
		}
	}
}

// WithIterations sets the iteration budget of the regret-matching
// find-one routine. Non-positive values are ignored.
func WithIterations(n int) Option {
	return func(o *Enumerative) {
		if n > 0 {
			o.iters = n
		}
	}
}

// Enumerative is the bundled reference oracle. The zero value is not
// ready; build one with New.
type Enumerative struct {
	eps   float64 // feasibility / deviation tolerance
	iters int     // regret-matching iteration budget
}

// New creates an Enumerative oracle with default tolerance 1e-9 and a
// 20_000-iteration budget for the find-one routines.
func New(opts ...Option) *Enumerative {
	o := &Enumerative{eps: 1e-9, iters: 20000}
	for _, fn := range opts {
		fn(o)
	}

	return o
}
