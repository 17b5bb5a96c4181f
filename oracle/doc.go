// Package oracle defines the equilibrium-oracle contract - the algorithm
// selector and the Oracle interface every solver backend implements -
// and ships Enumerative, a bundled reference backend.
//
// The selector mirrors the classical solver families:
//
//   - EnumPure:  enumerate all pure-strategy Nash equilibria (any player count)
//   - EnumMixed: enumerate all extreme mixed equilibria (2-player only)
//   - LCP:       linear complementarity (2-player only)
//   - LP:        linear program (2-player constant-sum only)
//   - SimpDiv:   simplicial subdivision - find at least one mixed NE
//   - IPA:       iterative partial assignment - find at least one mixed NE
//   - GNM:       global Newton method - find at least one mixed NE
//
// Enumerative works on the reduced strategic form of the extensive-form
// description: each player's pure strategies are action tuples over that
// player's information sets, payoffs come from weighted tree walks, and
// mixed results are converted back to behavior strategies through Kuhn's
// realization equivalence (honoring the player's own action history).
// EnumPure and the two-player routines are exact; the find-one routines
// fall back to damped regret matching with an equilibrium verification
// step for three or more players and are best-effort there.
//
// Any external numerical library can replace Enumerative behind the
// Oracle interface without touching the reduction or induction logic.
package oracle
