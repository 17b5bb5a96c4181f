// Package efg reduces a MACID subgame to an abstract extensive-form game
// description and translates solved behavior strategies back into
// per-node decision rules.
//
// Build walks the diagram's chance and decision nodes in topological
// order and produces an ordered game tree:
//   - chance nodes branch according to their CPDs;
//   - decisions outside the solve scope branch according to their fixed
//     rules (they behave as chance from the solver's point of view);
//   - decisions inside the scope branch over their domain, with branches
//     grouped into information sets keyed by (decision, parent context) -
//     two decision instances share an information set exactly when the
//     deciding agent cannot distinguish the histories leading to them;
//   - terminal nodes carry each participating agent's summed utility.
//
// The per-context information-set mapping built here is what makes the
// inverse translation possible: Rules maps every information set back to
// its originating parent context and emits one concrete Rule per
// in-scope decision. ExpectedPayoffs evaluates a behavior strategy on
// the tree, which is how the round-trip property (strategy → rules →
// same payoff distribution) is checked.
//
// Every decision outside the scope must already be fixed (by an outer
// backward-induction step or by imputation); Build fails with
// ErrUnresolvedDecision otherwise rather than guessing a policy.
package efg
