// Package relevance derives the strategic-relevance structure of a MACID:
// the relevance graph over decision nodes, its strongly-connected
// component condensation, the enumeration of MAID subgames, and the
// sufficient-recall predicate.
//
// The relevance graph has an edge D1 → D2 exactly when D1 strategically
// relies on D2, i.e. D2 is s-reachable from {D1} in the diagram. Its SCC
// condensation is acyclic by construction; backward induction consumes
// the condensation's topological order in reverse, so every block is
// solved only after all blocks it relies on.
//
// Both graphs are derived, read-only views: recompute them after any
// structural change to the diagram. Rule assignments do not affect them.
//
// Key entry points:
//   - New(d): build the relevance graph (validates that d is a DAG)
//   - Condense(g): SCC block DAG + deterministic topological order
//   - Subgames(d): every descendant-closed set of decisions
//   - SufficientRecall(d, agent): per-agent acyclicity of relevance
//
// Complexity:
//   - New: O(D² · (V+E)) s-reachability queries over D decisions.
//   - Condense: O(D + R) Tarjan plus O(B log B) ordering.
//   - Subgames: O(2^B · B²) by powerset construction - exponential in the
//     block count, acceptable because block counts are small in practice.
package relevance
