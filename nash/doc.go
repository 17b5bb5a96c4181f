// Package nash computes equilibria of MACIDs: all Nash equilibria of a
// chosen subgame, and all subgame-perfect equilibria (SPE) of the whole
// diagram by backward induction over the condensed relevance graph.
//
// Solver-selection policy (per subgame):
//   - Unpinned, exactly two players: enummixed - all extreme mixed NE.
//   - Unpinned, other player counts: enumpure - all pure NE; when that
//     finds none, simpdiv is tried automatically and a warning is
//     emitted. The fallback never triggers for pinned selectors.
//   - Pinned but structurally incompatible (a two-player-only selector
//     on a different player count, LP on a non-constant-sum game): a
//     compatible default is substituted and a warning is emitted; the
//     request never silently runs an ineligible algorithm and never
//     hard-fails for this reason alone.
//   - An unrecognized selector is a fatal error naming the selector.
//
// Every solve call works on a deep copy of the caller's diagram
// (copy-on-entry), so concurrent solves over one diagram are safe while
// the diagram itself is left unmutated. Strategically irrelevant,
// unconstrained decisions outside the target subgame are imputed the
// uniform placeholder rule first; a strategically relevant unconstrained
// decision outside the subgame means the caller's subgame is not closed
// under descendants and fails with ErrOpenSubgame rather than guessing.
//
// Backward induction keeps an explicit worklist of partial policy
// profiles and extends every profile with every equilibrium of each
// block, sinks to sources; a block with zero equilibria silently
// collapses that branch. The full fan-out is enumerated - callers
// wanting a single SPE can stop after the first returned profile.
//
// Warnings are emitted through a pluggable handler defaulting to
// charmbracelet/log; pass WithWarnHandler to capture or silence them.
package nash
