// Package core defines the central Diagram type for multi-agent causal
// influence diagrams (MACIDs) and the primitives every other package in
// this module builds on: node kinds, conditional probability
// distributions, utility payoffs, decision rules, policy profiles,
// parent-context enumeration, d-separation, and strategic reachability.
//
// A Diagram is a directed acyclic graph whose nodes are partitioned into
// chance, decision, and utility nodes. Decision and utility nodes are
// owned by exactly one agent. Edges are declared through each node's
// parent list at insertion time; parents must already exist, so a
// Diagram is acyclic by construction.
//
// All public APIs take a sync.RWMutex internally, so you can safely
// query a Diagram from multiple goroutines. Solvers never mutate a
// caller's Diagram: they work on Copy(), which produces a fully
// independent deep copy (fixed decision rules included).
//
// Probability tables are keyed by parent context: Key(parents, assignment)
// produces the canonical "p1=v1|p2=v2" form with parents sorted
// lexicographically. ParentContexts enumerates every context of a node in
// a deterministic order, which keeps rule extraction and equilibrium
// output reproducible across runs.
//
// Errors:
//
//	ErrEmptyNodeID      - node ID is the empty string.
//	ErrDuplicateNode    - node ID already present.
//	ErrNodeNotFound     - referenced node does not exist.
//	ErrUnknownParent    - a declared parent is not present yet.
//	ErrUtilityParent    - a utility node was used as a parent.
//	ErrEmptyAgent       - decision/utility node without an owning agent.
//	ErrEmptyDomain      - chance/decision node with an empty domain.
//	ErrBadDistribution  - distribution malformed or does not sum to one.
//	ErrIncompleteCPD    - a chance CPD misses a parent context.
//	ErrIncompletePayoff - a utility table misses a parent context.
//	ErrNotDecision      - rule operation on a non-decision node.
//	ErrCycle            - structural validation found a directed cycle.
//	ErrDuplicateDecision - a policy profile already binds that decision.
package core
