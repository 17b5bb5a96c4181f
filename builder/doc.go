// Package builder constructs core.Diagram values from declarative YAML
// documents and provides a small set of canonical diagrams used across
// tests and examples.
//
// The package offers the following key components:
//
//   - YAML loading:
//     – FromYAML:   parse a document from a byte slice into a *core.Diagram.
//     – LoadFile:   read a file from disk and delegate to FromYAML.
//   - Canonical diagrams (deterministic constructors):
//     – SingleDecision:  one agent, one observed chance node, one decision.
//     – Coordination:    two agents choosing simultaneously, matching pays.
//     – MatchingPennies: two agents, zero-sum, no pure equilibrium.
//     – Signaling:       two agents in sequence, the second observes the first.
//
// Document schema (YAML):
//
//	nodes:
//	  - id: X
//	    kind: chance            # chance | decision | utility
//	    domain: [heads, tails]  # chance and decision nodes only
//	    cpd:                    # chance nodes only; keyed by parent context
//	      "": {heads: 0.5, tails: 0.5}
//	  - id: D
//	    kind: decision
//	    agent: player1
//	    parents: [X]
//	    domain: [left, right]
//	  - id: U
//	    kind: utility
//	    agent: player1
//	    parents: [D, X]
//	    payoff:                 # keyed by parent context
//	      "D=left|X=heads": 1
//	rules:                      # optional pre-committed decision rules
//	  D:
//	    "X=heads": {left: 1}
//
// Parent contexts use the canonical key format produced by core.Key:
// parent assignments sorted by parent name, rendered "p=v", joined by "|".
// The empty string keys the single context of a parentless node.
//
// Guarantees:
//
//   - Nodes may appear in any order; insertion resolves parents first and
//     reports a cycle or missing reference as ErrUnresolvedNode.
//   - All structural validation (table completeness, probability mass,
//     acyclicity) is delegated to core and surfaces core's sentinels.
//   - Deterministic output: identical documents yield identical diagrams.
//   - Strict decoding: unknown document fields are rejected, not ignored.
package builder
