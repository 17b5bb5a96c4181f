// Package macid is an in-memory toolkit for building and solving
// multi-agent causal influence diagrams (MACIDs) — causal graphical
// models whose nodes are partitioned into chance, decision, and utility
// nodes owned by one or more agents.
//
// 🚀 What is macid?
//
//	A modern, thread-safe library that brings together:
//		• Core primitives: build diagrams, attach CPDs, payoffs & decision rules
//		• Relevance analysis: strategic-relevance graph + SCC condensation
//		• Subgames: enumeration of every descendant-closed MAID subgame
//		• Game reduction: MACID subgame → extensive-form game with info sets
//		• Equilibria: all Nash equilibria of a subgame, all subgame-perfect
//		  equilibria of the full diagram, behind a pluggable solver oracle
//		• Incentives: response-incentive admission via requisite graphs
//
// ✨ Why choose macid?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks, copy-on-entry solves, in-code docs
//   - Deterministic – stable orderings everywhere, reproducible equilibria
//   - Extensible – swap the bundled enumerative oracle for any NE library
//
// Under the hood, everything is organized in focused subpackages:
//
//	core/      — Diagram, CPDs, decision rules, policy profiles, d-separation
//	relevance/ — relevance graph, condensed (SCC) graph, subgames, recall
//	efg/       — extensive-form reduction + behavior-strategy round trips
//	nash/      — solver selection, NE-in-subgame, backward-induction SPE
//	oracle/    — bundled enumerative equilibrium oracle (pure & 2-player mixed)
//	incentive/ — single-agent response-incentive analysis
//	builder/   — declarative YAML diagrams and canonical fixtures
//
// Quick ASCII example (a two-agent signaling diagram):
//
//	    X ──▶ D1 ──▶ D2
//	    │      │      │
//	    └──▶ U1 ◀────┤
//	           U2 ◀──┘
//
// Start with builder.FromYAML or core.New, then call nash.SubgamePerfect.
package macid
