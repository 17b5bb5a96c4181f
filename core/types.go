// Package core - type declarations and sentinel errors for MACID diagrams.
//
// This file declares Kind, Distribution, CPD, Payoff, Rule, Assignment,
// the Diagram container, and the New constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for diagram construction and queries.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates an insertion reused an existing node ID.
	ErrDuplicateNode = errors.New("core: node already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrUnknownParent indicates a declared parent that is not present.
	// Parents must be inserted before their children.
	ErrUnknownParent = errors.New("core: parent not found")

	// ErrUtilityParent indicates a utility node was declared as a parent.
	// Utility nodes are leaves: they never feed other nodes.
	ErrUtilityParent = errors.New("core: utility node cannot be a parent")

	// ErrEmptyAgent indicates a decision or utility node without an owner.
	ErrEmptyAgent = errors.New("core: agent label is empty")

	// ErrEmptyDomain indicates a chance or decision node with no outcomes.
	ErrEmptyDomain = errors.New("core: domain is empty")

	// ErrBadDistribution indicates a distribution with unknown outcomes,
	// negative mass, or total mass not equal to one (within probTol).
	ErrBadDistribution = errors.New("core: bad probability distribution")

	// ErrIncompleteCPD indicates a chance CPD missing a parent context.
	ErrIncompleteCPD = errors.New("core: CPD does not cover all parent contexts")

	// ErrIncompletePayoff indicates a payoff table missing a parent context.
	ErrIncompletePayoff = errors.New("core: payoff does not cover all parent contexts")

	// ErrNotDecision indicates a rule operation on a non-decision node.
	ErrNotDecision = errors.New("core: node is not a decision")

	// ErrCycle indicates the structural graph contains a directed cycle.
	ErrCycle = errors.New("core: diagram is not a DAG")

	// ErrDuplicateDecision indicates a policy profile extension reused a
	// decision that the profile already binds.
	ErrDuplicateDecision = errors.New("core: decision already bound in profile")

	// ErrNilDiagram is returned when a nil *Diagram is passed to a helper.
	ErrNilDiagram = errors.New("core: diagram is nil")
)

// probTol is the tolerance used when checking that distributions sum to one.
const probTol = 1e-9

// Kind classifies a node as chance, decision, or utility.
// A node never changes kind after creation.
type Kind uint8

const (
	// Chance nodes carry a CPD over their domain for every parent context.
	Chance Kind = iota

	// Decision nodes carry a finite domain and, once solved or imputed,
	// a decision Rule. Each decision is owned by one agent.
	Decision

	// Utility nodes carry a real-valued payoff for every parent context.
	// Each utility is owned by one agent and has no children.
	Utility
)

// String returns the lowercase kind name ("chance", "decision", "utility").
func (k Kind) String() string {
	switch k {
	case Chance:
		return "chance"
	case Decision:
		return "decision"
	case Utility:
		return "utility"
	default:
		return "unknown"
	}
}

// Assignment maps node IDs to one value from each node's domain.
type Assignment map[string]string

// Distribution maps outcome values to probabilities. A valid Distribution
// has non-negative entries over a node's domain summing to one.
type Distribution map[string]float64

// CPD is a conditional probability distribution: one Distribution per
// parent context key (see Key). Root nodes use the single empty context.
type CPD map[string]Distribution

// Payoff maps a utility node's parent context key to a real payoff.
type Payoff map[string]float64

// Rule is a (possibly stochastic) decision rule: one Distribution over
// the decision's domain per parent context key. A decision without a
// Rule is unconstrained - its domain is declared but no rule is fixed.
type Rule map[string]Distribution

// node is the internal record for a single diagram node.
type node struct {
	id      string
	kind    Kind
	agent   string   // owner; empty for chance nodes
	parents []string // as declared
	domain  []string // chance + decision; order is declaration order
	cpd     CPD      // chance only
	payoff  Payoff   // utility only
	rule    Rule     // decision only; nil means unconstrained
}

// Diagram is the core in-memory MACID structure.
//
// Nodes are inserted parents-first, so the structural graph is acyclic
// by construction. mu guards all internal state; read-only queries take
// the read lock, insertions and rule updates take the write lock.
type Diagram struct {
	mu sync.RWMutex

	nodes    map[string]*node
	order    []string            // insertion order, for deterministic iteration
	children map[string][]string // derived forward adjacency, insertion order

	agentDecisions map[string][]string // agent → owned decisions, insertion order
	agentUtilities map[string][]string // agent → owned utilities, insertion order
}

// New creates an empty Diagram.
// Complexity: O(1)
func New() *Diagram {
	return &Diagram{
		nodes:          make(map[string]*node),
		children:       make(map[string][]string),
		agentDecisions: make(map[string][]string),
		agentUtilities: make(map[string][]string),
	}
}
