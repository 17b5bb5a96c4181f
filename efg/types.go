// Package efg - game-tree types and sentinel errors.
package efg

import (
	"errors"

	"github.com/katalvlaran/macid/core"
)

var (
	// ErrNilDiagram is returned when a nil *core.Diagram is supplied.
	ErrNilDiagram = errors.New("efg: diagram is nil")

	// ErrNilGame is returned when a nil *Game is supplied.
	ErrNilGame = errors.New("efg: game is nil")

	// ErrEmptyScope indicates Build was asked to solve zero decisions.
	ErrEmptyScope = errors.New("efg: no decisions in scope")

	// ErrUnresolvedDecision indicates a decision outside the solve scope
	// carries no fixed rule, so the tree cannot branch through it.
	ErrUnresolvedDecision = errors.New("efg: out-of-scope decision has no fixed rule")

	// ErrIncompleteBehavior indicates a behavior strategy is missing a
	// distribution for some information set of the game.
	ErrIncompleteBehavior = errors.New("efg: behavior misses an information set")

	// ErrBadBehavior indicates a behavior distribution is malformed for
	// its information set's action list.
	ErrBadBehavior = errors.New("efg: bad behavior distribution")
)

// NodeType classifies a game-tree node.
type NodeType uint8

const (
	// ChanceNode branches by exogenous probability (a chance node's CPD
	// or an out-of-scope decision's fixed rule).
	ChanceNode NodeType = iota

	// DecisionNode branches by a player's choice inside an information set.
	DecisionNode

	// TerminalNode carries the game's payoffs; it has no children.
	TerminalNode
)

// Node is one node of the extensive-form game tree.
type Node struct {
	// Type discriminates the remaining fields.
	Type NodeType

	// Label is the diagram node that branches here; empty on terminals.
	Label string

	// Player is the deciding agent; decision nodes only.
	Player string

	// InfoSet indexes Game.InfoSets; decision nodes only.
	InfoSet int

	// Actions are the branch labels, aligned with Children.
	Actions []string

	// Probs are the branch probabilities; chance nodes only.
	Probs []float64

	// Children are the subtrees, one per action.
	Children []*Node

	// Payoffs maps each player to its utility; terminal nodes only.
	Payoffs map[string]float64
}

// InfoSet groups the decision instances an agent cannot tell apart:
// all tree nodes of one decision whose observed parent context matches.
type InfoSet struct {
	// Player is the deciding agent.
	Player string

	// Decision is the diagram decision node.
	Decision string

	// Context is the observed parent-value assignment.
	Context core.Assignment

	// Actions is the decision's domain, in declaration order.
	Actions []string
}

// Game is the abstract extensive-form description handed to an
// equilibrium oracle.
type Game struct {
	// Root is the tree root.
	Root *Node

	// Players are the agents owning in-scope decisions, sorted.
	Players []string

	// Scope are the in-scope decision nodes, sorted.
	Scope []string

	// InfoSets are the information sets in discovery order.
	InfoSets []InfoSet

	// contexts maps decision+"|"+contextKey to an InfoSets index; it is
	// the inverse mapping used to turn strategies back into rules.
	contexts map[string]int
}

// Behavior is a behavior strategy: one distribution over actions per
// information-set index.
type Behavior map[int]core.Distribution

// InfoSetOf returns the information-set index a decision's parent
// context was placed in during Build.
func (g *Game) InfoSetOf(decision string, context core.Assignment, parents []string) (int, bool) {
	idx, ok := g.contexts[decision+"|"+core.Key(parents, context)]

	return idx, ok
}

// PlayerInfoSets returns the indices of the information sets belonging
// to player, in discovery order.
func (g *Game) PlayerInfoSets(player string) []int {
	var out []int
	for i, is := range g.InfoSets {
		if is.Player == player {
			out = append(out, i)
		}
	}

	return out
}
