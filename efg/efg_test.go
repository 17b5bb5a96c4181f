package efg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/macid/builder"
	"github.com/katalvlaran/macid/core"
	"github.com/katalvlaran/macid/efg"
)

func TestBuild_NilAndEmptyScope(t *testing.T) {
	_, err := efg.Build(nil, []string{"D"})
	assert.ErrorIs(t, err, efg.ErrNilDiagram)

	d, err := builder.SingleDecision()
	require.NoError(t, err)
	_, err = efg.Build(d, nil)
	assert.ErrorIs(t, err, efg.ErrEmptyScope)
}

func TestBuild_ScopeValidation(t *testing.T) {
	d, err := builder.SingleDecision()
	require.NoError(t, err)

	_, err = efg.Build(d, []string{"Z"})
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = efg.Build(d, []string{"X"})
	assert.ErrorIs(t, err, core.ErrNotDecision)
}

func TestBuild_SingleDecisionShape(t *testing.T) {
	d, err := builder.SingleDecision()
	require.NoError(t, err)

	g, err := efg.Build(d, []string{"D"})
	require.NoError(t, err)

	assert.Equal(t, []string{"player1"}, g.Players)
	assert.Equal(t, []string{"D"}, g.Scope)

	// Root branches over the chance node X, then the decision.
	require.Equal(t, efg.ChanceNode, g.Root.Type)
	assert.Equal(t, "X", g.Root.Label)
	require.Len(t, g.Root.Children, 2)
	assert.InDelta(t, 0.5, g.Root.Probs[0], 1e-12)

	left := g.Root.Children[0]
	require.Equal(t, efg.DecisionNode, left.Type)
	assert.Equal(t, "player1", left.Player)
	require.Len(t, left.Children, 2)
	assert.Equal(t, efg.TerminalNode, left.Children[0].Type)

	// One information set per observed value of X.
	require.Len(t, g.InfoSets, 2)
	right := g.Root.Children[1]
	assert.NotEqual(t, left.InfoSet, right.InfoSet)

	idx, ok := g.InfoSetOf("D", core.Assignment{"X": "heads"}, []string{"X"})
	require.True(t, ok)
	assert.Equal(t, left.InfoSet, idx)

	assert.Equal(t, []int{left.InfoSet, right.InfoSet}, g.PlayerInfoSets("player1"))
}

func TestBuild_UnresolvedDecision(t *testing.T) {
	d, err := builder.Signaling()
	require.NoError(t, err)

	// D2 is outside scope and carries no fixed rule.
	_, err = efg.Build(d, []string{"D1"})
	assert.ErrorIs(t, err, efg.ErrUnresolvedDecision)

	// After fixing D2, the out-of-scope decision branches as chance.
	require.NoError(t, d.SetRule("D2", core.Rule{
		"D1=l": core.Deterministic("l"),
		"D1=r": core.Deterministic("l"),
	}))
	g, err := efg.Build(d, []string{"D1"})
	require.NoError(t, err)

	assert.Equal(t, []string{"player1"}, g.Players)
	require.Equal(t, efg.DecisionNode, g.Root.Type)
	assert.Equal(t, "D1", g.Root.Label)
	require.Equal(t, efg.ChanceNode, g.Root.Children[0].Type)
	assert.Equal(t, "D2", g.Root.Children[0].Label)
	assert.Equal(t, []float64{1, 0}, g.Root.Children[0].Probs)
}

func TestBuild_Deterministic(t *testing.T) {
	d, err := builder.MatchingPennies()
	require.NoError(t, err)

	a, err := efg.Build(d, d.Decisions())
	require.NoError(t, err)
	b, err := efg.Build(d, d.Decisions())
	require.NoError(t, err)

	assert.Equal(t, a.Players, b.Players)
	assert.Equal(t, a.Scope, b.Scope)
	assert.Equal(t, a.InfoSets, b.InfoSets)
}

func TestRules_RoundTrip(t *testing.T) {
	d, err := builder.SingleDecision()
	require.NoError(t, err)
	g, err := efg.Build(d, []string{"D"})
	require.NoError(t, err)

	// Copy the observed coin at both information sets.
	headsSet, ok := g.InfoSetOf("D", core.Assignment{"X": "heads"}, []string{"X"})
	require.True(t, ok)
	tailsSet, ok := g.InfoSetOf("D", core.Assignment{"X": "tails"}, []string{"X"})
	require.True(t, ok)

	b := efg.Behavior{
		headsSet: core.Deterministic("heads"),
		tailsSet: core.Deterministic("tails"),
	}

	profile, err := efg.Rules(g, b)
	require.NoError(t, err)
	require.Len(t, profile, 1)
	assert.Equal(t, "D", profile[0].Decision)
	assert.Equal(t, 1.0, profile[0].Rule["X=heads"]["heads"])
	assert.Equal(t, 1.0, profile[0].Rule["X=tails"]["tails"])

	// Applying the extracted rules and rebuilding the full-scope game
	// reproduces the same expected payoffs.
	payoffs, err := efg.ExpectedPayoffs(g, b)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, payoffs["player1"], 1e-12)

	require.NoError(t, d.Apply(profile))
	fixed, err := efg.Build(d, []string{"D"})
	require.NoError(t, err)
	again, err := efg.ExpectedPayoffs(fixed, b)
	require.NoError(t, err)
	assert.InDelta(t, payoffs["player1"], again["player1"], 1e-12)
}

func TestExpectedPayoffs_Mixed(t *testing.T) {
	d, err := builder.MatchingPennies()
	require.NoError(t, err)
	g, err := efg.Build(d, d.Decisions())
	require.NoError(t, err)
	require.Len(t, g.InfoSets, 2)

	uniform := core.Distribution{"heads": 0.5, "tails": 0.5}
	payoffs, err := efg.ExpectedPayoffs(g, efg.Behavior{0: uniform, 1: uniform})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, payoffs["player1"], 1e-12)
	assert.InDelta(t, 0.0, payoffs["player2"], 1e-12)
}

func TestRules_BehaviorValidation(t *testing.T) {
	d, err := builder.SingleDecision()
	require.NoError(t, err)
	g, err := efg.Build(d, []string{"D"})
	require.NoError(t, err)

	// Missing infoset.
	_, err = efg.Rules(g, efg.Behavior{0: core.Deterministic("heads")})
	assert.ErrorIs(t, err, efg.ErrIncompleteBehavior)

	// Action outside the infoset's action list.
	_, err = efg.Rules(g, efg.Behavior{
		0: core.Deterministic("sideways"),
		1: core.Deterministic("tails"),
	})
	assert.ErrorIs(t, err, efg.ErrBadBehavior)

	// Mass not summing to one.
	_, err = efg.Rules(g, efg.Behavior{
		0: {"heads": 0.4, "tails": 0.4},
		1: core.Deterministic("tails"),
	})
	assert.ErrorIs(t, err, efg.ErrBadBehavior)

	_, err = efg.Rules(nil, nil)
	assert.ErrorIs(t, err, efg.ErrNilGame)
}
