package oracle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/macid/builder"
	"github.com/katalvlaran/macid/core"
	"github.com/katalvlaran/macid/efg"
	"github.com/katalvlaran/macid/oracle"
)

// fullGame reduces diagram d over its whole decision set.
func fullGame(t *testing.T, d *core.Diagram) *efg.Game {
	t.Helper()
	g, err := efg.Build(d, d.Decisions())
	require.NoError(t, err)

	return g
}

func TestAlgorithm_ParseAndString(t *testing.T) {
	for _, name := range []string{"enumpure", "enummixed", "lcp", "lp", "simpdiv", "ipa", "gnm"} {
		algo, err := oracle.Parse(name)
		require.NoError(t, err)
		assert.Equal(t, name, algo.String())
	}

	_, err := oracle.Parse("stochastic-descent")
	assert.ErrorIs(t, err, oracle.ErrUnknownAlgorithm)

	assert.Equal(t, "unknown", oracle.Algorithm(42).String())
}

func TestAlgorithm_Restrictions(t *testing.T) {
	assert.True(t, oracle.EnumMixed.TwoPlayerOnly())
	assert.True(t, oracle.LCP.TwoPlayerOnly())
	assert.True(t, oracle.LP.TwoPlayerOnly())
	assert.False(t, oracle.EnumPure.TwoPlayerOnly())
	assert.False(t, oracle.SimpDiv.TwoPlayerOnly())

	assert.True(t, oracle.LP.ConstantSumOnly())
	assert.False(t, oracle.EnumMixed.ConstantSumOnly())
}

func TestSolve_NilGameAndBadSelector(t *testing.T) {
	o := oracle.New()

	_, err := o.Solve(nil, oracle.EnumPure)
	assert.ErrorIs(t, err, oracle.ErrNilGame)

	d, err := builder.Coordination()
	require.NoError(t, err)
	_, err = o.Solve(fullGame(t, d), oracle.Algorithm(42))
	assert.ErrorIs(t, err, oracle.ErrUnknownAlgorithm)
}

func TestSolve_EnumPure_Coordination(t *testing.T) {
	d, err := builder.Coordination()
	require.NoError(t, err)
	g := fullGame(t, d)

	out, err := oracle.New().Solve(g, oracle.EnumPure)
	require.NoError(t, err)
	require.Len(t, out, 2)

	// Lexicographic joint-strategy order: (a,a) before (b,b).
	assert.Equal(t, 1.0, out[0][0]["a"])
	assert.Equal(t, 1.0, out[0][1]["a"])
	assert.Equal(t, 1.0, out[1][0]["b"])
	assert.Equal(t, 1.0, out[1][1]["b"])
}

func TestSolve_EnumPure_MatchingPennies(t *testing.T) {
	d, err := builder.MatchingPennies()
	require.NoError(t, err)

	out, err := oracle.New().Solve(fullGame(t, d), oracle.EnumPure)
	require.NoError(t, err)
	assert.Empty(t, out, "matching pennies has no pure equilibrium")
}

func TestSolve_EnumPure_SingleDecision(t *testing.T) {
	d, err := builder.SingleDecision()
	require.NoError(t, err)
	g := fullGame(t, d)

	out, err := oracle.New().Solve(g, oracle.EnumPure)
	require.NoError(t, err)
	require.Len(t, out, 1, "copying the coin is the unique optimum")

	heads, ok := g.InfoSetOf("D", core.Assignment{"X": "heads"}, []string{"X"})
	require.True(t, ok)
	tails, ok := g.InfoSetOf("D", core.Assignment{"X": "tails"}, []string{"X"})
	require.True(t, ok)
	assert.Equal(t, 1.0, out[0][heads]["heads"])
	assert.Equal(t, 1.0, out[0][tails]["tails"])
}

func TestSolve_EnumMixed_MatchingPennies(t *testing.T) {
	d, err := builder.MatchingPennies()
	require.NoError(t, err)

	out, err := oracle.New().Solve(fullGame(t, d), oracle.EnumMixed)
	require.NoError(t, err)
	require.Len(t, out, 1, "matching pennies has a unique equilibrium")

	for _, is := range []int{0, 1} {
		assert.InDelta(t, 0.5, out[0][is]["heads"], 1e-6)
		assert.InDelta(t, 0.5, out[0][is]["tails"], 1e-6)
	}
}

func TestSolve_EnumMixed_Coordination(t *testing.T) {
	d, err := builder.Coordination()
	require.NoError(t, err)

	out, err := oracle.New().Solve(fullGame(t, d), oracle.EnumMixed)
	require.NoError(t, err)
	require.Len(t, out, 3, "two pure plus the fully mixed equilibrium")

	mixed := 0
	for _, b := range out {
		if b[0]["a"] > 0.25 && b[0]["a"] < 0.75 {
			mixed++
			assert.InDelta(t, 0.5, b[0]["a"], 1e-6)
			assert.InDelta(t, 0.5, b[1]["a"], 1e-6)
		}
	}
	assert.Equal(t, 1, mixed)
}

func TestSolve_EnumMixed_RequiresTwoPlayers(t *testing.T) {
	d, err := builder.SingleDecision()
	require.NoError(t, err)

	_, err = oracle.New().Solve(fullGame(t, d), oracle.EnumMixed)
	assert.ErrorIs(t, err, oracle.ErrIncompatible)
}

func TestSolve_LP(t *testing.T) {
	o := oracle.New()

	// Constant-sum instance: accepted, one equilibrium returned.
	pennies, err := builder.MatchingPennies()
	require.NoError(t, err)
	out, err := o.Solve(fullGame(t, pennies), oracle.LP)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.InDelta(t, 0.5, out[0][0]["heads"], 1e-6)

	// Non-constant-sum instance: rejected.
	coord, err := builder.Coordination()
	require.NoError(t, err)
	_, err = o.Solve(fullGame(t, coord), oracle.LP)
	assert.ErrorIs(t, err, oracle.ErrIncompatible)
}

func TestSolve_SimpDiv_FindsOne(t *testing.T) {
	o := oracle.New()

	// With pure equilibria present, the cheap scan answers first.
	coord, err := builder.Coordination()
	require.NoError(t, err)
	out, err := o.Solve(fullGame(t, coord), oracle.SimpDiv)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 1.0, out[0][0]["a"])

	// Without pure equilibria, two-player support enumeration answers.
	pennies, err := builder.MatchingPennies()
	require.NoError(t, err)
	out, err = o.Solve(fullGame(t, pennies), oracle.SimpDiv)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.InDelta(t, 0.5, out[0][0]["heads"], 1e-6)
}

func TestSolve_SequentialPerfectInformation(t *testing.T) {
	// Full-scope signaling game: player2 observes player1's move. The
	// follower's tie after "l" doubles the pure equilibrium count.
	d, err := builder.Signaling()
	require.NoError(t, err)
	g := fullGame(t, d)

	out, err := oracle.New().Solve(g, oracle.EnumPure)
	require.NoError(t, err)

	// Exactly three survive the deviation checks: (l; l,l), (l; l,r)
	// and (r; r,l). Off-path follower choices only matter through the
	// leader's deviation payoff.
	require.Len(t, out, 3)
	for _, b := range out {
		for is := range g.InfoSets {
			assert.Contains(t, b, is)
		}
	}
}

func TestSolve_SameAgentSequentialDecisions(t *testing.T) {
	// One agent moves twice: the second decision observes the first and
	// is paid for copying it. Any strategy that copies on-path is
	// optimal regardless of the off-path branch, so pure enumeration
	// returns four equilibria.
	d := core.New()
	require.NoError(t, d.AddDecision("D1", "a1", nil, []string{"l", "r"}))
	require.NoError(t, d.AddDecision("D2", "a1", []string{"D1"}, []string{"l", "r"}))
	require.NoError(t, d.AddUtility("U", "a1", []string{"D1", "D2"}, core.Payoff{
		"D1=l|D2=l": 1, "D1=l|D2=r": 0,
		"D1=r|D2=l": 0, "D1=r|D2=r": 1,
	}))
	g := fullGame(t, d)

	out, err := oracle.New().Solve(g, oracle.EnumPure)
	require.NoError(t, err)
	require.Len(t, out, 4)

	root, ok := g.InfoSetOf("D1", core.Assignment{}, nil)
	require.True(t, ok)
	for _, b := range out {
		var move string
		for action, p := range b[root] {
			if p == 1 {
				move = action
			}
		}
		require.NotEmpty(t, move)

		follow, ok := g.InfoSetOf("D2", core.Assignment{"D1": move}, []string{"D1"})
		require.True(t, ok)
		assert.Equal(t, core.Deterministic(move), b[follow])
	}
}

func TestNew_WithEpsilon(t *testing.T) {
	d, err := builder.MatchingPennies()
	require.NoError(t, err)
	g := fullGame(t, d)

	// A tolerance wider than any deviation gain accepts all four pure
	// profiles of matching pennies.
	out, err := oracle.New(oracle.WithEpsilon(10)).Solve(g, oracle.EnumPure)
	require.NoError(t, err)
	assert.Len(t, out, 4)

	// Non-positive values are ignored; the strict default finds none.
	out, err = oracle.New(oracle.WithEpsilon(-1)).Solve(g, oracle.EnumPure)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestNew_WithIterations(t *testing.T) {
	// Three players chasing each other in a match/match/mismatch cycle
	// have no pure equilibrium, and uniform mixing is a fixed point of
	// regret matching: every action pays 0.5 against uniform opponents,
	// so regrets never move. One iteration already verifies it.
	d := core.New()
	for _, ids := range [][2]string{{"D1", "a1"}, {"D2", "a2"}, {"D3", "a3"}} {
		require.NoError(t, d.AddDecision(ids[0], ids[1], nil, []string{"h", "t"}))
	}
	require.NoError(t, d.AddUtility("U1", "a1", []string{"D1", "D2"}, core.Payoff{
		"D1=h|D2=h": 1, "D1=h|D2=t": 0, "D1=t|D2=h": 0, "D1=t|D2=t": 1,
	}))
	require.NoError(t, d.AddUtility("U2", "a2", []string{"D2", "D3"}, core.Payoff{
		"D2=h|D3=h": 1, "D2=h|D3=t": 0, "D2=t|D3=h": 0, "D2=t|D3=t": 1,
	}))
	require.NoError(t, d.AddUtility("U3", "a3", []string{"D1", "D3"}, core.Payoff{
		"D1=h|D3=h": 0, "D1=h|D3=t": 1, "D1=t|D3=h": 1, "D1=t|D3=t": 0,
	}))
	g := fullGame(t, d)

	out, err := oracle.New(oracle.WithIterations(1)).Solve(g, oracle.SimpDiv)
	require.NoError(t, err)
	require.Len(t, out, 1)
	for is := range g.InfoSets {
		assert.Equal(t, core.Distribution{"h": 0.5, "t": 0.5}, out[0][is])
	}
}
