package nash_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/macid/builder"
	"github.com/katalvlaran/macid/core"
	"github.com/katalvlaran/macid/nash"
	"github.com/katalvlaran/macid/oracle"
)

// warnLog captures adapter warnings for assertions.
type warnLog struct{ msgs []string }

func (w *warnLog) add(format string, args ...any) {
	w.msgs = append(w.msgs, fmt.Sprintf(format, args...))
}

func (w *warnLog) contains(sub string) bool {
	for _, m := range w.msgs {
		if strings.Contains(m, sub) {
			return true
		}
	}

	return false
}

// buildCyclicMismatch creates a three-agent game with no pure
// equilibrium: each agent wants to match the next, except the third,
// who wants to differ from the first.
func buildCyclicMismatch(t *testing.T) *core.Diagram {
	t.Helper()
	d := core.New()
	for _, ids := range [][2]string{{"D1", "a1"}, {"D2", "a2"}, {"D3", "a3"}} {
		require.NoError(t, d.AddDecision(ids[0], ids[1], nil, []string{"h", "t"}))
	}
	match := func(a, b string) core.Payoff {
		return core.Payoff{
			a + "=h|" + b + "=h": 1, a + "=h|" + b + "=t": 0,
			a + "=t|" + b + "=h": 0, a + "=t|" + b + "=t": 1,
		}
	}
	mismatch := func(a, b string) core.Payoff {
		return core.Payoff{
			a + "=h|" + b + "=h": 0, a + "=h|" + b + "=t": 1,
			a + "=t|" + b + "=h": 1, a + "=t|" + b + "=t": 0,
		}
	}
	require.NoError(t, d.AddUtility("U1", "a1", []string{"D1", "D2"}, match("D1", "D2")))
	require.NoError(t, d.AddUtility("U2", "a2", []string{"D2", "D3"}, match("D2", "D3")))
	require.NoError(t, d.AddUtility("U3", "a3", []string{"D1", "D3"}, mismatch("D1", "D3")))

	return d
}

func TestAll_NilDiagram(t *testing.T) {
	_, err := nash.All(nil)
	assert.ErrorIs(t, err, nash.ErrNilDiagram)
}

func TestAll_SingleDecision(t *testing.T) {
	d, err := builder.SingleDecision()
	require.NoError(t, err)

	profiles, err := nash.All(d)
	require.NoError(t, err)
	require.Len(t, profiles, 1)

	rule, ok := profiles[0].Get("D")
	require.True(t, ok)
	assert.Equal(t, 1.0, rule["X=heads"]["heads"])
	assert.Equal(t, 1.0, rule["X=tails"]["tails"])
}

func TestAll_Coordination_DefaultMixed(t *testing.T) {
	d, err := builder.Coordination()
	require.NoError(t, err)

	// Two players, unpinned: full mixed enumeration.
	profiles, err := nash.All(d)
	require.NoError(t, err)
	require.Len(t, profiles, 3)

	for _, p := range profiles {
		assert.Equal(t, []string{"D1", "D2"}, p.Decisions())
	}
}

func TestAll_MatchingPennies_DefaultMixed(t *testing.T) {
	d, err := builder.MatchingPennies()
	require.NoError(t, err)

	profiles, err := nash.All(d)
	require.NoError(t, err)
	require.Len(t, profiles, 1)

	for _, dec := range []string{"D1", "D2"} {
		rule, ok := profiles[0].Get(dec)
		require.True(t, ok)
		assert.InDelta(t, 0.5, rule[""]["heads"], 1e-6)
		assert.InDelta(t, 0.5, rule[""]["tails"], 1e-6)
	}
}

func TestAll_PinnedPure_NoFallback(t *testing.T) {
	d, err := builder.MatchingPennies()
	require.NoError(t, err)

	var w warnLog
	profiles, err := nash.All(d,
		nash.WithAlgorithm(oracle.EnumPure),
		nash.WithWarnHandler(w.add))
	require.NoError(t, err)

	// Pinned pure enumeration stays empty, silently.
	assert.Empty(t, profiles)
	assert.Empty(t, w.msgs)
}

func TestAll_PinnedTwoPlayerSolver_Substituted(t *testing.T) {
	d, err := builder.SingleDecision()
	require.NoError(t, err)

	var w warnLog
	profiles, err := nash.All(d,
		nash.WithAlgorithm(oracle.EnumMixed),
		nash.WithWarnHandler(w.add))
	require.NoError(t, err)

	// One player: the two-player solver is swapped for pure enumeration.
	require.Len(t, profiles, 1)
	assert.True(t, w.contains("not allowed"), "expected a substitution warning, got %v", w.msgs)
}

func TestAll_PinnedLP_IncompatibleSubstituted(t *testing.T) {
	d, err := builder.Coordination()
	require.NoError(t, err)

	var w warnLog
	profiles, err := nash.All(d,
		nash.WithAlgorithm(oracle.LP),
		nash.WithWarnHandler(w.add))
	require.NoError(t, err)

	// Non-constant-sum: LP bounces, the two-player default takes over.
	require.Len(t, profiles, 3)
	assert.True(t, w.contains("incompatible"), "expected an incompatibility warning, got %v", w.msgs)
}

func TestAll_UnpinnedEmptyPure_FallsBack(t *testing.T) {
	d := buildCyclicMismatch(t)

	var w warnLog
	profiles, err := nash.All(d, nash.WithWarnHandler(w.add))
	require.NoError(t, err)

	// Three players, unpinned: pure enumeration finds nothing and the
	// adapter retries with simpdiv.
	assert.True(t, w.contains("trying simpdiv"), "expected a fallback warning, got %v", w.msgs)
	for _, p := range profiles {
		assert.Equal(t, []string{"D1", "D2", "D3"}, p.Decisions())
	}
}

func TestInSubgame_RestrictsToScope(t *testing.T) {
	d, err := builder.Signaling()
	require.NoError(t, err)

	profiles, err := nash.InSubgame(d, []string{"D2"})
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	// Only the in-scope decision is bound; the first mover was imputed
	// uniform for the reduction but never enters the result.
	for _, p := range profiles {
		assert.Equal(t, []string{"D2"}, p.Decisions())
		rule, _ := p.Get("D2")
		assert.Equal(t, 1.0, rule["D1=r"]["l"], "strict preference after r")
	}
	first, _ := profiles[0].Get("D2")
	second, _ := profiles[1].Get("D2")
	assert.Equal(t, 1.0, first["D1=l"]["l"])
	assert.Equal(t, 1.0, second["D1=l"]["r"])
}

func TestInSubgame_OpenSubgame(t *testing.T) {
	d, err := builder.Signaling()
	require.NoError(t, err)

	// {D1} is not closed: D1 relies on the unfixed D2.
	_, err = nash.InSubgame(d, []string{"D1"})
	assert.ErrorIs(t, err, nash.ErrOpenSubgame)
}

func TestInSubgame_CallerDiagramUntouched(t *testing.T) {
	d, err := builder.Signaling()
	require.NoError(t, err)
	require.NoError(t, d.SetRule("D2", core.Rule{
		"D1=l": core.Deterministic("r"),
		"D1=r": core.Deterministic("r"),
	}))

	// A stale rule on the target decision is cleared on the working copy
	// and the subgame is re-solved from scratch.
	profiles, err := nash.InSubgame(d, []string{"D2"})
	require.NoError(t, err)
	assert.Len(t, profiles, 2)

	// The caller's rule survives unchanged.
	rule, fixed := d.RuleOf("D2")
	require.True(t, fixed)
	assert.Equal(t, 1.0, rule["D1=r"]["r"])
}

func TestImpute(t *testing.T) {
	d, err := builder.Signaling()
	require.NoError(t, err)

	// D1 is not strategically relevant to {D2}: imputed uniform.
	work := d.Copy()
	require.NoError(t, nash.Impute(work, []string{"D2"}))
	rule, fixed := work.RuleOf("D1")
	require.True(t, fixed)
	assert.InDelta(t, 0.5, rule[""]["l"], 1e-12)

	// D2 is relevant to {D1} and unfixed: refuse to guess.
	work = d.Copy()
	err = nash.Impute(work, []string{"D1"})
	assert.ErrorIs(t, err, nash.ErrOpenSubgame)

	assert.ErrorIs(t, nash.Impute(nil, nil), nash.ErrNilDiagram)
}
