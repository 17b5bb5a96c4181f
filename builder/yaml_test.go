package builder_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/macid/builder"
	"github.com/katalvlaran/macid/core"
)

// matchDoc declares the single-decision match game with nodes shuffled
// out of dependency order on purpose.
const matchDoc = `
nodes:
  - id: U
    kind: utility
    agent: player1
    parents: [D, X]
    payoff:
      "D=heads|X=heads": 1
      "D=tails|X=heads": 0
      "D=heads|X=tails": 0
      "D=tails|X=tails": 1
  - id: D
    kind: decision
    agent: player1
    parents: [X]
    domain: [heads, tails]
  - id: X
    kind: chance
    domain: [heads, tails]
    cpd:
      "": {heads: 0.5, tails: 0.5}
`

func TestFromYAML_ResolvesAnyOrder(t *testing.T) {
	d, err := builder.FromYAML([]byte(matchDoc))
	require.NoError(t, err)
	require.NoError(t, d.Validate())

	assert.Equal(t, []string{"D"}, d.Decisions())
	kind, err := d.KindOf("X")
	require.NoError(t, err)
	assert.Equal(t, core.Chance, kind)

	parents, err := d.Parents("U")
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "X"}, parents)

	pay, err := d.PayoffOf("U")
	require.NoError(t, err)
	assert.Equal(t, 1.0, pay["D=heads|X=heads"])
}

func TestFromYAML_RulesSection(t *testing.T) {
	doc := matchDoc + `
rules:
  D:
    "X=heads": {heads: 1}
    "X=tails": {tails: 1}
`
	d, err := builder.FromYAML([]byte(doc))
	require.NoError(t, err)

	rule, fixed := d.RuleOf("D")
	require.True(t, fixed)
	assert.Equal(t, 1.0, rule["X=heads"]["heads"])
	assert.Equal(t, 1.0, rule["X=tails"]["tails"])
}

func TestFromYAML_BadDocument(t *testing.T) {
	// Not YAML at all.
	_, err := builder.FromYAML([]byte("\t{{"))
	assert.ErrorIs(t, err, builder.ErrBadDocument)

	// Unknown top-level field (strict decoding).
	_, err = builder.FromYAML([]byte("vertices: []\n"))
	assert.ErrorIs(t, err, builder.ErrBadDocument)
}

func TestFromYAML_EmptyDocument(t *testing.T) {
	d, err := builder.FromYAML(nil)
	require.NoError(t, err)
	assert.Empty(t, d.Nodes())
}

func TestFromYAML_UnknownKind(t *testing.T) {
	doc := `
nodes:
  - id: X
    kind: oracle
    domain: [a, b]
`
	_, err := builder.FromYAML([]byte(doc))
	assert.ErrorIs(t, err, builder.ErrUnknownKind)
}

func TestFromYAML_UnresolvedParent(t *testing.T) {
	doc := `
nodes:
  - id: D
    kind: decision
    agent: player1
    parents: [ghost]
    domain: [a, b]
`
	_, err := builder.FromYAML([]byte(doc))
	assert.ErrorIs(t, err, builder.ErrUnresolvedNode)
}

func TestFromYAML_ParentCycle(t *testing.T) {
	doc := `
nodes:
  - id: A
    kind: chance
    parents: [B]
    domain: [x]
    cpd:
      "B=x": {x: 1}
  - id: B
    kind: chance
    parents: [A]
    domain: [x]
    cpd:
      "A=x": {x: 1}
`
	_, err := builder.FromYAML([]byte(doc))
	assert.ErrorIs(t, err, builder.ErrUnresolvedNode)
}

func TestFromYAML_CoreValidationPassesThrough(t *testing.T) {
	doc := `
nodes:
  - id: X
    kind: chance
    domain: [a, b]
    cpd:
      "": {a: 0.9, b: 0.9}
`
	_, err := builder.FromYAML([]byte(doc))
	assert.ErrorIs(t, err, core.ErrBadDistribution)
}

func TestFromYAML_RuleForUnknownDecision(t *testing.T) {
	// A rule keyed by a chance node.
	doc := matchDoc + `
rules:
  X:
    "": {heads: 1}
`
	_, err := builder.FromYAML([]byte(doc))
	assert.ErrorIs(t, err, builder.ErrUnknownRule)

	// A rule keyed by a node the document never declares.
	doc = matchDoc + `
rules:
  Z:
    "": {heads: 1}
`
	_, err = builder.FromYAML([]byte(doc))
	assert.ErrorIs(t, err, builder.ErrUnknownRule)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match.yaml")
	require.NoError(t, os.WriteFile(path, []byte(matchDoc), 0o600))

	d, err := builder.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"D"}, d.Decisions())

	_, err = builder.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestFixtures_Valid(t *testing.T) {
	cases := []struct {
		name      string
		build     func() (*core.Diagram, error)
		decisions []string
		agents    []string
	}{
		{"single", builder.SingleDecision, []string{"D"}, []string{"player1"}},
		{"coordination", builder.Coordination, []string{"D1", "D2"}, []string{"player1", "player2"}},
		{"pennies", builder.MatchingPennies, []string{"D1", "D2"}, []string{"player1", "player2"}},
		{"signaling", builder.Signaling, []string{"D1", "D2"}, []string{"player1", "player2"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := tc.build()
			require.NoError(t, err)
			require.NoError(t, d.Validate())
			assert.Equal(t, tc.decisions, d.Decisions())
			assert.Equal(t, tc.agents, d.Agents())
		})
	}
}

func TestFixtures_FreshCopies(t *testing.T) {
	a, err := builder.SingleDecision()
	require.NoError(t, err)
	b, err := builder.SingleDecision()
	require.NoError(t, err)

	require.NoError(t, a.SetRule("D", core.Rule{
		"X=heads": core.Deterministic("heads"),
		"X=tails": core.Deterministic("tails"),
	}))

	_, fixed := b.RuleOf("D")
	assert.False(t, fixed, "fixtures must not share state")
}
