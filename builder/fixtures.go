// SPDX-License-Identifier: MIT
// Package: macid/builder
//
// fixtures.go - canonical diagrams shared by tests and examples.
//
// Contract:
//   - Each constructor returns a fresh, fully validated diagram; callers
//     may mutate the result freely without affecting later calls.
//   - Construction is deterministic: node identifiers, agents, domains
//     and tables never vary between calls.
//   - Errors are structurally impossible for these fixed tables, but the
//     (diagram, error) signature is kept so callers handle them uniformly
//     with FromYAML.
//
// Determinism:
//   - Parent contexts in payoff and CPD tables use the canonical key
//     format (sorted parents, "p=v" joined by "|").

package builder

import "github.com/katalvlaran/macid/core"

// Fixture node and agent identifiers.
const (
	fixtureAgentOne = "player1"
	fixtureAgentTwo = "player2"
)

// SingleDecision returns a one-agent diagram: a fair binary chance node X,
// a decision D observing X, and a utility U paying 1 when D matches X.
// The unique optimal rule copies X, so flat equilibrium computation and
// backward induction both produce exactly one pure profile.
func SingleDecision() (*core.Diagram, error) {
	d := core.New()
	if err := d.AddChance("X", nil, []string{"heads", "tails"}, core.CPD{
		"": {"heads": 0.5, "tails": 0.5},
	}); err != nil {
		return nil, err
	}
	if err := d.AddDecision("D", fixtureAgentOne, []string{"X"}, []string{"heads", "tails"}); err != nil {
		return nil, err
	}
	if err := d.AddUtility("U", fixtureAgentOne, []string{"D", "X"}, core.Payoff{
		"D=heads|X=heads": 1,
		"D=tails|X=heads": 0,
		"D=heads|X=tails": 0,
		"D=tails|X=tails": 1,
	}); err != nil {
		return nil, err
	}
	return d, nil
}

// Coordination returns a two-agent simultaneous coordination diagram:
// decisions D1 and D2 with no observations, both agents paid 1 when the
// choices match and 0 otherwise. It has two pure equilibria (both pick
// "a", both pick "b") and one fully mixed equilibrium at (1/2, 1/2).
// The decisions rely on each other, so the relevance condensation is a
// single two-decision block.
func Coordination() (*core.Diagram, error) {
	d := core.New()
	if err := d.AddDecision("D1", fixtureAgentOne, nil, []string{"a", "b"}); err != nil {
		return nil, err
	}
	if err := d.AddDecision("D2", fixtureAgentTwo, nil, []string{"a", "b"}); err != nil {
		return nil, err
	}
	match := core.Payoff{
		"D1=a|D2=a": 1,
		"D1=a|D2=b": 0,
		"D1=b|D2=a": 0,
		"D1=b|D2=b": 1,
	}
	if err := d.AddUtility("U1", fixtureAgentOne, []string{"D1", "D2"}, match); err != nil {
		return nil, err
	}
	if err := d.AddUtility("U2", fixtureAgentTwo, []string{"D1", "D2"}, match); err != nil {
		return nil, err
	}
	return d, nil
}

// MatchingPennies returns the classic two-agent zero-sum diagram: the
// first agent wins on a match, the second on a mismatch. It has no pure
// equilibrium; the unique equilibrium mixes both actions at (1/2, 1/2).
func MatchingPennies() (*core.Diagram, error) {
	d := core.New()
	if err := d.AddDecision("D1", fixtureAgentOne, nil, []string{"heads", "tails"}); err != nil {
		return nil, err
	}
	if err := d.AddDecision("D2", fixtureAgentTwo, nil, []string{"heads", "tails"}); err != nil {
		return nil, err
	}
	if err := d.AddUtility("U1", fixtureAgentOne, []string{"D1", "D2"}, core.Payoff{
		"D1=heads|D2=heads": 1,
		"D1=heads|D2=tails": -1,
		"D1=tails|D2=heads": -1,
		"D1=tails|D2=tails": 1,
	}); err != nil {
		return nil, err
	}
	if err := d.AddUtility("U2", fixtureAgentTwo, []string{"D1", "D2"}, core.Payoff{
		"D1=heads|D2=heads": -1,
		"D1=heads|D2=tails": 1,
		"D1=tails|D2=heads": 1,
		"D1=tails|D2=tails": -1,
	}); err != nil {
		return nil, err
	}
	return d, nil
}

// Signaling returns a two-agent sequential diagram: agent one picks D1,
// agent two observes D1 and picks D2. The second agent is indifferent
// between its actions after D1=l and strictly prefers "l" after D1=r,
// so its subgame has exactly two pure equilibria. The first agent's best
// reply is unique against each of them, which makes the diagram split
// into two relevance blocks with exactly two subgame perfect equilibria.
func Signaling() (*core.Diagram, error) {
	d := core.New()
	if err := d.AddDecision("D1", fixtureAgentOne, nil, []string{"l", "r"}); err != nil {
		return nil, err
	}
	if err := d.AddDecision("D2", fixtureAgentTwo, []string{"D1"}, []string{"l", "r"}); err != nil {
		return nil, err
	}
	if err := d.AddUtility("U1", fixtureAgentOne, []string{"D1", "D2"}, core.Payoff{
		"D1=l|D2=l": 2,
		"D1=l|D2=r": 0,
		"D1=r|D2=l": 1,
		"D1=r|D2=r": 1,
	}); err != nil {
		return nil, err
	}
	if err := d.AddUtility("U2", fixtureAgentTwo, []string{"D1", "D2"}, core.Payoff{
		"D1=l|D2=l": 1,
		"D1=l|D2=r": 1,
		"D1=r|D2=l": 1,
		"D1=r|D2=r": 0,
	}); err != nil {
		return nil, err
	}
	return d, nil
}
