// Package oracle - reduced strategic form of an extensive-form game.
//
// Each player's pure strategies are tuples assigning one action index to
// every information set the player owns. Payoffs for a joint pure
// strategy come from a probability-weighted walk of the game tree. The
// full payoff tensor is precomputed once per Solve call; everything
// downstream (pure enumeration, support enumeration, regret matching)
// reads from it.
package oracle

import (
	"math"

	"github.com/katalvlaran/macid/core"
	"github.com/katalvlaran/macid/efg"
)

// strategic is the reduced strategic form of one game.
type strategic struct {
	game    *efg.Game
	players []string

	sets [][]int     // per player: global infoset indices, discovery order
	pos  map[int]int // global infoset index → position in its owner's sets

	pures [][][]int // per player: pure strategies (action index per position)

	radix  []int       // per player: len(pures[player])
	payoff [][]float64 // flat joint index → payoff per player

	// own[I] maps a position of I's owner to the action index the owner
	// must have taken there on every path into infoset I. Strategies
	// violating these constraints cannot reach I (Kuhn consistency).
	own map[int]map[int]int
}

// newStrategic extracts the strategic form of g.
//
// Complexity: O(Π_p |S_p| · tree size) for the payoff tensor -
// exponential by nature of exhaustive enumeration.
func newStrategic(g *efg.Game) *strategic {
	s := &strategic{
		game:    g,
		players: g.Players,
		pos:     make(map[int]int),
		own:     make(map[int]map[int]int),
	}

	// 1. Per-player infoset layout.
	s.sets = make([][]int, len(g.Players))
	for pi, p := range g.Players {
		s.sets[pi] = g.PlayerInfoSets(p)
		for k, idx := range s.sets[pi] {
			s.pos[idx] = k
		}
	}

	// 2. Pure strategies: the cross product of action choices.
	s.pures = make([][][]int, len(g.Players))
	s.radix = make([]int, len(g.Players))
	for pi := range g.Players {
		s.pures[pi] = enumerateTuples(s.counts(pi))
		s.radix[pi] = len(s.pures[pi])
	}

	// 3. Own-history constraints per infoset.
	s.collectOwnHistory(g.Root, make([]map[int]int, len(g.Players)))

	// 4. Payoff tensor over all joint pure strategies.
	total := 1
	for _, r := range s.radix {
		total *= r
	}
	s.payoff = make([][]float64, total)
	combo := make([]int, len(g.Players))
	for flat := 0; flat < total; flat++ {
		s.decode(flat, combo)
		s.payoff[flat] = s.evalPure(combo)
	}

	return s
}

// counts returns the action count per infoset position of player pi.
func (s *strategic) counts(pi int) []int {
	out := make([]int, len(s.sets[pi]))
	for k, idx := range s.sets[pi] {
		out[k] = len(s.game.InfoSets[idx].Actions)
	}

	return out
}

// enumerateTuples lists every tuple with tuple[i] ∈ [0, sizes[i]), in
// lexicographic order. A player with no infosets has one empty strategy.
func enumerateTuples(sizes []int) [][]int {
	out := [][]int{{}}
	for _, n := range sizes {
		next := make([][]int, 0, len(out)*n)
		for _, t := range out {
			for a := 0; a < n; a++ {
				ext := make([]int, len(t), len(t)+1)
				copy(ext, t)
				next = append(next, append(ext, a))
			}
		}
		out = next
	}

	return out
}

// decode expands a flat joint index into per-player strategy indices.
func (s *strategic) decode(flat int, combo []int) {
	for pi := len(s.radix) - 1; pi >= 0; pi-- {
		combo[pi] = flat % s.radix[pi]
		flat /= s.radix[pi]
	}
}

// encode flattens per-player strategy indices into one joint index.
func (s *strategic) encode(combo []int) int {
	flat := 0
	for pi := 0; pi < len(s.radix); pi++ {
		flat = flat*s.radix[pi] + combo[pi]
	}

	return flat
}

// evalPure computes per-player expected payoffs for one joint pure
// strategy by a probability-weighted tree walk.
func (s *strategic) evalPure(combo []int) []float64 {
	out := make([]float64, len(s.players))
	s.walkPure(s.game.Root, combo, 1, out)

	return out
}

func (s *strategic) walkPure(n *efg.Node, combo []int, weight float64, acc []float64) {
	switch n.Type {
	case efg.TerminalNode:
		for pi, p := range s.players {
			acc[pi] += weight * n.Payoffs[p]
		}
	case efg.ChanceNode:
		for j, child := range n.Children {
			if n.Probs[j] == 0 {
				continue
			}
			s.walkPure(child, combo, weight*n.Probs[j], acc)
		}
	case efg.DecisionNode:
		pi := s.playerIndex(n.Player)
		choice := s.pures[pi][combo[pi]][s.pos[n.InfoSet]]
		s.walkPure(n.Children[choice], combo, weight, acc)
	}
}

// playerIndex resolves a player label to its index in s.players.
func (s *strategic) playerIndex(p string) int {
	for i, q := range s.players {
		if q == p {
			return i
		}
	}

	return -1
}

// collectOwnHistory walks the tree carrying, per player, the action
// indices the player has taken so far, and intersects them into own[I]
// at each decision node. Paths that disagree on a position drop that
// constraint, which keeps the conversion safe on imperfect-recall trees.
func (s *strategic) collectOwnHistory(n *efg.Node, hist []map[int]int) {
	switch n.Type {
	case efg.TerminalNode:
		return
	case efg.ChanceNode:
		for _, child := range n.Children {
			s.collectOwnHistory(child, hist)
		}
	case efg.DecisionNode:
		pi := s.playerIndex(n.Player)
		if hist[pi] == nil {
			hist[pi] = make(map[int]int)
		}

		if existing, seen := s.own[n.InfoSet]; !seen {
			snap := make(map[int]int, len(hist[pi]))
			for k, a := range hist[pi] {
				snap[k] = a
			}
			s.own[n.InfoSet] = snap
		} else {
			for k, a := range existing {
				if got, ok := hist[pi][k]; !ok || got != a {
					delete(existing, k)
				}
			}
		}

		myPos := s.pos[n.InfoSet]
		for j, child := range n.Children {
			prev, had := hist[pi][myPos]
			hist[pi][myPos] = j
			s.collectOwnHistory(child, hist)
			if had {
				hist[pi][myPos] = prev
			} else {
				delete(hist[pi], myPos)
			}
		}
	}
}

// reaches reports whether pure strategy t of player pi satisfies the
// own-history constraints of infoset I.
func (s *strategic) reaches(pi int, t []int, infoset int) bool {
	for k, a := range s.own[infoset] {
		if t[k] != a {
			return false
		}
	}

	return true
}

// pureBehavior renders one joint pure strategy as a behavior strategy.
func (s *strategic) pureBehavior(combo []int) efg.Behavior {
	b := make(efg.Behavior, len(s.game.InfoSets))
	for pi := range s.players {
		t := s.pures[pi][combo[pi]]
		for k, idx := range s.sets[pi] {
			b[idx] = core.Deterministic(s.game.InfoSets[idx].Actions[t[k]])
		}
	}

	return b
}

// mixedBehavior converts per-player mixed strategies over pure
// strategies into a behavior strategy via realization weights: at each
// infoset, actions are weighted by the mass of reaching, consistent pure
// strategies. Unreached infosets get the uniform distribution.
func (s *strategic) mixedBehavior(mixed [][]float64) efg.Behavior {
	b := make(efg.Behavior, len(s.game.InfoSets))
	for pi := range s.players {
		for k, idx := range s.sets[pi] {
			actions := s.game.InfoSets[idx].Actions
			num := make([]float64, len(actions))
			var den float64
			for si, t := range s.pures[pi] {
				w := mixed[pi][si]
				if w == 0 || !s.reaches(pi, t, idx) {
					continue
				}
				den += w
				num[t[k]] += w
			}

			dist := make(core.Distribution, len(actions))
			if den <= 0 {
				for _, a := range actions {
					dist[a] = 1 / float64(len(actions))
				}
			} else {
				for j, a := range actions {
					dist[a] = num[j] / den
				}
			}
			b[idx] = dist
		}
	}

	return b
}

// constantSum reports whether every terminal's payoffs add to the same
// total across players (within tol).
func constantSum(root *efg.Node, tol float64) bool {
	var (
		ref   float64
		seen  bool
		check func(n *efg.Node) bool
	)
	check = func(n *efg.Node) bool {
		if n.Type == efg.TerminalNode {
			var total float64
			for _, u := range n.Payoffs {
				total += u
			}
			if !seen {
				ref, seen = total, true

				return true
			}

			return math.Abs(total-ref) <= tol
		}
		for _, child := range n.Children {
			if !check(child) {
				return false
			}
		}

		return true
	}

	return check(root)
}
