// Package efg - reduction of a MACID subgame to a game tree.
package efg

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/macid/core"
)

// builder carries shared state while the tree is grown.
type builder struct {
	d       *core.Diagram
	scope   map[string]struct{}
	branch  []string          // chance + decision nodes, topological order
	parents map[string][]string
	domains map[string][]string
	cpds    map[string]core.CPD  // chance CPDs and out-of-scope rules
	rules   map[string]core.Rule // in-scope: nil entries, branching by choice
	players []string
	utils   map[string][]string // player → utility nodes
	game    *Game
}

// Build reduces diagram d restricted to the given solve scope into an
// extensive-form Game. Every decision outside scope must carry a fixed
// rule; every chance node's CPD participates as-is.
//
// Determinism: the tree follows the diagram's topological order with
// lexicographic tie-breaks, actions follow domain declaration order, and
// information sets are numbered in discovery order, so repeated builds
// of the same diagram yield identical games.
//
// Errors: ErrNilDiagram, ErrEmptyScope, core.ErrNodeNotFound,
// core.ErrNotDecision, ErrUnresolvedDecision, core.ErrCycle.
//
// Complexity: O(size of the tree) - exponential in the number of
// branching nodes, inherent to the reduction.
func Build(d *core.Diagram, scope []string) (*Game, error) {
	// 1. Preconditions.
	if d == nil {
		return nil, ErrNilDiagram
	}
	if len(scope) == 0 {
		return nil, ErrEmptyScope
	}
	inScope := make(map[string]struct{}, len(scope))
	for _, id := range scope {
		k, err := d.KindOf(id)
		if err != nil {
			return nil, fmt.Errorf("efg: Build: %w", err)
		}
		if k != core.Decision {
			return nil, fmt.Errorf("efg: Build: node %q: %w", id, core.ErrNotDecision)
		}
		inScope[id] = struct{}{}
	}

	topo, err := d.TopoOrder()
	if err != nil {
		return nil, fmt.Errorf("efg: Build: %w", err)
	}

	b := &builder{
		d:       d,
		scope:   inScope,
		parents: make(map[string][]string),
		domains: make(map[string][]string),
		cpds:    make(map[string]core.CPD),
		rules:   make(map[string]core.Rule),
		utils:   make(map[string][]string),
	}

	// 2. Snapshot the branching layer; out-of-scope decisions must be fixed.
	for _, id := range topo {
		kind, _ := d.KindOf(id)
		if kind == core.Utility {
			continue
		}
		b.branch = append(b.branch, id)
		b.parents[id], _ = d.Parents(id)
		b.domains[id], _ = d.DomainOf(id)

		switch kind {
		case core.Chance:
			cpd, cerr := d.CPDOf(id)
			if cerr != nil {
				return nil, fmt.Errorf("efg: Build: %w", cerr)
			}
			b.cpds[id] = cpd
		case core.Decision:
			if _, in := inScope[id]; in {
				continue
			}
			rule, fixed := d.RuleOf(id)
			if !fixed {
				return nil, fmt.Errorf("efg: Build: decision %q: %w", id, ErrUnresolvedDecision)
			}
			b.cpds[id] = core.CPD(rule)
		}
	}

	// 3. Participating players and their utility nodes.
	playerSet := make(map[string]struct{})
	for id := range inScope {
		owner, _ := d.OwnerOf(id)
		playerSet[owner] = struct{}{}
	}
	for p := range playerSet {
		b.players = append(b.players, p)
	}
	sort.Strings(b.players)
	for _, p := range b.players {
		b.utils[p] = d.AgentUtilities(p)
	}

	sortedScope := make([]string, 0, len(inScope))
	for id := range inScope {
		sortedScope = append(sortedScope, id)
	}
	sort.Strings(sortedScope)

	b.game = &Game{
		Players:  b.players,
		Scope:    sortedScope,
		contexts: make(map[string]int),
	}

	// 4. Grow the tree.
	b.game.Root = b.grow(0, core.Assignment{})

	return b.game, nil
}

// grow recursively builds the subtree for branch node i under the
// accumulated assignment.
func (b *builder) grow(i int, assign core.Assignment) *Node {
	// Terminal: all branching nodes assigned; collect payoffs.
	if i == len(b.branch) {
		payoffs := make(map[string]float64, len(b.players))
		for _, p := range b.players {
			var total float64
			for _, u := range b.utils[p] {
				pay, _ := b.d.PayoffOf(u)
				parents, _ := b.d.Parents(u)
				total += pay[core.Key(parents, core.Restrict(assign, parents))]
			}
			payoffs[p] = total
		}

		return &Node{Type: TerminalNode, Payoffs: payoffs}
	}

	id := b.branch[i]
	domain := b.domains[id]
	ctxKey := core.Key(b.parents[id], core.Restrict(assign, b.parents[id]))

	node := &Node{
		Label:    id,
		Actions:  append([]string(nil), domain...),
		Children: make([]*Node, len(domain)),
	}

	if cpd, resolved := b.cpds[id]; resolved {
		// Chance branching: CPD of a chance node or fixed rule of an
		// out-of-scope decision.
		node.Type = ChanceNode
		node.Probs = make([]float64, len(domain))
		dist := cpd[ctxKey]
		for j, v := range domain {
			node.Probs[j] = dist[v]
		}
	} else {
		// In-scope decision: branch by choice inside an information set.
		node.Type = DecisionNode
		node.Player, _ = b.d.OwnerOf(id)
		node.InfoSet = b.infoSetFor(id, node.Player, assign)
	}

	for j, v := range domain {
		ext := make(core.Assignment, len(assign)+1)
		for k, val := range assign {
			ext[k] = val
		}
		ext[id] = v
		node.Children[j] = b.grow(i+1, ext)
	}

	return node
}

// infoSetFor returns the information-set index for decision id under the
// observed parent context, registering a new set on first sight.
func (b *builder) infoSetFor(id, player string, assign core.Assignment) int {
	parents := b.parents[id]
	ctx := core.Restrict(assign, parents)
	key := id + "|" + core.Key(parents, ctx)
	if idx, seen := b.game.contexts[key]; seen {
		return idx
	}

	idx := len(b.game.InfoSets)
	b.game.InfoSets = append(b.game.InfoSets, InfoSet{
		Player:   player,
		Decision: id,
		Context:  ctx,
		Actions:  append([]string(nil), b.domains[id]...),
	})
	b.game.contexts[key] = idx

	return idx
}
