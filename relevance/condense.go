// Package relevance - SCC condensation of the relevance graph.
package relevance

import "sort"

// Condense collapses each strongly-connected component of g into one
// block and returns the resulting block DAG. Block member lists are
// sorted, block indices follow each block's smallest member ID, and the
// topological order is precomputed with the same tie-break, so the whole
// structure is deterministic for a given relevance graph.
//
// The condensation of any directed graph is acyclic, so TopoOrder is
// always total.
//
// Complexity: O(D + R + B log B).
func Condense(g *Graph) (*Condensed, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	// 1. SCC decomposition, members sorted per block.
	comps := stronglyConnected(g)
	for _, comp := range comps {
		sort.Strings(comp)
	}

	// 2. Stable block numbering: sort blocks by smallest member.
	sort.Slice(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })

	c := &Condensed{
		blocks: comps,
		adj:    make(map[int][]int, len(comps)),
		index:  make(map[string]int, len(g.nodes)),
	}
	for b, comp := range comps {
		for _, dec := range comp {
			c.index[dec] = b
		}
	}

	// 3. Project relevance edges onto blocks, dropping intra-block edges
	//    and duplicates.
	seen := make(map[[2]int]struct{})
	for _, from := range g.nodes {
		fb := c.index[from]
		for _, to := range g.adj[from] {
			tb := c.index[to]
			if fb == tb {
				continue
			}
			key := [2]int{fb, tb}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			c.adj[fb] = append(c.adj[fb], tb)
		}
	}
	for b := range c.adj {
		sort.Ints(c.adj[b])
	}

	// 4. Kahn topological order with smallest-block-index tie-break.
	c.topo = topoBlocks(len(comps), c.adj)

	return c, nil
}

// topoBlocks runs Kahn's algorithm over the block DAG. The condensation
// is acyclic by construction, so the result always covers every block.
func topoBlocks(n int, adj map[int][]int) []int {
	indeg := make([]int, n)
	for _, succs := range adj {
		for _, s := range succs {
			indeg[s]++
		}
	}

	var ready []int
	for b := 0; b < n; b++ {
		if indeg[b] == 0 {
			ready = append(ready, b)
		}
	}

	out := make([]int, 0, n)
	for len(ready) > 0 {
		b := ready[0]
		ready = ready[1:]
		out = append(out, b)

		var unlocked []int
		for _, s := range adj[b] {
			indeg[s]--
			if indeg[s] == 0 {
				unlocked = append(unlocked, s)
			}
		}
		if len(unlocked) > 0 {
			ready = append(ready, unlocked...)
			sort.Ints(ready)
		}
	}

	return out
}
