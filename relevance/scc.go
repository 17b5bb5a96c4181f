// Package relevance - strongly-connected components of the relevance graph.
//
// Implemented as iterative Tarjan over the sorted node and adjacency
// order, so component discovery is deterministic for a given structure.
package relevance

// sccFrame is one entry of the explicit Tarjan recursion stack.
type sccFrame struct {
	node string
	next int // index of the next out-neighbor to examine
}

// stronglyConnected returns the SCCs of g. Singleton components are
// produced for decisions with no relevance relations - every decision
// belongs to exactly one component. Components are emitted in Tarjan
// completion order (reverse topological over the condensation).
//
// Complexity: O(D + R).
func stronglyConnected(g *Graph) [][]string {
	var (
		counter  int
		index    = make(map[string]int, len(g.nodes))
		lowlink  = make(map[string]int, len(g.nodes))
		onStack  = make(map[string]bool, len(g.nodes))
		tarStack []string
		comps    [][]string
	)

	for _, root := range g.nodes {
		if _, visited := index[root]; visited {
			continue
		}

		// Iterative DFS with an explicit frame stack.
		frames := []sccFrame{{node: root}}
		index[root] = counter
		lowlink[root] = counter
		counter++
		tarStack = append(tarStack, root)
		onStack[root] = true

		for len(frames) > 0 {
			f := &frames[len(frames)-1]
			if f.next < len(g.adj[f.node]) {
				w := g.adj[f.node][f.next]
				f.next++
				if _, seen := index[w]; !seen {
					// Tree edge: descend.
					index[w] = counter
					lowlink[w] = counter
					counter++
					tarStack = append(tarStack, w)
					onStack[w] = true
					frames = append(frames, sccFrame{node: w})
				} else if onStack[w] {
					// Back or cross edge into the current stack.
					if index[w] < lowlink[f.node] {
						lowlink[f.node] = index[w]
					}
				}

				continue
			}

			// All neighbors done: close the frame.
			done := f.node
			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				parent := &frames[len(frames)-1]
				if lowlink[done] < lowlink[parent.node] {
					lowlink[parent.node] = lowlink[done]
				}
			}
			if lowlink[done] == index[done] {
				// done is the root of a component: pop it off.
				var comp []string
				for {
					w := tarStack[len(tarStack)-1]
					tarStack = tarStack[:len(tarStack)-1]
					onStack[w] = false
					comp = append(comp, w)
					if w == done {
						break
					}
				}
				comps = append(comps, comp)
			}
		}
	}

	return comps
}
