// Package relevance - types and sentinel errors.
package relevance

import "errors"

var (
	// ErrNilDiagram is returned when a nil *core.Diagram is supplied.
	ErrNilDiagram = errors.New("relevance: diagram is nil")

	// ErrNilGraph is returned when a nil *Graph is supplied to Condense.
	ErrNilGraph = errors.New("relevance: relevance graph is nil")

	// ErrUnknownAgent indicates SufficientRecall was asked about an agent
	// that owns no decision in the diagram.
	ErrUnknownAgent = errors.New("relevance: agent owns no decisions")
)

// Graph is the relevance graph over a diagram's decision nodes.
// An edge D1 → D2 means D1 strategically relies on D2.
// The zero value is unusable; build one with New.
type Graph struct {
	nodes []string            // sorted decision IDs
	adj   map[string][]string // sorted out-neighbors per decision
}

// Decisions returns the graph's decision nodes, sorted.
func (g *Graph) Decisions() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// ReliesOn returns the decisions that d strategically relies on, sorted.
func (g *Graph) ReliesOn(d string) []string {
	out := make([]string, len(g.adj[d]))
	copy(out, g.adj[d])

	return out
}

// HasEdge reports whether from relies on to.
func (g *Graph) HasEdge(from, to string) bool {
	for _, n := range g.adj[from] {
		if n == to {
			return true
		}
	}

	return false
}

// Condensed is the SCC condensation of a relevance graph: an acyclic
// block DAG with a per-block mapping back to the original decisions.
// The zero value is unusable; build one with Condense.
type Condensed struct {
	blocks [][]string     // block index → sorted member decisions
	adj    map[int][]int  // block index → sorted successor blocks
	index  map[string]int // decision → owning block index
	topo   []int          // topological order of block indices
}

// Len returns the number of blocks.
func (c *Condensed) Len() int { return len(c.blocks) }

// Members returns the decisions inside block b, sorted.
func (c *Condensed) Members(b int) []string {
	out := make([]string, len(c.blocks[b]))
	copy(out, c.blocks[b])

	return out
}

// BlockOf returns the block index owning decision d.
func (c *Condensed) BlockOf(d string) (int, bool) {
	b, ok := c.index[d]

	return b, ok
}

// Successors returns the blocks that block b relies on, sorted.
func (c *Condensed) Successors(b int) []int {
	out := make([]int, len(c.adj[b]))
	copy(out, c.adj[b])

	return out
}

// TopoOrder returns a topological ordering of block indices: every block
// precedes the blocks it relies on. Ties break on each block's smallest
// member ID, so the ordering is stable within one computation and across
// rebuilds of the same structure.
func (c *Condensed) TopoOrder() []int {
	out := make([]int, len(c.topo))
	copy(out, c.topo)

	return out
}

// Descendants returns the set of blocks reachable from b (b excluded).
func (c *Condensed) Descendants(b int) map[int]struct{} {
	out := make(map[int]struct{})
	stack := append([]int(nil), c.adj[b]...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := out[n]; seen {
			continue
		}
		out[n] = struct{}{}
		stack = append(stack, c.adj[n]...)
	}

	return out
}
