// Package relevance - enumeration of MAID subgames.
package relevance

import (
	"sort"

	"github.com/katalvlaran/macid/core"
)

// DecisionSet is an unordered set of decision node IDs.
type DecisionSet map[string]struct{}

// Sorted returns the members in lexicographic order.
func (s DecisionSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for dec := range s {
		out = append(out, dec)
	}
	sort.Strings(out)

	return out
}

// Subgames enumerates the decision sets of every MAID subgame of d:
// each non-empty subset of condensation blocks that is closed under
// descendants, mapped to the union of its members' decision nodes.
// Duplicates are collapsed by construction (block subsets are distinct
// and blocks partition the decisions).
//
// Closure under descendants is the structural precondition for solving
// a block without first knowing what downstream blocks do.
//
// Errors: those of New (nil diagram, non-DAG structure).
//
// Complexity: O(2^B · B²) over B blocks, plus the relevance build.
func Subgames(d *core.Diagram) ([]DecisionSet, error) {
	g, err := New(d)
	if err != nil {
		return nil, err
	}
	c, err := Condense(g)
	if err != nil {
		return nil, err
	}

	return SubgamesOf(c), nil
}

// SubgamesOf enumerates subgame decision sets from an already-built
// condensation. See Subgames.
func SubgamesOf(c *Condensed) []DecisionSet {
	n := c.Len()
	var out []DecisionSet

	// 1. Walk the powerset of blocks via bitmask (empty set skipped).
	for mask := 1; mask < (1 << uint(n)); mask++ {
		// 2. Closure test: every member block's descendants stay inside.
		closed := true
		for b := 0; b < n && closed; b++ {
			if mask&(1<<uint(b)) == 0 {
				continue
			}
			for desc := range c.Descendants(b) {
				if mask&(1<<uint(desc)) == 0 {
					closed = false
					break
				}
			}
		}
		if !closed {
			continue
		}

		// 3. Union of member decisions.
		set := make(DecisionSet)
		for b := 0; b < n; b++ {
			if mask&(1<<uint(b)) == 0 {
				continue
			}
			for _, dec := range c.blocks[b] {
				set[dec] = struct{}{}
			}
		}
		out = append(out, set)
	}

	return out
}

// IsSubgame reports whether the given decision set is a legitimate MAID
// subgame of the condensation: a union of whole blocks closed under
// descendants. Used to validate caller-chosen subgames before solving.
func IsSubgame(c *Condensed, decisions DecisionSet) bool {
	// Collect member blocks; every named decision must be known.
	blocks := make(map[int]struct{})
	for dec := range decisions {
		b, ok := c.BlockOf(dec)
		if !ok {
			return false
		}
		blocks[b] = struct{}{}
	}

	// Whole blocks only.
	for b := range blocks {
		for _, dec := range c.blocks[b] {
			if _, in := decisions[dec]; !in {
				return false
			}
		}
	}

	// Descendant closure.
	for b := range blocks {
		for desc := range c.Descendants(b) {
			if _, in := blocks[desc]; !in {
				return false
			}
		}
	}

	return true
}
