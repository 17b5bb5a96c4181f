// Package nash - subgame-perfect equilibria by backward induction.
package nash

import (
	"fmt"

	"github.com/katalvlaran/macid/core"
	"github.com/katalvlaran/macid/relevance"
)

// SubgamePerfect returns all subgame-perfect equilibria of d as full
// policy profiles, one rule per decision node.
//
// The driver walks the condensed relevance graph's blocks in reverse
// topological order (blocks relying on nothing first) and maintains an
// explicit worklist of partial profiles: each block multiplies every
// accumulated partial profile by every Nash equilibrium of that block
// computed under the profile's already-fixed rules. Profile entries are
// appended per block, so result ordering is stable for a deterministic
// oracle. A block with zero equilibria under some partial profile
// contributes zero extensions for that lineage - no error, the branch
// just dies; when every branch dies the result is empty.
//
// Errors: ErrNilDiagram, structural errors from the relevance build,
// and fatal solve errors from InSubgame.
//
// Complexity: Π over blocks of the per-block equilibrium count, times
// the per-subgame solve cost - the fan-out is inherent to enumerating
// every SPE.
func SubgamePerfect(d *core.Diagram, opts ...Option) ([]core.Profile, error) {
	if d == nil {
		return nil, ErrNilDiagram
	}

	// 1. Condensed relevance structure.
	rg, err := relevance.New(d)
	if err != nil {
		return nil, fmt.Errorf("nash: SubgamePerfect: %w", err)
	}
	cond, err := relevance.Condense(rg)
	if err != nil {
		return nil, fmt.Errorf("nash: SubgamePerfect: %w", err)
	}
	order := cond.TopoOrder()

	// 2. Worklist of partial profiles, seeded with the empty profile.
	profiles := []core.Profile{{}}

	// 3. Blocks from sinks to sources.
	for i := len(order) - 1; i >= 0 && len(profiles) > 0; i-- {
		block := cond.Members(order[i])

		var extended []core.Profile
		for _, partial := range profiles {
			// Fix the already-solved downstream rules on a working copy.
			work := d.Copy()
			if aerr := work.Apply(partial); aerr != nil {
				return nil, fmt.Errorf("nash: SubgamePerfect: %w", aerr)
			}

			equilibria, serr := InSubgame(work, block, opts...)
			if serr != nil {
				return nil, serr
			}
			for _, eq := range equilibria {
				merged, merr := partial.Merge(eq)
				if merr != nil {
					return nil, fmt.Errorf("nash: SubgamePerfect: %w", merr)
				}
				extended = append(extended, merged)
			}
		}
		profiles = extended
	}

	return profiles, nil
}
