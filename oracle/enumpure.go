// Package oracle - exhaustive pure-strategy equilibrium enumeration.
package oracle

// enumPure returns all joint pure strategies where no player gains by a
// unilateral strategy switch, in lexicographic joint-index order.
//
// Complexity: O(Π|S_p| · Σ|S_p|) tensor lookups.
func (s *strategic) enumPure(eps float64) [][]int {
	var out [][]int
	total := len(s.payoff)
	combo := make([]int, len(s.players))
	trial := make([]int, len(s.players))

	for flat := 0; flat < total; flat++ {
		s.decode(flat, combo)
		base := s.payoff[flat]

		stable := true
		for pi := 0; pi < len(s.players) && stable; pi++ {
			copy(trial, combo)
			for alt := 0; alt < s.radix[pi]; alt++ {
				if alt == combo[pi] {
					continue
				}
				trial[pi] = alt
				if s.payoff[s.encode(trial)][pi] > base[pi]+eps {
					stable = false
					break
				}
			}
		}
		if stable {
			keep := make([]int, len(combo))
			copy(keep, combo)
			out = append(out, keep)
		}
	}

	return out
}
