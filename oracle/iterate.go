// Package oracle - iterative find-one search for mixed equilibria.
//
// Regret matching over the reduced strategic form, with uniform strategy
// averaging and a final verification pass. Exact on games the method
// converges for; best-effort in general (the find-one selectors are
// documented as such for three or more players).
package oracle

// verifyTol bounds the acceptable best-response gain of an averaged
// iterate before it is reported as an equilibrium.
const verifyTol = 1e-4

// findOneMixed runs regret matching for the configured budget and
// returns the averaged mixed profile when it verifies as an
// (approximate) equilibrium.
//
// Complexity: O(iters · Π|S_p| · P).
func (s *strategic) findOneMixed(iters int) ([][]float64, bool) {
	nP := len(s.players)

	regret := make([][]float64, nP)
	avg := make([][]float64, nP)
	cur := make([][]float64, nP)
	for pi := 0; pi < nP; pi++ {
		regret[pi] = make([]float64, s.radix[pi])
		avg[pi] = make([]float64, s.radix[pi])
		cur[pi] = uniformVec(s.radix[pi])
	}

	for t := 0; t < iters; t++ {
		util := s.actionUtilities(cur)

		for pi := 0; pi < nP; pi++ {
			// Expected payoff of the current mix.
			var base float64
			for si, p := range cur[pi] {
				base += p * util[pi][si]
			}
			// Accumulate instantaneous regrets and the running average.
			for si := range cur[pi] {
				regret[pi][si] += util[pi][si] - base
				avg[pi][si] += cur[pi][si]
			}
			// Next mix from positive regrets.
			cur[pi] = positiveShare(regret[pi])
		}
	}

	for pi := 0; pi < nP; pi++ {
		normalize(avg[pi])
	}

	// Verification: no player may gain more than verifyTol by deviating.
	util := s.actionUtilities(avg)
	for pi := 0; pi < nP; pi++ {
		var base float64
		for si, p := range avg[pi] {
			base += p * util[pi][si]
		}
		for si := range avg[pi] {
			if util[pi][si] > base+verifyTol {
				return nil, false
			}
		}
	}

	return avg, true
}

// actionUtilities computes, for every player and every pure strategy,
// the expected payoff of playing that strategy against the others'
// current mixes. One pass over the payoff tensor covers all players.
func (s *strategic) actionUtilities(mix [][]float64) [][]float64 {
	nP := len(s.players)
	util := make([][]float64, nP)
	for pi := 0; pi < nP; pi++ {
		util[pi] = make([]float64, s.radix[pi])
	}

	combo := make([]int, nP)
	for flat := 0; flat < len(s.payoff); flat++ {
		s.decode(flat, combo)

		// Joint probability of the combo, and per-player probability of
		// the others (joint divided by the player's own factor, computed
		// without division to stay safe at zero).
		for pi := 0; pi < nP; pi++ {
			others := 1.0
			for qi := 0; qi < nP; qi++ {
				if qi == pi {
					continue
				}
				others *= mix[qi][combo[qi]]
			}
			if others == 0 {
				continue
			}
			util[pi][combo[pi]] += others * s.payoff[flat][pi]
		}
	}

	return util
}

// positiveShare maps cumulative regrets to a mixed strategy: positive
// regrets normalized, uniform when none are positive.
func positiveShare(regret []float64) []float64 {
	out := make([]float64, len(regret))
	var total float64
	for i, r := range regret {
		if r > 0 {
			out[i] = r
			total += r
		}
	}
	if total == 0 {
		return uniformVec(len(regret))
	}
	for i := range out {
		out[i] /= total
	}

	return out
}

// uniformVec returns the uniform distribution over n entries.
func uniformVec(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1 / float64(n)
	}

	return out
}

// normalize scales v to unit mass in place (uniform when empty mass).
func normalize(v []float64) {
	var total float64
	for _, x := range v {
		total += x
	}
	if total == 0 {
		copy(v, uniformVec(len(v)))

		return
	}
	for i := range v {
		v[i] /= total
	}
}
