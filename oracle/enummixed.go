// Package oracle - two-player support enumeration.
//
// For every pair of equal-sized supports, the indifference conditions
// form a square linear system per player; solutions that are feasible
// (non-negative, normalized) and undominated outside the support are
// extreme Nash equilibria. All pure equilibria appear as size-one
// supports, so the routine subsumes pure enumeration on two players.
package oracle

import (
	"fmt"
	"math"
	"strings"
)

// pivotTol guards Gaussian elimination against singular systems.
const pivotTol = 1e-12

// supportEnum enumerates extreme equilibria of a two-player game as
// pairs of mixed strategies (x over player 0's pure strategies, y over
// player 1's). Supports are scanned in ascending bitmask order, so the
// result order is deterministic. Only equal-sized support pairs are
// examined: exhaustive on nondegenerate games, where equilibrium
// supports always match in size, but degenerate games may have
// unequal-support extreme points this scan misses.
//
// Complexity: O(2^m · 2^n · k³) over m×n pure strategies.
func (s *strategic) supportEnum(eps float64) [][2][]float64 {
	m, n := s.radix[0], s.radix[1]

	// Payoff matrices from the tensor.
	A := make([][]float64, m)
	B := make([][]float64, m)
	combo := make([]int, 2)
	for i := 0; i < m; i++ {
		A[i] = make([]float64, n)
		B[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			combo[0], combo[1] = i, j
			pay := s.payoff[s.encode(combo)]
			A[i][j], B[i][j] = pay[0], pay[1]
		}
	}

	var (
		out  [][2][]float64
		seen = make(map[string]struct{})
	)
	for mask1 := 1; mask1 < (1 << uint(m)); mask1++ {
		sup1 := maskIndices(mask1, m)
		for mask2 := 1; mask2 < (1 << uint(n)); mask2++ {
			sup2 := maskIndices(mask2, n)
			if len(sup1) != len(sup2) {
				continue
			}

			// Player 1's mix y makes player 0 indifferent across sup1.
			y, v1, ok := solveIndifference(A, sup1, sup2, false)
			if !ok {
				continue
			}
			// Player 0's mix x makes player 1 indifferent across sup2.
			x, v2, ok := solveIndifference(B, sup2, sup1, true)
			if !ok {
				continue
			}

			if !feasible(x, eps) || !feasible(y, eps) {
				continue
			}

			fx, fy := expand(x, sup1, m), expand(y, sup2, n)
			if !bestResponse(A, fx, fy, v1, sup1, eps, false) || !bestResponse(B, fx, fy, v2, sup2, eps, true) {
				continue
			}

			key := pointKey(fx) + "/" + pointKey(fy)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, [2][]float64{fx, fy})
		}
	}

	return out
}

// maskIndices lists the set bits of mask over [0, n).
func maskIndices(mask, n int) []int {
	var out []int
	for i := 0; i < n; i++ {
		if mask&(1<<uint(i)) != 0 {
			out = append(out, i)
		}
	}

	return out
}

// solveIndifference solves for the opponent mix (over cols) that makes
// every row of rows earn the same value v. transposed=true reads P[j][i]
// instead of P[i][j], which turns the column player's system into the
// same shape.
func solveIndifference(P [][]float64, rows, cols []int, transposed bool) ([]float64, float64, bool) {
	k := len(rows)
	// Unknowns: k mix weights + the common value v.
	mat := make([][]float64, k+1)
	for r := 0; r < k; r++ {
		mat[r] = make([]float64, k+2)
		for c := 0; c < k; c++ {
			if transposed {
				mat[r][c] = P[cols[c]][rows[r]]
			} else {
				mat[r][c] = P[rows[r]][cols[c]]
			}
		}
		mat[r][k] = -1 // -v
		mat[r][k+1] = 0
	}
	// Normalization row: weights sum to one.
	mat[k] = make([]float64, k+2)
	for c := 0; c < k; c++ {
		mat[k][c] = 1
	}
	mat[k][k+1] = 1

	sol, ok := gauss(mat)
	if !ok {
		return nil, 0, false
	}

	return sol[:k], sol[k], true
}

// gauss solves the augmented system in place via partial pivoting.
func gauss(mat [][]float64) ([]float64, bool) {
	n := len(mat)
	for col := 0; col < n; col++ {
		// Pivot selection.
		best := col
		for r := col + 1; r < n; r++ {
			if math.Abs(mat[r][col]) > math.Abs(mat[best][col]) {
				best = r
			}
		}
		if math.Abs(mat[best][col]) < pivotTol {
			return nil, false
		}
		mat[col], mat[best] = mat[best], mat[col]

		// Eliminate below.
		for r := col + 1; r < n; r++ {
			f := mat[r][col] / mat[col][col]
			for c := col; c <= n; c++ {
				mat[r][c] -= f * mat[col][c]
			}
		}
	}

	// Back substitution.
	sol := make([]float64, n)
	for r := n - 1; r >= 0; r-- {
		v := mat[r][n]
		for c := r + 1; c < n; c++ {
			v -= mat[r][c] * sol[c]
		}
		sol[r] = v / mat[r][r]
	}

	return sol, true
}

// feasible checks non-negativity of the support weights (within eps).
func feasible(weights []float64, eps float64) bool {
	for _, w := range weights {
		if w < -eps {
			return false
		}
	}

	return true
}

// bestResponse verifies that no strategy outside the support beats the
// indifference value v against the opponent mix.
func bestResponse(P [][]float64, x, y []float64, v float64, support []int, eps float64, columnPlayer bool) bool {
	inSupport := make(map[int]struct{}, len(support))
	for _, i := range support {
		inSupport[i] = struct{}{}
	}

	if columnPlayer {
		for j := 0; j < len(P[0]); j++ {
			if _, in := inSupport[j]; in {
				continue
			}
			var got float64
			for i := range P {
				got += x[i] * P[i][j]
			}
			if got > v+eps {
				return false
			}
		}

		return true
	}

	for i := range P {
		if _, in := inSupport[i]; in {
			continue
		}
		var got float64
		for j := range P[i] {
			got += P[i][j] * y[j]
		}
		if got > v+eps {
			return false
		}
	}

	return true
}

// expand scatters support weights back into a full, clamped, normalized
// strategy vector.
func expand(weights []float64, support []int, n int) []float64 {
	out := make([]float64, n)
	var total float64
	for k, i := range support {
		w := weights[k]
		if w < 0 {
			w = 0
		}
		out[i] = w
		total += w
	}
	for i := range out {
		out[i] /= total
	}

	return out
}

// pointKey renders a strategy vector rounded for deduplication.
func pointKey(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%.8f", x)
	}

	return strings.Join(parts, ",")
}
