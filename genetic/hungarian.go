package genetic

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Hungarian solves the rectangular assignment problem on cost and returns
// the minimum total cost and, per row, the assigned column. When there are
// more rows than columns the extra rows get -1.
//
// Complexity: O(r²·c) for r ≤ c.
func Hungarian(cost *mat.Dense) (float64, []int) {
	rows, cols := cost.Dims()
	if rows == 0 || cols == 0 {
		return 0, make([]int, rows)
	}
	if rows > cols {
		total, byCol := Hungarian(mat.DenseCopyOf(cost.T()))
		assign := make([]int, rows)
		for i := range assign {
			assign[i] = -1
		}
		for c, r := range byCol {
			assign[r] = c
		}
		return total, assign
	}

	// Potentials u (rows) and v (columns); p[j] is the row matched to column
	// j, 1-based, with column 0 as the virtual root.
	n, m := rows, cols
	u := make([]float64, n+1)
	v := make([]float64, m+1)
	p := make([]int, m+1)
	way := make([]int, m+1)
	minv := make([]float64, m+1)
	used := make([]bool, m+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		for j := range minv {
			minv[j] = math.Inf(1)
			used[j] = false
		}
		for {
			used[j0] = true
			i0, delta, j1 := p[j0], math.Inf(1), 0
			for j := 1; j <= m; j++ {
				if used[j] {
					continue
				}
				cur := cost.At(i0-1, j-1) - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= m; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	assign := make([]int, n)
	for j := 1; j <= m; j++ {
		if p[j] != 0 {
			assign[p[j]-1] = j - 1
		}
	}
	total := 0.0
	for i, j := range assign {
		total += cost.At(i, j)
	}

	return total, assign
}
