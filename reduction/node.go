// Package reduction — the cost-matrix node.
//
// A node owns a square matrix of non-negative reduced costs with +Inf on the
// diagonal (self-loops forbidden), the row/column minima vectors of its last
// destructive reduction, and the accumulated "value" — the total amount
// subtracted, a classic assignment-relaxation lower-bound contribution.
//
// The node is mutated destructively as the descent proceeds and is never
// reused across independent solver runs.

package reduction

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// node is the mutable state of one reduction descent.
type node struct {
	m *mat.Dense // current (partially reduced) cost matrix, n×n
	n int

	rowMin []float64 // row minima subtracted in the last reduce
	colMin []float64 // column minima subtracted in the last reduce
	value  float64   // Σ rowMin + Σ colMin of the last reduce
}

// newNode copies the given cost matrix and performs the initial destructive
// reduction, leaving a zero in every row and column that has a finite entry.
func newNode(m *mat.Dense) *node {
	var r, _ = m.Dims()
	var nd = &node{m: mat.DenseCopyOf(m), n: r}
	nd.reduce()

	return nd
}

// reduce subtracts each row's minimum from the row, then — on the already
// row-reduced matrix — each column's minimum from the column. The node value
// accumulates the sum of all minima subtracted. Infinite entries stay
// infinite (∞ − x = ∞), and an all-infinite line contributes 0.
//
// Complexity: O(n²).
func (nd *node) reduce() {
	nd.rowMin = rowMinima(nd.m, nd.n)

	var i, j int
	for i = 0; i < nd.n; i++ {
		for j = 0; j < nd.n; j++ {
			nd.m.Set(i, j, nd.m.At(i, j)-nd.rowMin[i])
		}
	}

	nd.colMin = colMinima(nd.m, nd.n)
	for j = 0; j < nd.n; j++ {
		for i = 0; i < nd.n; i++ {
			nd.m.Set(i, j, nd.m.At(i, j)-nd.colMin[j])
		}
	}

	nd.value = 0
	for i = 0; i < nd.n; i++ {
		nd.value += nd.rowMin[i] + nd.colMin[i]
	}
}

// selectPivot scans all currently-zero cells (i,j) and returns the one whose
// exclusion would most increase the lower bound: penalty = (minimum of row i
// excluding column j) + (minimum of column j excluding row i), maximized.
// Ties break toward the first occurrence in row-major order; if no zero cell
// has a positive penalty, (0,0) is returned, matching the descent's greedy
// contract.
//
// Complexity: O(n³) worst case (O(n) per zero cell).
func (nd *node) selectPivot() (int, int) {
	var (
		maxSum         float64
		si, sj         int
		i, j, k        int
		minRow, minCol float64
	)
	for i = 0; i < nd.n; i++ {
		for j = 0; j < nd.n; j++ {
			if nd.m.At(i, j) != 0 {
				continue
			}
			minRow, minCol = math.Inf(1), math.Inf(1)
			for k = 0; k < nd.n; k++ {
				if k != j && nd.m.At(i, k) < minRow {
					minRow = nd.m.At(i, k)
				}
				if k != i && nd.m.At(k, j) < minCol {
					minCol = nd.m.At(k, j)
				}
			}
			if minRow+minCol > maxSum {
				maxSum = minRow + minCol
				si, sj = i, j
			}
		}
	}

	return si, sj
}

// branch builds the two candidate matrices for the pivot edge (di,dj):
//
//   - include — force the edge: the reverse edge (dj,di) becomes +Inf, and
//     row di and column dj are infinitied out to prevent sub-tours.
//   - exclude — forbid the edge: cell (di,dj) becomes +Inf.
//
// Each candidate's lower-bound estimate is its row+column minima sum,
// computed without mutating the candidate. The node keeps the candidate with
// the lower estimate (greedy descent — the other branch is discarded, never
// explored later) and returns that estimate.
//
// Complexity: O(n²).
func (nd *node) branch(di, dj int) float64 {
	var (
		include = mat.DenseCopyOf(nd.m)
		exclude = mat.DenseCopyOf(nd.m)
		inf     = math.Inf(1)
		k       int
	)
	include.Set(dj, di, inf)
	for k = 0; k < nd.n; k++ {
		include.Set(di, k, inf)
		include.Set(k, dj, inf)
	}
	exclude.Set(di, dj, inf)

	var eInclude, eExclude float64
	eInclude = estimate(include, nd.n)
	eExclude = estimate(exclude, nd.n)
	if eInclude > eExclude {
		nd.m = exclude

		return eExclude
	}
	nd.m = include

	return eInclude
}

// estimate returns the sum of row minima plus the sum of column minima of m,
// both taken on m as-is. Read-only.
func estimate(m *mat.Dense, n int) float64 {
	var (
		rows = rowMinima(m, n)
		cols = colMinima(m, n)
		sum  float64
		i    int
	)
	for i = 0; i < n; i++ {
		sum += rows[i] + cols[i]
	}

	return sum
}

// rowMinima returns each row's minimum finite value; a zero entry
// short-circuits the row and an all-infinite row yields 0.
//
// Complexity: O(n²).
func rowMinima(m *mat.Dense, n int) []float64 {
	var (
		mins = make([]float64, n)
		i, j int
		min  float64
		v    float64
	)
	for i = 0; i < n; i++ {
		min = math.Inf(1)
		for j = 0; j < n; j++ {
			v = m.At(i, j)
			if v == 0 {
				min = 0
				break
			}
			if v < min {
				min = v
			}
		}
		if math.IsInf(min, 1) {
			min = 0
		}
		mins[i] = min
	}

	return mins
}

// colMinima is the column counterpart of rowMinima.
//
// Complexity: O(n²).
func colMinima(m *mat.Dense, n int) []float64 {
	var (
		mins = make([]float64, n)
		i, j int
		min  float64
		v    float64
	)
	for j = 0; j < n; j++ {
		min = math.Inf(1)
		for i = 0; i < n; i++ {
			v = m.At(i, j)
			if v == 0 {
				min = 0
				break
			}
			if v < min {
				min = v
			}
		}
		if math.IsInf(min, 1) {
			min = 0
		}
		mins[j] = min
	}

	return mins
}
