package adf

import (
	"fmt"
	"math"
)

// SolveLinearSystem solves A·x = b by Gauss-Jordan elimination with partial pivoting.
// A and b are left untouched. A zero pivot is not reported; the division
// turns the affected unknowns into NaN or ±Inf.
func SolveLinearSystem(a *Matrix, b []float64) []float64 {
	n := len(b)
	if rows, cols := a.Dims(); rows != n || cols != n {
		panic(fmt.Sprintf("system must be square: A is %dx%d, b has %d entries", rows, cols, n))
	}

	// Augmented matrix [A | b]
	aug := make([][]float64, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]float64, n+1)
		copy(aug[i], a.Row(i))
		aug[i][n] = b[i]
	}

	for k := 0; k < n; k++ {
		pivot := k
		for i := k + 1; i < n; i++ {
			if math.Abs(aug[i][k]) > math.Abs(aug[pivot][k]) {
				pivot = i
			}
		}
		if pivot != k {
			aug[k], aug[pivot] = aug[pivot], aug[k]
		}

		p := aug[k][k]
		for j := k; j <= n; j++ {
			aug[k][j] /= p
		}

		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			factor := aug[i][k]
			for j := k; j <= n; j++ {
				aug[i][j] -= factor * aug[k][j]
			}
		}
	}

	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = aug[i][n]
	}
	return x
}

// SolveNormalEquations returns the OLS coefficients solving (XᵗX)β = Xᵗy.
func SolveNormalEquations(x *Matrix, y []float64) []float64 {
	return SolveLinearSystem(x.Gram(), x.TMulVec(y))
}
