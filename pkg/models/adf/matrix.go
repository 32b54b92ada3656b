package adf

import "fmt"

// Matrix is a dense row-major matrix with fixed dimensions.
type Matrix struct {
	rows, cols int
	data       []float64
}

func NewMatrix(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("invalid matrix dimensions %dx%d", rows, cols))
	}
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// NewMatrixFromRows copies rows into a new matrix. All rows must have the same length.
func NewMatrixFromRows(rows [][]float64) *Matrix {
	if len(rows) == 0 {
		return NewMatrix(0, 0)
	}
	m := NewMatrix(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != m.cols {
			panic(fmt.Sprintf("row %d has %d columns, want %d", i, len(row), m.cols))
		}
		copy(m.Row(i), row)
	}
	return m
}

func (m *Matrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.cols+j]
}

func (m *Matrix) Set(i, j int, v float64) {
	m.data[i*m.cols+j] = v
}

// Row returns the backing slice of row i; writes go through to the matrix.
func (m *Matrix) Row(i int) []float64 {
	return m.data[i*m.cols : (i+1)*m.cols]
}

func (m *Matrix) Col(j int) []float64 {
	col := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		col[i] = m.data[i*m.cols+j]
	}
	return col
}

// Gram returns XᵗX.
func (m *Matrix) Gram() *Matrix {
	g := NewMatrix(m.cols, m.cols)
	for i := 0; i < m.cols; i++ {
		for j := 0; j < m.cols; j++ {
			var sum float64
			for k := 0; k < m.rows; k++ {
				sum += m.At(k, i) * m.At(k, j)
			}
			g.Set(i, j, sum)
		}
	}
	return g
}

// TMulVec returns Xᵗy.
func (m *Matrix) TMulVec(y []float64) []float64 {
	if len(y) != m.rows {
		panic(fmt.Sprintf("vector length %d does not match %d rows", len(y), m.rows))
	}
	out := make([]float64, m.cols)
	for i := 0; i < m.cols; i++ {
		var sum float64
		for k := 0; k < m.rows; k++ {
			sum += m.At(k, i) * y[k]
		}
		out[i] = sum
	}
	return out
}

// MulVec returns Xβ.
func (m *Matrix) MulVec(beta []float64) []float64 {
	if len(beta) != m.cols {
		panic(fmt.Sprintf("vector length %d does not match %d columns", len(beta), m.cols))
	}
	out := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		var sum float64
		for j, v := range m.Row(i) {
			sum += v * beta[j]
		}
		out[i] = sum
	}
	return out
}
