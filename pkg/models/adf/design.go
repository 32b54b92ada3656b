package adf

import "math"

// Design holds the lagged regression of first differences on the lagged level.
//
// Row i regresses y[i] = data[i] - data[i+1] on the level data[i+1], the lagged
// differences data[i+n] - data[i+n+1] for n = 1..Lag and a constant.
type Design struct {
	X         *Matrix   // Samples x (Lag+2)
	Y         []float64 // first differences
	Level     []float64 // column 0 of X
	MeanLevel float64
	Samples   int // effective sample count, N - Lag - 1
	Lag       int
}

// LagBound returns the exclusive upper bound for the lag of a series of length n.
func LagBound(n int) int {
	return n/2 - 2
}

// MaxLag returns the largest lag accepted for a series of length n, or -1 when none is.
func MaxLag(n int) int {
	if m := LagBound(n) - 1; m >= 0 {
		return m
	}
	return -1
}

// AutoLag picks floor(cbrt(n)) clamped to MaxLag(n).
func AutoLag(n int) int {
	if n <= 0 {
		return -1
	}
	return min(int(math.Floor(math.Cbrt(float64(n)))), MaxLag(n))
}

func ValidateLag(n, lag int) error {
	bound := LagBound(n)
	if lag < 0 || lag >= bound {
		return &ConfigurationError{N: n, Lag: lag, Bound: bound}
	}
	return nil
}

// NewDesign builds the design matrix for data ordered newest first.
func NewDesign(data []float64, lag int) (*Design, error) {
	n := len(data)
	if err := ValidateLag(n, lag); err != nil {
		return nil, err
	}

	samples := n - lag - 1
	cols := lag + 2

	d := &Design{
		X:       NewMatrix(samples, cols),
		Y:       make([]float64, samples),
		Level:   make([]float64, samples),
		Samples: samples,
		Lag:     lag,
	}

	var sum float64
	for i := 0; i < samples; i++ {
		d.Y[i] = data[i] - data[i+1]
		d.Level[i] = data[i+1]
		sum += d.Level[i]
	}
	d.MeanLevel = sum / float64(samples)

	for i := 0; i < samples; i++ {
		row := d.X.Row(i)
		row[0] = d.Level[i]
		for j := 1; j <= lag; j++ {
			row[j] = data[i+j] - data[i+j+1]
		}
		row[cols-1] = 1
	}

	return d, nil
}

// Columns returns the number of regressors, Lag + 2.
func (d *Design) Columns() int {
	return d.Lag + 2
}
