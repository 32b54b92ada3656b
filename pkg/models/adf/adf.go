// Package adf implements the Augmented Dickey-Fuller unit-root test.
//
// Series are ordered newest first: data[0] is the latest observation and
// data[i+1] is one step older than data[i]. The regression includes a constant.
// Degenerate inputs are not rejected; they surface as NaN or Inf in the Result.
package adf

import (
	"github.com/govalues/decimal"
	"github.com/samber/lo"
)

type Result struct {
	Statistic     float64
	CriticalValue float64
	Samples       int // effective sample count
}

func (r Result) Values() (statistic, criticalValue float64, samples int) {
	return r.Statistic, r.CriticalValue, r.Samples
}

// Test runs the ADF regression on data with the given lag order. The only
// error is a *ConfigurationError for a lag outside [0, len(data)/2-2).
func Test(data []float64, lag int, confidence Confidence) (Result, error) {
	d, err := NewDesign(data, lag)
	if err != nil {
		return Result{}, err
	}

	beta := SolveNormalEquations(d.X, d.Y)
	res := AnalyzeResiduals(d, beta)

	return Result{
		Statistic:     Statistic(beta[0], res.StdErr),
		CriticalValue: CriticalValue(d.Samples, confidence),
		Samples:       d.Samples,
	}, nil
}

// TestDecimals is Test for decimal series.
func TestDecimals(data []decimal.Decimal, lag int, confidence Confidence) (Result, error) {
	return Test(Floats(data), lag, confidence)
}

func Floats(data []decimal.Decimal) []float64 {
	return lo.Map(data, func(d decimal.Decimal, _ int) float64 {
		f, _ := d.Float64()
		return f
	})
}
