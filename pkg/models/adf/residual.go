package adf

import "math"

type Residuals struct {
	RSS           float64 // residual sum of squares
	Variance      float64 // RSS / (Samples - Columns)
	LevelVariance float64 // sum of squared deviations of the level column from its mean
	StdErr        float64 // standard error of the level coefficient
}

// AnalyzeResiduals computes the fit quality of beta against the design.
// Zero degrees of freedom or a constant level column yield NaN or Inf.
func AnalyzeResiduals(d *Design, beta []float64) Residuals {
	fitted := d.X.MulVec(beta)

	var rss float64
	for i, y := range d.Y {
		e := y - fitted[i]
		rss += e * e
	}

	var levelVar float64
	for _, x := range d.Level {
		dev := x - d.MeanLevel
		levelVar += dev * dev
	}

	variance := rss / float64(d.Samples-d.Columns())

	return Residuals{
		RSS:           rss,
		Variance:      variance,
		LevelVariance: levelVar,
		StdErr:        math.Sqrt(variance / levelVar),
	}
}

// Statistic is the coefficient on the lagged level divided by its standard error.
func Statistic(coefficient, stdErr float64) float64 {
	return coefficient / stdErr
}
