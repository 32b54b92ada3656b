package adf

// Confidence selects the critical value table.
type Confidence string

const (
	Confidence90 Confidence = "90%"
	Confidence95 Confidence = "95%"
	Confidence99 Confidence = "99%"
)

func (c Confidence) Known() bool {
	switch c {
	case Confidence90, Confidence95, Confidence99:
		return true
	}
	return false
}

// CriticalValue approximates the asymptotic critical value for the given
// effective sample count. Unknown confidence tokens use the 90% table.
func CriticalValue(samples int, confidence Confidence) float64 {
	m := float64(samples)
	m2 := m * m
	m3 := m2 * m

	switch confidence {
	case Confidence95:
		return -2.86154 - 2.8903/m - 4.234/m2 - 40.040/m3
	case Confidence99:
		return -3.43035 - 6.5393/m - 16.786/m2 - 79.433/m3
	default:
		return -2.56677 - 1.5384/m - 2.809/m2
	}
}
