package indicators

import (
	"math"

	"github.com/govalues/decimal"
	"github.com/peter-kozarec/stationarity/pkg/models/adf"
	"github.com/peter-kozarec/stationarity/pkg/utility/circular"
	"go.uber.org/zap"
)

const autoLag = -1

type StationarityOption func(*Stationarity)

// WithLag fixes the number of lagged differences in the regression.
func WithLag(lag int) StationarityOption {
	return func(s *Stationarity) {
		s.lag = lag
	}
}

// WithAutoLag derives the lag from the window size, see adf.AutoLag.
func WithAutoLag() StationarityOption {
	return func(s *Stationarity) {
		s.lag = autoLag
	}
}

func WithConfidence(confidence adf.Confidence) StationarityOption {
	return func(s *Stationarity) {
		s.confidence = confidence
	}
}

func WithLogger(logger *zap.Logger) StationarityOption {
	return func(s *Stationarity) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Stationarity runs the ADF test over the last window closes.
type Stationarity struct {
	logger     *zap.Logger
	lag        int
	confidence adf.Confidence
	data       *circular.Buffer[decimal.Decimal]
}

func NewStationarity(window int, opts ...StationarityOption) *Stationarity {
	s := &Stationarity{
		logger:     zap.NewNop(),
		lag:        autoLag,
		confidence: adf.Confidence95,
		data:       circular.NewBuffer[decimal.Decimal](window),
	}
	for _, opt := range opts {
		opt(s)
	}

	if !s.confidence.Known() {
		s.logger.Warn("unknown confidence level, using 90% critical values",
			zap.String("confidence", string(s.confidence)))
	}
	return s
}

func (s *Stationarity) AddPoint(p decimal.Decimal) {
	s.data.Push(p)
}

func (s *Stationarity) IsReady() bool {
	return s.data.IsFull()
}

// Lag returns the lag order used once the window is full.
func (s *Stationarity) Lag() int {
	return s.lagFor(s.data.Capacity())
}

func (s *Stationarity) lagFor(n int) int {
	if s.lag == autoLag {
		return adf.AutoLag(n)
	}
	return s.lag
}

func (s *Stationarity) Confidence() adf.Confidence {
	return s.confidence
}

// Points returns the current window, newest first.
func (s *Stationarity) Points() []decimal.Decimal {
	return s.data.ToSliceLifo()
}

// Value tests the points collected so far. With auto lag the order is
// derived from the number of buffered points, so it matches Lag only when
// IsReady.
func (s *Stationarity) Value() (adf.Result, error) {
	lag := s.lagFor(s.data.Size())

	res, err := adf.TestDecimals(s.Points(), lag, s.confidence)
	if err != nil {
		s.logger.Debug("adf test rejected configuration",
			zap.Int("points", s.data.Size()),
			zap.Int("lag", lag),
			zap.Error(err))
		return adf.Result{}, err
	}

	s.logger.Debug("adf test evaluated",
		zap.Int("lag", lag),
		zap.Int("samples", res.Samples),
		zap.Float64("statistic", res.Statistic),
		zap.Float64("critical_value", res.CriticalValue))

	return res, nil
}

// IsMeanReverting reports whether the window rejects the unit root.
func (s *Stationarity) IsMeanReverting() bool {
	if !s.IsReady() {
		return false
	}
	res, err := s.Value()
	if err != nil {
		return false
	}
	return Conclusive(res) && res.Statistic < res.CriticalValue
}

// Conclusive is false when numeric degeneracy left a non-finite statistic.
func Conclusive(res adf.Result) bool {
	return !math.IsNaN(res.Statistic) && !math.IsInf(res.Statistic, 0) &&
		!math.IsNaN(res.CriticalValue) && !math.IsInf(res.CriticalValue, 0)
}
