package indicators

import (
	"math"
	"math/rand"
	"testing"

	"github.com/govalues/decimal"
	"github.com/peter-kozarec/stationarity/pkg/models/adf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestIndicatorsStationarity_MeanRevertingSeries(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	s := NewStationarity(250, WithLag(1), WithConfidence(adf.Confidence99))

	level := 0.0
	for i := 0; i < 400; i++ {
		level = 0.4*level + rng.NormFloat64()
		s.AddPoint(toDecimal(1.1 + level/1000))
	}

	require.True(t, s.IsReady())

	res, err := s.Value()
	require.NoError(t, err)
	assert.Equal(t, 248, res.Samples)
	assert.InDelta(t, adf.CriticalValue(248, adf.Confidence99), res.CriticalValue, 1e-15)
	assert.True(t, Conclusive(res))
	assert.True(t, s.IsMeanReverting())
}

func TestIndicatorsStationarity_MatchesEngineOnWindow(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	s := NewStationarity(50, WithLag(2))

	var closes []float64
	price := 100.0
	for i := 0; i < 80; i++ {
		price += rng.NormFloat64()
		closes = append(closes, math.Round(price*100)/100)
		s.AddPoint(toDecimal(closes[len(closes)-1]))
	}

	// newest first, last 50 closes
	window := make([]float64, 50)
	for i := range window {
		window[i] = closes[len(closes)-1-i]
	}

	want, err := adf.Test(window, 2, adf.Confidence95)
	require.NoError(t, err)

	got, err := s.Value()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, want.Statistic < want.CriticalValue, s.IsMeanReverting())
}

func TestIndicatorsStationarity_NotReady(t *testing.T) {
	s := NewStationarity(30)

	for i := 0; i < 29; i++ {
		s.AddPoint(toDecimal(float64(i % 3)))
	}

	assert.False(t, s.IsReady())
	assert.False(t, s.IsMeanReverting())
}

func TestIndicatorsStationarity_AutoLag(t *testing.T) {
	assert.Equal(t, 2, NewStationarity(20).Lag())
	assert.Equal(t, 6, NewStationarity(250, WithAutoLag()).Lag())
	assert.Equal(t, 3, NewStationarity(250, WithLag(3)).Lag())
	assert.Equal(t, adf.Confidence95, NewStationarity(20).Confidence())
}

func TestIndicatorsStationarity_AutoLagPartialWindow(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewStationarity(250, WithAutoLag())
	price := 100.0
	for i := 0; i < 30; i++ {
		price += rng.NormFloat64()
		s.AddPoint(toDecimal(price))
	}
	require.False(t, s.IsReady())

	res, err := s.Value()
	require.NoError(t, err)
	assert.Equal(t, 30-adf.AutoLag(30)-1, res.Samples)
	assert.Equal(t, 26, res.Samples)
	assert.Equal(t, 6, s.Lag())
}

func TestIndicatorsStationarity_WindowTooSmall(t *testing.T) {
	s := NewStationarity(5, WithLag(0))
	for i := 0; i < 5; i++ {
		s.AddPoint(toDecimal(float64(i)))
	}

	_, err := s.Value()
	assert.ErrorIs(t, err, adf.ErrLagTooLarge)
	assert.False(t, s.IsMeanReverting())
}

func TestIndicatorsStationarity_ConstantSeriesIsInconclusive(t *testing.T) {
	s := NewStationarity(40, WithLag(0))
	for i := 0; i < 40; i++ {
		s.AddPoint(decimal.MustNew(125, 2))
	}

	res, err := s.Value()
	require.NoError(t, err)
	assert.False(t, Conclusive(res))
	assert.False(t, s.IsMeanReverting())
}

func TestIndicatorsStationarity_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	s := NewStationarity(20, WithLag(1), WithConfidence("80%"), WithLogger(zap.New(core)))
	assert.Equal(t, 1, logs.FilterMessage("unknown confidence level, using 90% critical values").Len())

	for i := 0; i < 20; i++ {
		s.AddPoint(toDecimal(float64(i*i%11) / 10))
	}

	res, err := s.Value()
	require.NoError(t, err)
	assert.Equal(t, adf.CriticalValue(res.Samples, adf.Confidence90), res.CriticalValue)
	assert.Equal(t, 1, logs.FilterMessage("adf test evaluated").Len())
}

func BenchmarkIndicatorsStationarity_Value(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	s := NewStationarity(200)
	price := 100.0
	for i := 0; i < 200; i++ {
		price += rng.NormFloat64()
		s.AddPoint(toDecimal(price))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Value()
	}
}

func toDecimal(v float64) decimal.Decimal {
	d, err := decimal.NewFromFloat64(v)
	if err != nil {
		panic(err)
	}
	return d
}
