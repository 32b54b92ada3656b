package main

import (
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/peter-kozarec/stationarity/pkg/common"
	"github.com/peter-kozarec/stationarity/pkg/models/adf"
	"github.com/peter-kozarec/stationarity/pkg/tools/indicators"
	"github.com/peter-kozarec/stationarity/pkg/utility"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

type Report struct {
	ExecutionID string `json:"execution_id"`
	Confidence  string `json:"confidence"`
	Results     []Row  `json:"results"`
}

// Row is the outcome for one symbol. Non-finite numbers are encoded as null.
type Row struct {
	Symbol           string   `json:"symbol"`
	SamplesLoaded    int      `json:"samples_loaded"`
	Window           int      `json:"window"`
	Lag              int      `json:"lag"`
	Statistic        *float64 `json:"statistic"`
	CriticalValue    *float64 `json:"critical_value"`
	EffectiveSamples int      `json:"effective_samples"`
	Conclusive       bool     `json:"conclusive"`
	MeanReverting    bool     `json:"mean_reverting"`
	Mean             *float64 `json:"mean,omitempty"`
	StdDev           *float64 `json:"std_dev,omitempty"`
	Error            string   `json:"error,omitempty"`
}

// Run tests every configured symbol on a bounded worker pool.
func Run(ctx context.Context, logger *zap.Logger, loader Loader, cfg Config) (Report, error) {
	from, to, err := cfg.Range()
	if err != nil {
		return Report{}, err
	}

	symbols := lo.Uniq(cfg.Symbols)

	p := pool.NewWithResults[Row]().WithContext(ctx).WithMaxGoroutines(cfg.Workers)
	for _, symbol := range symbols {
		p.Go(func(ctx context.Context) (Row, error) {
			return evaluate(ctx, logger.With(zap.String("symbol", symbol)), loader, cfg, symbol, from, to), nil
		})
	}

	rows, err := p.Wait()
	if err != nil {
		return Report{}, err
	}

	order := make(map[string]int, len(symbols))
	for i, s := range symbols {
		order[s] = i
	}
	slices.SortFunc(rows, func(a, b Row) int {
		return order[a.Symbol] - order[b.Symbol]
	})

	return Report{
		ExecutionID: utility.GetExecutionID().String(),
		Confidence:  cfg.Confidence,
		Results:     rows,
	}, nil
}

func evaluate(ctx context.Context, logger *zap.Logger, loader Loader, cfg Config, symbol string, from, to time.Time) Row {
	ind := newIndicator(logger, cfg)
	row := Row{
		Symbol: symbol,
		Window: cfg.Window,
		Lag:    ind.Lag(),
	}

	err := loader.LoadSamples(ctx, symbol, from, to, func(s common.Sample) error {
		ind.AddPoint(s.Value)
		row.SamplesLoaded++
		return ctx.Err()
	})
	if err != nil {
		logger.Error("unable to load samples", zap.Error(err))
		row.Error = err.Error()
		return row
	}

	if !ind.IsReady() {
		logger.Warn("not enough samples", zap.Int("loaded", row.SamplesLoaded), zap.Int("window", cfg.Window))
		row.Error = fmt.Sprintf("not enough samples: loaded %d, window %d", row.SamplesLoaded, cfg.Window)
		return row
	}

	res, err := ind.Value()
	if err != nil {
		logger.Warn("adf test not run", zap.Error(err))
		row.Error = err.Error()
		return row
	}

	mean, stdDev := stat.MeanStdDev(adf.Floats(ind.Points()), nil)

	row.Statistic = finite(res.Statistic)
	row.CriticalValue = finite(res.CriticalValue)
	row.EffectiveSamples = res.Samples
	row.Conclusive = indicators.Conclusive(res)
	row.MeanReverting = row.Conclusive && res.Statistic < res.CriticalValue
	row.Mean = finite(mean)
	row.StdDev = finite(stdDev)

	logger.Info("adf test finished",
		zap.Int("lag", row.Lag),
		zap.Int("samples", res.Samples),
		zap.Float64("statistic", res.Statistic),
		zap.Float64("critical_value", res.CriticalValue),
		zap.Bool("mean_reverting", row.MeanReverting))

	return row
}

func newIndicator(logger *zap.Logger, cfg Config) *indicators.Stationarity {
	opts := []indicators.StationarityOption{
		indicators.WithConfidence(adf.Confidence(cfg.Confidence)),
		indicators.WithLogger(logger),
	}
	if cfg.Lag >= 0 {
		opts = append(opts, indicators.WithLag(cfg.Lag))
	} else {
		opts = append(opts, indicators.WithAutoLag())
	}
	return indicators.NewStationarity(cfg.Window, opts...)
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
