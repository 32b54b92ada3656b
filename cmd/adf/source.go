package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/peter-kozarec/stationarity/pkg/common"
	"github.com/peter-kozarec/stationarity/pkg/data/duckdb"
	"github.com/peter-kozarec/stationarity/pkg/data/mapper"
)

// Loader streams the samples of one symbol, oldest first.
type Loader interface {
	LoadSamples(ctx context.Context, symbol string, from, to time.Time, handler func(common.Sample) error) error
}

type binaryLoader struct {
	pattern string
}

func (b binaryLoader) LoadSamples(_ context.Context, symbol string, from, to time.Time, handler func(common.Sample) error) error {
	r := mapper.NewReader[mapper.BinarySample](strings.ReplaceAll(b.pattern, "{symbol}", symbol))
	if err := r.Open(); err != nil {
		return err
	}
	defer r.Close()

	return mapper.LoadSamples(r, symbol, from, to, handler)
}

// OpenLoader returns the loader for cfg and a function releasing it.
func OpenLoader(cfg SourceConfig) (Loader, func(), error) {
	switch cfg.Kind {
	case SourceKindDuckdb:
		r := duckdb.NewReader(cfg.DSN, cfg.Table)
		if err := r.Connect(); err != nil {
			return nil, nil, err
		}
		return r, r.Close, nil
	case SourceKindBinary:
		return binaryLoader{pattern: cfg.Path}, func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown source kind %q", cfg.Kind)
}
