package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	json "github.com/goccy/go-json"
	"github.com/peter-kozarec/stationarity/internal/dbg"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := dbg.NewLogger(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		panic(err)
	}
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	loader, closeLoader, err := OpenLoader(cfg.Source)
	if err != nil {
		logger.Fatal("error opening data source", zap.String("kind", cfg.Source.Kind), zap.Error(err))
	}
	defer closeLoader()

	report, err := Run(ctx, logger, loader, cfg)
	if err != nil {
		logger.Fatal("error running adf tests", zap.Error(err))
	}

	if err := WriteReport(os.Stdout, report); err != nil {
		logger.Fatal("error writing report", zap.Error(err))
	}
	logger.Info("done", zap.Int("symbols", len(report.Results)))
}

func WriteReport(w io.Writer, report Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
