package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/peter-kozarec/stationarity/pkg/models/adf"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	SourceKindDuckdb = "duckdb"
	SourceKindBinary = "binary"

	DefaultWindow  = 250
	DefaultWorkers = 4
)

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type SourceConfig struct {
	Kind  string `mapstructure:"kind"`
	DSN   string `mapstructure:"dsn"`   // duckdb database, empty for in-memory
	Table string `mapstructure:"table"` // duckdb relation pattern, %s = symbol
	Path  string `mapstructure:"path"`  // binary file pattern, {symbol} = symbol
}

type Config struct {
	Log        LogConfig    `mapstructure:"log"`
	Source     SourceConfig `mapstructure:"source"`
	Symbols    []string     `mapstructure:"symbols"`
	From       string       `mapstructure:"from"`
	To         string       `mapstructure:"to"`
	Window     int          `mapstructure:"window"`
	Lag        int          `mapstructure:"lag"` // -1 picks adf.AutoLag(window)
	Confidence string       `mapstructure:"confidence"`
	Workers    int          `mapstructure:"workers"`
}

// LoadConfig reads the optional --config file and applies command line overrides.
func LoadConfig(args []string) (Config, error) {
	fs := pflag.NewFlagSet("adf", pflag.ContinueOnError)
	configFile := fs.String("config", "", "specify config file")
	fs.String("log-level", "info", "log level")
	fs.Bool("log-development", false, "human readable logs")
	fs.String("source-kind", SourceKindDuckdb, "duckdb or binary")
	fs.String("source-dsn", "", "duckdb database path")
	fs.String("source-table", "", "duckdb relation pattern, %s is the symbol")
	fs.String("source-path", "", "binary file pattern, {symbol} is the symbol")
	fs.StringSlice("symbols", nil, "symbols to test")
	fs.String("from", "", "range start, RFC3339")
	fs.String("to", "", "range end, RFC3339")
	fs.Int("window", DefaultWindow, "number of latest samples to test")
	fs.Int("lag", -1, "lagged differences, -1 for automatic")
	fs.String("confidence", string(adf.Confidence95), "90%, 95% or 99%")
	fs.Int("workers", DefaultWorkers, "symbols tested in parallel")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	bindings := map[string]string{
		"log.level":       "log-level",
		"log.development": "log-development",
		"source.kind":     "source-kind",
		"source.dsn":      "source-dsn",
		"source.table":    "source-table",
		"source.path":     "source-path",
		"symbols":         "symbols",
		"from":            "from",
		"to":              "to",
		"window":          "window",
		"lag":             "lag",
		"confidence":      "confidence",
		"workers":         "workers",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return Config{}, fmt.Errorf("error binding flag %s: %w", flag, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if len(c.Symbols) == 0 {
		errs = append(errs, errors.New("at least one symbol is required"))
	}
	if c.Window <= 0 {
		errs = append(errs, fmt.Errorf("window must be positive, got %d", c.Window))
	}
	if c.Lag < -1 {
		errs = append(errs, fmt.Errorf("lag must be -1 or non-negative, got %d", c.Lag))
	}
	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	switch c.Source.Kind {
	case SourceKindDuckdb:
	case SourceKindBinary:
		if c.Source.Path == "" {
			errs = append(errs, errors.New("source.path is required for binary sources"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown source kind %q", c.Source.Kind))
	}
	if _, _, err := c.Range(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Range returns the sample range; an empty from is unbounded, an empty to is now.
func (c Config) Range() (from, to time.Time, err error) {
	to = time.Now().UTC()
	if c.From != "" {
		if from, err = time.Parse(time.RFC3339, c.From); err != nil {
			return from, to, fmt.Errorf("invalid from: %w", err)
		}
	}
	if c.To != "" {
		if to, err = time.Parse(time.RFC3339, c.To); err != nil {
			return from, to, fmt.Errorf("invalid to: %w", err)
		}
	}
	if to.Before(from) {
		return from, to, fmt.Errorf("range end %s is before start %s", to, from)
	}
	return from, to, nil
}
