package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/peter-kozarec/stationarity/internal/dbg"
	"github.com/peter-kozarec/stationarity/pkg/data/mapper"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const timeLayout = "2006-01-02 15:04:05.999999999Z07:00"

// dumpIt converts a "ts,close" csv with a header row into binary samples.
// Rows must be sorted by timestamp and not precede *last, which is advanced
// to the last timestamp written.
func dumpIt(csvPath string, w *mapper.Writer[mapper.BinarySample], last *int64) (int, error) {
	csvFile, err := os.Open(csvPath)
	if err != nil {
		return 0, err
	}
	defer func(csvFile *os.File) {
		_ = csvFile.Close()
	}(csvFile)

	reader := csv.NewReader(csvFile)
	reader.FieldsPerRecord = 2

	// Skip header
	if _, err := reader.Read(); err != nil {
		return 0, fmt.Errorf("error reading header: %w", err)
	}

	count := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return count, err
		}

		ts, err := time.Parse(timeLayout, record[0])
		if err != nil {
			return count, fmt.Errorf("line %d: %w", count+2, err)
		}
		value, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return count, fmt.Errorf("line %d: %w", count+2, err)
		}
		if ts.UnixNano() < *last {
			return count, fmt.Errorf("line %d: timestamps are not sorted", count+2)
		}
		*last = ts.UnixNano()

		if err := w.Write(mapper.BinarySample{TimeStamp: *last, Value: value}); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}

func dumpAll(logger *zap.Logger, output string, inputs []string) error {
	w, err := mapper.Create[mapper.BinarySample](output)
	if err != nil {
		return err
	}

	last := int64(math.MinInt64)
	for _, input := range inputs {
		n, err := dumpIt(input, w, &last)
		if err != nil {
			_ = w.Close()
			_ = os.Remove(output)
			return fmt.Errorf("error converting %s: %w", input, err)
		}
		logger.Info("dump finished", zap.String("file", input), zap.Int("samples", n))
	}

	return w.Close()
}

func main() {
	output := pflag.String("output", "", "binary file to create")
	pflag.Parse()

	logger, err := dbg.NewLogger("info", true)
	if err != nil {
		panic(err)
	}
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	if *output == "" || pflag.NArg() == 0 {
		logger.Fatal("usage: dumpit --output SYMBOL.bin file.csv...")
	}

	if err := dumpAll(logger, *output, pflag.Args()); err != nil {
		logger.Fatal("failed to dump", zap.Error(err))
	}
	logger.Info("done", zap.String("output", *output))
}
