package mapper

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/peter-kozarec/stationarity/pkg/common"
)

// LoadSamples passes every record of r with a timestamp in [from, to] to handler,
// oldest first. Records must be sorted by timestamp.
func LoadSamples(r *Reader[BinarySample], symbol string, from, to time.Time, handler func(common.Sample) error) error {
	entryCount, err := r.EntryCount()
	if err != nil {
		return fmt.Errorf("error getting entry count: %w", err)
	}

	start, err := lookupStartIndex(r, entryCount, unixNano(from))
	if err != nil {
		return err
	}

	var entry BinarySample
	var sample common.Sample

	for idx := start; idx < entryCount; idx++ {
		if err := r.Read(idx, &entry); err != nil {
			if errors.Is(err, ErrEof) {
				return nil
			}
			return fmt.Errorf("error reading entry at index %d: %w", idx, err)
		}

		if entry.TimeStamp > unixNano(to) {
			return nil
		}

		if err := entry.ToSample(symbol, &sample); err != nil {
			return fmt.Errorf("error converting entry at index %d: %w", idx, err)
		}
		if err := handler(sample); err != nil {
			return fmt.Errorf("error processing sample: %w", err)
		}
	}

	return nil
}

// lookupStartIndex returns the first index with timestamp >= from.
func lookupStartIndex(r *Reader[BinarySample], entryCount, from int64) (int64, error) {
	var entry BinarySample

	low := int64(0)
	high := entryCount - 1

	for low <= high {
		mid := (low + high) / 2

		if err := r.Read(mid, &entry); err != nil {
			return 0, fmt.Errorf("error reading entry at index %d: %w", mid, err)
		}

		if entry.TimeStamp < from {
			low = mid + 1
		} else {
			high = mid - 1
		}
	}

	return low, nil
}

var (
	minTime = time.Unix(0, math.MinInt64)
	maxTime = time.Unix(0, math.MaxInt64)
)

// unixNano clamps t to the range representable in int64 nanoseconds.
func unixNano(t time.Time) int64 {
	if t.Before(minTime) {
		return math.MinInt64
	}
	if t.After(maxTime) {
		return math.MaxInt64
	}
	return t.UnixNano()
}
