package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/peter-kozarec/stationarity/pkg/common"
	"github.com/peter-kozarec/stationarity/pkg/data/mapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDumpit_DumpAll(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "eurusd_2023.csv")
	second := filepath.Join(dir, "eurusd_2024.csv")
	require.NoError(t, os.WriteFile(first, []byte("ts,close\n2023-12-31 22:00:00Z,1.1035\n2023-12-31 23:00:00Z,1.1039\n"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte("ts,close\n2024-01-01 00:00:00Z,1.1042\n"), 0o600))

	output := filepath.Join(dir, "EURUSD.bin")
	require.NoError(t, dumpAll(zap.NewNop(), output, []string{first, second}))

	r := mapper.NewReader[mapper.BinarySample](output)
	require.NoError(t, r.Open())
	defer r.Close()

	var got []string
	err := mapper.LoadSamples(r, "EURUSD", time.Time{}, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), func(s common.Sample) error {
		got = append(got, s.Value.String())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"1.1035", "1.1039", "1.1042"}, got)
}

func TestDumpit_RejectsUnsortedInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(input, []byte("ts,close\n2024-01-02 00:00:00Z,1\n2024-01-01 00:00:00Z,2\n"), 0o600))

	output := filepath.Join(dir, "BAD.bin")
	err := dumpAll(zap.NewNop(), output, []string{input})
	assert.ErrorContains(t, err, "not sorted")

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDumpit_RejectsMalformedValue(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(input, []byte("ts,close\n2024-01-02 00:00:00Z,abc\n"), 0o600))

	err := dumpAll(zap.NewNop(), filepath.Join(dir, "BAD.bin"), []string{input})
	assert.ErrorContains(t, err, "line 2")
}

func TestDumpit_RejectsFilesOutOfOrder(t *testing.T) {
	dir := t.TempDir()
	later := filepath.Join(dir, "eurusd_2024.csv")
	earlier := filepath.Join(dir, "eurusd_2023.csv")
	require.NoError(t, os.WriteFile(later, []byte("ts,close\n2024-01-01 00:00:00Z,1\n2024-01-01 01:00:00Z,2\n2024-01-01 02:00:00Z,3\n"), 0o600))
	require.NoError(t, os.WriteFile(earlier, []byte("ts,close\n2023-01-01 00:00:00Z,9\n"), 0o600))

	output := filepath.Join(dir, "EURUSD.bin")
	err := dumpAll(zap.NewNop(), output, []string{later, earlier})
	assert.ErrorContains(t, err, "not sorted")

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDumpit_AcceptsPre1970Input(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "old.csv")
	require.NoError(t, os.WriteFile(input, []byte("ts,close\n1969-07-20 20:17:00Z,1.5\n1969-07-21 02:56:00Z,1.6\n"), 0o600))

	output := filepath.Join(dir, "OLD.bin")
	require.NoError(t, dumpAll(zap.NewNop(), output, []string{input}))

	r := mapper.NewReader[mapper.BinarySample](output)
	require.NoError(t, r.Open())
	defer r.Close()

	count, err := r.EntryCount()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	var entry mapper.BinarySample
	require.NoError(t, r.Read(0, &entry))
	assert.Equal(t, time.Date(1969, 7, 20, 20, 17, 0, 0, time.UTC).UnixNano(), entry.TimeStamp)
	assert.Equal(t, 1.5, entry.Value)
}
