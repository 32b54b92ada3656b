package mapper

import (
	"time"

	"github.com/govalues/decimal"
	"github.com/peter-kozarec/stationarity/pkg/common"
	"github.com/peter-kozarec/stationarity/pkg/utility"
)

const binarySourceName = "data.mapper"

// BinarySample is the on-disk record: unix nanos and value, little endian, 16 bytes.
type BinarySample struct {
	TimeStamp int64
	Value     float64
}

func (b BinarySample) ToSample(symbol string, sample *common.Sample) error {
	v, err := decimal.NewFromFloat64(b.Value)
	if err != nil {
		return err
	}
	sample.Source = binarySourceName
	sample.Symbol = symbol
	sample.ExecutionId = utility.GetExecutionID()
	sample.TimeStamp = time.Unix(0, b.TimeStamp).UTC()
	sample.Value = v
	return nil
}
