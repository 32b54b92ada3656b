package common

import (
	"time"

	"github.com/govalues/decimal"
	"github.com/peter-kozarec/stationarity/pkg/utility"
)

// Sample is one observation of a symbol, usually a bar close.
type Sample struct {
	Source      string              `json:"src,omitempty"`
	Symbol      string              `json:"symbol,omitempty"`
	ExecutionId utility.ExecutionID `json:"eid,omitempty"`
	TimeStamp   time.Time           `json:"ts"`
	Value       decimal.Decimal     `json:"value"`
}
