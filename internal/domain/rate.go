package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MinSupportedDate is the oldest publication date the rates history covers.
var MinSupportedDate = time.Date(2001, time.December, 10, 0, 0, 0, 0, time.UTC)

// RateEntry is one currency's quote for one published day. Monetary values
// keep their published precision internally.
type RateEntry struct {
	Currency Currency
	Cost     decimal.Decimal // buying rate
	Rate     decimal.Decimal // central rate
	Sale     decimal.Decimal // selling rate
}

// Quote is the stored per-currency view of a RateEntry, each value rendered
// to exactly two decimal places. The currency itself is the storage key and
// is not part of the value.
type Quote struct {
	Cost string `json:"cost"`
	Rate string `json:"rate"`
	Sale string `json:"sale"`
}

func (e RateEntry) Quote() Quote {
	return Quote{
		Cost: e.Cost.StringFixed(2),
		Rate: e.Rate.StringFixed(2),
		Sale: e.Sale.StringFixed(2),
	}
}

// DayRates is the full set of quotes published for one calendar date.
// Immutable once persisted.
type DayRates struct {
	Date  time.Time
	Rates map[string]Quote
}
