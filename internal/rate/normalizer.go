package rate

import (
	"strings"

	"nexrates/internal/domain"

	"github.com/shopspring/decimal"
)

// Column names of the published document.
const (
	dateField     = "Rate Date"
	currencyField = "Currency"
	costField     = "Buying Rate"
	rateField     = "Central Rate"
	saleField     = "Selling Rate"
)

// Normalize converts one published record into a RateEntry. A record with an
// unknown currency name or an undecodable rate value is rejected whole; the
// caller decides whether to log it. Pure, no I/O.
func Normalize(record map[string]string) (domain.RateEntry, bool) {
	currency, err := domain.ResolveCurrency(record[currencyField])
	if err != nil {
		return domain.RateEntry{}, false
	}

	entry := domain.RateEntry{Currency: currency}
	for field, target := range map[string]*decimal.Decimal{
		costField: &entry.Cost,
		rateField: &entry.Rate,
		saleField: &entry.Sale,
	} {
		value, err := decimal.NewFromString(strings.TrimSpace(record[field]))
		if err != nil {
			return domain.RateEntry{}, false
		}
		*target = value
	}
	return entry, true
}
