package rate

import (
	"testing"

	"nexrates/internal/domain"

	"github.com/stretchr/testify/require"
)

func wellFormedRecord() map[string]string {
	return map[string]string{
		dateField:     "2/15/2021",
		currencyField: "US DOLLAR",
		costField:     "459.5375",
		rateField:     "460.1438",
		saleField:     "460.75",
	}
}

func TestNormalize_WellFormedRecord(t *testing.T) {
	entry, ok := Normalize(wellFormedRecord())
	require.True(t, ok)
	require.Equal(t, domain.Currency("USD"), entry.Currency)

	quote := entry.Quote()
	require.Equal(t, "459.54", quote.Cost)
	require.Equal(t, "460.14", quote.Rate)
	require.Equal(t, "460.75", quote.Sale)
}

func TestNormalize_UnknownCurrency(t *testing.T) {
	record := wellFormedRecord()
	record[currencyField] = "POESA"

	_, ok := Normalize(record)
	require.False(t, ok)
}

func TestNormalize_UnparseableRate(t *testing.T) {
	for _, field := range []string{costField, rateField, saleField} {
		record := wellFormedRecord()
		record[field] = "N/A"

		_, ok := Normalize(record)
		require.False(t, ok, field)
	}
}

func TestNormalize_MissingRateField(t *testing.T) {
	record := wellFormedRecord()
	delete(record, saleField)

	_, ok := Normalize(record)
	require.False(t, ok)
}
