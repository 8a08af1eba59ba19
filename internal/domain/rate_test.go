package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestRateEntry_Quote_RendersTwoDecimals(t *testing.T) {
	entry := RateEntry{
		Currency: "USD",
		Cost:     decimal.RequireFromString("459.5375"),
		Rate:     decimal.RequireFromString("460.1438"),
		Sale:     decimal.RequireFromString("460.75"),
	}

	quote := entry.Quote()
	require.Equal(t, "459.54", quote.Cost)
	require.Equal(t, "460.14", quote.Rate)
	require.Equal(t, "460.75", quote.Sale)
}

func TestRateEntry_Quote_PadsWholeNumbers(t *testing.T) {
	entry := RateEntry{
		Currency: "EUR",
		Cost:     decimal.RequireFromString("100"),
		Rate:     decimal.RequireFromString("120.5"),
		Sale:     decimal.RequireFromString("150.00"),
	}

	quote := entry.Quote()
	require.Equal(t, "100.00", quote.Cost)
	require.Equal(t, "120.50", quote.Rate)
	require.Equal(t, "150.00", quote.Sale)
}
