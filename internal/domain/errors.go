package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrUnknownCurrency = errors.New("unknown currency")
	ErrDayNotFound     = errors.New("day rates not found")
	ErrDayExists       = errors.New("day rates already exist")
	ErrFeedUnavailable = errors.New("rates document unavailable")
	ErrNoRatesData     = errors.New("no exchange rates data available")

	// ErrDateTooEarly carries the exact user-facing message.
	ErrDateTooEarly = errors.New("There is no data for dates older than 2001-12-10")
)

// UnknownSymbolsError reports requested currencies absent from one date's
// stored rates map.
type UnknownSymbolsError struct {
	Date    time.Time
	Symbols []string
}

func (e *UnknownSymbolsError) Error() string {
	return fmt.Sprintf("Symbols '%s' are invalid for date %s",
		strings.Join(e.Symbols, ","), e.Date.Format("2006-01-02"))
}
