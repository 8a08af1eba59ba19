package adapters

import (
	"context"
	"time"

	"nexrates/internal/domain"
)

// FeedClient fetches the externally published tabular rates document and
// returns its rows as column-name keyed records.
type FeedClient interface {
	FetchRateDocument(ctx context.Context) ([]map[string]string, error)
}

// DayRatesRepository is the persisted date-keyed rates timeline. The
// ingestion path is its only writer; writes are whole days, never partial.
type DayRatesRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.DayRates, error)
	Create(ctx context.Context, date time.Time, rates map[string]domain.Quote) error
	LatestOnOrBefore(ctx context.Context, date time.Time) (*domain.DayRates, error)
	QueryRange(ctx context.Context, start, end time.Time) ([]domain.DayRates, error)
	CountAll(ctx context.Context) (int64, error)
}

// DayRatesCache caches resolved day rates between ingestion runs.
type DayRatesCache interface {
	Get(date time.Time) (*domain.DayRates, bool)
	Set(date time.Time, day *domain.DayRates)
	Clear()
}
