package cache

import (
	"fmt"
	"time"

	"nexrates/internal/domain"

	"github.com/dgraph-io/ristretto"
)

// RistrettoDayRatesCache keeps resolved day rates keyed by requested date.
// Safe to serve from because persisted days are immutable; the ingestion job
// flushes it whenever new days are written.
type RistrettoDayRatesCache struct {
	cache *ristretto.Cache
}

func NewDayRatesCache(maxItems int64) (*RistrettoDayRatesCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create day rates cache failed: %w", err)
	}
	return &RistrettoDayRatesCache{cache: c}, nil
}

func (c *RistrettoDayRatesCache) Get(date time.Time) (*domain.DayRates, bool) {
	if v, ok := c.cache.Get(toKey(date)); ok {
		day, ok := v.(*domain.DayRates)
		return day, ok
	}
	return nil, false
}

func (c *RistrettoDayRatesCache) Set(date time.Time, day *domain.DayRates) {
	c.cache.Set(toKey(date), day, 1)
}

func (c *RistrettoDayRatesCache) Clear() { c.cache.Clear() }

func (c *RistrettoDayRatesCache) Close() { c.cache.Close() }

func toKey(date time.Time) string { return date.Format("2006-01-02") }
