package rate

import (
	"context"
	"errors"
	"fmt"

	"nexrates/internal/adapters"
	"nexrates/internal/domain"

	"github.com/sirupsen/logrus"
)

// IngestPublishedRates walks the feed batches in document order and persists
// every day not yet present in the timeline. The walk stops at the first date
// that already exists: the document lists days newest first, so everything
// past that point was ingested by an earlier run. Each day is written whole
// or not at all.
func IngestPublishedRates(ctx context.Context, execID string, repo adapters.DayRatesRepository, reader *FeedReader, cache adapters.DayRatesCache) error {
	var written int
	for batch := range reader.Batches(ctx) {
		day := batch.Date.Format("2006-01-02")

		_, err := repo.GetByDate(ctx, batch.Date)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDayNotFound) {
			return fmt.Errorf("failed to check existing rates for %s: %w", day, err)
		}

		rates := make(map[string]domain.Quote, len(batch.Entries))
		for _, entry := range batch.Entries {
			rates[string(entry.Currency)] = entry.Quote()
		}

		if err = repo.Create(ctx, batch.Date, rates); err != nil {
			if errors.Is(err, domain.ErrDayExists) {
				// Lost a race with another writer; the date exists now, so the
				// same short-circuit applies.
				break
			}
			return fmt.Errorf("failed to persist rates for %s: %w", day, err)
		}
		written++
	}

	if written > 0 {
		cache.Clear()
	}
	logrus.Infof("%d new day(s) of exchange rates persisted; execID: %s", written, execID)
	return nil
}
