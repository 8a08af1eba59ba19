package rate

import (
	"context"
	"iter"
	"strings"
	"time"

	"nexrates/internal/adapters"
	"nexrates/internal/domain"

	"github.com/sirupsen/logrus"
)

// feedDateLayout matches the document's month/day/year dates, zero padding
// optional.
const feedDateLayout = "1/2/2006"

// Batch is a contiguous run of document rows sharing one publication date.
type Batch struct {
	Date    time.Time
	Entries []domain.RateEntry
}

type FeedReader struct {
	client adapters.FeedClient
}

// Batches fetches the published document once and yields normalized entries
// grouped by contiguous publication-date runs, in document order. A failed
// fetch degrades to an empty sequence with a warning; rows that fail date
// parsing or normalization are dropped. The sequence is single-use: call
// Batches again to re-fetch.
func (r *FeedReader) Batches(ctx context.Context) iter.Seq[Batch] {
	return func(yield func(Batch) bool) {
		logrus.Debug("Downloading exchange rates document")
		records, err := r.client.FetchRateDocument(ctx)
		if err != nil {
			logrus.WithError(err).Warn("Exchange rates document download failed")
			return
		}

		var (
			batchDate time.Time
			entries   []domain.RateEntry
		)
		for _, record := range records {
			rowDate, err := time.Parse(feedDateLayout, strings.TrimSpace(record[dateField]))
			if err != nil {
				logrus.WithField("date", record[dateField]).Warn("Skipping row with unparseable publication date")
				continue
			}

			if !rowDate.Equal(batchDate) && len(entries) > 0 {
				if !yield(Batch{Date: batchDate, Entries: entries}) {
					return
				}
				entries = nil
			}
			batchDate = rowDate

			if entry, ok := Normalize(record); ok {
				entries = append(entries, entry)
			} else {
				logrus.WithField("record", record).Warn("Unable to process rates record")
			}
		}

		if len(entries) > 0 {
			yield(Batch{Date: batchDate, Entries: entries})
		}
	}
}

func NewFeedReader(client adapters.FeedClient) *FeedReader {
	return &FeedReader{client: client}
}
