package rate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFeedClient struct{ mock.Mock }

func (m *MockFeedClient) FetchRateDocument(ctx context.Context) ([]map[string]string, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]map[string]string)
	return records, args.Error(1)
}

func feedRecord(date, currency, cost, rate, sale string) map[string]string {
	return map[string]string{
		dateField:     date,
		currencyField: currency,
		costField:     cost,
		rateField:     rate,
		saleField:     sale,
	}
}

func collectBatches(t *testing.T, reader *FeedReader) []Batch {
	t.Helper()
	var batches []Batch
	for batch := range reader.Batches(context.Background()) {
		batches = append(batches, batch)
	}
	return batches
}

func TestFeedReader_GroupsByContiguousDateRuns(t *testing.T) {
	mockClient := new(MockFeedClient)
	// D1 appears again after D2: contiguous-run grouping must yield three
	// batches, not two.
	mockClient.On("FetchRateDocument", mock.Anything).Return([]map[string]string{
		feedRecord("2/15/2021", "US DOLLAR", "459.53", "460.14", "460.75"),
		feedRecord("2/15/2021", "EURO", "556.00", "557.10", "558.20"),
		feedRecord("2/12/2021", "US DOLLAR", "459.00", "459.60", "460.20"),
		feedRecord("2/12/2021", "EURO", "554.30", "555.40", "556.50"),
		feedRecord("2/12/2021", "YEN", "4.31", "4.32", "4.33"),
		feedRecord("2/15/2021", "RIYAL", "122.50", "122.70", "122.90"),
	}, nil).Once()

	batches := collectBatches(t, NewFeedReader(mockClient))

	require.Len(t, batches, 3)

	d1 := time.Date(2021, time.February, 15, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2021, time.February, 12, 0, 0, 0, 0, time.UTC)

	require.True(t, batches[0].Date.Equal(d1))
	require.Len(t, batches[0].Entries, 2)
	require.True(t, batches[1].Date.Equal(d2))
	require.Len(t, batches[1].Entries, 3)
	require.True(t, batches[2].Date.Equal(d1))
	require.Len(t, batches[2].Entries, 1)

	mockClient.AssertExpectations(t)
}

func TestFeedReader_FetchErrorYieldsEmptySequence(t *testing.T) {
	mockClient := new(MockFeedClient)
	mockClient.On("FetchRateDocument", mock.Anything).Return(nil, errors.New("503 Service Unavailable")).Once()

	batches := collectBatches(t, NewFeedReader(mockClient))

	require.Empty(t, batches)
	mockClient.AssertExpectations(t)
}

func TestFeedReader_DropsRowsFailingNormalization(t *testing.T) {
	mockClient := new(MockFeedClient)
	mockClient.On("FetchRateDocument", mock.Anything).Return([]map[string]string{
		feedRecord("2/15/2021", "US DOLLAR", "459.53", "460.14", "460.75"),
		feedRecord("2/15/2021", "POESA", "1.00", "1.00", "1.00"),
		feedRecord("2/12/2021", "EURO", "554.30", "N/A", "556.50"),
		feedRecord("2/12/2021", "YEN", "4.31", "4.32", "4.33"),
	}, nil).Once()

	batches := collectBatches(t, NewFeedReader(mockClient))

	require.Len(t, batches, 2)
	require.Len(t, batches[0].Entries, 1)
	require.Equal(t, "USD", string(batches[0].Entries[0].Currency))
	require.Len(t, batches[1].Entries, 1)
	require.Equal(t, "JPY", string(batches[1].Entries[0].Currency))
}

func TestFeedReader_SkipsRowsWithUnparseableDate(t *testing.T) {
	mockClient := new(MockFeedClient)
	mockClient.On("FetchRateDocument", mock.Anything).Return([]map[string]string{
		feedRecord("not-a-date", "US DOLLAR", "459.53", "460.14", "460.75"),
		feedRecord("2/15/2021", "EURO", "556.00", "557.10", "558.20"),
	}, nil).Once()

	batches := collectBatches(t, NewFeedReader(mockClient))

	require.Len(t, batches, 1)
	require.Len(t, batches[0].Entries, 1)
	require.Equal(t, "EUR", string(batches[0].Entries[0].Currency))
}

func TestFeedReader_AcceptsUnpaddedDates(t *testing.T) {
	mockClient := new(MockFeedClient)
	mockClient.On("FetchRateDocument", mock.Anything).Return([]map[string]string{
		feedRecord("3/5/2021", "US DOLLAR", "459.53", "460.14", "460.75"),
		feedRecord("03/05/2021", "EURO", "556.00", "557.10", "558.20"),
	}, nil).Once()

	batches := collectBatches(t, NewFeedReader(mockClient))

	// Padded and unpadded spellings of the same date stay in one batch.
	require.Len(t, batches, 1)
	require.Len(t, batches[0].Entries, 2)
}

func TestFeedReader_StopsWhenConsumerBreaks(t *testing.T) {
	mockClient := new(MockFeedClient)
	mockClient.On("FetchRateDocument", mock.Anything).Return([]map[string]string{
		feedRecord("2/15/2021", "US DOLLAR", "459.53", "460.14", "460.75"),
		feedRecord("2/12/2021", "EURO", "554.30", "555.40", "556.50"),
		feedRecord("2/11/2021", "YEN", "4.31", "4.32", "4.33"),
	}, nil).Once()

	var seen int
	for range NewFeedReader(mockClient).Batches(context.Background()) {
		seen++
		break
	}
	require.Equal(t, 1, seen)
}
