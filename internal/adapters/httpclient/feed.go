package httpclient

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"

	"nexrates/internal/domain"
)

// FeedClient downloads the published exchange rates CSV document in one GET.
type FeedClient struct {
	http   *http.Client
	docURL string
}

func (c *FeedClient) FetchRateDocument(ctx context.Context) ([]map[string]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.docURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create document request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download rates document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", domain.ErrFeedUnavailable, resp.Status)
	}

	return decodeRecords(resp.Body)
}

// decodeRecords reads a header row followed by data rows and keys every row
// by column name. Ragged rows keep whatever columns they have.
func decodeRecords(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document header: %w", err)
	}

	var records []map[string]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read document row: %w", err)
		}

		record := make(map[string]string, len(header))
		for i, column := range header {
			if i < len(row) {
				record[column] = row[i]
			}
		}
		records = append(records, record)
	}
	return records, nil
}

func NewFeedClient(httpClient *http.Client, docURL string) *FeedClient {
	return &FeedClient{http: httpClient, docURL: docURL}
}
