package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nexrates/internal/domain"

	"github.com/stretchr/testify/require"
)

func feedServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchRateDocument_KeysRowsByHeader(t *testing.T) {
	doc := "Rate Date,Currency,Buying Rate,Central Rate,Selling Rate\n" +
		"2/15/2021,US DOLLAR,459.5375,460.1438,460.75\n" +
		"2/15/2021,EURO,556.00,557.10,558.20\n"
	srv := feedServer(t, http.StatusOK, doc)

	client := NewFeedClient(srv.Client(), srv.URL)
	records, err := client.FetchRateDocument(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, map[string]string{
		"Rate Date":    "2/15/2021",
		"Currency":     "US DOLLAR",
		"Buying Rate":  "459.5375",
		"Central Rate": "460.1438",
		"Selling Rate": "460.75",
	}, records[0])
	require.Equal(t, "EURO", records[1]["Currency"])
}

func TestFetchRateDocument_RaggedRowsKeepKnownColumns(t *testing.T) {
	doc := "Rate Date,Currency,Buying Rate\n" +
		"2/15/2021,US DOLLAR\n"
	srv := feedServer(t, http.StatusOK, doc)

	client := NewFeedClient(srv.Client(), srv.URL)
	records, err := client.FetchRateDocument(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "US DOLLAR", records[0]["Currency"])
	require.NotContains(t, records[0], "Buying Rate")
}

func TestFetchRateDocument_EmptyBody(t *testing.T) {
	srv := feedServer(t, http.StatusOK, "")

	client := NewFeedClient(srv.Client(), srv.URL)
	records, err := client.FetchRateDocument(context.Background())
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestFetchRateDocument_NonOKStatus(t *testing.T) {
	srv := feedServer(t, http.StatusServiceUnavailable, "maintenance")

	client := NewFeedClient(srv.Client(), srv.URL)
	_, err := client.FetchRateDocument(context.Background())
	require.ErrorIs(t, err, domain.ErrFeedUnavailable)
}

func TestFetchRateDocument_ConnectionError(t *testing.T) {
	srv := feedServer(t, http.StatusOK, "")
	url := srv.URL
	srv.Close()

	client := NewFeedClient(&http.Client{Timeout: time.Second}, url)
	_, err := client.FetchRateDocument(context.Background())
	require.Error(t, err)
}

func TestFetchRateDocument_MalformedCSV(t *testing.T) {
	doc := "Rate Date,Currency\n" +
		"2/15/2021,\"US DOLLAR\n"
	srv := feedServer(t, http.StatusOK, doc)

	client := NewFeedClient(srv.Client(), srv.URL)
	_, err := client.FetchRateDocument(context.Background())
	require.Error(t, err)
}
