package doubleclickbidmanager

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apiary-go/googleapis/pkg/gapi"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	svc, err := NewService(context.Background(), gapi.WithEndpoint(srv.URL))
	require.NoError(t, err)
	return svc
}

func TestQueries_Create_Int64OnTheWire(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/queries", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		// queryId is a string on the wire; above 2^53 it cannot be a
		// JSON number.
		_, _ = w.Write([]byte(`{"queryId":"9007199254740993","metadata":{"title":"spend"}}`))
	})

	q, err := svc.Queries.Create(context.Background(), &Query{
		Metadata: &QueryMetadata{Title: "spend", Format: "CSV"},
		Params: &Parameters{
			Type:    "REPORT_TYPE_STANDARD",
			Metrics: []string{"METRIC_IMPRESSIONS"},
			Filters: []*FilterPair{{Type: "FILTER_ADVERTISER", Value: "1"}},
		},
	})
	require.NoError(t, err)
	require.Equal(t, gapi.Int64(9007199254740993), q.QueryId)
	require.Equal(t, "spend", q.Metadata.Title)
}

func TestQueries_Create_MarshalsQueryIdAsString(t *testing.T) {
	var raw string
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		raw = string(b)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := svc.Queries.Create(context.Background(), &Query{QueryId: 42})
	require.NoError(t, err)
	require.Contains(t, raw, `"queryId":"42"`)
}

func TestQueries_Get(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/queries/123", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"queryId":"123"}`))
	})

	q, err := svc.Queries.Get(context.Background(), 123)
	require.NoError(t, err)
	require.Equal(t, gapi.Int64(123), q.QueryId)
}

func TestQueries_Run_Synchronous(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/queries/123:run", r.URL.Path)
		require.Equal(t, "true", r.URL.Query().Get("synchronous"))

		var body RunQueryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "LAST_7_DAYS", body.DataRange.Range)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"key": {"queryId": "123", "reportId": "456"},
			"metadata": {
				"googleCloudStoragePath": "https://storage.googleapis.com/bucket/report.csv",
				"status": {"state": "DONE", "finishTime": "2024-04-01T09:30:00Z", "format": "CSV"}
			}
		}`))
	})

	rep, err := svc.Queries.Run(context.Background(), 123,
		&RunQueryRequest{DataRange: &DataRange{Range: "LAST_7_DAYS"}}, true)
	require.NoError(t, err)
	require.Equal(t, gapi.Int64(456), rep.Key.ReportId)
	require.Equal(t, "DONE", rep.Metadata.Status.State)
	require.NotNil(t, rep.Metadata.Status.FinishTime)
	require.Equal(t, "2024-04-01T09:30:00Z", rep.Metadata.Status.FinishTime.String())
}

func TestReports_Get(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/queries/123/reports/456", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"key": {"queryId": "123", "reportId": "456"}}`))
	})

	rep, err := svc.Queries.Reports.Get(context.Background(), 123, 456)
	require.NoError(t, err)
	require.Equal(t, gapi.Int64(123), rep.Key.QueryId)
	require.Equal(t, gapi.Int64(456), rep.Key.ReportId)
}

func TestReports_List(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/queries/123/reports", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"reports": [{"key": {"queryId": "123", "reportId": "1"}}],
			"nextPageToken": "page-2"
		}`))
	})

	resp, err := svc.Queries.Reports.List(context.Background(), 123)
	require.NoError(t, err)
	require.Len(t, resp.Reports, 1)
	require.Equal(t, "page-2", resp.NextPageToken)
}

func TestQueries_Delete(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/queries/123", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, svc.Queries.Delete(context.Background(), 123))
}
