package apikeys

import (
	"context"
	"encoding/json"
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

func TestKeys_Get(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/v2/projects/p1/locations/global/keys/k1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"name": "projects/p1/locations/global/keys/k1",
			"displayName": "backend",
			"createTime": "2023-01-02T03:04:05Z"
		}`))
	})

	key, err := svc.Keys.Get(context.Background(), "projects/p1/locations/global/keys/k1")
	require.NoError(t, err)
	require.Equal(t, "backend", key.DisplayName)
	require.NotNil(t, key.CreateTime)
	require.Equal(t, 2023, key.CreateTime.Time().Year())
}

func TestKeys_Create(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v2/projects/p1/locations/global/keys", r.URL.Path)
		require.Equal(t, "my-key", r.URL.Query().Get("keyId"))

		var body Key
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "backend", body.DisplayName)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name": "operations/op1", "done": false}`))
	})

	op, err := svc.Keys.Create(context.Background(), "projects/p1/locations/global",
		&Key{DisplayName: "backend"}, "my-key")
	require.NoError(t, err)
	require.Equal(t, "operations/op1", op.Name)
	require.False(t, op.Done)
}

func TestKeys_List_PageToken(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "next-1", r.URL.Query().Get("pageToken"))
		require.Equal(t, "10", r.URL.Query().Get("pageSize"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"keys":[{"uid":"u1"}],"nextPageToken":"next-2"}`))
	})

	resp, err := svc.Keys.List(context.Background(), "projects/p1/locations/global",
		gapi.Query("pageToken", "next-1"), gapi.Query("pageSize", "10"))
	require.NoError(t, err)
	require.Len(t, resp.Keys, 1)
	require.Equal(t, "next-2", resp.NextPageToken)
}

func TestKeys_LookupKey(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/keys:lookupKey", r.URL.Path)
		require.Equal(t, "AIza-secret", r.URL.Query().Get("keyString"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"parent":"projects/p1/locations/global","name":"projects/p1/locations/global/keys/k1"}`))
	})

	resp, err := svc.Keys.LookupKey(context.Background(), "AIza-secret")
	require.NoError(t, err)
	require.Equal(t, "projects/p1/locations/global", resp.Parent)
}

func TestKeys_Undelete(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v2/projects/p1/locations/global/keys/k1:undelete", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"operations/op2"}`))
	})

	op, err := svc.Keys.Undelete(context.Background(), "projects/p1/locations/global/keys/k1")
	require.NoError(t, err)
	require.Equal(t, "operations/op2", op.Name)
}

func TestKeys_Get_NotFound(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":404,"message":"key does not exist","status":"NOT_FOUND"}}`))
	})

	_, err := svc.Keys.Get(context.Background(), "projects/p1/locations/global/keys/nope")
	require.Error(t, err)
	require.True(t, gapi.IsNotFound(err))
}
