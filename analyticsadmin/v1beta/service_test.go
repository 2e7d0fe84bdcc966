package analyticsadmin

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

func TestAccounts_List(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/v1beta/accounts", r.URL.Path)
		require.Equal(t, "true", r.URL.Query().Get("showDeleted"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"accounts": [
				{"name": "accounts/100", "displayName": "Acme", "regionCode": "US",
				 "createTime": "2020-06-01T00:00:00Z"},
				{"name": "accounts/200", "displayName": "Trashed", "deleted": true}
			],
			"nextPageToken": "tok-2"
		}`))
	})

	resp, err := svc.Accounts.List(context.Background(), gapi.Query("showDeleted", "true"))
	require.NoError(t, err)
	require.Len(t, resp.Accounts, 2)
	require.Equal(t, "accounts/100", resp.Accounts[0].Name)
	require.True(t, resp.Accounts[1].Deleted)
	require.Equal(t, "tok-2", resp.NextPageToken)
}

func TestAccounts_Get(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1beta/accounts/100", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"accounts/100","displayName":"Acme"}`))
	})

	acct, err := svc.Accounts.Get(context.Background(), "accounts/100")
	require.NoError(t, err)
	require.Equal(t, "Acme", acct.DisplayName)
}

func TestProperties_List_RequiresFilter(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1beta/properties", r.URL.Path)
		require.Equal(t, "parent:accounts/100", r.URL.Query().Get("filter"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"properties":[{"name":"properties/1000","parent":"accounts/100"}]}`))
	})

	resp, err := svc.Properties.List(context.Background(), "parent:accounts/100")
	require.NoError(t, err)
	require.Len(t, resp.Properties, 1)
	require.Equal(t, "properties/1000", resp.Properties[0].Name)
}

func TestProperties_Patch(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/v1beta/properties/1000", r.URL.Path)
		require.Equal(t, "displayName,timeZone", r.URL.Query().Get("updateMask"))

		var body Property
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "Renamed", body.DisplayName)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"properties/1000","displayName":"Renamed","timeZone":"Europe/Berlin"}`))
	})

	prop, err := svc.Properties.Patch(context.Background(), "properties/1000",
		&Property{DisplayName: "Renamed", TimeZone: "Europe/Berlin"}, "displayName,timeZone")
	require.NoError(t, err)
	require.Equal(t, "Europe/Berlin", prop.TimeZone)
}

func TestProperties_Delete_ReturnsTrashedProperty(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/v1beta/properties/1000", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"name": "properties/1000",
			"deleteTime": "2024-05-01T12:00:00Z",
			"expireTime": "2024-06-01T12:00:00Z"
		}`))
	})

	prop, err := svc.Properties.Delete(context.Background(), "properties/1000")
	require.NoError(t, err)
	require.NotNil(t, prop.DeleteTime)
	require.Equal(t, 5, int(prop.DeleteTime.Time().Month()))
}
