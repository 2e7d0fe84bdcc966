package gapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestExpandPath(t *testing.T) {
	// Plain variables are escaped; reserved (`+`) variables keep their
	// slashes so full resource paths pass through.
	got, err := expandPath("v2/{+name}/keyString", map[string]string{
		"name": "projects/p1/locations/global/keys/k1",
	})
	require.NoError(t, err)
	require.Equal(t, "v2/projects/p1/locations/global/keys/k1/keyString", got)

	got, err = expandPath("apis/{api}/{version}/rest", map[string]string{
		"api": "a b", "version": "v1",
	})
	require.NoError(t, err)
	require.Equal(t, "apis/a%20b/v1/rest", got)

	// A slash in a plain variable must not create extra path segments.
	got, err = expandPath("v1/items/{id}", map[string]string{"id": "a/b"})
	require.NoError(t, err)
	require.Equal(t, "v1/items/a%2Fb", got)
}

func TestExpandPath_Errors(t *testing.T) {
	_, err := expandPath("v1/{name}", nil)
	require.ErrorContains(t, err, "missing value")

	_, err = expandPath("v1/{name}", map[string]string{"name": ""})
	require.ErrorContains(t, err, "empty value")

	_, err = expandPath("v1/{name", map[string]string{"name": "x"})
	require.ErrorContains(t, err, "unterminated")
}

func TestClient_Do_BuildsRequest(t *testing.T) {
	var gotPath, gotAuth, gotAccept string
	var gotQuery map[string][]string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"things/t1"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL,
		WithTokenSource(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"})))

	var out struct {
		Name string `json:"name"`
	}
	err := c.Do(context.Background(), &Call{
		Method:     http.MethodPost,
		Path:       "v1/{+parent}/things",
		PathParams: map[string]string{"parent": "projects/p1"},
		Body:       map[string]string{"displayName": "t"},
		Result:     &out,
	}, Query("thingId", "t1"))
	require.NoError(t, err)

	require.Equal(t, "/v1/projects/p1/things", gotPath)
	require.Equal(t, "json", gotQuery["alt"][0])
	require.Equal(t, "t1", gotQuery["thingId"][0])
	require.Equal(t, "Bearer test-token", gotAuth)
	require.Equal(t, "application/json", gotAccept)
	require.Equal(t, map[string]string{"displayName": "t"}, gotBody)
	require.Equal(t, "things/t1", out.Name)
}

func TestClient_Do_APIKey(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithAPIKey("secret"))
	err := c.Do(context.Background(), &Call{Method: http.MethodGet, Path: "v1/ping"})
	require.NoError(t, err)
	require.Equal(t, "secret", gotKey)
}

func TestClient_Do_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":404,"message":"key not found","status":"NOT_FOUND"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.Do(context.Background(), &Call{Method: http.MethodGet, Path: "v1/x"})
	require.Error(t, err)

	var ae *APIError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, http.StatusNotFound, ae.StatusCode)
	require.Equal(t, 404, ae.Body.Code)
	require.Equal(t, "key not found", ae.Body.Message)
	require.Equal(t, "NOT_FOUND", ae.Body.Status)
	require.True(t, IsNotFound(err))
	require.False(t, IsPermissionDenied(err))
}

func TestClient_Do_NonEnvelopeError(t *testing.T) {
	// Some frontends answer with plain text; the raw body must survive
	// into the error message.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream connect error"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.Do(context.Background(), &Call{Method: http.MethodGet, Path: "v1/x"})

	var ae *APIError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, http.StatusBadGateway, ae.StatusCode)
	require.Contains(t, ae.Body.Message, "upstream connect error")
}

func TestClient_Do_MissingPathParam(t *testing.T) {
	c := NewClient("http://127.0.0.1:0")
	err := c.Do(context.Background(), &Call{Method: http.MethodGet, Path: "v1/{name}"})
	require.ErrorContains(t, err, "missing value")
}

func TestWithEndpoint(t *testing.T) {
	c := NewClient("https://example.googleapis.com/", WithEndpoint("https://other.example/"))
	require.Equal(t, "https://other.example", c.Endpoint())
}
