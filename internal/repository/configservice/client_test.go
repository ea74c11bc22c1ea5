package configservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchSuccess(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/config/gamification.chests.gold", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "data": {"value": {"success_rate": 0.4}}}`))
	})

	c := NewClient(ClientConfig{BaseURL: srv.URL})

	value, found, err := c.Fetch(context.Background(), "gamification.chests.gold")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"success_rate": 0.4}`, string(value))
}

func TestFetchSuccessFalseEnvelope(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false}`))
	})

	c := NewClient(ClientConfig{BaseURL: srv.URL})

	_, found, err := c.Fetch(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFetchNotFound(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	c := NewClient(ClientConfig{BaseURL: srv.URL})

	_, found, err := c.Fetch(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFetchServerError(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	c := NewClient(ClientConfig{BaseURL: srv.URL})

	_, found, err := c.Fetch(context.Background(), "k")
	require.Error(t, err)
	assert.False(t, found)
}

func TestFetchInvalidJSON(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	c := NewClient(ClientConfig{BaseURL: srv.URL})

	_, found, err := c.Fetch(context.Background(), "k")
	require.Error(t, err)
	assert.False(t, found)
}

func TestFetchTimeout(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})

	c := NewClient(ClientConfig{BaseURL: srv.URL, Timeout: 20 * time.Millisecond})

	_, found, err := c.Fetch(context.Background(), "k")
	require.Error(t, err)
	assert.False(t, found)
}

func TestFetchEscapesKey(t *testing.T) {
	var gotPath string
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNotFound)
	})

	c := NewClient(ClientConfig{BaseURL: srv.URL})

	_, _, err := c.Fetch(context.Background(), "weird/key")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/config/weird%2Fkey", gotPath)
}
