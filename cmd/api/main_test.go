package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anagram-shuffle/internal/config"
	hhttp "anagram-shuffle/internal/handler/http"
	"anagram-shuffle/internal/handler/http/requestid"
)

func newTestServer(t *testing.T, mutate func(*config.ServerConfig)) (*httptest.Server, *hhttp.Stats) {
	t.Helper()
	cfg := config.DefaultServerConfig()
	cfg.Secret.Path = filepath.Join(t.TempDir(), "secret.key")
	if mutate != nil {
		mutate(cfg)
	}
	require.NoError(t, cfg.Validate())

	stats := &hhttp.Stats{}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	srv := httptest.NewServer(newHandler(logger, cfg, stats))
	t.Cleanup(srv.Close)
	return srv, stats
}

func get(t *testing.T, srv *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestAPI_EndToEnd(t *testing.T) {
	srv, stats := newTestServer(t, nil)

	resp := get(t, srv, "/ping")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(requestid.RequestIDHeader))
	assert.NotEmpty(t, resp.Header.Get("X-Trace-Id"))

	resp = get(t, srv, "/shuffle?p=ab")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"p":"ab","total":2,"page":["ab","ba"]}`, string(body))

	assert.Equal(t, http.StatusBadRequest, get(t, srv, "/shuffle").StatusCode)
	assert.Equal(t, http.StatusNotFound, get(t, srv, "/unknown").StatusCode)
	assert.Equal(t, http.StatusNotFound, get(t, srv, "/secret").StatusCode)

	resp = get(t, srv, "/status")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var status hhttp.StatusDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, int64(6), status.Req)
	assert.Equal(t, int64(2), status.Err)
	assert.Equal(t, int64(6), stats.Requests())
}

func TestAPI_PostIsNotFound(t *testing.T) {
	srv, stats := newTestServer(t, nil)

	resp, err := http.Post(srv.URL+"/ping", "text/plain", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, int64(1), stats.Errors())
}

func TestAPI_Secret(t *testing.T) {
	var path string
	srv, _ := newTestServer(t, func(cfg *config.ServerConfig) {
		path = cfg.Secret.Path
	})
	require.NoError(t, os.WriteFile(path, []byte("letmein"), 0o600))

	resp := get(t, srv, "/secret")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "letmein", string(body))
}

func TestAPI_RateLimit(t *testing.T) {
	srv, stats := newTestServer(t, func(cfg *config.ServerConfig) {
		cfg.RateLimit.RPS = 0.001
		cfg.RateLimit.Burst = 1
	})

	assert.Equal(t, http.StatusNoContent, get(t, srv, "/ping").StatusCode)
	assert.Equal(t, http.StatusTooManyRequests, get(t, srv, "/ping").StatusCode)
	assert.Equal(t, int64(2), stats.Requests(), "rejected requests are still counted")
}

func TestBaseContext_SurvivesShutdownSignal(t *testing.T) {
	type key struct{}
	parent, cancel := context.WithCancel(context.WithValue(context.Background(), key{}, "v"))

	ctx := baseContext(parent)(nil)
	cancel()

	require.Error(t, parent.Err())
	assert.NoError(t, ctx.Err(), "request context must outlive the signal context")
	assert.Equal(t, "v", ctx.Value(key{}))
}

func TestAPI_TracingDisabled(t *testing.T) {
	srv, _ := newTestServer(t, func(cfg *config.ServerConfig) {
		cfg.Tracing.Enabled = false
	})

	resp := get(t, srv, "/shuffle?p=ab")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("X-Trace-Id"))
	assert.NotEmpty(t, resp.Header.Get(requestid.RequestIDHeader))
}

func TestAPI_OversizedQueryIs414(t *testing.T) {
	srv, stats := newTestServer(t, nil)

	resp := get(t, srv, "/shuffle?p="+strings.Repeat("a", hhttp.MaxQueryLength))
	assert.Equal(t, http.StatusRequestURITooLong, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, body)
	assert.Equal(t, int64(1), stats.Requests())
	assert.Equal(t, int64(0), stats.Errors())
}
