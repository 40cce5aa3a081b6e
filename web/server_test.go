package web_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Xordas/ScreenX/layout"
	"github.com/Xordas/ScreenX/web"
	"github.com/Xordas/ScreenX/web/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, dev bool) *httptest.Server {
	t.Helper()

	handler := routes.NewServerHandler(routes.Config{Layout: layout.Default()})
	server := httptest.NewServer(web.BuildServer(handler, dev))
	t.Cleanup(server.Close)

	return server
}

func TestBuildServer(t *testing.T) {
	server := newServer(t, false)

	tests := []struct {
		name        string
		method      string
		path        string
		body        string
		status      int
		contentType string
	}{
		{"index", http.MethodGet, "/", "", http.StatusOK, "text/html; charset=UTF-8"},
		{"unknown page", http.MethodGet, "/nope", "", http.StatusNotFound, ""},
		{"preview", http.MethodGet, "/preview.png?mode=demo", "", http.StatusOK, "image/png"},
		{"widgets", http.MethodGet, "/api/widgets", "", http.StatusOK, "application/json"},
		{"layout", http.MethodGet, "/api/layout", "", http.StatusOK, "application/json"},
		{"current layout", http.MethodGet, "/api/layout/current", "", http.StatusOK, "application/json"},
		{"presets without storage", http.MethodGet, "/api/layout/presets", "", http.StatusServiceUnavailable, "application/json"},
		{"save is post only", http.MethodGet, "/api/layout/presets/save", "", http.StatusMethodNotAllowed, ""},
		{"telemetry", http.MethodPost, "/api/telemetry", `{"gear":"4"}`, http.StatusOK, "application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequestWithContext(context.Background(), tt.method, server.URL+tt.path, strings.NewReader(tt.body))
			require.NoError(t, err)

			resp, err := server.Client().Do(req)
			require.NoError(t, err)

			defer resp.Body.Close()

			_, _ = io.Copy(io.Discard, resp.Body)

			assert.Equal(t, tt.status, resp.StatusCode)

			if tt.contentType != "" {
				assert.Equal(t, tt.contentType, resp.Header.Get("Content-Type"))
			}
		})
	}
}

func TestDevModeDisablesCache(t *testing.T) {
	for _, dev := range []bool{false, true} {
		server := newServer(t, dev)

		resp, err := server.Client().Get(server.URL + "/")
		require.NoError(t, err)
		resp.Body.Close()

		if dev {
			assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
		} else {
			assert.Empty(t, resp.Header.Get("Cache-Control"))
		}
	}
}

func TestStartServer(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- web.StartServer(ctx, addr, http.NotFoundHandler())
	}()

	assert.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return false
		}

		conn.Close()

		return true
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
