package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServerDefaults(t *testing.T) {
	s := newServer()
	assert.Equal(t, DefaultPort, s.port)
	assert.Equal(t, DefaultReadTimeout, s.readTimeout)
	assert.Equal(t, DefaultWriteTimeout, s.writeTimeout)
	assert.Equal(t, DefaultIdleTimeout, s.idleTimeout)
	assert.Equal(t, DefaultShutdownTimeout, s.shutdownTimeout)
	assert.Equal(t, DefaultMaxHeaderBytes, s.maxHeaderBytes)
	assert.Nil(t, s.tlsConfig)
	assert.False(t, s.IsRunning())
}

func TestNewServerOptions(t *testing.T) {
	s := newServer(
		WithPort(8080),
		WithReadTimeout(time.Second),
		WithWriteTimeout(2*time.Second),
		WithIdleTimeout(3*time.Second),
		WithShutdownTimeout(4*time.Second),
		WithMaxHeaderBytes(512),
		WithTLS(TLSConfig{CertFile: "cert.pem", KeyFile: "key.pem"}),
	)

	assert.Equal(t, 8080, s.port)
	assert.Equal(t, time.Second, s.readTimeout)
	assert.Equal(t, 2*time.Second, s.writeTimeout)
	assert.Equal(t, 3*time.Second, s.idleTimeout)
	assert.Equal(t, 4*time.Second, s.shutdownTimeout)
	assert.Equal(t, 512, s.maxHeaderBytes)
	require.NotNil(t, s.tlsConfig)
	assert.Equal(t, "cert.pem", s.tlsConfig.CertFile)
}

func TestHandlers(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "test_server_total", Help: "test"}))

	s := newServer(
		WithSimpleHealth(),
		WithMetrics(reg),
		WithHandler("/menu", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<ul></ul>"))
		})),
	)

	tests := []struct {
		path string
		code int
		body string
	}{
		{path: HealthPath, code: http.StatusOK, body: "ok"},
		{path: MetricsPath, code: http.StatusOK, body: "test_server_total 0"},
		{path: "/menu", code: http.StatusOK, body: "<ul></ul>"},
		{path: "/missing", code: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			s.mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.code, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	s := newServer(WithPort(0), WithShutdownTimeout(time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx) }()

	require.Eventually(t, s.IsRunning, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.False(t, s.IsRunning())
}

func TestServeTLSMissingCert(t *testing.T) {
	s := newServer(WithPort(0), WithTLS(TLSConfig{CertFile: "missing.pem", KeyFile: "missing.key"}))
	err := s.Serve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load TLS certificate")
}
