package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/mchmarny/navmenu/pkg/logger"
	"github.com/mchmarny/navmenu/pkg/metric"
)

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = 9876

	// DefaultReadTimeout is the maximum duration for reading the entire request,
	// including the body. A zero or negative value means there will be no timeout.
	// This helps prevent slowloris attacks.
	DefaultReadTimeout = 10 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	// Menu rendering is in-memory, so this mostly bounds slow clients.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request
	// when keep-alives are enabled. If IdleTimeout is zero, ReadTimeout is used.
	DefaultIdleTimeout = 60 * time.Second

	// DefaultShutdownTimeout is the maximum duration to wait for active connections
	// to gracefully close during server shutdown. Should be less than Kubernetes
	// terminationGracePeriodSeconds to allow proper pod termination.
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultMaxHeaderBytes controls the maximum number of bytes the server will
	// read parsing the request header's keys and values, including the request line.
	DefaultMaxHeaderBytes = 1 << 20 // 1 MB

	// MetricsPath is where WithMetrics exposes the registry.
	MetricsPath = "/metrics"

	// HealthPath is where WithSimpleHealth responds.
	HealthPath = "/healthz"
)

// Server defines the interface for the HTTP server that serves rendered menus,
// the menu listing, health checks and metrics.
// Implementations must support graceful shutdown via context cancellation.
type Server interface {
	// Serve starts the HTTP server and blocks until the context is canceled.
	// It returns an error if the server fails to start or encounters an error
	// during shutdown. Returns nil on successful graceful shutdown.
	Serve(ctx context.Context) error

	// IsRunning returns true if the server is currently accepting connections.
	// This method is thread-safe and can be called concurrently.
	// Returns true only after the socket has been successfully bound.
	IsRunning() bool
}

// server is the internal implementation of the Server interface.
type server struct {
	mux             *http.ServeMux // HTTP request multiplexer
	port            int            // Port to listen on
	readTimeout     time.Duration  // Maximum duration for reading requests
	writeTimeout    time.Duration  // Maximum duration for writing responses
	idleTimeout     time.Duration  // Maximum idle time for keep-alive connections
	shutdownTimeout time.Duration  // Grace period for shutdown
	maxHeaderBytes  int            // Maximum header size in bytes
	errLog          *log.Logger    // http.Server error log, backed by slog
	tlsConfig       *TLSConfig     // Optional TLS configuration
	mu              sync.RWMutex   // Protects running state
	running         bool           // Indicates if server is currently running
}

// TLSConfig contains the certificate and key file paths for TLS/HTTPS support.
type TLSConfig struct {
	CertFile string // Path to the TLS certificate file
	KeyFile  string // Path to the TLS private key file
}

// Option is a functional option for configuring the Server.
// This pattern allows for flexible, backward-compatible configuration.
type Option func(*server)

// WithPort sets the port number for the HTTP server.
// If not specified, DefaultPort (9876) is used. Port 0 picks a free port.
func WithPort(port int) Option {
	return func(s *server) { s.port = port }
}

// WithReadTimeout sets the maximum duration for reading the entire request.
func WithReadTimeout(d time.Duration) Option {
	return func(s *server) { s.readTimeout = d }
}

// WithWriteTimeout sets the maximum duration before timing out writes of the response.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *server) { s.writeTimeout = d }
}

// WithIdleTimeout sets the keep-alive idle timeout.
func WithIdleTimeout(d time.Duration) Option {
	return func(s *server) { s.idleTimeout = d }
}

// WithShutdownTimeout sets the maximum duration to wait for graceful shutdown.
// This should be less than Kubernetes terminationGracePeriodSeconds to ensure
// proper pod termination before SIGKILL. If not specified, DefaultShutdownTimeout (5s) is used.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *server) { s.shutdownTimeout = d }
}

// WithMaxHeaderBytes sets the maximum number of bytes to read from request headers.
func WithMaxHeaderBytes(n int) Option {
	return func(s *server) { s.maxHeaderBytes = n }
}

// WithHandler registers a custom HTTP handler for the specified pattern.
// Multiple handlers can be registered by calling this option multiple times.
//
// Example:
//
//	h := reg.Handler("main")
//	srv := server.New(server.WithHandler("/", h))
func WithHandler(pattern string, handler http.Handler) Option {
	return func(s *server) {
		s.mux.Handle(pattern, handler)
	}
}

// WithSimpleHealth adds a simple health check endpoint at /healthz that always returns 200 OK.
// Menus are held in memory, so there are no dependencies to verify.
//
// The endpoint returns:
//   - 200 OK with body "ok"
func WithSimpleHealth() Option {
	return func(s *server) {
		s.mux.HandleFunc(HealthPath, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
	}
}

// WithMetrics exposes the metrics gathered by g on /metrics in the Prometheus
// text format. Pass the registry the menu counters were registered on.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *server) {
		s.mux.Handle(MetricsPath, metric.GetHandlerForRegistry(g))
	}
}

// WithTLS configures the server to use TLS/HTTPS with the provided certificate and key files.
// The listener is wrapped with TLS 1.2 or newer.
//
// Example:
//
//	srv := server.New(
//	    server.WithPort(8443),
//	    server.WithTLS(server.TLSConfig{
//	        CertFile: "/path/to/cert.pem",
//	        KeyFile:  "/path/to/key.pem",
//	    }),
//	)
func WithTLS(cfg TLSConfig) Option {
	return func(s *server) {
		s.tlsConfig = &cfg
	}
}

// New creates a new HTTP server with the provided options.
// If no options are provided, the server uses sensible defaults.
//
// Default configuration:
//   - Port: 9876
//   - ReadTimeout: 10s
//   - WriteTimeout: 10s
//   - IdleTimeout: 60s
//   - ShutdownTimeout: 5s
//   - MaxHeaderBytes: 1 MB
//
// Example:
//
//	srv := server.New(
//	    server.WithPort(9876),
//	    server.WithMetrics(reg),
//	    server.WithSimpleHealth(),
//	)
func New(opts ...Option) Server {
	s := newServer(opts...)

	slog.Info("server initialized",
		"port", s.port,
		"read_timeout", s.readTimeout,
		"write_timeout", s.writeTimeout,
		"tls", s.tlsConfig != nil)

	return s
}

func newServer(opts ...Option) *server {
	s := &server{
		port:            DefaultPort,
		readTimeout:     DefaultReadTimeout,
		writeTimeout:    DefaultWriteTimeout,
		idleTimeout:     DefaultIdleTimeout,
		shutdownTimeout: DefaultShutdownTimeout,
		maxHeaderBytes:  DefaultMaxHeaderBytes,
		mux:             http.NewServeMux(),
		errLog:          logger.NewLogLogger(slog.LevelError, false),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// IsRunning returns true if the server is currently running and accepting connections.
// This method is thread-safe and can be called concurrently from multiple goroutines.
//
// The server is considered "running" after the socket has been successfully bound.
// It returns false before the socket is bound and after the server has stopped.
func (s *server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.running
}

func (s *server) setRunning(v bool) {
	s.mu.Lock()
	s.running = v
	s.mu.Unlock()
}

// Serve starts the HTTP server and blocks until the context is canceled or an error occurs.
//
// The listener is created first, so a bind failure is returned right away.
// The server then uses errgroup to manage two goroutines:
//  1. Server goroutine: serves on the bound listener and flips the running flag
//  2. Shutdown goroutine: waits for context cancellation and initiates graceful shutdown
//
// When the context is canceled (e.g., SIGTERM), the shutdown goroutine:
//   - Calls Shutdown() with a timeout to gracefully close active connections
//   - Waits for in-flight requests to complete (up to shutdownTimeout)
//   - Logs the shutdown progress
//
// http.ErrServerClosed is expected during shutdown and is not returned.
func (s *server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", s.port),
		Handler:        s.mux,
		ReadTimeout:    s.readTimeout,
		WriteTimeout:   s.writeTimeout,
		IdleTimeout:    s.idleTimeout,
		MaxHeaderBytes: s.maxHeaderBytes,
		ErrorLog:       s.errLog,
	}

	listener, err := s.listen(srv.Addr)
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.setRunning(true)
		defer s.setRunning(false)

		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		slog.Info("shutting down server", "grace_period", s.shutdownTimeout)
		start := time.Now()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "error", err)
		}

		slog.Info("server shutdown complete", "duration", time.Since(start))

		return nil
	})

	return g.Wait()
}

// listen binds addr, wrapping the listener with TLS when configured.
func (s *server) listen(addr string) (net.Listener, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to create listener: %w", err)
	}

	if s.tlsConfig == nil {
		slog.Info("starting server", "addr", addr)
		return listener, nil
	}

	cert, err := tls.LoadX509KeyPair(s.tlsConfig.CertFile, s.tlsConfig.KeyFile)
	if err != nil {
		listener.Close()
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}

	slog.Info("starting TLS server", "addr", addr)

	return tls.NewListener(listener, &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}), nil
}
