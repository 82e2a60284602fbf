package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/alder-ui/alder/pkg/dom"
	"github.com/alder-ui/alder/pkg/runtime"
	"github.com/alder-ui/alder/pkg/server/client"
)

// MountFunc mounts an application into a fresh session. It is called
// once per connection with the session's registry and document.
type MountFunc func(reg *runtime.Registry, doc dom.Document) error

// Server serves the shell page, the thin client, and live sessions.
type Server struct {
	cfg      *Config
	mount    MountFunc
	logger   *slog.Logger
	metrics  *metrics
	tracer   trace.Tracer
	upgrader websocket.Upgrader
	router   chi.Router
	http     *http.Server
}

var shellTemplate = template.Must(template.New("shell").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<div id="{{.Container}}"></div>
<script src="/client.js"></script>
</body>
</html>
`))

// New builds a Server around a mount function. A nil cfg uses
// DefaultConfig.
func New(cfg *Config, mount MountFunc) (*Server, error) {
	if mount == nil {
		return nil, errors.New("server: nil mount function")
	}
	cfg = cfg.withDefaults()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "server")

	s := &Server{
		cfg:     cfg,
		mount:   mount,
		logger:  logger,
		metrics: newMetrics(cfg.MetricsRegistry),
		tracer:  otel.Tracer(cfg.TracerName),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin:     cfg.CheckOrigin,
		},
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", s.handleIndex)
	r.Get("/client.js", s.handleClientJS)
	r.Get("/live", s.handleLive)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metricsHandler())
	s.router = r

	s.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           r,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens and serves until Shutdown or a listener error.
func (s *Server) Start() error {
	s.logger.Info("listening", "address", s.cfg.Address)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server. Live WebSocket sessions
// end when their connections close.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(ctx)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct {
		Title     string
		Container string
	}{s.cfg.Title, s.cfg.Container}
	if err := shellTemplate.Execute(w, data); err != nil {
		s.logger.Warn("shell render failed", "error", err)
	}
}

func (s *Server) handleClientJS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Write(client.JS)
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "error", err)
		return
	}
	// The request context dies when this handler returns; the session
	// outlives it.
	sess := s.newSession(conn)
	go sess.run(context.Background())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

func (s *Server) metricsHandler() http.Handler {
	if g, ok := s.cfg.MetricsRegistry.(prometheus.Gatherer); ok {
		return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	}
	return promhttp.Handler()
}
