package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Config configures a Server. Zero-valued fields take defaults from
// DefaultConfig.
type Config struct {
	// Address is the listen address.
	Address string

	// Container is the DOM id of the mount container in the shell
	// page.
	Container string

	// Title is the shell page title.
	Title string

	// ReadBufferSize and WriteBufferSize size the WebSocket buffers.
	ReadBufferSize  int
	WriteBufferSize int

	// CheckOrigin validates the WebSocket handshake origin. The
	// default accepts all origins; production deployments should
	// restrict it.
	CheckOrigin func(r *http.Request) bool

	// ReadHeaderTimeout bounds HTTP header reads.
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// Logger is the server's structured logger.
	Logger *slog.Logger

	// MetricsRegistry receives the server's prometheus metrics.
	MetricsRegistry prometheus.Registerer

	// TracerName names the otel tracer used for dispatch spans.
	TracerName string
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() *Config {
	return &Config{
		Address:           ":8080",
		Container:         "app",
		Title:             "Alder",
		ReadBufferSize:    4096,
		WriteBufferSize:   4096,
		CheckOrigin:       func(*http.Request) bool { return true },
		ReadHeaderTimeout: 10 * time.Second,
		ShutdownTimeout:   15 * time.Second,
		MetricsRegistry:   prometheus.DefaultRegisterer,
		TracerName:        "alder",
	}
}

// withDefaults fills unset fields from DefaultConfig.
func (c *Config) withDefaults() *Config {
	if c == nil {
		return DefaultConfig()
	}
	d := DefaultConfig()
	if c.Address == "" {
		c.Address = d.Address
	}
	if c.Container == "" {
		c.Container = d.Container
	}
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.ReadBufferSize == 0 {
		c.ReadBufferSize = d.ReadBufferSize
	}
	if c.WriteBufferSize == 0 {
		c.WriteBufferSize = d.WriteBufferSize
	}
	if c.CheckOrigin == nil {
		c.CheckOrigin = d.CheckOrigin
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = d.ReadHeaderTimeout
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	if c.MetricsRegistry == nil {
		c.MetricsRegistry = d.MetricsRegistry
	}
	if c.TracerName == "" {
		c.TracerName = d.TracerName
	}
	return c
}
