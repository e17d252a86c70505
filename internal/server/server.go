// Package server exposes networks over HTTP for inspection.
//
// Clients create a network, push examples through it one pass at a time and
// read back every node and link. Passes on the same network are serialized;
// different networks run independently.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Config holds server configuration.
type Config struct {
	Addr   string // Listen address (default ":8080")
	Mode   string // gin mode: gin.ReleaseMode, gin.DebugMode or gin.TestMode (default release)
	Logger bool   // Log every request through gin's logger

	ShutdownTimeout time.Duration // Grace period on shutdown (default 5s)

	// Limits on networks created over HTTP.
	MaxNodes int // Total nodes per network (default 10000)
	MaxLinks int // Total links per network (default 1000000)
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		Mode:            gin.ReleaseMode,
		Logger:          true,
		ShutdownTimeout: 5 * time.Second,
		MaxNodes:        10_000,
		MaxLinks:        1_000_000,
	}
}

// Server routes HTTP requests to a Registry of networks.
type Server struct {
	config   Config
	router   *gin.Engine
	registry *Registry
}

// New creates a server with an empty registry. Zero fields of config take
// their defaults.
func New(config Config) *Server {
	def := DefaultConfig()
	if config.Addr == "" {
		config.Addr = def.Addr
	}
	if config.Mode == "" {
		config.Mode = def.Mode
	}
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = def.ShutdownTimeout
	}
	if config.MaxNodes <= 0 {
		config.MaxNodes = def.MaxNodes
	}
	if config.MaxLinks <= 0 {
		config.MaxLinks = def.MaxLinks
	}
	gin.SetMode(config.Mode)

	router := gin.New()
	if config.Logger {
		router.Use(gin.Logger())
	}
	router.Use(gin.Recovery())

	s := &Server{
		config:   config,
		router:   router,
		registry: NewRegistry(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	networks := s.router.Group("/networks")
	networks.POST("", s.createNetwork)
	networks.GET("/:id", s.getNetwork)
	networks.DELETE("/:id", s.deleteNetwork)
	networks.POST("/:id/forward", s.forward)
	networks.POST("/:id/backward", s.backward)
	networks.POST("/:id/step", s.step)
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "networks": s.registry.Len()})
	})
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Registry returns the networks served by s.
func (s *Server) Registry() *Registry {
	return s.registry
}

// Run listens on the configured address until ctx is done, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
