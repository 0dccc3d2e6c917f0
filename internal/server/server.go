// file: internal/server/server.go
// version: 1.2.0
// guid: eeda9955-65b1-4137-9c35-ee305cc7e200

package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/medboxlabs/medbox-reader/internal/recognizer"
	"github.com/medboxlabs/medbox-reader/internal/server/middleware"
)

// Config holds the HTTP server settings.
type Config struct {
	Host              string
	Port              string
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	RequestsPerMinute int
	Burst             int
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() Config {
	return Config{
		Host:              "localhost",
		Port:              "8080",
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		RequestsPerMinute: 120,
		Burst:             20,
	}
}

// Server exposes the recognition pipeline over HTTP.
type Server struct {
	rec    *recognizer.Recognizer
	engine *gin.Engine
}

// New creates a Server around a constructed recognizer.
func New(rec *recognizer.Recognizer, cfg Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{rec: rec}
	engine := gin.New()
	engine.Use(gin.Recovery())

	limiter := middleware.NewRateLimiter(cfg.RequestsPerMinute, cfg.Burst)

	api := engine.Group("/api/v1", limiter.Middleware())
	api.POST("/recognize", s.handleRecognize)
	api.GET("/vocabulary", s.handleVocabulary)

	engine.GET("/healthz", s.handleHealth)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.engine = engine
	return s
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start(cfg Config) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:      s.engine,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[INFO] server: listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case sig := <-quit:
		log.Printf("[INFO] server: received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

// Handler exposes the underlying gin engine (for tests).
func (s *Server) Handler() http.Handler { return s.engine }
