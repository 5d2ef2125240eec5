// Package server exposes the removal pipeline as an HTTP API.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"github.com/chaos-io/rembg"
)

// Config holds the server settings.
type Config struct {
	// Addr is the listen address, e.g. ":8188".
	Addr string
	// OutputDir, when set, persists every produced image there under a
	// generated name.
	OutputDir string
	// ResultTTL is how long persisted results are kept before the
	// cleanup job removes them. Zero disables cleanup.
	ResultTTL time.Duration
}

// Server wires the remover into a gin router with a periodic cleanup
// job for persisted results.
type Server struct {
	remover *rembg.Rembg
	cfg     Config
	router  *gin.Engine
	cron    *cron.Cron
	log     *slog.Logger
}

// New builds the server around a ready remover.
func New(remover *rembg.Rembg, cfg Config) *Server {
	s := &Server{
		remover: remover,
		cfg:     cfg,
		log:     slog.Default(),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/healthz", s.handleHealth)
	router.POST("/api/remove", s.handleRemove)
	s.router = router

	return s
}

// Handler returns the underlying HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the cleanup job and blocks serving requests.
func (s *Server) Run() error {
	if s.cfg.OutputDir != "" && s.cfg.ResultTTL > 0 {
		s.startCleanup()
		defer s.cron.Stop()
	}

	s.log.Info("serving", "addr", s.cfg.Addr, "model", s.remover.Model().Name)
	return s.router.Run(s.cfg.Addr)
}
