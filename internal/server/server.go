package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Server wraps the HTTP server lifecycle
type Server struct {
	http   *http.Server
	logger zerolog.Logger
}

// New creates a new server instance around the configured router
func New(router *gin.Engine, addr string, logger zerolog.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:    addr,
			Handler: router,
		},
		logger: logger.With().Str("component", "server").Logger(),
	}
}

// Start blocks serving requests until the server is shut down
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.http.Addr).Msg("server listening")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("shutting down server")
	return s.http.Shutdown(ctx)
}
