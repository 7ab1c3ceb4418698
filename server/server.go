// Package server exposes the voice pipeline over HTTP: a websocket
// endpoint speaking the event wire protocol, a health check, and optional
// static assets for the browser client.
package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pipeline "github.com/counterline/voice-core/core"
)

// SessionFactory creates the pipeline session for one websocket
// connection, with fresh vendor connections.
type SessionFactory func(ctx context.Context) (*pipeline.Session, error)

type Server struct {
	echo       *echo.Echo
	newSession SessionFactory
}

func New(cfg Config, newSession SessionFactory) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	s := &Server{echo: e, newSession: newSession}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/ws", s.handleWebsocket)
	if cfg.AssetRoot != "" {
		e.Static("/", cfg.AssetRoot)
	}

	return s
}

// Handler exposes the routing tree, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on the address and serves until Shutdown or failure.
func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
