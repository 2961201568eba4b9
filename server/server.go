// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package server exposes query resolution over HTTP.
//
// The surface is deliberately small: one search endpoint, one overview
// endpoint, and a health probe. Responses use the same JSON shapes the core
// package defines; errors come back as {"error": ...} objects.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/poiesic/confsearch/core"
	"github.com/poiesic/confsearch/query"
)

// Searcher is the slice of the facade the HTTP surface needs.
type Searcher interface {
	Search(ctx context.Context, query string) (*core.QueryResponse, error)
	Overview(ctx context.Context) (core.Overview, error)
}

// Server serves query resolution over HTTP.
type Server struct {
	echo   *echo.Echo
	svc    Searcher
	logger *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// New creates a Server around the given Searcher.
func New(svc Searcher, opts ...Option) *Server {
	s := &Server{
		svc:    svc,
		logger: slog.Default().With("component", "http"),
	}
	for _, opt := range opts {
		opt(s)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Content-Type"},
	}))

	// Unified HTTP error handler with structured JSON and logging
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		s.logger.Error("request failed",
			"status", code,
			"method", req.Method,
			"path", req.URL.Path,
			"err", err)
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]string{"error": msg})
		}
	}

	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	api := e.Group("/api")
	api.POST("/search", s.handleSearch)
	api.GET("/overview", s.handleOverview)

	s.echo = e
	return s
}

type searchRequest struct {
	Query string `json:"query"`
}

func (s *Server) handleSearch(c echo.Context) error {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Query) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query must not be empty")
	}

	response, err := s.svc.Search(c.Request().Context(), req.Query)
	if err != nil {
		if errors.Is(err, query.ErrCorpusUnavailable) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "no conference program loaded")
		}
		return err
	}

	return c.JSON(http.StatusOK, response)
}

func (s *Server) handleOverview(c echo.Context) error {
	overview, err := s.svc.Overview(c.Request().Context())
	if err != nil {
		if errors.Is(err, query.ErrCorpusUnavailable) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "no conference program loaded")
		}
		return err
	}

	return c.JSON(http.StatusOK, overview)
}

// Handler returns the underlying HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start begins serving on addr and blocks until shutdown.
func (s *Server) Start(addr string) error {
	s.logger.Info("http server listening", "addr", addr)
	return s.echo.Start(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
