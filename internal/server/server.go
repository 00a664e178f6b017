// Package server exposes the note generator over HTTP: an HTML form, a JSON
// API and the catalog schema. Nothing submitted is stored.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-notegen"
	"github.com/goliatone/go-notegen/internal/server/middleware"
	"github.com/goliatone/go-notegen/pkg/catalog"
	"github.com/goliatone/go-notegen/pkg/form"
	"github.com/goliatone/go-notegen/pkg/render"
	"github.com/goliatone/go-notegen/pkg/renderers/vanilla"
	theme "github.com/goliatone/go-theme"
)

// APIVersion is reported in the generated OpenAPI document.
const APIVersion = "1.0.0"

const assetsPrefix = "/assets"

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and lifecycle logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithPageRenderer replaces the HTML page renderer.
func WithPageRenderer(renderer render.Renderer) Option {
	return func(s *Server) {
		if renderer != nil {
			s.pages = renderer
		}
	}
}

// WithTheme styles the default HTML page renderer. Ignored when
// WithPageRenderer supplies a renderer.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(s *Server) {
		s.theme = cfg
	}
}

// WithSanitizer cleans submitted values before validation. Values are
// stored untouched by default.
func WithSanitizer(fn form.Sanitizer) Option {
	return func(s *Server) {
		s.sanitize = fn
	}
}

// WithTitle sets the page and API title.
func WithTitle(title string) Option {
	return func(s *Server) {
		if title != "" {
			s.title = title
		}
	}
}

// Server routes requests to the generator. It holds no per-request state.
type Server struct {
	echo    *echo.Echo
	gen     *notegen.Generator
	pages   render.Renderer
	checker *catalog.PayloadChecker
	logger  zerolog.Logger
	title   string
	theme    *theme.RendererConfig
	sanitize form.Sanitizer
}

// New builds the echo instance and registers every route.
func New(gen *notegen.Generator, options ...Option) (*Server, error) {
	if gen == nil {
		return nil, errors.New("server: generator is required")
	}

	s := &Server{
		gen:     gen,
		checker: catalog.NewPayloadChecker(gen.Fields()),
		logger:  zerolog.Nop(),
		title:   vanilla.DefaultTitle,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	if s.pages == nil {
		pages, err := vanilla.New(
			vanilla.WithStylesheet(assetsPrefix+"/"+vanilla.StylesheetName),
			vanilla.WithTheme(s.theme),
		)
		if err != nil {
			return nil, fmt.Errorf("server: %w", err)
		}
		s.pages = pages
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(s.logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(s.logger))
	e.Use(middleware.SecurityHeaders())

	s.echo = e
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.echo.GET("/", s.handleForm)
	s.echo.POST("/", s.handleSubmit)

	api := s.echo.Group("/api")
	api.POST("/notes", s.handleNotes)
	api.GET("/fields", s.handleFields)
	api.GET("/openapi.json", s.handleOpenAPI)

	s.echo.GET("/healthz", s.handleHealth)
	s.echo.StaticFS(assetsPrefix, vanilla.AssetsFS())
}

// Handler exposes the router for tests and custom listeners.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
// within timeout.
func (s *Server) Run(ctx context.Context, addr string, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("starting server")
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	s.logger.Info().Msg("server stopped")
	return nil
}
