// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/spherelab/autgroup"
	"github.com/katalvlaran/spherelab/internal/config"
)

// Server serves the session API.
type Server struct {
	cfg    *config.Config
	reg    *Registry
	cache  *analysisCache
	runner autgroup.Runner
	log    zerolog.Logger
	router *chi.Mux
}

// New builds a server. A nil runner spawns the collaborator configured in
// cfg.AutGroup.
func New(cfg *config.Config, runner autgroup.Runner, logger zerolog.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cache, err := newAnalysisCache(cfg.Server.CacheSize)
	if err != nil {
		return nil, err
	}
	if runner == nil {
		runner = autgroup.NewExecRunner(cfg.AutGroup.Command, cfg.AutGroup.Args...)
	}

	s := &Server{
		cfg:    cfg,
		reg:    NewRegistry(),
		cache:  cache,
		runner: runner,
		log:    logger,
		router: chi.NewRouter(),
	}
	s.routes()

	return s, nil
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Handle("/metrics", promhttp.Handler())

	s.router.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Delete("/", s.handleDelete)
			r.Post("/step", s.handleStep)
			r.Post("/randomize", s.handleRandomize)
			r.Post("/reset-step", s.handleResetStep)
			r.Delete("/history", s.handleClearHistory)
			r.Put("/potential", s.handleSetPotential)
			r.Put("/eta", s.handleSetEta)
			r.Put("/n", s.handleSetN)
			r.Put("/points", s.handleSetPoints)
			r.Get("/structure", s.handleStructure)
			r.Get("/design", s.handleDesign)
			r.Post("/autgroup", s.handleAutGroup)
		})
	})
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Registry returns the session registry.
func (s *Server) Registry() *Registry { return s.reg }

// ListenAndServe serves on cfg.Server.Addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", srv.Addr).Msg("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.log.Info().Msg("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// requestLogger writes one zerolog line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			s.log.Info().
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Msg("request")
		}()
		next.ServeHTTP(ww, r)
	})
}
