// Package server exposes the habit service over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/julianstephens/wellfit/internal/constants"
	"github.com/julianstephens/wellfit/internal/logger"
	"github.com/julianstephens/wellfit/internal/service"
)

type Options struct {
	Addr            string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

type Server struct {
	opts    Options
	router  *Router
	handler http.Handler
}

func New(svc *service.HabitService, opts Options) *Server {
	if opts.Addr == "" {
		opts.Addr = constants.DefaultServerAddr
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = constants.ShutdownTimeout
	}

	muxRouter := mux.NewRouter()
	router := NewRouter(NewAuthHandler(svc), NewHabitHandler(svc), NewMiddleware(svc), muxRouter)
	router.RegisterRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	return &Server{
		opts:    opts,
		router:  router,
		handler: c.Handler(muxRouter),
	}
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", s.opts.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
