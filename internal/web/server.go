package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/market-lens/market-lens/internal/service/alert"
	"github.com/market-lens/market-lens/internal/service/market"
)

// Server exposes the market lookup and alert endpoints over HTTP/JSON.
type Server struct {
	marketSvc market.Service
	alertSvc  alert.Service
	staticDir string
}

type Option func(s *Server)

// WithStaticDir serves the front-end files from dir at the root path.
func WithStaticDir(dir string) Option {
	return func(s *Server) {
		s.staticDir = dir
	}
}

func NewServer(marketSvc market.Service, alertSvc alert.Service, opts ...Option) *Server {
	srv := &Server{
		marketSvc: marketSvc,
		alertSvc:  alertSvc,
	}
	for _, opt := range opts {
		opt(srv)
	}
	return srv
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/stock/{symbol}", s.handleGetStock)
	mux.HandleFunc("GET /api/company/{symbol}", s.handleGetCompany)
	mux.HandleFunc("GET /api/alerts", s.handleListAlerts)
	mux.HandleFunc("POST /api/alerts", s.handleCreateAlert)
	mux.HandleFunc("DELETE /api/alerts/{id}", s.handleDeleteAlert)
	mux.HandleFunc("GET /api/alerts/check", s.handleCheckAlerts)
	if s.staticDir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(s.staticDir)))
	}
	return withCORS(recoverPanic(mux))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
