package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/gridboard/pkg/workspace"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = "127.0.0.1:8080"

const (
	shutdownWait = 5 * time.Second
	maxBodyBytes = 1 << 20
)

// Server serves the board API.
type Server struct {
	ws     *workspace.Workspace
	logger *log.Logger
	router chi.Router
}

// New builds the router for ws. A nil logger uses log.Default().
func New(ws *workspace.Workspace, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{ws: ws, logger: logger}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)

	r.Route("/boards", func(r chi.Router) {
		r.Get("/", s.handleListBoards)
		r.Post("/", s.handleCreateBoard)

		r.Route("/{board}", func(r chi.Router) {
			r.Get("/", s.handleGetBoard)
			r.Delete("/", s.handleDeleteBoard)
			r.Get("/svg", s.handleBoardSVG)
			r.Post("/palletes", s.handleAddPallete)
			r.Post("/boxes", s.handleAddBox)

			r.Route("/boxes/{box}", func(r chi.Router) {
				r.Delete("/", s.handleRemoveBox)
				r.Post("/validate", s.handleValidate)
				r.Post("/resize", s.handleResize)
				r.Post("/move", s.handleMove)
				r.Post("/transfer", s.handleTransfer)
				r.Post("/place", s.handlePlace)
				r.Post("/link", s.handleLink)
			})
		})
	})
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"id", middleware.GetReqID(r.Context()))
	})
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownWait)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
