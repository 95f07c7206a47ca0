// Package server exposes the catalog and the chat relay over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kraitsura/storefront/pkg/api"
)

// maxChatBody caps the size of a chat request.
const maxChatBody = 1 << 20

// Reply used when the relay fails for any reason other than configuration.
const relayUnavailable = "The assistant is unavailable right now. Please try again later."

// Server serves the storefront API.
type Server struct {
	catalog   *Catalog
	generator Generator
	logger    *zap.Logger
	router    chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithGenerator sets the chat backend. Without one, chat requests fail with 500.
func WithGenerator(g Generator) Option {
	return func(s *Server) { s.generator = g }
}

// New builds a server over catalog.
func New(catalog *Catalog, opts ...Option) *Server {
	s := &Server{catalog: catalog, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", s.handleListProducts)
			r.Get("/{id}", s.handleGetProduct)
		})
		r.Post("/chat", s.handleChat)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		return nil
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// GET /api/products
func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.List())
}

// GET /api/products/{id}
func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, ok := s.catalog.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "product not found: "+id)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// POST /api/chat
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req api.ChatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxChatBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}
	if s.generator == nil {
		writeError(w, http.StatusInternalServerError, "API key not configured.")
		return
	}

	text, err := s.generator.Generate(r.Context(), req.Message, req.History)
	if err != nil {
		s.logger.Warn("chat relay failed", zap.Error(err))
		if errors.Is(err, ErrNoAPIKey) {
			writeError(w, http.StatusInternalServerError, "API key not configured.")
			return
		}
		writeError(w, http.StatusInternalServerError, relayUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, api.ChatResponse{Text: text})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, api.ChatResponse{Error: msg})
}
