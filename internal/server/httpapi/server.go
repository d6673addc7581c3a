// Package httpapi serves the stub directory over a JSON HTTP API shaped
// like the public reqres directory.
package httpapi

import (
	"context"
	"crypto/subtle"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/userdesk/internal/common"
	"github.com/dmitrijs2005/userdesk/internal/logging"
	"github.com/dmitrijs2005/userdesk/internal/server/directory"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 5 * time.Second

type ctxKey string

const editorKey ctxKey = "editor"

// editorFrom returns the email of the token holder behind a write request.
func editorFrom(ctx context.Context) string {
	email, _ := ctx.Value(editorKey).(string)
	return email
}

type Server struct {
	address string
	router  *chi.Mux
	dir     *directory.Directory
	apiKey  string
	logger  logging.Logger
}

func New(address string, dir *directory.Directory, apiKey string, l logging.Logger) *Server {
	s := &Server{
		address: address,
		router:  chi.NewRouter(),
		dir:     dir,
		apiKey:  apiKey,
		logger:  l.With("module", "http_server"),
	}

	r := s.router
	r.Use(middleware.RequestID)
	r.Use(s.accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.apiKeyMiddleware)

		r.Get("/users", s.listUsers)
		r.Get("/users/{id}", s.getUser)
		r.Post("/login", s.login)

		r.Group(func(r chi.Router) {
			r.Use(s.tokenMiddleware)

			r.Put("/users/{id}", s.updateUser)
			r.Patch("/users/{id}", s.updateUser)
			r.Delete("/users/{id}", s.deleteUser)
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// accessLogger logs one line per request.
func (s *Server) accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			s.logger.Info(r.Context(), "access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
				"client_request_id", r.Header.Get(common.RequestIDHeaderName),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

// apiKeyMiddleware rejects requests without the configured x-api-key. With
// no key configured every request passes.
func (s *Server) apiKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.apiKey != "" {
			got := r.Header.Get(common.APIKeyHeaderName)
			if got == "" {
				writeError(w, http.StatusUnauthorized, "missing API key")
				return
			}
			if subtle.ConstantTimeCompare([]byte(got), []byte(s.apiKey)) != 1 {
				writeError(w, http.StatusForbidden, "invalid API key")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// tokenMiddleware admits only requests carrying a valid bearer token from
// /login and records who sent them.
func (s *Server) tokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthorizationHeaderName)
		token, ok := strings.CutPrefix(header, common.BearerPrefix)
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, "missing token")
			return
		}

		email, err := s.dir.Authenticate(r.Context(), token)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, common.ErrTokenExpired) {
				msg = "token expired"
			}
			writeError(w, http.StatusUnauthorized, msg)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), editorKey, email)))
	})
}
