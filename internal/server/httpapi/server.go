// Package httpapi exposes the HTTP surface of the server: the JSON API,
// the minimal HTML pages, and the authentication gate every protected
// route passes through.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/xurshid686/student-track/internal/logging"
	"github.com/xurshid686/student-track/internal/server/auth"
	"github.com/xurshid686/student-track/internal/server/models"
	"github.com/xurshid686/student-track/internal/server/services"
)

// UserFlows is the slice of the user service the HTTP layer depends on.
type UserFlows interface {
	Login(ctx context.Context, login, password, role string) (*models.User, string, error)
	Register(ctx context.Context, p services.RegisterParams) (*models.User, error)
	Logout(ctx context.Context, userID string) error
}

// DashboardFlows is the slice of the dashboard service the HTTP layer
// depends on.
type DashboardFlows interface {
	GetDashboard(ctx context.Context) (*models.Dashboard, error)
	ListStudents(ctx context.Context) ([]*models.Student, error)
	ListTasks(ctx context.Context) ([]*models.Task, error)
}

// TokenVerifier is the part of the token manager the gate needs.
// *auth.TokenManager satisfies it.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type Server struct {
	address       string
	logger        logging.Logger
	users         UserFlows
	dashboard     DashboardFlows
	verifier      TokenVerifier
	tokenTTL      time.Duration
	secureCookies bool
}

func NewServer(address string, l logging.Logger, users UserFlows, dashboard DashboardFlows, verifier TokenVerifier, tokenTTL time.Duration, secureCookies bool) *Server {
	return &Server{
		address:       address,
		logger:        l.With("module", "http_server"),
		users:         users,
		dashboard:     dashboard,
		verifier:      verifier,
		tokenTTL:      tokenTTL,
		secureCookies: secureCookies,
	}
}

// Routes builds the full route tree. chi answers 405 by itself when a
// known path is hit with the wrong method.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(s.requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/logout", s.handleLogout)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/auth/me", s.handleMe)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth, s.requireRole(models.RoleTeacher))
			r.Get("/dashboard", s.handleDashboard)
			r.Get("/students", s.handleStudents)
			r.Get("/tasks", s.handleTasks)
		})
	})

	r.Get("/", s.handleIndex)
	r.Get("/login", s.handlePage("login"))
	r.Get("/register", s.handlePage("register"))

	r.Group(func(r chi.Router) {
		r.Use(s.requirePageAuth)
		r.Get("/student/dashboard", s.handlePage("dashboard"))
	})
	r.Group(func(r chi.Router) {
		r.Use(s.requirePageAuth, s.requirePageRole(models.RoleTeacher))
		r.Get("/teacher/dashboard", s.handlePage("dashboard"))
	})

	return r
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).String(),
		)
	})
}
