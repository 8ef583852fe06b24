package httpapi

import (
	"context"
	"net/http"

	"github.com/xurshid686/student-track/internal/common"
	"github.com/xurshid686/student-track/internal/server/auth"
)

type ctxKey string

const claimsKey ctxKey = "session_claims"

// ClaimsFromContext returns the verified session claims placed by the
// auth middleware, if any.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*auth.Claims)
	return c, ok
}

// authenticate resolves the session cookie into verified claims. When
// the cookie is absent the verifier is not consulted at all.
func (s *Server) authenticate(r *http.Request) (*auth.Claims, error) {
	c, err := r.Cookie(common.SessionCookieName)
	if err != nil || c.Value == "" {
		return nil, common.ErrorUnauthorized
	}

	claims, err := s.verifier.Verify(c.Value)
	if err != nil {
		s.logger.Debug(r.Context(), "session token rejected", "reason", err)
		return nil, common.ErrorUnauthorized
	}

	return claims, nil
}

// requireAuth gates API routes. Failures get a uniform 401 regardless
// of why the token was rejected.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := s.authenticate(r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	})
}

// requireRole must run after requireAuth.
func (s *Server) requireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok || claims.Role != role {
				writeError(w, http.StatusForbidden, "Access denied")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requirePageAuth gates HTML pages: instead of a JSON error the
// browser is sent to the login page.
func (s *Server) requirePageAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := s.authenticate(r)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	})
}

func (s *Server) requirePageRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok || claims.Role != role {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
