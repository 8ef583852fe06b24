package auth

import (
	"net/http"
	"time"

	"github.com/xurshid686/student-track/internal/common"
)

// SetTokenCookie binds a session token to the response. The cookie is
// HttpOnly (invisible to page scripts), SameSite=Strict, rooted at /, and
// Secure when the server runs in production.
func SetTokenCookie(w http.ResponseWriter, token string, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    token,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(ttl.Seconds()),
		Path:     "/",
	})
}

// ClearTokenCookie overwrites the session cookie with an empty value and
// an already-expired max age, forcing immediate client-side removal. The
// attributes mirror SetTokenCookie so browsers match the same cookie.
func ClearTokenCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
		Path:     "/",
	})
}
