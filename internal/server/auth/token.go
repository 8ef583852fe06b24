// Package auth implements the session-trust boundary: issuing and
// verifying signed session tokens and moving them through HTTP cookies.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/xurshid686/student-track/internal/common"
	"github.com/xurshid686/student-track/internal/server/models"
)

// Claims is the identity data embedded in a session token at login. It is
// never re-fetched from the store on later requests: a role or name change
// takes effect at the next login. StudentID is present only for student
// accounts.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	Role      string `json:"profile"`
	Name      string `json:"name"`
	StudentID string `json:"studentId,omitempty"`
}

// TokenManager issues and verifies HS256-signed session tokens. The clock
// is injectable so expiry boundaries are testable; production code uses
// time.Now.
type TokenManager struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

func NewTokenManager(secret []byte, validity time.Duration) *TokenManager {
	return &TokenManager{
		secret:   secret,
		validity: validity,
		now:      time.Now,
	}
}

// Issue creates a signed token for an already-authenticated user. Pure
// computation, no side effects.
func (m *TokenManager) Issue(user *models.User) (string, error) {
	now := m.now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.validity)),
		},
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		Name:     user.Name,
	}
	if user.Role == models.RoleStudent {
		claims.StudentID = user.StudentID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify checks signature and expiry and returns the embedded claims.
// Failures come back as sentinel errors (malformed, expired, bad
// signature) so callers can log the cause, but the HTTP layer exposes all
// of them uniformly as "not authenticated". Verify never panics.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, common.ErrTokenSignature
		default:
			return nil, common.ErrTokenMalformed
		}
	}

	if !token.Valid {
		return nil, common.ErrTokenMalformed
	}

	return claims, nil
}
