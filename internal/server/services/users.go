// Package services contains the application flows that coordinate
// repositories, token issuance, and aggregation.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/xurshid686/student-track/internal/common"
	"github.com/xurshid686/student-track/internal/dbx"
	"github.com/xurshid686/student-track/internal/logging"
	"github.com/xurshid686/student-track/internal/server/auth"
	"github.com/xurshid686/student-track/internal/server/models"
	"github.com/xurshid686/student-track/internal/server/repositories/repomanager"
)

// bcryptCost is deliberately above the library default; password hashing
// is the one operation that is supposed to be slow.
const bcryptCost = 12

type UserService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	tokens *auth.TokenManager
	logger logging.Logger
}

func NewUserService(db *sql.DB, repos repomanager.RepositoryManager, tokens *auth.TokenManager, logger logging.Logger) *UserService {
	return &UserService{
		db:     db,
		repos:  repos,
		tokens: tokens,
		logger: logger.With("module", "user_service"),
	}
}

// Login authenticates the identifier/password/role triple and returns the
// sanitized user record plus a freshly issued session token. Every
// credential failure (unknown identifier, wrong password, role mismatch)
// collapses into common.ErrorInvalidCredentials so the
// response cannot be used to enumerate accounts.
func (s *UserService) Login(ctx context.Context, login, password, role string) (*models.User, string, error) {
	user, err := s.repos.Users(s.db).GetByLoginAndRole(ctx, login, role)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorInvalidCredentials
		}
		s.logger.Error(ctx, "user lookup failed", "error", err)
		return nil, "", common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", common.ErrorInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error(ctx, "token issuance failed", "error", err)
		return nil, "", common.ErrorInternal
	}

	if err := s.repos.AuthEvents(s.db).Record(ctx, user.ID, models.EventLogin); err != nil {
		s.logger.Warn(ctx, "login audit write failed", "error", err)
	}

	return user.Sanitized(), token, nil
}

// RegisterParams are the fields accepted by the registration endpoint.
type RegisterParams struct {
	Username  string
	Email     string
	Password  string
	Role      string
	Name      string
	Grade     string
	StudentID string
}

func (p *RegisterParams) validate() error {
	if p.Username == "" || p.Email == "" || p.Password == "" || p.Name == "" {
		return common.ErrorValidation
	}
	if p.Role != models.RoleTeacher && p.Role != models.RoleStudent {
		return common.ErrorValidation
	}
	return nil
}

// Register creates a user account; a student registration also creates the
// matching progress record in the same transaction. Duplicate usernames
// and emails come back as distinct conflict errors; unlike login failures,
// this disclosure is intentional.
func (s *UserService) Register(ctx context.Context, p RegisterParams) (*models.User, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	existing, err := s.repos.Users(s.db).GetByUsernameOrEmail(ctx, p.Username, p.Email)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		s.logger.Error(ctx, "conflict lookup failed", "error", err)
		return nil, common.ErrorInternal
	}
	if existing != nil {
		if existing.Username == p.Username {
			return nil, common.ErrorUsernameTaken
		}
		return nil, common.ErrorEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcryptCost)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return nil, common.ErrorInternal
	}

	user := &models.User{
		Username:     p.Username,
		Email:        p.Email,
		PasswordHash: string(hash),
		Role:         p.Role,
		Name:         p.Name,
	}

	if p.Role == models.RoleStudent {
		user.Grade = p.Grade
		user.StudentID = p.StudentID
		if user.StudentID == "" {
			user.StudentID = generateStudentID()
		}
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repos.Users(tx).Create(ctx, user); err != nil {
			return err
		}

		if user.Role != models.RoleStudent {
			return nil
		}

		record := &models.Student{
			Name:      user.Name,
			Email:     user.Email,
			StudentID: user.StudentID,
			Grade:     user.Grade,
		}
		_, err := s.repos.Students(tx).Create(ctx, record)
		return err
	})
	if err != nil {
		if conflict := conflictFromUniqueViolation(err); conflict != nil {
			return nil, conflict
		}
		s.logger.Error(ctx, "registration write failed", "error", err)
		return nil, common.ErrorInternal
	}

	return user.Sanitized(), nil
}

// conflictFromUniqueViolation maps a unique-constraint violation raised
// by a concurrent duplicate registration to the same conflict sentinel
// the pre-insert lookup would have produced. The lookup and the insert
// are not atomic, so a race can reach the constraint. Returns nil for
// anything else.
func conflictFromUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "email"):
		return common.ErrorEmailTaken
	case strings.Contains(pgErr.ConstraintName, "username"):
		return common.ErrorUsernameTaken
	}
	return nil
}

// Logout records the logout for auditing. Callers clear the session cookie
// regardless of the outcome; a failure here must never keep a client
// logged in.
func (s *UserService) Logout(ctx context.Context, userID string) error {
	if err := s.repos.AuthEvents(s.db).Record(ctx, userID, models.EventLogout); err != nil {
		s.logger.Warn(ctx, "logout audit write failed", "error", err)
		return err
	}
	return nil
}

// generateStudentID derives a short identifier like the registration form
// pre-fills: "S" plus the trailing digits of the current time.
func generateStudentID() string {
	return fmt.Sprintf("S%04d", time.Now().UnixMilli()%10000)
}
