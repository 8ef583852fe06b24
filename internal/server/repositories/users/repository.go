package users

import (
	"context"

	"github.com/xurshid686/student-track/internal/server/models"
)

// Repository is the user-account store. Login lookups filter by the
// claimed role so a correct password with the wrong role resolves to
// "not found" and surfaces as the same generic credential failure.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByLoginAndRole(ctx context.Context, login, role string) (*models.User, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)
	Count(ctx context.Context) (int, error)
}
