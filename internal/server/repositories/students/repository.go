package students

import (
	"context"

	"github.com/xurshid686/student-track/internal/server/models"
)

// Repository is the student progress-record store.
type Repository interface {
	Create(ctx context.Context, student *models.Student) (*models.Student, error)
	List(ctx context.Context) ([]*models.Student, error)
}
