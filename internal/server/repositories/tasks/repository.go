package tasks

import (
	"context"

	"github.com/xurshid686/student-track/internal/server/models"
)

// Repository is the task store. List returns newest-first with the
// AssignedTo studentId slice populated.
type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	List(ctx context.Context) ([]*models.Task, error)
}
