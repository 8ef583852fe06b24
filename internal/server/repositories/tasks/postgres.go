package tasks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/xurshid686/student-track/internal/dbx"
	"github.com/xurshid686/student-track/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.Status == "" {
		task.Status = models.TaskStatusActive
	}

	query :=
		`INSERT INTO tasks (id, title, subject, description, due_date, status, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		task.ID, task.Title, task.Subject, task.Description,
		task.DueDate, task.Status, task.CreatedBy).
		Scan(&task.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	for _, studentID := range task.AssignedTo {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO task_assignments (task_id, student_id) VALUES ($1, $2)`,
			task.ID, studentID)
		if err != nil {
			return nil, fmt.Errorf("error assigning task: %w", err)
		}
	}

	return task, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Task, error) {
	query :=
		`SELECT id, title, subject, description, due_date, status, created_by, created_at
		 FROM tasks
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var result []*models.Task
	byID := make(map[string]*models.Task)
	for rows.Next() {
		t := &models.Task{AssignedTo: []string{}}
		err := rows.Scan(&t.ID, &t.Title, &t.Subject, &t.Description,
			&t.DueDate, &t.Status, &t.CreatedBy, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		result = append(result, t)
		byID[t.ID] = t
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	if len(result) == 0 {
		return result, nil
	}

	assignments, err := r.db.QueryContext(ctx,
		`SELECT task_id, student_id FROM task_assignments ORDER BY student_id`)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer assignments.Close()

	for assignments.Next() {
		var taskID, studentID string
		if err := assignments.Scan(&taskID, &studentID); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		if t, ok := byID[taskID]; ok {
			t.AssignedTo = append(t.AssignedTo, studentID)
		}
	}
	if err := assignments.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}
