package students

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

func (r *PostgresRepository) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	if student.Status == "" {
		student.Status = models.StudentStatusActive
	}
	if student.Grade == "" {
		student.Grade = "Not specified"
	}

	query :=
		`INSERT INTO students (id, name, email, student_id, grade, progress, status, last_activity, parent_email)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		student.ID, student.Name, student.Email, student.StudentID,
		student.Grade, student.Progress, student.Status,
		student.LastActivity, student.ParentEmail).
		Scan(&student.CreatedAt, &student.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return student, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Student, error) {
	query :=
		`SELECT id, name, email, student_id, grade, progress, status,
		        last_activity, COALESCE(parent_email, ''), created_at, updated_at
		 FROM students
		 ORDER BY student_id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var result []*models.Student
	for rows.Next() {
		s := &models.Student{}
		err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.StudentID, &s.Grade,
			&s.Progress, &s.Status, &s.LastActivity, &s.ParentEmail,
			&s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}
