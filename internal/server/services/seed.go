package services

import (
	"context"
	"database/sql"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/xurshid686/student-track/internal/dbx"
	"github.com/xurshid686/student-track/internal/logging"
	"github.com/xurshid686/student-track/internal/server/models"
	"github.com/xurshid686/student-track/internal/server/repositories/repomanager"
)

// EnsureSeedData populates an empty database with the sample accounts and
// records used for local development and demos: the teacher/teacher123 and
// student/student123 logins, three students, and two assigned tasks. A
// non-empty users table means the data is already there (or real) and the
// function does nothing.
func EnsureSeedData(ctx context.Context, db *sql.DB, repos repomanager.RepositoryManager, logger logging.Logger) error {
	count, err := repos.Users(db).Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	logger.Info(ctx, "empty database, inserting sample data")

	teacherHash, err := bcrypt.GenerateFromPassword([]byte("teacher123"), bcryptCost)
	if err != nil {
		return err
	}
	studentHash, err := bcrypt.GenerateFromPassword([]byte("student123"), bcryptCost)
	if err != nil {
		return err
	}

	date := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		usersRepo := repos.Users(tx)

		if _, err := usersRepo.Create(ctx, &models.User{
			Username:     "teacher",
			Email:        "teacher@school.edu",
			PasswordHash: string(teacherHash),
			Role:         models.RoleTeacher,
			Name:         "John Doe",
		}); err != nil {
			return err
		}

		if _, err := usersRepo.Create(ctx, &models.User{
			Username:     "student",
			Email:        "student@school.edu",
			PasswordHash: string(studentHash),
			Role:         models.RoleStudent,
			Name:         "Emma Johnson",
			StudentID:    "S001",
			Grade:        "10th Grade",
		}); err != nil {
			return err
		}

		studentsRepo := repos.Students(tx)
		sampleStudents := []*models.Student{
			{
				Name: "Emma Johnson", Email: "emma.johnson@school.edu",
				StudentID: "S001", Grade: "10th Grade", Progress: 92,
				Status: models.StudentStatusActive, LastActivity: date(2023, time.November, 15),
				ParentEmail: "parent.johnson@email.com",
			},
			{
				Name: "Michael Brown", Email: "michael.brown@school.edu",
				StudentID: "S002", Grade: "9th Grade", Progress: 78,
				Status: models.StudentStatusActive, LastActivity: date(2023, time.November, 14),
				ParentEmail: "parent.brown@email.com",
			},
			{
				Name: "Sophia Williams", Email: "sophia.williams@school.edu",
				StudentID: "S003", Grade: "10th Grade", Progress: 85,
				Status: models.StudentStatusActive, LastActivity: date(2023, time.November, 13),
				ParentEmail: "parent.williams@email.com",
			},
		}
		for _, st := range sampleStudents {
			if _, err := studentsRepo.Create(ctx, st); err != nil {
				return err
			}
		}

		tasksRepo := repos.Tasks(tx)
		sampleTasks := []*models.Task{
			{
				Title: "Algebra Homework", Subject: "Mathematics",
				Description: "Complete exercises 1-10 from chapter 5",
				DueDate:     date(2023, time.November, 20),
				Status:      models.TaskStatusActive, CreatedBy: "teacher",
				AssignedTo: []string{"S001", "S002", "S003"},
			},
			{
				Title: "Science Experiment Report", Subject: "Science",
				Description: "Write a report on the chemistry lab experiment",
				DueDate:     date(2023, time.November, 25),
				Status:      models.TaskStatusActive, CreatedBy: "teacher",
				AssignedTo: []string{"S001", "S003"},
			},
		}
		for _, task := range sampleTasks {
			if _, err := tasksRepo.Create(ctx, task); err != nil {
				return err
			}
		}

		return nil
	})
}
