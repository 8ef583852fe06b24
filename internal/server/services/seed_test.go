package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/xurshid686/student-track/internal/server/models"
)

func TestEnsureSeedData_SkipsNonEmptyDatabase(t *testing.T) {
	db, mock := newSQLMockDB(t)
	rm := newFakeRepoManager()
	rm.u.countOut = 2

	err := EnsureSeedData(context.Background(), db, rm, testLogger())
	require.NoError(t, err)
	require.Empty(t, rm.u.created)
	require.Empty(t, rm.st.created)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSeedData_PopulatesEmptyDatabase(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := newFakeRepoManager()

	err := EnsureSeedData(context.Background(), db, rm, testLogger())
	require.NoError(t, err)

	require.Len(t, rm.u.created, 2)
	require.Len(t, rm.st.created, 3)
	require.Len(t, rm.ta.created, 2)

	teacher := rm.u.created[0]
	require.Equal(t, "teacher", teacher.Username)
	require.Equal(t, models.RoleTeacher, teacher.Role)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(teacher.PasswordHash), []byte("teacher123")))

	student := rm.u.created[1]
	require.Equal(t, models.RoleStudent, student.Role)
	require.Equal(t, "S001", student.StudentID)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte("student123")))

	require.Equal(t, []string{"S001", "S002", "S003"}, rm.ta.created[0].AssignedTo)

	require.NoError(t, mock.ExpectationsWereMet())
}
