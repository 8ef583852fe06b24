package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xurshid686/student-track/internal/common"
	"github.com/xurshid686/student-track/internal/server/models"
	"github.com/xurshid686/student-track/internal/server/services"
)

type fakeUserFlows struct {
	loginUser    *models.User
	loginToken   string
	loginErr     error
	registerUser *models.User
	registerErr  error
	logoutErr    error

	logoutCalls []string
	registered  []services.RegisterParams
}

func (f *fakeUserFlows) Login(ctx context.Context, login, password, role string) (*models.User, string, error) {
	if f.loginErr != nil {
		return nil, "", f.loginErr
	}
	return f.loginUser, f.loginToken, nil
}

func (f *fakeUserFlows) Register(ctx context.Context, p services.RegisterParams) (*models.User, error) {
	f.registered = append(f.registered, p)
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return f.registerUser, nil
}

func (f *fakeUserFlows) Logout(ctx context.Context, userID string) error {
	f.logoutCalls = append(f.logoutCalls, userID)
	return f.logoutErr
}

type fakeDashboardFlows struct {
	dashboard *models.Dashboard
	students  []*models.Student
	tasks     []*models.Task
	err       error
}

func (f *fakeDashboardFlows) GetDashboard(ctx context.Context) (*models.Dashboard, error) {
	return f.dashboard, f.err
}

func (f *fakeDashboardFlows) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return f.students, f.err
}

func (f *fakeDashboardFlows) ListTasks(ctx context.Context) ([]*models.Task, error) {
	return f.tasks, f.err
}

func sessionCookie(t *testing.T, res *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range res.Cookies() {
		if c.Name == common.SessionCookieName {
			return c
		}
	}
	return nil
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestLogin_SetsCookieAndReturnsUser(t *testing.T) {
	users := &fakeUserFlows{
		loginUser:  &models.User{ID: "u1", Username: "teacher", Role: models.RoleTeacher, Name: "John Doe"},
		loginToken: "signed-token",
	}
	h := newTestServer(users, &fakeDashboardFlows{}, &countingVerifier{})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, postJSON("/api/auth/login", `{"username":"teacher","password":"teacher123","profile":"teacher"}`))

	require.Equal(t, http.StatusOK, w.Code)

	c := sessionCookie(t, w.Result())
	require.NotNil(t, c)
	require.Equal(t, "signed-token", c.Value)
	require.True(t, c.HttpOnly)

	var body struct {
		Success bool         `json:"success"`
		Message string       `json:"message"`
		User    *models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.Equal(t, "Login successful", body.Message)
	require.Equal(t, "teacher", body.User.Username)
	require.NotContains(t, w.Body.String(), "password")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	users := &fakeUserFlows{loginErr: common.ErrorInvalidCredentials}
	h := newTestServer(users, &fakeDashboardFlows{}, &countingVerifier{})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, postJSON("/api/auth/login", `{"username":"teacher","password":"wrong","profile":"teacher"}`))

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())
	require.Nil(t, sessionCookie(t, w.Result()))
}

func TestLogin_InternalError(t *testing.T) {
	users := &fakeUserFlows{loginErr: common.ErrorInternal}
	h := newTestServer(users, &fakeDashboardFlows{}, &countingVerifier{})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, postJSON("/api/auth/login", `{"username":"teacher","password":"teacher123","profile":"teacher"}`))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestLogin_BadBody(t *testing.T) {
	h := newTestServer(&fakeUserFlows{}, &fakeDashboardFlows{}, &countingVerifier{})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, postJSON("/api/auth/login", `{not json`))

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_WrongMethod(t *testing.T) {
	h := newTestServer(&fakeUserFlows{}, &fakeDashboardFlows{}, &countingVerifier{})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/login", nil))

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRegister_Conflicts(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"username taken", common.ErrorUsernameTaken, http.StatusConflict, "Username already exists"},
		{"email taken", common.ErrorEmailTaken, http.StatusConflict, "Email already registered"},
		{"missing fields", common.ErrorValidation, http.StatusBadRequest, "Missing required fields"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &fakeUserFlows{registerErr: tt.err}
			h := newTestServer(users, &fakeDashboardFlows{}, &countingVerifier{})

			w := httptest.NewRecorder()
			h.ServeHTTP(w, postJSON("/api/auth/register", `{"username":"emma","email":"emma@school.edu","password":"pw","name":"Emma","profile":"student"}`))

			require.Equal(t, tt.status, w.Code)
			require.Contains(t, w.Body.String(), tt.message)
		})
	}
}

func TestRegister_Success(t *testing.T) {
	users := &fakeUserFlows{
		registerUser: &models.User{ID: "u9", Username: "emma", Role: models.RoleStudent, Name: "Emma"},
	}
	h := newTestServer(users, &fakeDashboardFlows{}, &countingVerifier{})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, postJSON("/api/auth/register", `{"username":"emma","email":"emma@school.edu","password":"pw","name":"Emma","profile":"student","grade":"10th Grade"}`))

	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), "Registration successful")

	require.Len(t, users.registered, 1)
	require.Equal(t, models.RoleStudent, users.registered[0].Role)
	require.Equal(t, "10th Grade", users.registered[0].Grade)
}

func TestLogout_ClearsCookieEvenWhenRecordFails(t *testing.T) {
	users := &fakeUserFlows{logoutErr: errors.New("audit store down")}
	verifier := &countingVerifier{claims: teacherClaims()}
	h := newTestServer(users, &fakeDashboardFlows{}, verifier)

	w := httptest.NewRecorder()
	req := withSessionCookie(httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil), "ok")
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []string{"u1"}, users.logoutCalls)

	c := sessionCookie(t, w.Result())
	require.NotNil(t, c)
	require.Empty(t, c.Value)
	require.Negative(t, c.MaxAge)
}

func TestLogout_WithoutSession(t *testing.T) {
	users := &fakeUserFlows{}
	h := newTestServer(users, &fakeDashboardFlows{}, &countingVerifier{err: common.ErrTokenMalformed})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, users.logoutCalls)
	require.NotNil(t, sessionCookie(t, w.Result()))
}

func TestDashboard_ReturnsPayload(t *testing.T) {
	dash := &fakeDashboardFlows{
		dashboard: &models.Dashboard{
			Stats: models.DashboardStats{TotalStudents: 3, ActiveTasks: 2, TotalResources: 1, AverageProgress: 85},
			RecentActivity: []models.ActivityItem{
				{StudentName: "Emma Johnson", TaskName: "Algebra Homework", Status: models.TaskStatusActive},
			},
		},
	}
	h := newTestServer(&fakeUserFlows{}, dash, &countingVerifier{claims: teacherClaims()})

	w := httptest.NewRecorder()
	req := withSessionCookie(httptest.NewRequest(http.MethodGet, "/api/dashboard", nil), "ok")
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"totalStudents":3`)
	require.Contains(t, w.Body.String(), `"averageProgress":85`)
	require.Contains(t, w.Body.String(), "Algebra Homework")
}

func TestDashboard_StoreError(t *testing.T) {
	dash := &fakeDashboardFlows{err: common.ErrorInternal}
	h := newTestServer(&fakeUserFlows{}, dash, &countingVerifier{claims: teacherClaims()})

	w := httptest.NewRecorder()
	req := withSessionCookie(httptest.NewRequest(http.MethodGet, "/api/dashboard", nil), "ok")
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestStudents_ReturnsList(t *testing.T) {
	dash := &fakeDashboardFlows{
		students: []*models.Student{
			{ID: "st1", Name: "Emma Johnson", StudentID: "S001", Progress: 92},
		},
	}
	h := newTestServer(&fakeUserFlows{}, dash, &countingVerifier{claims: teacherClaims()})

	w := httptest.NewRecorder()
	req := withSessionCookie(httptest.NewRequest(http.MethodGet, "/api/students", nil), "ok")
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "S001")
}

func TestTasks_ReturnsList(t *testing.T) {
	dash := &fakeDashboardFlows{
		tasks: []*models.Task{
			{ID: "t1", Title: "Algebra Homework", Status: models.TaskStatusActive, AssignedTo: []string{"S001"}},
		},
	}
	h := newTestServer(&fakeUserFlows{}, dash, &countingVerifier{claims: teacherClaims()})

	w := httptest.NewRecorder()
	req := withSessionCookie(httptest.NewRequest(http.MethodGet, "/api/tasks", nil), "ok")
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Algebra Homework")
}
