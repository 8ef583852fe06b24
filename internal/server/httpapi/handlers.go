package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xurshid686/student-track/internal/common"
	"github.com/xurshid686/student-track/internal/server/auth"
	"github.com/xurshid686/student-track/internal/server/services"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Profile  string `json:"profile"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := s.users.Login(r.Context(), req.Username, req.Password, req.Profile)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	auth.SetTokenCookie(w, token, s.tokenTTL, s.secureCookies)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Login successful",
		"user":    user,
	})
}

type registerRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	Profile   string `json:"profile"`
	Grade     string `json:"grade"`
	StudentID string `json:"studentId"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.users.Register(r.Context(), services.RegisterParams{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Profile,
		Name:      req.Name,
		Grade:     req.Grade,
		StudentID: req.StudentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			writeError(w, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, common.ErrorUsernameTaken):
			writeError(w, http.StatusConflict, "Username already exists")
		case errors.Is(err, common.ErrorEmailTaken):
			writeError(w, http.StatusConflict, "Email already registered")
		default:
			s.logger.Error(r.Context(), "registration failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Registration successful! You can now login.",
		"user":    user,
	})
}

// handleLogout clears the cookie no matter what. The audit record is
// best effort and never blocks the response.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if claims, err := s.authenticate(r); err == nil {
		if err := s.users.Logout(r.Context(), claims.UserID); err != nil {
			s.logger.Warn(r.Context(), "logout record failed", "error", err)
		}
	}

	auth.ClearTokenCookie(w, s.secureCookies)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"user": claims})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := s.dashboard.GetDashboard(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "dashboard query failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleStudents(w http.ResponseWriter, r *http.Request) {
	students, err := s.dashboard.ListStudents(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "student query failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"students": students})
}

func (s *Server) handleTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.dashboard.ListTasks(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "task query failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tasks": tasks})
}
