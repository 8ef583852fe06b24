package httpapi

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/xurshid686/student-track/internal/server/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type pageData struct {
	Name string
	Role string
}

func (s *Server) handlePage(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var data pageData
		if claims, ok := ClaimsFromContext(r.Context()); ok {
			data.Name = claims.Name
			data.Role = claims.Role
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pageTemplates.ExecuteTemplate(w, name+".html", data); err != nil {
			s.logger.Error(r.Context(), "template render failed", "page", name, "error", err)
		}
	}
}

// handleIndex sends an authenticated visitor to their dashboard and
// everyone else to the login page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	claims, err := s.authenticate(r)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if claims.Role == models.RoleTeacher {
		http.Redirect(w, r, "/teacher/dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/student/dashboard", http.StatusSeeOther)
}
