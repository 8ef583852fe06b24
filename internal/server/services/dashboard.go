package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/xurshid686/student-track/internal/logging"
	"github.com/xurshid686/student-track/internal/server/cache"
	"github.com/xurshid686/student-track/internal/server/models"
	"github.com/xurshid686/student-track/internal/server/repositories/repomanager"
)

const (
	dashboardCacheKey = "dashboard"
	recentActivityMax = 5
)

// DashboardService computes the teacher dashboard: aggregate stats over
// students/tasks/resources plus the recent-activity list. An optional
// cache keeps the computed payload for a short TTL; pass nil to disable.
type DashboardService struct {
	db       *sql.DB
	repos    repomanager.RepositoryManager
	cache    cache.Cache
	cacheTTL time.Duration
	logger   logging.Logger
}

func NewDashboardService(db *sql.DB, repos repomanager.RepositoryManager, c cache.Cache, ttl time.Duration, logger logging.Logger) *DashboardService {
	return &DashboardService{
		db:       db,
		repos:    repos,
		cache:    c,
		cacheTTL: ttl,
		logger:   logger.With("module", "dashboard_service"),
	}
}

func (s *DashboardService) GetDashboard(ctx context.Context) (*models.Dashboard, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, dashboardCacheKey); err == nil {
			d := &models.Dashboard{}
			if err := json.Unmarshal(raw, d); err == nil {
				return d, nil
			}
			s.logger.Warn(ctx, "discarding unreadable cached dashboard")
		}
	}

	studentList, err := s.repos.Students(s.db).List(ctx)
	if err != nil {
		return nil, err
	}
	taskList, err := s.repos.Tasks(s.db).List(ctx)
	if err != nil {
		return nil, err
	}
	resourceCount, err := s.repos.Resources(s.db).Count(ctx)
	if err != nil {
		return nil, err
	}

	d := &models.Dashboard{
		Stats:          computeStats(studentList, taskList, resourceCount),
		RecentActivity: recentActivity(studentList, taskList),
	}

	if s.cache != nil {
		if raw, err := json.Marshal(d); err == nil {
			if err := s.cache.Set(ctx, dashboardCacheKey, raw, s.cacheTTL); err != nil {
				s.logger.Warn(ctx, "dashboard cache write failed", "error", err)
			}
		}
	}

	return d, nil
}

func (s *DashboardService) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return s.repos.Students(s.db).List(ctx)
}

func (s *DashboardService) ListTasks(ctx context.Context) ([]*models.Task, error) {
	return s.repos.Tasks(s.db).List(ctx)
}

func computeStats(studentList []*models.Student, taskList []*models.Task, resourceCount int) models.DashboardStats {
	stats := models.DashboardStats{
		TotalStudents:  len(studentList),
		TotalResources: resourceCount,
	}

	for _, t := range taskList {
		if t.Status == models.TaskStatusActive {
			stats.ActiveTasks++
		}
	}

	if len(studentList) > 0 {
		sum := 0
		for _, st := range studentList {
			sum += st.Progress
		}
		stats.AverageProgress = int(math.Round(float64(sum) / float64(len(studentList))))
	}

	return stats
}

// recentActivity maps the newest tasks to display rows, resolving assignee
// studentIds to names.
func recentActivity(studentList []*models.Student, taskList []*models.Task) []models.ActivityItem {
	nameByID := make(map[string]string, len(studentList))
	for _, st := range studentList {
		nameByID[st.StudentID] = st.Name
	}

	n := len(taskList)
	if n > recentActivityMax {
		n = recentActivityMax
	}

	items := make([]models.ActivityItem, 0, n)
	for _, t := range taskList[:n] {
		var names []string
		for _, id := range t.AssignedTo {
			if name, ok := nameByID[id]; ok {
				names = append(names, name)
			}
		}

		studentName := "No students assigned"
		if len(names) > 0 {
			studentName = strings.Join(names, ", ")
		}

		items = append(items, models.ActivityItem{
			StudentName: studentName,
			TaskName:    t.Title,
			Status:      t.Status,
			DueDate:     t.DueDate,
		})
	}

	return items
}
