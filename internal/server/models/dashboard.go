package models

import "time"

// DashboardStats are the aggregate numbers on the teacher dashboard.
type DashboardStats struct {
	TotalStudents   int `json:"totalStudents"`
	ActiveTasks     int `json:"activeTasks"`
	TotalResources  int `json:"totalResources"`
	AverageProgress int `json:"averageProgress"`
}

// ActivityItem is one row of the recent-activity list: a task together
// with the names of the students it is assigned to.
type ActivityItem struct {
	StudentName string     `json:"studentName"`
	TaskName    string     `json:"taskName"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
}

// Dashboard is the full payload of GET /api/dashboard.
type Dashboard struct {
	Stats          DashboardStats `json:"stats"`
	RecentActivity []ActivityItem `json:"recentActivity"`
}
