package models

import "time"

// Task is an assignment created by a teacher. AssignedTo holds the
// studentId values of its assignees, loaded from the task_assignments
// join table.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Subject     string     `json:"subject"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Status      string     `json:"status"`
	CreatedBy   string     `json:"createdBy"`
	AssignedTo  []string   `json:"assignedTo"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// TaskStatusActive marks tasks counted as active on the dashboard.
const TaskStatusActive = "active"

// Resource is a teaching material reference. Only the count currently
// surfaces on the dashboard.
type Resource struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subject   string    `json:"subject"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}
