package models

import "time"

// Student is the progress-tracking record a teacher sees on the dashboard.
// It is separate from the User account: a student account references its
// record through the shared StudentID.
type Student struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	StudentID    string     `json:"studentId"`
	Grade        string     `json:"grade"`
	Progress     int        `json:"progress"`
	Status       string     `json:"status"`
	LastActivity *time.Time `json:"lastActivity"`
	ParentEmail  string     `json:"parentEmail,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// StudentStatusActive marks students counted as active on the dashboard.
const StudentStatusActive = "active"
