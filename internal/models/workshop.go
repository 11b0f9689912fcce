package model

import "time"

// Workshop is a mock interview or group session hosted by an alumni
type Workshop struct {
	ID          string       `json:"id"`
	HostID      string       `json:"hostId"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	ScheduledAt *time.Time   `json:"scheduledAt,omitempty"`
	Host        *UserSummary `json:"host,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// AlumniRating is one student rating of an alumni (1-5 stars)
type AlumniRating struct {
	ID        int       `json:"id"`
	StudentID string    `json:"studentId"`
	AlumniID  string    `json:"alumniId"`
	Value     int       `json:"value"`
	Feedback  string    `json:"feedback,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
