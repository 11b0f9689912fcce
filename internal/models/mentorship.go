package model

import "time"

// Mentorship request lifecycle states
const (
	RequestPending   = "pending"
	RequestAccepted  = "accepted"
	RequestRejected  = "rejected"
	RequestCompleted = "completed"
	RequestExpired   = "expired"
)

type MentorshipRequest struct {
	ID        string       `json:"id"`
	StudentID string       `json:"studentId"`
	AlumniID  string       `json:"alumniId"`
	Topic     string       `json:"topic"`
	Message   string       `json:"message,omitempty"`
	Status    string       `json:"status"`
	Student   *UserSummary `json:"student,omitempty"`
	Alumni    *UserSummary `json:"alumni,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
