package model

import (
	"time"
)

// DateFields holds the standard audit columns shared by entities
type DateFields struct {
	CreatedAt time.Time  `json:"createdAt,omitempty"`
	UpdatedAt time.Time  `json:"updatedAt,omitempty"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

type UserProfile struct {
	ID         string    `json:"id,omitempty"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Avatar     string    `json:"avatar,omitempty"`
	Role       string    `json:"role"` // student, alumni
	Company    string    `json:"company,omitempty"`
	BatchYear  int       `json:"batchYear,omitempty"`
	IsVerified bool      `json:"isVerified"`
	JoinDate   time.Time `json:"joinDate,omitempty"`
	DateFields
}

// UserSummary is the light projection embedded in other payloads
type UserSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}
