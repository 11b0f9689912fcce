package model

import "time"

// InterviewExperience is an alumni write-up of an interview round
type InterviewExperience struct {
	ID         string       `json:"id"`
	AuthorID   string       `json:"authorId"`
	Company    string       `json:"company"`
	Role       string       `json:"role"`
	Difficulty string       `json:"difficulty,omitempty"` // easy, medium, hard
	Content    string       `json:"content"`
	Author     *UserSummary `json:"author,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
}

// Resource is a shared placement resource, optionally with an uploaded file
type Resource struct {
	ID          string       `json:"id"`
	AuthorID    string       `json:"authorId"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	FileURL     string       `json:"fileUrl,omitempty"`
	Author      *UserSummary `json:"author,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// CompanyInsight is an alumni post about working at a company
type CompanyInsight struct {
	ID        string       `json:"id"`
	AuthorID  string       `json:"authorId"`
	Company   string       `json:"company"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Author    *UserSummary `json:"author,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}
