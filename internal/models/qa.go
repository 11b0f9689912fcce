package model

import "time"

type Question struct {
	ID        string       `json:"id"`
	AuthorID  string       `json:"authorId"`
	Title     string       `json:"title"`
	Body      string       `json:"body"`
	Author    *UserSummary `json:"author,omitempty"`
	Answers   []Answer     `json:"answers,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

type Answer struct {
	ID         string       `json:"id"`
	QuestionID string       `json:"questionId"`
	AuthorID   string       `json:"authorId"`
	Body       string       `json:"body"`
	Author     *UserSummary `json:"author,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
}
