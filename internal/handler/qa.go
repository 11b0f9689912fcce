package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/database"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/leaderboard"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/middleware"
	model "github.com/sujalsolanki125/ConnectEDu-backend/internal/models"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/scanner"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/utils"
)

const (
	questionColumns = `id, author_id, title, body, created_at`
	answerColumns   = `id, question_id, author_id, body, created_at`
)

type CreateQuestionPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func CreateQuestion(w http.ResponseWriter, r *http.Request) {
	author, err := middleware.RequireAuth(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required", err)
		return
	}

	var req CreateQuestionPayload
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	if req.Title == "" || req.Body == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "title and body are required")
		return
	}

	row := database.DB.QueryRow(r.Context(),
		`INSERT INTO questions(author_id, title, body, created_at)
		 VALUES($1, $2, $3, NOW())
		 RETURNING `+questionColumns,
		author.ID, req.Title, req.Body,
	)
	created, err := scanner.ScanQuestion(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create question", err)
		return
	}

	utils.Created(w, created)
}

func GetQuestions(w http.ResponseWriter, r *http.Request) {
	rows, err := database.DB.Query(r.Context(),
		`SELECT `+questionColumns+` FROM questions ORDER BY created_at DESC`,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query questions", err)
		return
	}
	defer rows.Close()

	questions := []*model.Question{}
	for rows.Next() {
		q, err := scanner.ScanQuestion(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan question row", err)
			return
		}
		questions = append(questions, q)
	}

	utils.Success(w, questions)
}

// GetQuestion returns one question with all of its answers.
func GetQuestion(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	ctx := r.Context()

	row := database.DB.QueryRow(ctx,
		`SELECT `+questionColumns+` FROM questions WHERE id=$1`,
		id,
	)
	question, err := scanner.ScanQuestion(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			utils.ErrorSimple(w, http.StatusNotFound, "question not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not get question", err)
		return
	}

	rows, err := database.DB.Query(ctx,
		`SELECT `+answerColumns+` FROM answers WHERE question_id=$1 ORDER BY created_at`,
		id,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query answers", err)
		return
	}
	defer rows.Close()

	for rows.Next() {
		answer, err := scanner.ScanAnswer(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan answer row", err)
			return
		}
		question.Answers = append(question.Answers, *answer)
	}

	utils.Success(w, question)
}

type CreateAnswerPayload struct {
	Body string `json:"body"`
}

// CreateAnswer posts an answer and credits alumni authors.
func CreateAnswer(w http.ResponseWriter, r *http.Request) {
	questionID := mux.Vars(r)["id"]

	author, err := middleware.RequireAuth(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required", err)
		return
	}

	var req CreateAnswerPayload
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	if req.Body == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "body is required")
		return
	}

	row := database.DB.QueryRow(r.Context(),
		`INSERT INTO answers(question_id, author_id, body, created_at)
		 VALUES($1, $2, $3, NOW())
		 RETURNING `+answerColumns,
		questionID, author.ID, req.Body,
	)
	created, err := scanner.ScanAnswer(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create answer", err)
		return
	}

	if author.Role == "alumni" {
		board.TrackQuietly(author.ID, leaderboard.AnswerQuestion)
	}

	utils.Created(w, created)
}
