package scanner

import (
	"database/sql"

	model "github.com/sujalsolanki125/ConnectEDu-backend/internal/models"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/utils"
)

// rowScanner is the subset shared by pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// ScanUserProfile maps one users row onto a UserProfile, converting the
// nullable columns as it goes.
func ScanUserProfile(row rowScanner) (*model.UserProfile, error) {
	var user model.UserProfile
	var avatar, company sql.NullString
	var batchYear sql.NullInt64

	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &avatar,
		&user.Role, &company, &batchYear, &user.IsVerified,
		&user.JoinDate, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Avatar = utils.NullStringToString(avatar)
	user.Company = utils.NullStringToString(company)
	user.BatchYear = utils.NullInt64ToInt(batchYear)

	return &user, nil
}

// ScanMentorshipRequest maps one mentorship_requests row.
func ScanMentorshipRequest(row rowScanner) (*model.MentorshipRequest, error) {
	var req model.MentorshipRequest
	var message sql.NullString

	err := row.Scan(
		&req.ID, &req.StudentID, &req.AlumniID, &req.Topic,
		&message, &req.Status, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	req.Message = utils.NullStringToString(message)
	return &req, nil
}

// ScanInterviewExperience maps one interview_experiences row.
func ScanInterviewExperience(row rowScanner) (*model.InterviewExperience, error) {
	var exp model.InterviewExperience
	var difficulty sql.NullString

	err := row.Scan(
		&exp.ID, &exp.AuthorID, &exp.Company, &exp.Role,
		&difficulty, &exp.Content, &exp.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	exp.Difficulty = utils.NullStringToString(difficulty)
	return &exp, nil
}

// ScanResource maps one resources row.
func ScanResource(row rowScanner) (*model.Resource, error) {
	var res model.Resource
	var description, fileURL sql.NullString

	err := row.Scan(
		&res.ID, &res.AuthorID, &res.Title,
		&description, &fileURL, &res.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.Description = utils.NullStringToString(description)
	res.FileURL = utils.NullStringToString(fileURL)
	return &res, nil
}

// ScanCompanyInsight maps one company_insights row.
func ScanCompanyInsight(row rowScanner) (*model.CompanyInsight, error) {
	var insight model.CompanyInsight
	err := row.Scan(
		&insight.ID, &insight.AuthorID, &insight.Company,
		&insight.Title, &insight.Content, &insight.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &insight, nil
}

// ScanQuestion maps one questions row.
func ScanQuestion(row rowScanner) (*model.Question, error) {
	var q model.Question
	err := row.Scan(&q.ID, &q.AuthorID, &q.Title, &q.Body, &q.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// ScanAnswer maps one answers row.
func ScanAnswer(row rowScanner) (*model.Answer, error) {
	var a model.Answer
	err := row.Scan(&a.ID, &a.QuestionID, &a.AuthorID, &a.Body, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ScanWorkshop maps one workshops row.
func ScanWorkshop(row rowScanner) (*model.Workshop, error) {
	var ws model.Workshop
	var description sql.NullString
	var scheduledAt sql.NullTime

	err := row.Scan(
		&ws.ID, &ws.HostID, &ws.Title,
		&description, &scheduledAt, &ws.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	ws.Description = utils.NullStringToString(description)
	ws.ScheduledAt = utils.NullTimeToPointer(scheduledAt)
	return &ws, nil
}
