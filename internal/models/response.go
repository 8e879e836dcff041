package models

import "time"

// Response is one persisted answer row. A submitted survey is stored as one
// Response per answered question; every row of a survey shares SurveyID,
// CreatedAt and the free-text fields.
type Response struct {
	// ID is the surrogate key assigned by the store.
	ID                int64
	SurveyID          string
	QuestionID        int
	QuestionText      string
	Value             int
	Suggestion        string
	RespondentName    string
	RespondentContact string
	SurveyDate        string
	CreatedAt         time.Time
	// RecordedAt is the store's own write timestamp.
	RecordedAt time.Time
}
