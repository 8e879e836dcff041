package survey

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/PratikDhanave/satisfaction-survey-service/internal/models"
)

// Likert scale bounds.
const (
	MinValue = 1
	MaxValue = 5
)

// MaxTextLength bounds every free-text field, in characters. It matches the
// xlsx cell limit so the spreadsheet export never truncates.
const MaxTextLength = 32767

// Answer is one (question, value) pair of a batch.
type Answer struct {
	QuestionID int
	Value      int
}

// Batch is one submitted survey.
type Batch struct {
	Answers           []Answer
	Suggestion        string
	RespondentName    string
	RespondentContact string
	SurveyDate        string
}

// Receipt reports what Submit stored.
type Receipt struct {
	SurveyID    string
	RowsWritten int
	CreatedAt   time.Time
}

// Submit validates a batch and stores one row per answer under a fresh
// survey id. Nothing is written unless every answer is valid.
func (s *Service) Submit(ctx context.Context, b Batch) (Receipt, error) {
	if len(b.Answers) == 0 {
		return Receipt{}, ErrEmptyBatch
	}

	texts := make([]string, len(b.Answers))
	for i, a := range b.Answers {
		text, ok := s.catalog.Lookup(a.QuestionID)
		if !ok || a.Value < MinValue || a.Value > MaxValue {
			return Receipt{}, &InvalidAnswerError{QuestionID: a.QuestionID, Value: a.Value}
		}
		texts[i] = text
	}

	suggestion := strings.TrimSpace(b.Suggestion)
	name := strings.TrimSpace(b.RespondentName)
	contact := strings.TrimSpace(b.RespondentContact)
	date := strings.TrimSpace(b.SurveyDate)

	for _, f := range []struct{ name, value string }{
		{"sugerencia", suggestion},
		{"nombre", name},
		{"contacto", contact},
		{"fecha", date},
	} {
		if utf8.RuneCountInString(f.value) > MaxTextLength {
			return Receipt{}, fmt.Errorf("%w: %s", ErrTextTooLong, f.name)
		}
	}

	surveyID, createdAt := s.ids.next()

	rows := make([]models.Response, len(b.Answers))
	for i, a := range b.Answers {
		rows[i] = models.Response{
			SurveyID:          surveyID,
			QuestionID:        a.QuestionID,
			QuestionText:      texts[i],
			Value:             a.Value,
			Suggestion:        suggestion,
			RespondentName:    name,
			RespondentContact: contact,
			SurveyDate:        date,
			CreatedAt:         createdAt,
		}
	}

	if err := s.store.InsertResponses(ctx, rows); err != nil {
		s.logger.ErrorContext(ctx, "survey insert failed",
			slog.String("survey_id", surveyID),
			slog.Any("error", err),
		)
		return Receipt{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	s.logger.InfoContext(ctx, "survey stored",
		slog.String("survey_id", surveyID),
		slog.Int("rows", len(rows)),
		slog.Bool("has_suggestion", suggestion != ""),
	)

	return Receipt{SurveyID: surveyID, RowsWritten: len(rows), CreatedAt: createdAt}, nil
}

// idGenerator issues survey ids from the UTC clock at microsecond
// resolution (YYYYMMDDhhmmssffffff). Ids are strictly increasing within the
// process: a clock that has not moved past the last id is bumped by 1µs.
type idGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last time.Time
}

func newIDGenerator(now func() time.Time) *idGenerator {
	return &idGenerator{now: now}
}

func (g *idGenerator) next() (string, time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()

	t := g.now().UTC().Truncate(time.Microsecond)
	if !t.After(g.last) {
		t = g.last.Add(time.Microsecond)
	}
	g.last = t

	return formatSurveyID(t), t
}

func formatSurveyID(t time.Time) string {
	return fmt.Sprintf("%s%06d", t.Format("20060102150405"), t.Nanosecond()/int(time.Microsecond))
}
