package survey

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyBatch is returned when a submission carries no answers.
	ErrEmptyBatch = errors.New("empty batch")
	// ErrInvalidAnswer is matched by every *InvalidAnswerError.
	ErrInvalidAnswer = errors.New("invalid answer")
	// ErrStorageUnavailable wraps any failure of the Response Store.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrTextTooLong is returned when a free-text field exceeds MaxTextLength.
	ErrTextTooLong = errors.New("text too long")
	// ErrUnknownFormat is returned for an unsupported export format.
	ErrUnknownFormat = errors.New("unknown export format")
)

// InvalidAnswerError identifies the first answer that failed validation.
type InvalidAnswerError struct {
	QuestionID int
	Value      int
}

func (e *InvalidAnswerError) Error() string {
	return fmt.Sprintf("invalid answer (question_id=%d, value=%d)", e.QuestionID, e.Value)
}

// Is makes errors.Is(err, ErrInvalidAnswer) true.
func (e *InvalidAnswerError) Is(target error) bool {
	return target == ErrInvalidAnswer
}
