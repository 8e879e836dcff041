package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PratikDhanave/satisfaction-survey-service/internal/models"
	"github.com/PratikDhanave/satisfaction-survey-service/internal/survey"
)

// BasePath is the resource every survey endpoint hangs off.
const BasePath = "/encuesta-satisfaccion"

// Routes is the route table handlers register into.
type Routes interface {
	GET(path string, h gin.HandlerFunc)
	POST(path string, h gin.HandlerFunc)
}

// Client-facing error messages.
const (
	msgEmptyBatch    = "Respuestas vacías"
	msgInvalidAnswer = "Entrada inválida (pregunta_id=%d, valor=%d)"
	msgBadFormat     = "Formato de exportación no soportado"
	msgTextTooLong   = "Texto demasiado largo"
)

// AbortWithError writes the JSON error envelope and stops the chain.
func AbortWithError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		OK:    false,
		Error: msg,
		Path:  c.Request.URL.Path,
	})
}

// writeServiceError maps survey errors to HTTP statuses. Validation failures
// are 400; anything else is 500 with the underlying message.
func writeServiceError(c *gin.Context, err error) {
	var invalid *survey.InvalidAnswerError
	switch {
	case errors.Is(err, survey.ErrEmptyBatch):
		AbortWithError(c, http.StatusBadRequest, msgEmptyBatch)
	case errors.As(err, &invalid):
		AbortWithError(c, http.StatusBadRequest, fmt.Sprintf(msgInvalidAnswer, invalid.QuestionID, invalid.Value))
	case errors.Is(err, survey.ErrTextTooLong):
		AbortWithError(c, http.StatusBadRequest, msgTextTooLong)
	case errors.Is(err, survey.ErrUnknownFormat):
		AbortWithError(c, http.StatusBadRequest, msgBadFormat)
	default:
		_ = c.Error(err)
		AbortWithError(c, http.StatusInternalServerError, err.Error())
	}
}
