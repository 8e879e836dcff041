package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PratikDhanave/satisfaction-survey-service/internal/models"
	"github.com/PratikDhanave/satisfaction-survey-service/internal/survey"
)

// RegisterSurveyRoutes registers the ingestion endpoint.
//
// POST /encuesta-satisfaccion
// - Body: {respuestas:[{pregunta_id,valor}], sugerencia?, nombre?, contacto?, fecha?}
// - Durable: returns success only after every row is committed
// - All-or-nothing: one invalid answer rejects the whole survey
func RegisterSurveyRoutes(r Routes, svc *survey.Service) {
	r.POST(BasePath, func(c *gin.Context) {
		var req models.SubmitRequest
		// Free-text fields decode leniently; a body that still fails to
		// decode is treated as a payload without answers.
		if err := c.ShouldBindJSON(&req); err != nil {
			req = models.SubmitRequest{}
		}

		receipt, err := svc.Submit(c.Request.Context(), toBatch(req))
		if err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SubmitResponse{
			OK:         true,
			EncuestaID: receipt.SurveyID,
			Guardadas:  receipt.RowsWritten,
			Path:       c.Request.URL.Path,
		})
	})
}

func toBatch(req models.SubmitRequest) survey.Batch {
	answers := make([]survey.Answer, len(req.Respuestas))
	for i, a := range req.Respuestas {
		answers[i] = survey.Answer{QuestionID: int(a.PreguntaID), Value: int(a.Valor)}
	}
	return survey.Batch{
		Answers:           answers,
		Suggestion:        string(req.Sugerencia),
		RespondentName:    string(req.Nombre),
		RespondentContact: string(req.Contacto),
		SurveyDate:        string(req.Fecha),
	}
}
