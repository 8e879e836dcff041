package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PratikDhanave/satisfaction-survey-service/internal/models"
	"github.com/PratikDhanave/satisfaction-survey-service/internal/survey"
)

// RegisterStatsRoutes registers the serving-path endpoint.
//
// GET /encuesta-satisfaccion/stats
// - Survey count, per-question averages and Likert distributions
// - Latest 100 suggestions, newest first
func RegisterStatsRoutes(r Routes, svc *survey.Service) {
	r.GET(BasePath+"/stats", func(c *gin.Context) {
		rep, err := svc.Report(c.Request.Context())
		if err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.StatsResponse{
			OK:              true,
			TotalRespuestas: rep.TotalSurveys,
			Promedios:       rep.Averages,
			Distribuciones:  rep.Distributions,
			Sugerencias:     rep.Suggestions,
			Path:            c.Request.URL.Path,
		})
	})
}
