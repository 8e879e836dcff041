package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PratikDhanave/satisfaction-survey-service/internal/survey"
)

// RegisterExportRoutes registers the raw data download.
//
// GET /encuesta-satisfaccion/excel[?formato=csv]
// - One line per stored answer row, spreadsheet by default
func RegisterExportRoutes(r Routes, svc *survey.Service) {
	r.GET(BasePath+"/excel", func(c *gin.Context) {
		format, err := survey.ParseFormat(c.Query("formato"))
		if err != nil {
			writeServiceError(c, err)
			return
		}

		file, err := svc.Export(c.Request.Context(), format)
		if err != nil {
			writeServiceError(c, err)
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Name))
		c.Data(http.StatusOK, file.ContentType, file.Body)
	})
}
