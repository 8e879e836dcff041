package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PratikDhanave/satisfaction-survey-service/internal/models"
)

// RegisterMetaRoutes registers ping and the route listing. listRoutes is
// called on every request so it reflects the final route table.
func RegisterMetaRoutes(r Routes, listRoutes func() []string) {
	r.GET(BasePath+"/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.PingResponse{
			OK:   true,
			TS:   time.Now().UTC().Format(models.TimestampLayout),
			Path: c.Request.URL.Path,
		})
	})

	r.GET(BasePath+"/routes", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.RoutesResponse{
			OK:     true,
			Routes: listRoutes(),
		})
	})
}
