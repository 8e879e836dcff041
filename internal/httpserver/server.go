package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PratikDhanave/satisfaction-survey-service/internal/config"
	"github.com/PratikDhanave/satisfaction-survey-service/internal/handlers"
	"github.com/PratikDhanave/satisfaction-survey-service/internal/survey"
)

// Pinger is the readiness dependency (the Response Store).
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewRouter wires probes and the survey API.
// Probes: /health, /ready
// Survey API: every route under /encuesta-satisfaccion, also mounted under /api.
func NewRouter(cfg config.Config, svc *survey.Service, db Pinger, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(requestID(), requestLogger(logger), recovery(logger), cors(cfg.CORS))

	r.NoRoute(func(c *gin.Context) {
		handlers.AbortWithError(c, http.StatusNotFound, "Ruta no encontrada")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.AbortWithError(c, http.StatusMethodNotAllowed, "Método no permitido")
	})

	// Liveness: confirms the process is running.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Readiness: confirms the store is reachable.
	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	routes := newDualRouter(r, apiPrefix)
	handlers.RegisterMetaRoutes(routes, func() []string { return routePaths(r) })
	handlers.RegisterSurveyRoutes(routes, svc)
	handlers.RegisterStatsRoutes(routes, svc)
	handlers.RegisterExportRoutes(routes, svc)

	return r
}

// NewServer wraps the router in an *http.Server using the configured timeouts.
func NewServer(cfg config.ServerConfig, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}
}
