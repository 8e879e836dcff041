// Package survey holds the survey pipeline: ingestion of answer batches,
// the aggregate report and the raw data export.
package survey

import (
	"context"
	"log/slog"
	"time"

	"github.com/PratikDhanave/satisfaction-survey-service/internal/catalog"
	"github.com/PratikDhanave/satisfaction-survey-service/internal/models"
)

// Store is the Response Store as seen by the pipeline.
type Store interface {
	// InsertResponses persists all rows or none of them.
	InsertResponses(ctx context.Context, rows []models.Response) error
	// ListResponses returns every stored row in insertion order.
	ListResponses(ctx context.Context) ([]models.Response, error)
}

// ExportOptions names the downloadable file and its sheet.
type ExportOptions struct {
	FileName string
	Sheet    string
}

// Service implements ingestion, reporting and export over a Store.
type Service struct {
	store   Store
	catalog *catalog.Catalog
	ids     *idGenerator
	export  ExportOptions
	logger  *slog.Logger
}

// NewService wires a Service. A nil logger falls back to slog.Default.
func NewService(st Store, cat *catalog.Catalog, export ExportOptions, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if export.FileName == "" {
		export.FileName = "encuestas_satisfaccion"
	}
	if export.Sheet == "" {
		export.Sheet = "respuestas"
	}
	return &Service{
		store:   st,
		catalog: cat,
		ids:     newIDGenerator(time.Now),
		export:  export,
		logger:  logger,
	}
}

// Catalog returns the question catalog the service validates against.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}
