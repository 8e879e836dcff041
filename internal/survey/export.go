package survey

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/PratikDhanave/satisfaction-survey-service/internal/models"
)

// Format is an export file format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv; charset=utf-8"
)

// exportHeader is the column order of every export.
var exportHeader = []string{
	"encuesta_id", "pregunta_id", "pregunta", "valor",
	"sugerencia", "nombre", "contacto", "fecha", "created_at",
}

// ParseFormat maps a query value to a Format. Empty means xlsx.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "xlsx", "excel":
		return FormatXLSX, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// File is a rendered export ready to be sent as an attachment.
type File struct {
	Name        string
	ContentType string
	Body        []byte
}

// Export dumps every stored row, one line per row, in insertion order.
// An empty store yields a header-only file.
func (s *Service) Export(ctx context.Context, format Format) (File, error) {
	rows, err := s.store.ListResponses(ctx)
	if err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	switch format {
	case FormatXLSX:
		body, err := renderXLSX(s.export.Sheet, rows)
		if err != nil {
			return File{}, fmt.Errorf("render xlsx: %w", err)
		}
		return File{Name: s.export.FileName + ".xlsx", ContentType: contentTypeXLSX, Body: body}, nil
	case FormatCSV:
		body, err := renderCSV(rows)
		if err != nil {
			return File{}, fmt.Errorf("render csv: %w", err)
		}
		return File{Name: s.export.FileName + ".csv", ContentType: contentTypeCSV, Body: body}, nil
	default:
		return File{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// renderXLSX writes one sheet. Characters XML cannot carry (C0 controls other
// than tab and newlines) are replaced by excelize; the csv format keeps them.
func renderXLSX(sheet string, rows []models.Response) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, err
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return nil, err
	}

	header := make([]interface{}, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, err
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := sw.SetRow(cell, []interface{}{
			r.SurveyID, r.QuestionID, r.QuestionText, r.Value,
			r.Suggestion, r.RespondentName, r.RespondentContact, r.SurveyDate,
			r.CreatedAt.UTC().Format(models.TimestampLayout),
		}); err != nil {
			return nil, err
		}
	}

	if err := sw.Flush(); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderCSV(rows []models.Response) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, r := range rows {
		rec := []string{
			r.SurveyID,
			strconv.Itoa(r.QuestionID),
			r.QuestionText,
			strconv.Itoa(r.Value),
			r.Suggestion,
			r.RespondentName,
			r.RespondentContact,
			r.SurveyDate,
			r.CreatedAt.UTC().Format(models.TimestampLayout),
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
