package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout renders instants with microseconds and a numeric offset,
// e.g. 2025-03-01T10:00:00.000000+00:00.
const TimestampLayout = "2006-01-02T15:04:05.000000-07:00"

// SubmitRequest is the POST /encuesta-satisfaccion payload.
// Only respuestas is required; the free-text fields are optional.
type SubmitRequest struct {
	Respuestas []AnswerPayload `json:"respuestas"`
	Sugerencia FlexString      `json:"sugerencia,omitempty"`
	Nombre     FlexString      `json:"nombre,omitempty"`
	Contacto   FlexString      `json:"contacto,omitempty"`
	Fecha      FlexString      `json:"fecha,omitempty"`
}

// AnswerPayload is a single Likert answer as sent by the kiosk.
type AnswerPayload struct {
	PreguntaID FlexInt `json:"pregunta_id"`
	Valor      FlexInt `json:"valor"`
}

// SubmitResponse is returned by POST /encuesta-satisfaccion.
type SubmitResponse struct {
	OK         bool   `json:"ok"`
	EncuestaID string `json:"encuesta_id"`
	Guardadas  int    `json:"guardadas"`
	Path       string `json:"path"`
}

// Suggestion is one free-text comment in the stats feed.
type Suggestion struct {
	Texto     string    `json:"texto"`
	Nombre    string    `json:"nombre"`
	Contacto  string    `json:"contacto"`
	Fecha     string    `json:"fecha"`
	CreatedAt time.Time `json:"created_at"`
}

// StatsResponse is returned by GET /encuesta-satisfaccion/stats.
// total_respuestas counts surveys, not answer rows.
type StatsResponse struct {
	OK              bool                      `json:"ok"`
	TotalRespuestas int                       `json:"total_respuestas"`
	Promedios       map[string]float64        `json:"promedios"`
	Distribuciones  map[string]map[string]int `json:"distribuciones"`
	Sugerencias     []Suggestion              `json:"sugerencias"`
	Path            string                    `json:"path"`
}

// PingResponse is returned by the ping endpoint.
type PingResponse struct {
	OK   bool   `json:"ok"`
	TS   string `json:"ts"`
	Path string `json:"path"`
}

// RoutesResponse lists every registered path.
type RoutesResponse struct {
	OK     bool     `json:"ok"`
	Routes []string `json:"routes"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
	Path  string `json:"path,omitempty"`
}

// FlexInt decodes a JSON number or numeric string into an int.
// Values that are neither decode to 0 so validation can reject them.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	s := string(b)
	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			*f = 0
			return nil
		}
		s = strings.TrimSpace(str)
	}

	if n, err := strconv.Atoi(s); err == nil {
		*f = FlexInt(n)
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*f = FlexInt(int(v))
		return nil
	}
	*f = 0
	return nil
}

// FlexString decodes a JSON string as is and a number or boolean as its
// literal text. null, objects and arrays decode to "".
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		*f = ""
		return nil
	}
	switch b[0] {
	case '"':
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			*f = ""
			return nil
		}
		*f = FlexString(str)
	case '{', '[', 'n':
		*f = ""
	default:
		*f = FlexString(b)
	}
	return nil
}
