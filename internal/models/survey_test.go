package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want FlexInt
	}{
		{"number", `3`, 3},
		{"numeric string", `"12"`, 12},
		{"padded string", `" 4 "`, 4},
		{"float truncates", `4.9`, 4},
		{"null", `null`, 0},
		{"word", `"abc"`, 0},
		{"bool", `true`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got FlexInt
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlexString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want FlexString
	}{
		{"string", `"Carmen"`, "Carmen"},
		{"escaped string", `"l\u00ednea\n2"`, "línea\n2"},
		{"integer", `123`, "123"},
		{"float", `4.5`, "4.5"},
		{"bool", `true`, "true"},
		{"null", `null`, ""},
		{"object", `{"a":1}`, ""},
		{"array", `[1,2]`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got FlexString
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubmitRequest_DecodeNonStringFreeText(t *testing.T) {
	body := `{"respuestas":[{"pregunta_id":1,"valor":5}],"nombre":123,"contacto":null,"fecha":20250301}`

	var req SubmitRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	require.Len(t, req.Respuestas, 1)
	assert.Equal(t, FlexString("123"), req.Nombre)
	assert.Equal(t, FlexString(""), req.Contacto)
	assert.Equal(t, FlexString("20250301"), req.Fecha)
}

func TestSubmitRequest_Decode(t *testing.T) {
	body := `{"respuestas":[{"pregunta_id":"1","valor":5},{"pregunta_id":2,"valor":"4"}],"sugerencia":" hola ","fecha":"2025-01-01"}`

	var req SubmitRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	require.Len(t, req.Respuestas, 2)
	assert.Equal(t, FlexInt(1), req.Respuestas[0].PreguntaID)
	assert.Equal(t, FlexInt(5), req.Respuestas[0].Valor)
	assert.Equal(t, FlexInt(4), req.Respuestas[1].Valor)
	assert.Equal(t, FlexString(" hola "), req.Sugerencia)
	assert.Equal(t, FlexString(""), req.Nombre)
}
