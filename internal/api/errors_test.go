package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAPIErrorMensajeString(t *testing.T) {
	err := parseAPIError(409, []byte(`{"message":"La naviera tiene solicitudes relacionadas"}`))
	assert.Equal(t, 409, err.StatusCode)
	assert.Equal(t, []string{"La naviera tiene solicitudes relacionadas"}, err.Messages)
}

func TestParseAPIErrorMensajeArreglo(t *testing.T) {
	body := `{"message":["nombre es obligatorio","descripcion muy corta","activo es obligatorio"],"error":"Bad Request","statusCode":400}`
	err := parseAPIError(400, []byte(body))
	assert.Len(t, err.Messages, 3)
	unido := err.MensajeUnido()
	assert.Contains(t, unido, "nombre es obligatorio")
	assert.Contains(t, unido, "descripcion muy corta")
	assert.Contains(t, unido, "activo es obligatorio")
}

func TestParseAPIErrorCuerpoInvalido(t *testing.T) {
	err := parseAPIError(500, []byte("Internal Server Error"))
	assert.Equal(t, 500, err.StatusCode)
	assert.Empty(t, err.Messages)
	assert.Equal(t, "backend 500", err.Error())
}

func TestClassify(t *testing.T) {
	casos := []struct {
		status   int
		esperado Kind
	}{
		{400, KindValidation},
		{404, KindNotFound},
		{409, KindConflict},
		{401, KindUnknown},
		{500, KindUnknown},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, Classify(&APIError{StatusCode: c.status}), "status %d", c.status)
	}
}

func TestClassifyErrorDeRed(t *testing.T) {
	assert.Equal(t, KindUnknown, Classify(errors.New("dial tcp: connection refused")))
	assert.Nil(t, Mensajes(errors.New("timeout")))
}
