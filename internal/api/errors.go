package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Kind clasificación de un error del backend según su status HTTP.
// Toda rama de mutación consume esta clasificación en lugar de ramificar
// por status code en cada recurso.
type Kind int

const (
	// KindUnknown cualquier otra falla, incluidas las de red
	KindUnknown Kind = iota
	// KindValidation 400: los mensajes se muestran tal cual al usuario
	KindValidation
	// KindNotFound 404: recurso inexistente
	KindNotFound
	// KindConflict 409: conflicto o registros dependientes
	KindConflict
)

// APIError respuesta no-2xx del backend
type APIError struct {
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	if len(e.Messages) > 0 {
		return fmt.Sprintf("backend %d: %s", e.StatusCode, strings.Join(e.Messages, " | "))
	}
	return fmt.Sprintf("backend %d", e.StatusCode)
}

// Mensaje primer mensaje del backend, vacío si no hubo cuerpo
func (e *APIError) Mensaje() string {
	if len(e.Messages) > 0 {
		return e.Messages[0]
	}
	return ""
}

// MensajeUnido todos los mensajes unidos con " | "
func (e *APIError) MensajeUnido() string {
	return strings.Join(e.Messages, " | ")
}

// Classify devuelve la clasificación del error. Errores que no son
// *APIError (red, timeout, contexto cancelado) clasifican como Unknown.
func Classify(err error) Kind {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return KindUnknown
	}
	switch apiErr.StatusCode {
	case 400:
		return KindValidation
	case 404:
		return KindNotFound
	case 409:
		return KindConflict
	default:
		return KindUnknown
	}
}

// Mensajes extrae los mensajes del backend de un error clasificable
func Mensajes(err error) []string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Messages
	}
	return nil
}

// mensajeFlexible acepta "message" como string o como arreglo de strings
type mensajeFlexible []string

func (m *mensajeFlexible) UnmarshalJSON(data []byte) error {
	var uno string
	if err := json.Unmarshal(data, &uno); err == nil {
		*m = []string{uno}
		return nil
	}
	var varios []string
	if err := json.Unmarshal(data, &varios); err == nil {
		*m = varios
		return nil
	}
	// Cualquier otra forma se ignora; el status code basta para clasificar
	*m = nil
	return nil
}

type cuerpoError struct {
	Message mensajeFlexible `json:"message"`
	Error   string          `json:"error"`
}

func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	var cuerpo cuerpoError
	if err := json.Unmarshal(body, &cuerpo); err == nil {
		apiErr.Messages = cuerpo.Message
		if len(apiErr.Messages) == 0 && cuerpo.Error != "" {
			apiErr.Messages = []string{cuerpo.Error}
		}
	}
	return apiErr
}
