package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolValido(t *testing.T) {
	va := New()
	valores := map[string]any{
		"nombre":      "operador",
		"descripcion": "Rol de operación diaria",
	}
	assert.True(t, va.EsValido(valores, ReglasRol()))
}

func TestRolNombreFaltante(t *testing.T) {
	va := New()
	errores := va.Validar(map[string]any{"nombre": ""}, ReglasRol())
	assert.Len(t, errores, 1)
	assert.Equal(t, "nombre", errores[0].Campo)
	assert.Equal(t, "Este campo es obligatorio", errores[0].Mensaje)
}

func TestRolNombreMuyCorto(t *testing.T) {
	va := New()
	errores := va.Validar(map[string]any{"nombre": "ab"}, ReglasRol())
	assert.Len(t, errores, 1)
	assert.Equal(t, "Este campo debe tener al menos 3 caracteres", errores[0].Mensaje)
}

func TestDescripcionOpcional(t *testing.T) {
	va := New()
	// descripcion vacía no dispara min/max: solo required exige presencia
	errores := va.Validar(map[string]any{"nombre": "operador", "descripcion": ""}, ReglasRol())
	assert.Empty(t, errores)
}

func TestUsuarioCorreoInvalido(t *testing.T) {
	va := New()
	valores := map[string]any{
		"usuario":  "mperez",
		"nombre":   "María",
		"apellido": "Pérez",
		"correo":   "no-es-correo",
		"telefono": "59171234567",
		"rolId":    2,
	}
	errores := va.Validar(valores, ReglasUsuario())
	assert.Len(t, errores, 1)
	assert.Equal(t, "correo", errores[0].Campo)
	assert.Equal(t, "El formato de correo electrónico no es válido", errores[0].Mensaje)
}

func TestUsuarioTelefonoNoNumerico(t *testing.T) {
	va := New()
	valores := map[string]any{
		"usuario":  "mperez",
		"nombre":   "María",
		"apellido": "Pérez",
		"correo":   "mperez@ejemplo.bo",
		"telefono": "591-712-345",
		"rolId":    2,
	}
	errores := va.Validar(valores, ReglasUsuario())
	assert.NotEmpty(t, errores)
	assert.Equal(t, "telefono", errores[0].Campo)
}

func TestUsuarioRolSinSeleccionar(t *testing.T) {
	va := New()
	valores := map[string]any{
		"usuario":  "mperez",
		"nombre":   "María",
		"apellido": "Pérez",
		"correo":   "mperez@ejemplo.bo",
		"telefono": "59171234567",
	}
	errores := va.Validar(valores, ReglasUsuario())
	assert.Len(t, errores, 1)
	assert.Equal(t, "rolId", errores[0].Campo)
	assert.Equal(t, "Debe seleccionar una opción", errores[0].Mensaje)
}

func TestTarifaMontoCero(t *testing.T) {
	va := New()
	// Monto 0 es presente y cumple gte=0
	valores := map[string]any{"navieraId": 3, "montoBase": 0.0, "activo": false}
	assert.True(t, va.EsValido(valores, ReglasTarifa()))
}

func TestTarifaMontoExcedido(t *testing.T) {
	va := New()
	valores := map[string]any{"navieraId": 3, "montoBase": 2000000.0, "activo": true}
	errores := va.Validar(valores, ReglasTarifa())
	assert.Len(t, errores, 1)
	assert.Equal(t, "El valor no debe exceder 1000000", errores[0].Mensaje)
}

func TestSolicitudCompleta(t *testing.T) {
	va := New()
	valores := map[string]any{
		"contenedor": "MSKU1234567",
		"navieraId":  1,
		"tipo":       "gatein",
		"monto":      150.0,
	}
	assert.True(t, va.EsValido(valores, ReglasSolicitud()))
}

func TestSolicitudVacia(t *testing.T) {
	va := New()
	errores := va.Validar(map[string]any{}, ReglasSolicitud())
	// contenedor, navieraId, tipo y monto son obligatorios
	assert.Len(t, errores, 4)
}

func TestSolicitudMontoMenorAUno(t *testing.T) {
	va := New()
	valores := map[string]any{
		"contenedor": "MSKU1234567",
		"navieraId":  1,
		"tipo":       "demora",
		"monto":      0.5,
	}
	errores := va.Validar(valores, ReglasSolicitud())
	assert.Len(t, errores, 1)
	assert.Equal(t, "El valor debe ser mayor o igual a 1", errores[0].Mensaje)
}

func TestClave(t *testing.T) {
	va := New()
	assert.True(t, va.EsValido(map[string]any{"clave": "secreta1"}, ReglasClave()))
	errores := va.Validar(map[string]any{"clave": "abc"}, ReglasClave())
	assert.Len(t, errores, 1)
	assert.Equal(t, "Este campo debe tener al menos 6 caracteres", errores[0].Mensaje)
}
