package validation

import "fmt"

// Mensajes compartidos por todas las tablas
const (
	msgRequerido   = "Este campo es obligatorio"
	msgSeleccionar = "Debe seleccionar una opción"
	msgNumerico    = "Este campo debe contener solo números"
	msgEmail       = "El formato de correo electrónico no es válido"
)

func msgMinLongitud(min int) string {
	return fmt.Sprintf("Este campo debe tener al menos %d caracteres", min)
}

func msgMaxLongitud(max int) string {
	return fmt.Sprintf("Este campo no debe exceder los %d caracteres", max)
}

func msgValorMinimo(min int) string {
	return fmt.Sprintf("El valor debe ser mayor o igual a %d", min)
}

func msgValorMaximo(max int) string {
	return fmt.Sprintf("El valor no debe exceder %d", max)
}

// ReglasNaviera restricciones del formulario de navieras
func ReglasNaviera() Reglas {
	return Reglas{
		"nombre": {
			{Tag: "required", Mensaje: msgRequerido},
			{Tag: "min=3", Mensaje: msgMinLongitud(3)},
			{Tag: "max=100", Mensaje: msgMaxLongitud(100)},
		},
		"descripcion": {
			{Tag: "min=3", Mensaje: msgMinLongitud(3)},
			{Tag: "max=250", Mensaje: msgMaxLongitud(250)},
		},
	}
}

// ReglasRol restricciones del formulario de roles
func ReglasRol() Reglas {
	return Reglas{
		"nombre": {
			{Tag: "required", Mensaje: msgRequerido},
			{Tag: "min=3", Mensaje: msgMinLongitud(3)},
			{Tag: "max=50", Mensaje: msgMaxLongitud(50)},
		},
		"descripcion": {
			{Tag: "min=3", Mensaje: msgMinLongitud(3)},
			{Tag: "max=250", Mensaje: msgMaxLongitud(250)},
		},
	}
}

// ReglasUsuario restricciones del formulario de usuarios
func ReglasUsuario() Reglas {
	return Reglas{
		"usuario": {
			{Tag: "required", Mensaje: msgRequerido},
			{Tag: "min=2", Mensaje: msgMinLongitud(2)},
			{Tag: "max=20", Mensaje: msgMaxLongitud(20)},
		},
		"nombre": {
			{Tag: "required", Mensaje: msgRequerido},
			{Tag: "min=2", Mensaje: msgMinLongitud(2)},
			{Tag: "max=100", Mensaje: msgMaxLongitud(100)},
		},
		"apellido": {
			{Tag: "required", Mensaje: msgRequerido},
			{Tag: "min=2", Mensaje: msgMinLongitud(2)},
			{Tag: "max=100", Mensaje: msgMaxLongitud(100)},
		},
		"correo": {
			{Tag: "required", Mensaje: msgRequerido},
			{Tag: "email", Mensaje: msgEmail},
			{Tag: "max=255", Mensaje: msgMaxLongitud(255)},
		},
		"telefono": {
			{Tag: "required", Mensaje: msgRequerido},
			{Tag: "numeric", Mensaje: msgNumerico},
			{Tag: "min=11", Mensaje: msgMinLongitud(11)},
			{Tag: "max=11", Mensaje: msgMaxLongitud(11)},
		},
		"rolId": {
			{Tag: "required", Mensaje: msgSeleccionar},
		},
	}
}

// ReglasClave restricciones de la contraseña
func ReglasClave() Reglas {
	return Reglas{
		"clave": {
			{Tag: "required", Mensaje: msgRequerido},
			{Tag: "min=6", Mensaje: msgMinLongitud(6)},
			{Tag: "max=20", Mensaje: msgMaxLongitud(20)},
		},
	}
}

// ReglasTarifa restricciones del formulario de tarifas
func ReglasTarifa() Reglas {
	return Reglas{
		"navieraId": {
			{Tag: "required", Mensaje: msgSeleccionar},
		},
		"montoBase": {
			{Tag: "required", Mensaje: msgRequerido},
			{Tag: "gte=0", Mensaje: msgValorMinimo(0)},
			{Tag: "lte=1000000", Mensaje: msgValorMaximo(1000000)},
		},
		"activo": {
			{Tag: "required", Mensaje: msgRequerido},
		},
	}
}

// ReglasSolicitud restricciones del formulario de solicitudes
func ReglasSolicitud() Reglas {
	return Reglas{
		"contenedor": {
			{Tag: "required", Mensaje: msgRequerido},
			{Tag: "min=3", Mensaje: msgMinLongitud(3)},
			{Tag: "max=100", Mensaje: msgMaxLongitud(100)},
		},
		"navieraId": {
			{Tag: "required", Mensaje: msgSeleccionar},
		},
		"tipo": {
			{Tag: "required", Mensaje: msgSeleccionar},
		},
		"monto": {
			{Tag: "required", Mensaje: msgRequerido},
			{Tag: "gte=1", Mensaje: msgValorMinimo(1)},
		},
	}
}
