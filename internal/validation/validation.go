package validation

import (
	"sort"

	"github.com/go-playground/validator/v10"
)

// Regla una restricción declarativa: tag de validación + mensaje para el
// usuario. Los tags son los de go-playground/validator (required, min,
// max, gte, lte, numeric, email).
type Regla struct {
	Tag     string
	Mensaje string
}

// Reglas tabla campo → lista ordenada de restricciones
type Reglas map[string][]Regla

// ErrorCampo una restricción incumplida
type ErrorCampo struct {
	Campo   string
	Mensaje string
}

// Validador interpreta cualquier tabla de reglas; no hay lógica por
// entidad, solo datos.
type Validador struct {
	v *validator.Validate
}

// New crea el validador genérico
func New() *Validador {
	return &Validador{v: validator.New()}
}

// Validar evalúa los valores contra la tabla y devuelve todas las
// restricciones incumplidas, en orden de campo y de declaración.
// Un campo vacío solo se evalúa contra "required": el resto de las
// reglas aplica únicamente a valores presentes.
func (va *Validador) Validar(valores map[string]any, reglas Reglas) []ErrorCampo {
	campos := make([]string, 0, len(reglas))
	for campo := range reglas {
		campos = append(campos, campo)
	}
	sort.Strings(campos)

	var errores []ErrorCampo
	for _, campo := range campos {
		valor := valores[campo]
		for _, regla := range reglas[campo] {
			// "required" exige presencia, no valor no-cero: un monto 0 o un
			// booleano false son valores presentes válidos
			if regla.Tag == "required" {
				if vacio(valor) {
					errores = append(errores, ErrorCampo{Campo: campo, Mensaje: regla.Mensaje})
				}
				continue
			}
			if vacio(valor) {
				continue
			}
			if err := va.v.Var(valor, regla.Tag); err != nil {
				errores = append(errores, ErrorCampo{Campo: campo, Mensaje: regla.Mensaje})
			}
		}
	}
	return errores
}

// EsValido true si ningún campo incumple su tabla
func (va *Validador) EsValido(valores map[string]any, reglas Reglas) bool {
	return len(va.Validar(valores, reglas)) == 0
}

func vacio(valor any) bool {
	switch v := valor.(type) {
	case nil:
		return true
	case string:
		return v == ""
	default:
		return false
	}
}
