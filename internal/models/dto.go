package models

import "strconv"

// Paginacion son los parámetros comunes de listado: página, tamaño y orden.
// Todos los listados del backend aceptan estos cuatro.
type Paginacion struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Sord  string `json:"sord"`
	Sidx  string `json:"sidx"`
}

// PaginacionPorDefecto página 1, 20 filas, orden id DESC
func PaginacionPorDefecto() Paginacion {
	return Paginacion{Page: 1, Limit: 20, Sord: "DESC", Sidx: "id"}
}

// Query serializa la paginación como query params
func (p Paginacion) Query() map[string]string {
	q := map[string]string{
		"page":  strconv.Itoa(p.Page),
		"limit": strconv.Itoa(p.Limit),
	}
	if p.Sord != "" {
		q["sord"] = p.Sord
	}
	if p.Sidx != "" {
		q["sidx"] = p.Sidx
	}
	return q
}

func setString(q map[string]string, clave string, v *string) {
	if v != nil && *v != "" {
		q[clave] = *v
	}
}

func setInt(q map[string]string, clave string, v *int) {
	if v != nil {
		q[clave] = strconv.Itoa(*v)
	}
}

func setBool(q map[string]string, clave string, v *bool) {
	if v != nil {
		q[clave] = strconv.FormatBool(*v)
	}
}

// NormalizarTexto convierte un filtro de texto vacío en ausente.
// El backend trata "" como valor literal, por eso se normaliza antes de enviar.
func NormalizarTexto(v *string) *string {
	if v != nil && *v == "" {
		return nil
	}
	return v
}

// Opcion par etiqueta/valor para dropdowns
type Opcion struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// TiposSolicitud opciones de tipo de solicitud
func TiposSolicitud() []Opcion {
	return []Opcion{
		{Label: "Gate In", Value: TipoGateIn},
		{Label: "Demora", Value: TipoDemora},
		{Label: "Liberación", Value: TipoLiberacion},
		{Label: "Giros", Value: TipoGiros},
	}
}

// EstadosSolicitud opciones de estado de solicitud
func EstadosSolicitud() []Opcion {
	return []Opcion{
		{Label: "Pendiente", Value: EstadoPendiente},
		{Label: "Subido", Value: EstadoSubido},
		{Label: "Verificada", Value: EstadoVerificada},
		{Label: "Pagada", Value: EstadoPagada},
		{Label: "Anulada", Value: EstadoAnulada},
	}
}

// TiposDocumento tipos de documento de identidad aceptados
func TiposDocumento() []Opcion {
	return []Opcion{
		{Label: "CI", Value: "CI"},
		{Label: "NIT", Value: "NIT"},
		{Label: "RUT", Value: "RUT"},
	}
}

// MetodosPago métodos de pago aceptados
func MetodosPago() []Opcion {
	return []Opcion{
		{Label: "Efectivo", Value: "EFECTIVO"},
		{Label: "Tarjeta de Crédito", Value: "TARJETA"},
		{Label: "Transferencia", Value: "TRANSFERENCIA"},
		{Label: "Depósito", Value: "DEPOSITO"},
		{Label: "Cheque", Value: "CHEQUE"},
	}
}
