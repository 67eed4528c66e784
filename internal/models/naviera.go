package models

// Naviera representa una naviera (entidad de referencia)
type Naviera struct {
	ID          int    `json:"id,omitempty"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Activo      bool   `json:"activo"`
	UsuarioID   int    `json:"usuarioId,omitempty"`
}

// NavierasList respuesta paginada de navieras
type NavierasList struct {
	Data  []Naviera `json:"data"`
	Total int       `json:"total"`
}

// FiltrosNaviera filtros para el listado de navieras
type FiltrosNaviera struct {
	Paginacion
	Nombre      *string `json:"nombre,omitempty"`
	Descripcion *string `json:"descripcion,omitempty"`
	Activo      *bool   `json:"activo,omitempty"`
}

// Query serializa los filtros como query params, omitiendo los ausentes
func (f FiltrosNaviera) Query() map[string]string {
	q := f.Paginacion.Query()
	setString(q, "nombre", f.Nombre)
	setString(q, "descripcion", f.Descripcion)
	setBool(q, "activo", f.Activo)
	return q
}

// Tarifa representa una tarifa asociada a una naviera
type Tarifa struct {
	ID        int             `json:"id,omitempty"`
	NavieraID int             `json:"navieraId"`
	Naviera   *NavieraResumen `json:"naviera,omitempty"`
	Tipo      string          `json:"tipo,omitempty"`
	MontoBase float64         `json:"montoBase"`
	Activo    bool            `json:"activo"`
	UsuarioID int             `json:"usuarioId,omitempty"`
}

// TarifasList respuesta paginada de tarifas
type TarifasList struct {
	Data  []Tarifa `json:"data"`
	Total int      `json:"total"`
}

// FiltrosTarifa filtros para el listado de tarifas
type FiltrosTarifa struct {
	Paginacion
	NavieraID *int    `json:"navieraId,omitempty"`
	Tipo      *string `json:"tipo,omitempty"`
	Activo    *bool   `json:"activo,omitempty"`
}

// Query serializa los filtros como query params, omitiendo los ausentes
func (f FiltrosTarifa) Query() map[string]string {
	q := f.Paginacion.Query()
	setInt(q, "navieraId", f.NavieraID)
	setString(q, "tipo", f.Tipo)
	setBool(q, "activo", f.Activo)
	return q
}
