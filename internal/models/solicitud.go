package models

// Tipos de solicitud aceptados por el backend
const (
	TipoGateIn     = "gatein"
	TipoDemora     = "demora"
	TipoLiberacion = "liberacion"
	TipoGiros      = "giros"
)

// Estados de una solicitud. El backend es dueño del vocabulario; el cliente
// nunca calcula transiciones, solo las pide.
const (
	EstadoPendiente  = "pendiente"
	EstadoSubido     = "subido"
	EstadoVerificada = "verificada"
	EstadoPagada     = "pagada"
	EstadoAnulada    = "anulada"
)

// Solicitud representa una solicitud de servicio portuario/contenedor
type Solicitud struct {
	ID                 int             `json:"id,omitempty"`
	BL                 string          `json:"bl"`
	Contenedor         string          `json:"contenedor"`
	Documento          string          `json:"documento"`
	TipoDocumento      string          `json:"tipoDocumento"`
	NavieraID          int             `json:"navieraId"`
	Naviera            *NavieraResumen `json:"naviera,omitempty"`
	Tipo               string          `json:"tipo"`
	Monto              float64         `json:"monto,omitempty"`
	MontoBase          float64         `json:"montoBase,omitempty"`
	ComisionPorcentaje float64         `json:"comisionPorcentaje,omitempty"`
	ComisionMonto      float64         `json:"comisionMonto,omitempty"`
	TipoCambioUsado    float64         `json:"tipoCambioUsado,omitempty"`
	DetalleCalculo     string          `json:"detalleCalculo,omitempty"`
	TotalFinal         float64         `json:"totalFinal,omitempty"`
	TotalFinalBs       float64         `json:"totalFinalBs,omitempty"`
	Estado             string          `json:"estado,omitempty"`
	ComprobantePago    string          `json:"comprobantePago,omitempty"`
	Factura            string          `json:"factura,omitempty"`
	Dress              string          `json:"dress,omitempty"`
	UsuarioID          int             `json:"usuarioId,omitempty"`
	Usuario            *UsuarioResumen `json:"usuario,omitempty"`
	CreadoEn           string          `json:"creadoEn,omitempty"`
	ActualizadoEn      string          `json:"actualizadoEn,omitempty"`
}

// NavieraResumen es la naviera embebida en la respuesta de solicitudes
type NavieraResumen struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// UsuarioResumen es el usuario embebido en la respuesta de solicitudes
type UsuarioResumen struct {
	ID       int    `json:"id"`
	Usuario  string `json:"usuario"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
}

// Estadisticas agrupa los contadores por estado
type Estadisticas struct {
	Total       int `json:"total"`
	Pendientes  int `json:"pendientes"`
	Subidos     int `json:"subidos"`
	Verificadas int `json:"verificadas"`
	Pagadas     int `json:"pagadas"`
	Anuladas    int `json:"anuladas"`
}

// SolicitudesList respuesta paginada de solicitudes
type SolicitudesList struct {
	Data  []Solicitud `json:"data"`
	Total int         `json:"total"`
}

// FiltrosSolicitud filtros para consultas de solicitudes
type FiltrosSolicitud struct {
	Paginacion
	BL         *string `json:"bl,omitempty"`
	Contenedor *string `json:"contenedor,omitempty"`
	Documento  *string `json:"documento,omitempty"`
	Tipo       *string `json:"tipo,omitempty"`
	Estado     *string `json:"estado,omitempty"`
	NavieraID  *int    `json:"navieraId,omitempty"`
	UsuarioID  *int    `json:"usuarioId,omitempty"`
}

// Query serializa los filtros como query params, omitiendo los ausentes
func (f FiltrosSolicitud) Query() map[string]string {
	q := f.Paginacion.Query()
	setString(q, "bl", f.BL)
	setString(q, "contenedor", f.Contenedor)
	setString(q, "documento", f.Documento)
	setString(q, "tipo", f.Tipo)
	setString(q, "estado", f.Estado)
	setInt(q, "navieraId", f.NavieraID)
	setInt(q, "usuarioId", f.UsuarioID)
	return q
}
