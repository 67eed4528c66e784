package models

// DashboardData payload agregado de /dashboard/data
type DashboardData struct {
	MainStats               MainStats         `json:"mainStats"`
	AdditionalMetrics       AdditionalMetrics `json:"additionalMetrics"`
	PaymentsTrend           []PuntoPago       `json:"paymentsTrend"`
	RequestTypeDistribution map[string]int    `json:"requestTypeDistribution"`
	RequestStatusStats      []EstadoStat      `json:"requestStatusStats"`
	TopNavieras             []TopNaviera      `json:"topNavieras"`
}

// MainStats contadores principales del día
type MainStats struct {
	SolicitudesHoy        int     `json:"solicitudesHoy"`
	PagosRecibidos        float64 `json:"pagosRecibidos"`
	RecaudacionHoy        float64 `json:"recaudacionHoy"`
	ContenedoresHoy       int     `json:"contenedoresHoy"`
	ListasRevision        int     `json:"listasRevision"`
	SolicitudesPendientes int     `json:"solicitudesPendientes"`
	PagosPendientes       int     `json:"pagosPendientes"`
	ChangePercentages     struct {
		Solicitudes  float64 `json:"solicitudes"`
		Recaudacion  float64 `json:"recaudacion"`
		Contenedores float64 `json:"contenedores"`
		Pagos        float64 `json:"pagos"`
	} `json:"changePercentages"`
}

// AdditionalMetrics métricas secundarias
type AdditionalMetrics struct {
	TasaAprobacion  float64 `json:"tasaAprobacion"`
	NavierasActivas int     `json:"navierasActivas"`
	TiempoPromedio  float64 `json:"tiempoPromedio"`
	Satisfaccion    float64 `json:"satisfaccion"`
}

// PuntoPago un punto de la serie mensual de pagos/solicitudes
type PuntoPago struct {
	Mes          string  `json:"mes"`
	Recaudacion  float64 `json:"recaudacion"`
	Solicitudes  int     `json:"solicitudes"`
	Contenedores int     `json:"contenedores"`
}

// EstadoStat desglose de solicitudes por estado
type EstadoStat struct {
	Estado   string `json:"estado"`
	Cantidad int    `json:"cantidad"`
}

// TopNaviera ranking de navieras por solicitudes y recaudación
type TopNaviera struct {
	Nombre      string  `json:"nombre"`
	Solicitudes int     `json:"solicitudes"`
	Recaudacion float64 `json:"recaudacion"`
}

// DashboardPorDefecto estructura con los valores por defecto documentados,
// usada cuando el backend responde vacío o con campos ausentes
func DashboardPorDefecto() DashboardData {
	return DashboardData{
		PaymentsTrend:           []PuntoPago{},
		RequestTypeDistribution: map[string]int{},
		RequestStatusStats:      []EstadoStat{},
		TopNavieras:             []TopNaviera{},
	}
}
