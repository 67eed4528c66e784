package controllers

import (
	"context"
	"fmt"
	"sync"

	"solicitudes-admin/internal/models"
	"solicitudes-admin/internal/services"

	"go.uber.org/zap"
)

// Tarjeta una tarjeta del dashboard: título, valor ya formateado y
// variación porcentual respecto al período anterior
type Tarjeta struct {
	Titulo    string
	Valor     string
	Variacion float64
}

// Metrica una métrica secundaria
type Metrica struct {
	Titulo string
	Valor  string
}

// Serie datos listos para graficar: etiquetas y valores alineados
type Serie struct {
	Etiquetas []string
	Valores   []float64
}

// DashboardController reagrupa el payload de /dashboard/data en los
// modelos de vista del tablero
type DashboardController struct {
	svc      services.DashboardService
	notifier Notifier
	logger   *zap.Logger

	mu      sync.Mutex
	enVuelo int
	data    models.DashboardData
	err     error
}

func NewDashboardController(svc services.DashboardService, notifier Notifier, logger *zap.Logger) *DashboardController {
	return &DashboardController{
		svc:      svc,
		notifier: notifier,
		logger:   logger,
		data:     models.DashboardPorDefecto(),
	}
}

// LoadDashboardData trae el payload agregado. Con error se conservan
// los valores por defecto y se notifica.
func (c *DashboardController) LoadDashboardData(ctx context.Context) error {
	c.mu.Lock()
	c.enVuelo++
	c.mu.Unlock()

	data, err := c.svc.GetData(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.enVuelo--
	if err != nil {
		c.err = err
		c.logger.Error("❌ Error cargando datos del dashboard", zap.Error(err))
		c.notifier.Notificar(Notificacion{
			Severidad: SeveridadError,
			Resumen:   ResumenError,
			Detalle:   "Error al cargar los datos del dashboard",
		})
		return err
	}
	c.data = *data
	c.err = nil
	return nil
}

// TarjetasPrincipales las cuatro tarjetas superiores del tablero
func (c *DashboardController) TarjetasPrincipales() []Tarjeta {
	c.mu.Lock()
	defer c.mu.Unlock()
	ms := c.data.MainStats
	return []Tarjeta{
		{Titulo: "Solicitudes Hoy", Valor: fmt.Sprintf("%d", ms.SolicitudesHoy), Variacion: ms.ChangePercentages.Solicitudes},
		{Titulo: "Pagos Recibidos Hoy", Valor: formatoBs(ms.PagosRecibidos), Variacion: ms.ChangePercentages.Pagos},
		{Titulo: "Listas para Revisión", Valor: fmt.Sprintf("%d", ms.ListasRevision), Variacion: ms.ChangePercentages.Contenedores},
		{Titulo: "Pendientes", Valor: fmt.Sprintf("%d", ms.SolicitudesPendientes), Variacion: ms.ChangePercentages.Recaudacion},
	}
}

// MetricasAdicionales las métricas secundarias; con payload ausente
// quedan en cero, nunca se omiten
func (c *DashboardController) MetricasAdicionales() []Metrica {
	c.mu.Lock()
	defer c.mu.Unlock()
	am := c.data.AdditionalMetrics
	return []Metrica{
		{Titulo: "Tasa Aprobación", Valor: fmt.Sprintf("%.1f%%", am.TasaAprobacion)},
		{Titulo: "Navieras Activas", Valor: fmt.Sprintf("%d", am.NavierasActivas)},
		{Titulo: "Tiempo Promedio", Valor: fmt.Sprintf("%.1f días", am.TiempoPromedio)},
		{Titulo: "Satisfacción", Valor: fmt.Sprintf("%.1f%%", am.Satisfaccion)},
	}
}

// SerieRecaudacion serie mensual de recaudación
func (c *DashboardController) SerieRecaudacion() Serie {
	c.mu.Lock()
	defer c.mu.Unlock()
	serie := Serie{Etiquetas: []string{}, Valores: []float64{}}
	for _, p := range c.data.PaymentsTrend {
		serie.Etiquetas = append(serie.Etiquetas, p.Mes)
		serie.Valores = append(serie.Valores, p.Recaudacion)
	}
	return serie
}

// SerieSolicitudes serie mensual de solicitudes
func (c *DashboardController) SerieSolicitudes() Serie {
	c.mu.Lock()
	defer c.mu.Unlock()
	serie := Serie{Etiquetas: []string{}, Valores: []float64{}}
	for _, p := range c.data.PaymentsTrend {
		serie.Etiquetas = append(serie.Etiquetas, p.Mes)
		serie.Valores = append(serie.Valores, float64(p.Solicitudes))
	}
	return serie
}

// DistribucionTipos distribución de solicitudes por tipo con las
// etiquetas visibles del dominio
func (c *DashboardController) DistribucionTipos() Serie {
	c.mu.Lock()
	defer c.mu.Unlock()
	serie := Serie{Etiquetas: []string{}, Valores: []float64{}}
	for _, op := range models.TiposSolicitud() {
		cantidad, ok := c.data.RequestTypeDistribution[op.Value]
		if !ok {
			continue
		}
		serie.Etiquetas = append(serie.Etiquetas, op.Label)
		serie.Valores = append(serie.Valores, float64(cantidad))
	}
	return serie
}

// EstadosSolicitudes desglose por estado
func (c *DashboardController) EstadosSolicitudes() Serie {
	c.mu.Lock()
	defer c.mu.Unlock()
	serie := Serie{Etiquetas: []string{}, Valores: []float64{}}
	for _, e := range c.data.RequestStatusStats {
		serie.Etiquetas = append(serie.Etiquetas, e.Estado)
		serie.Valores = append(serie.Valores, float64(e.Cantidad))
	}
	return serie
}

// TopNavieras ranking de navieras por solicitudes
func (c *DashboardController) TopNavieras() []models.TopNaviera {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data.TopNavieras == nil {
		return []models.TopNaviera{}
	}
	return c.data.TopNavieras
}

func (c *DashboardController) Data() models.DashboardData {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data
}

func (c *DashboardController) Cargando() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enVuelo > 0
}

func (c *DashboardController) Error() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func formatoBs(monto float64) string {
	return fmt.Sprintf("Bs %.2f", monto)
}
