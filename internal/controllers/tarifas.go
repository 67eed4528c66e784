package controllers

import (
	"context"
	"sync"

	"solicitudes-admin/internal/models"
	"solicitudes-admin/internal/services"
	"solicitudes-admin/internal/session"

	"go.uber.org/zap"
)

// TarifasController estado de la vista de tarifas. El formulario
// necesita el dropdown de navieras activas.
type TarifasController struct {
	svc         services.TarifasService
	navierasSvc services.NavierasService
	ses         *session.Store
	notifier    Notifier
	logger      *zap.Logger

	mu               sync.Mutex
	enVuelo          int
	tarifas          []models.Tarifa
	tarifa           models.Tarifa
	navierasOpciones []models.Naviera
	total            int
	err              error
	filtros          models.FiltrosTarifa
	dialogo          bool
	dialogoBorrar    bool
	mostrarFiltros   bool
}

func NewTarifasController(svc services.TarifasService, navierasSvc services.NavierasService, ses *session.Store, notifier Notifier, logger *zap.Logger) *TarifasController {
	activo := true
	return &TarifasController{
		svc:         svc,
		navierasSvc: navierasSvc,
		ses:         ses,
		notifier:    notifier,
		logger:      logger,
		filtros: models.FiltrosTarifa{
			Paginacion: models.PaginacionPorDefecto(),
			Activo:     &activo,
		},
		mostrarFiltros: true,
	}
}

func (c *TarifasController) GetTarifas(ctx context.Context) error {
	c.mu.Lock()
	c.enVuelo++
	filtros := c.filtros
	c.mu.Unlock()

	lista, err := c.svc.GetTarifas(ctx, filtros)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.enVuelo--
	if err != nil {
		c.err = err
		c.logger.Error("❌ Error cargando tarifas", zap.Error(err))
		return err
	}
	c.tarifas = lista.Data
	c.total = lista.Total
	c.err = nil
	return nil
}

// CargarNavieras trae las navieras activas para el dropdown
func (c *TarifasController) CargarNavieras(ctx context.Context) error {
	activo := true
	lista, err := c.navierasSvc.GetNavieras(ctx, models.FiltrosNaviera{
		Paginacion: models.Paginacion{Page: 1, Limit: 1000, Sord: "ASC", Sidx: "nombre"},
		Activo:     &activo,
	})
	if err != nil {
		c.logger.Error("❌ Error cargando navieras para dropdown", zap.Error(err))
		return err
	}
	c.mu.Lock()
	c.navierasOpciones = lista.Data
	c.mu.Unlock()
	return nil
}

func (c *TarifasController) SetFiltros(f models.FiltrosTarifa) {
	c.mu.Lock()
	defer c.mu.Unlock()
	paginacion := c.filtros.Paginacion
	c.filtros = f
	c.filtros.Paginacion = paginacion
}

func (c *TarifasController) OnFilterChange(ctx context.Context) error {
	c.mu.Lock()
	c.filtros.Page = 1
	c.filtros.Tipo = models.NormalizarTexto(c.filtros.Tipo)
	c.mu.Unlock()
	return c.GetTarifas(ctx)
}

func (c *TarifasController) OnPageChange(ctx context.Context, page int) error {
	c.mu.Lock()
	c.filtros.Page = page
	c.mu.Unlock()
	return c.GetTarifas(ctx)
}

func (c *TarifasController) ClearFilters(ctx context.Context) error {
	c.mu.Lock()
	c.filtros = models.FiltrosTarifa{Paginacion: models.PaginacionPorDefecto()}
	c.mu.Unlock()
	return c.GetTarifas(ctx)
}

func (c *TarifasController) ToggleFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mostrarFiltros = !c.mostrarFiltros
}

func (c *TarifasController) OpenNew() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tarifa = models.Tarifa{Activo: true}
	c.dialogo = true
}

func (c *TarifasController) Edit(t models.Tarifa) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tarifa = t
	c.dialogo = true
}

func (c *TarifasController) HideDialog() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialogo = false
}

func (c *TarifasController) ConfirmDelete(t models.Tarifa) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tarifa = t
	c.dialogoBorrar = true
}

// Save estampa el usuario de la sesión y crea o actualiza según el id
func (c *TarifasController) Save(ctx context.Context, t models.Tarifa) error {
	t.UsuarioID = c.ses.UsuarioID()
	if t.ID != 0 {
		return c.update(ctx, t)
	}
	return c.create(ctx, t)
}

func (c *TarifasController) create(ctx context.Context, t models.Tarifa) error {
	c.mu.Lock()
	c.enVuelo++
	c.mu.Unlock()
	_, err := c.svc.CreateTarifa(ctx, t)
	c.mu.Lock()
	c.enVuelo--
	c.mu.Unlock()

	if err != nil {
		notificarErrorMutacion(c.notifier, err, "Conflicto al crear la tarifa", "Error al crear la tarifa")
		return err
	}
	notificarExito(c.notifier, "Tarifa creada correctamente")
	c.HideDialog()
	return c.GetTarifas(ctx)
}

func (c *TarifasController) update(ctx context.Context, t models.Tarifa) error {
	c.mu.Lock()
	c.enVuelo++
	c.mu.Unlock()
	_, err := c.svc.UpdateTarifa(ctx, t.ID, t)
	c.mu.Lock()
	c.enVuelo--
	c.mu.Unlock()

	if err != nil {
		notificarErrorMutacion(c.notifier, err, "Conflicto al actualizar la tarifa", "Error al actualizar la tarifa")
		return err
	}
	notificarExito(c.notifier, "Tarifa actualizada correctamente")
	c.HideDialog()
	return c.GetTarifas(ctx)
}

func (c *TarifasController) Delete(ctx context.Context, t models.Tarifa) error {
	err := c.svc.DeleteTarifa(ctx, t.ID)

	c.mu.Lock()
	c.dialogoBorrar = false
	c.mu.Unlock()

	if err != nil {
		notificarErrorBorrado(c.notifier, err,
			"No se puede eliminar la tarifa porque tiene solicitudes relacionadas",
			"Error al eliminar la tarifa")
		return err
	}
	notificarExito(c.notifier, "Tarifa eliminada correctamente")
	return c.GetTarifas(ctx)
}

func (c *TarifasController) Tarifas() []models.Tarifa {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tarifas
}

func (c *TarifasController) Tarifa() models.Tarifa {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tarifa
}

func (c *TarifasController) NavierasOpciones() []models.Naviera {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.navierasOpciones
}

func (c *TarifasController) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

func (c *TarifasController) Cargando() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enVuelo > 0
}

func (c *TarifasController) Error() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *TarifasController) Filtros() models.FiltrosTarifa {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filtros
}

func (c *TarifasController) DialogoVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dialogo
}

func (c *TarifasController) DialogoBorrarVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dialogoBorrar
}

func (c *TarifasController) MostrarFiltros() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mostrarFiltros
}
