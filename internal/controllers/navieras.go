package controllers

import (
	"context"
	"sync"

	"solicitudes-admin/internal/models"
	"solicitudes-admin/internal/services"
	"solicitudes-admin/internal/session"

	"go.uber.org/zap"
)

// NavierasController estado de la vista de navieras: listado paginado,
// filtros, diálogos de edición y borrado.
type NavierasController struct {
	svc      services.NavierasService
	ses      *session.Store
	notifier Notifier
	logger   *zap.Logger

	mu             sync.Mutex
	enVuelo        int
	navieras       []models.Naviera
	naviera        models.Naviera
	total          int
	err            error
	filtros        models.FiltrosNaviera
	dialogo        bool
	dialogoBorrar  bool
	mostrarFiltros bool
}

func NewNavierasController(svc services.NavierasService, ses *session.Store, notifier Notifier, logger *zap.Logger) *NavierasController {
	activo := true
	return &NavierasController{
		svc:      svc,
		ses:      ses,
		notifier: notifier,
		logger:   logger,
		filtros: models.FiltrosNaviera{
			Paginacion: models.PaginacionPorDefecto(),
			Activo:     &activo,
		},
		mostrarFiltros: true,
	}
}

// GetNavieras carga la página actual del listado. El contador de cargas
// en vuelo garantiza que Cargando() recién vuelva a false cuando no
// quede ninguna petición pendiente.
func (c *NavierasController) GetNavieras(ctx context.Context) error {
	c.mu.Lock()
	c.enVuelo++
	filtros := c.filtros
	c.mu.Unlock()

	lista, err := c.svc.GetNavieras(ctx, filtros)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.enVuelo--
	if err != nil {
		c.err = err
		c.logger.Error("❌ Error cargando navieras", zap.Error(err))
		return err
	}
	c.navieras = lista.Data
	c.total = lista.Total
	c.err = nil
	return nil
}

// SetFiltros reemplaza los filtros de búsqueda sin tocar la paginación
func (c *NavierasController) SetFiltros(f models.FiltrosNaviera) {
	c.mu.Lock()
	defer c.mu.Unlock()
	paginacion := c.filtros.Paginacion
	c.filtros = f
	c.filtros.Paginacion = paginacion
}

// OnFilterChange normaliza los textos, vuelve a página 1 y recarga
func (c *NavierasController) OnFilterChange(ctx context.Context) error {
	c.mu.Lock()
	c.filtros.Page = 1
	c.filtros.Nombre = models.NormalizarTexto(c.filtros.Nombre)
	c.filtros.Descripcion = models.NormalizarTexto(c.filtros.Descripcion)
	c.mu.Unlock()
	return c.GetNavieras(ctx)
}

func (c *NavierasController) OnPageChange(ctx context.Context, page int) error {
	c.mu.Lock()
	c.filtros.Page = page
	c.mu.Unlock()
	return c.GetNavieras(ctx)
}

// ClearFilters limpia todos los filtros, incluido el de activo
func (c *NavierasController) ClearFilters(ctx context.Context) error {
	c.mu.Lock()
	c.filtros = models.FiltrosNaviera{Paginacion: models.PaginacionPorDefecto()}
	c.mu.Unlock()
	return c.GetNavieras(ctx)
}

func (c *NavierasController) ToggleFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mostrarFiltros = !c.mostrarFiltros
}

// OpenNew prepara el diálogo con una naviera nueva, activa por defecto
func (c *NavierasController) OpenNew() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.naviera = models.Naviera{Activo: true}
	c.dialogo = true
}

func (c *NavierasController) Edit(n models.Naviera) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.naviera = n
	c.dialogo = true
}

func (c *NavierasController) HideDialog() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialogo = false
}

func (c *NavierasController) ConfirmDelete(n models.Naviera) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.naviera = n
	c.dialogoBorrar = true
}

// Save crea o actualiza según la naviera tenga id. En ambos casos se
// estampa el usuario de la sesión sobre el payload.
func (c *NavierasController) Save(ctx context.Context, n models.Naviera) error {
	n.UsuarioID = c.ses.UsuarioID()
	if n.ID != 0 {
		return c.update(ctx, n)
	}
	return c.create(ctx, n)
}

func (c *NavierasController) create(ctx context.Context, n models.Naviera) error {
	c.mu.Lock()
	c.enVuelo++
	c.mu.Unlock()
	_, err := c.svc.CreateNaviera(ctx, n)
	c.mu.Lock()
	c.enVuelo--
	c.mu.Unlock()

	if err != nil {
		notificarErrorMutacion(c.notifier, err, "Conflicto al crear la naviera", "Error al crear la naviera")
		return err
	}
	notificarExito(c.notifier, "Naviera creada correctamente")
	c.HideDialog()
	return c.GetNavieras(ctx)
}

func (c *NavierasController) update(ctx context.Context, n models.Naviera) error {
	c.mu.Lock()
	c.enVuelo++
	c.mu.Unlock()
	_, err := c.svc.UpdateNaviera(ctx, n.ID, n)
	c.mu.Lock()
	c.enVuelo--
	c.mu.Unlock()

	if err != nil {
		notificarErrorMutacion(c.notifier, err, "Conflicto al actualizar la naviera", "Error al actualizar la naviera")
		return err
	}
	notificarExito(c.notifier, "Naviera actualizada correctamente")
	c.HideDialog()
	return c.GetNavieras(ctx)
}

// Delete elimina la naviera seleccionada. El diálogo se cierra siempre;
// si el backend responde conflicto el listado NO se recarga, la fila
// sigue existiendo.
func (c *NavierasController) Delete(ctx context.Context, n models.Naviera) error {
	err := c.svc.DeleteNaviera(ctx, n.ID)

	c.mu.Lock()
	c.dialogoBorrar = false
	c.mu.Unlock()

	if err != nil {
		notificarErrorBorrado(c.notifier, err,
			"No se puede eliminar la naviera porque tiene solicitudes relacionadas",
			"Error al eliminar la naviera")
		return err
	}
	notificarExito(c.notifier, "Naviera eliminada correctamente")
	return c.GetNavieras(ctx)
}

func (c *NavierasController) Navieras() []models.Naviera {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.navieras
}

func (c *NavierasController) Naviera() models.Naviera {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.naviera
}

func (c *NavierasController) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

func (c *NavierasController) Cargando() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enVuelo > 0
}

func (c *NavierasController) Error() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *NavierasController) Filtros() models.FiltrosNaviera {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filtros
}

func (c *NavierasController) DialogoVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dialogo
}

func (c *NavierasController) DialogoBorrarVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dialogoBorrar
}

func (c *NavierasController) MostrarFiltros() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mostrarFiltros
}
