package controllers

import (
	"context"
	"sync"

	"solicitudes-admin/internal/models"
	"solicitudes-admin/internal/services"
	"solicitudes-admin/internal/session"

	"go.uber.org/zap"
)

// RolesController estado de la vista de roles
type RolesController struct {
	svc      services.RolesService
	ses      *session.Store
	notifier Notifier
	logger   *zap.Logger

	mu             sync.Mutex
	enVuelo        int
	roles          []models.Rol
	rol            models.Rol
	total          int
	err            error
	filtros        models.FiltrosRol
	dialogo        bool
	dialogoBorrar  bool
	mostrarFiltros bool
}

func NewRolesController(svc services.RolesService, ses *session.Store, notifier Notifier, logger *zap.Logger) *RolesController {
	activo := true
	return &RolesController{
		svc:      svc,
		ses:      ses,
		notifier: notifier,
		logger:   logger,
		filtros: models.FiltrosRol{
			Paginacion: models.PaginacionPorDefecto(),
			Activo:     &activo,
		},
		mostrarFiltros: true,
	}
}

func (c *RolesController) GetRoles(ctx context.Context) error {
	c.mu.Lock()
	c.enVuelo++
	filtros := c.filtros
	c.mu.Unlock()

	lista, err := c.svc.GetRoles(ctx, filtros)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.enVuelo--
	if err != nil {
		c.err = err
		c.logger.Error("❌ Error cargando roles", zap.Error(err))
		return err
	}
	c.roles = lista.Data
	c.total = lista.Total
	c.err = nil
	return nil
}

func (c *RolesController) SetFiltros(f models.FiltrosRol) {
	c.mu.Lock()
	defer c.mu.Unlock()
	paginacion := c.filtros.Paginacion
	c.filtros = f
	c.filtros.Paginacion = paginacion
}

func (c *RolesController) OnFilterChange(ctx context.Context) error {
	c.mu.Lock()
	c.filtros.Page = 1
	c.filtros.Nombre = models.NormalizarTexto(c.filtros.Nombre)
	c.filtros.Descripcion = models.NormalizarTexto(c.filtros.Descripcion)
	c.mu.Unlock()
	return c.GetRoles(ctx)
}

func (c *RolesController) OnPageChange(ctx context.Context, page int) error {
	c.mu.Lock()
	c.filtros.Page = page
	c.mu.Unlock()
	return c.GetRoles(ctx)
}

func (c *RolesController) ClearFilters(ctx context.Context) error {
	c.mu.Lock()
	c.filtros = models.FiltrosRol{Paginacion: models.PaginacionPorDefecto()}
	c.mu.Unlock()
	return c.GetRoles(ctx)
}

func (c *RolesController) ToggleFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mostrarFiltros = !c.mostrarFiltros
}

func (c *RolesController) OpenNew() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rol = models.Rol{Activo: true}
	c.dialogo = true
}

func (c *RolesController) Edit(r models.Rol) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rol = r
	c.dialogo = true
}

func (c *RolesController) HideDialog() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialogo = false
}

func (c *RolesController) ConfirmDelete(r models.Rol) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rol = r
	c.dialogoBorrar = true
}

// Save estampa el usuario de la sesión y crea o actualiza según el id
func (c *RolesController) Save(ctx context.Context, r models.Rol) error {
	r.UsuarioID = c.ses.UsuarioID()
	if r.ID != 0 {
		return c.update(ctx, r)
	}
	return c.create(ctx, r)
}

func (c *RolesController) create(ctx context.Context, r models.Rol) error {
	c.mu.Lock()
	c.enVuelo++
	c.mu.Unlock()
	_, err := c.svc.CreateRol(ctx, r)
	c.mu.Lock()
	c.enVuelo--
	c.mu.Unlock()

	if err != nil {
		notificarErrorMutacion(c.notifier, err, "Conflicto al crear el rol", "Error al crear el rol")
		return err
	}
	notificarExito(c.notifier, "Rol creado correctamente")
	c.HideDialog()
	return c.GetRoles(ctx)
}

func (c *RolesController) update(ctx context.Context, r models.Rol) error {
	c.mu.Lock()
	c.enVuelo++
	c.mu.Unlock()
	_, err := c.svc.UpdateRol(ctx, r.ID, r)
	c.mu.Lock()
	c.enVuelo--
	c.mu.Unlock()

	if err != nil {
		notificarErrorMutacion(c.notifier, err, "Conflicto al actualizar el rol", "Error al actualizar el rol")
		return err
	}
	notificarExito(c.notifier, "Rol actualizado correctamente")
	c.HideDialog()
	return c.GetRoles(ctx)
}

// Delete el diálogo se cierra siempre; con conflicto no se recarga
func (c *RolesController) Delete(ctx context.Context, r models.Rol) error {
	err := c.svc.DeleteRol(ctx, r.ID)

	c.mu.Lock()
	c.dialogoBorrar = false
	c.mu.Unlock()

	if err != nil {
		notificarErrorBorrado(c.notifier, err,
			"No se puede eliminar el rol porque tiene usuarios relacionados",
			"Error al eliminar el rol")
		return err
	}
	notificarExito(c.notifier, "Rol eliminado correctamente")
	return c.GetRoles(ctx)
}

func (c *RolesController) Roles() []models.Rol {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.roles
}

func (c *RolesController) Rol() models.Rol {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rol
}

func (c *RolesController) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

func (c *RolesController) Cargando() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enVuelo > 0
}

func (c *RolesController) Error() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *RolesController) Filtros() models.FiltrosRol {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filtros
}

func (c *RolesController) DialogoVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dialogo
}

func (c *RolesController) DialogoBorrarVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dialogoBorrar
}

func (c *RolesController) MostrarFiltros() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mostrarFiltros
}
