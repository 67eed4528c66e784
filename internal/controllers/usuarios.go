package controllers

import (
	"context"
	"sync"

	"solicitudes-admin/internal/models"
	"solicitudes-admin/internal/services"
	"solicitudes-admin/internal/session"

	"go.uber.org/zap"
)

// UsuariosController estado de la vista de usuarios. Además del listado
// mantiene las opciones de rol para el dropdown del formulario.
type UsuariosController struct {
	svc      services.UsuariosService
	rolesSvc services.RolesService
	ses      *session.Store
	notifier Notifier
	logger   *zap.Logger

	mu             sync.Mutex
	enVuelo        int
	usuarios       []models.Usuario
	usuario        models.Usuario
	rolesOpciones  []models.Rol
	total          int
	err            error
	filtros        models.FiltrosUsuario
	dialogo        bool
	dialogoBorrar  bool
	dialogoReset   bool
	mostrarFiltros bool
}

func NewUsuariosController(svc services.UsuariosService, rolesSvc services.RolesService, ses *session.Store, notifier Notifier, logger *zap.Logger) *UsuariosController {
	activo := true
	return &UsuariosController{
		svc:      svc,
		rolesSvc: rolesSvc,
		ses:      ses,
		notifier: notifier,
		logger:   logger,
		filtros: models.FiltrosUsuario{
			Paginacion: models.PaginacionPorDefecto(),
			Activo:     &activo,
		},
		mostrarFiltros: true,
	}
}

func (c *UsuariosController) GetUsuarios(ctx context.Context) error {
	c.mu.Lock()
	c.enVuelo++
	filtros := c.filtros
	c.mu.Unlock()

	lista, err := c.svc.GetUsuarios(ctx, filtros)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.enVuelo--
	if err != nil {
		c.err = err
		c.logger.Error("❌ Error cargando usuarios", zap.Error(err))
		return err
	}
	c.usuarios = lista.Data
	c.total = lista.Total
	c.err = nil
	return nil
}

// CargarRoles trae los roles activos para el dropdown del formulario.
// Pide hasta 1000 filas, el dropdown no se pagina.
func (c *UsuariosController) CargarRoles(ctx context.Context) error {
	activo := true
	lista, err := c.rolesSvc.GetRoles(ctx, models.FiltrosRol{
		Paginacion: models.Paginacion{Page: 1, Limit: 1000, Sord: "ASC", Sidx: "nombre"},
		Activo:     &activo,
	})
	if err != nil {
		c.logger.Error("❌ Error cargando roles para dropdown", zap.Error(err))
		return err
	}
	c.mu.Lock()
	c.rolesOpciones = lista.Data
	c.mu.Unlock()
	return nil
}

func (c *UsuariosController) SetFiltros(f models.FiltrosUsuario) {
	c.mu.Lock()
	defer c.mu.Unlock()
	paginacion := c.filtros.Paginacion
	c.filtros = f
	c.filtros.Paginacion = paginacion
}

func (c *UsuariosController) OnFilterChange(ctx context.Context) error {
	c.mu.Lock()
	c.filtros.Page = 1
	c.filtros.Usuario = models.NormalizarTexto(c.filtros.Usuario)
	c.filtros.Nombre = models.NormalizarTexto(c.filtros.Nombre)
	c.filtros.Correo = models.NormalizarTexto(c.filtros.Correo)
	c.mu.Unlock()
	return c.GetUsuarios(ctx)
}

func (c *UsuariosController) OnPageChange(ctx context.Context, page int) error {
	c.mu.Lock()
	c.filtros.Page = page
	c.mu.Unlock()
	return c.GetUsuarios(ctx)
}

func (c *UsuariosController) ClearFilters(ctx context.Context) error {
	c.mu.Lock()
	c.filtros = models.FiltrosUsuario{Paginacion: models.PaginacionPorDefecto()}
	c.mu.Unlock()
	return c.GetUsuarios(ctx)
}

func (c *UsuariosController) ToggleFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mostrarFiltros = !c.mostrarFiltros
}

func (c *UsuariosController) OpenNew() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.usuario = models.Usuario{Activo: true}
	c.dialogo = true
}

func (c *UsuariosController) Edit(u models.Usuario) {
	c.mu.Lock()
	defer c.mu.Unlock()
	u.Clave = ""
	c.usuario = u
	c.dialogo = true
}

func (c *UsuariosController) HideDialog() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialogo = false
}

func (c *UsuariosController) ConfirmDelete(u models.Usuario) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.usuario = u
	c.dialogoBorrar = true
}

func (c *UsuariosController) ConfirmResetPassword(u models.Usuario) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.usuario = u
	c.dialogoReset = true
}

// Save estampa el usuario de la sesión y crea o actualiza según el id
func (c *UsuariosController) Save(ctx context.Context, u models.Usuario) error {
	u.UsuarioID = c.ses.UsuarioID()
	if u.ID != 0 {
		return c.update(ctx, u)
	}
	return c.create(ctx, u)
}

func (c *UsuariosController) create(ctx context.Context, u models.Usuario) error {
	c.mu.Lock()
	c.enVuelo++
	c.mu.Unlock()
	_, err := c.svc.CreateUsuario(ctx, u)
	c.mu.Lock()
	c.enVuelo--
	c.mu.Unlock()

	if err != nil {
		notificarErrorMutacion(c.notifier, err, "Conflicto al crear el usuario", "Error al crear el usuario")
		return err
	}
	notificarExito(c.notifier, "Usuario creado correctamente")
	c.HideDialog()
	return c.GetUsuarios(ctx)
}

// update no manda la clave: el cambio de contraseña tiene su propio flujo
func (c *UsuariosController) update(ctx context.Context, u models.Usuario) error {
	u.Clave = ""

	c.mu.Lock()
	c.enVuelo++
	c.mu.Unlock()
	_, err := c.svc.UpdateUsuario(ctx, u.ID, u)
	c.mu.Lock()
	c.enVuelo--
	c.mu.Unlock()

	if err != nil {
		notificarErrorMutacion(c.notifier, err, "Conflicto al actualizar el usuario", "Error al actualizar el usuario")
		return err
	}
	notificarExito(c.notifier, "Usuario actualizado correctamente")
	c.HideDialog()
	return c.GetUsuarios(ctx)
}

func (c *UsuariosController) Delete(ctx context.Context, u models.Usuario) error {
	err := c.svc.DeleteUsuario(ctx, u.ID)

	c.mu.Lock()
	c.dialogoBorrar = false
	c.mu.Unlock()

	if err != nil {
		notificarErrorBorrado(c.notifier, err,
			"No se puede eliminar el usuario porque tiene solicitudes relacionadas",
			"Error al eliminar el usuario")
		return err
	}
	notificarExito(c.notifier, "Usuario eliminado correctamente")
	return c.GetUsuarios(ctx)
}

// ResetPassword restablece la clave del usuario seleccionado
func (c *UsuariosController) ResetPassword(ctx context.Context, u models.Usuario) error {
	resp, err := c.svc.ResetPassword(ctx, u.ID)

	c.mu.Lock()
	c.dialogoReset = false
	c.mu.Unlock()

	if err != nil {
		notificarErrorMutacion(c.notifier, err, "Conflicto al restablecer la contraseña", "Error al restablecer la contraseña")
		return err
	}
	detalle := "Contraseña restablecida correctamente"
	if resp != nil && resp.Message != "" {
		detalle = resp.Message
	}
	notificarExito(c.notifier, detalle)
	return nil
}

func (c *UsuariosController) Usuarios() []models.Usuario {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.usuarios
}

func (c *UsuariosController) Usuario() models.Usuario {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.usuario
}

// RolesOpciones opciones para el dropdown de rol, label=nombre value=id
func (c *UsuariosController) RolesOpciones() []models.Rol {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rolesOpciones
}

func (c *UsuariosController) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

func (c *UsuariosController) Cargando() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enVuelo > 0
}

func (c *UsuariosController) Error() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *UsuariosController) Filtros() models.FiltrosUsuario {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filtros
}

func (c *UsuariosController) DialogoVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dialogo
}

func (c *UsuariosController) DialogoBorrarVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dialogoBorrar
}

func (c *UsuariosController) DialogoResetVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dialogoReset
}

func (c *UsuariosController) MostrarFiltros() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mostrarFiltros
}
