package controllers

import (
	"context"
	"fmt"
	"sync"

	"solicitudes-admin/internal/api"
	"solicitudes-admin/internal/models"
	"solicitudes-admin/internal/services"
	"solicitudes-admin/internal/session"

	"go.uber.org/zap"
)

// Modos de listado de solicitudes. Cada vista usa el mismo controlador
// apuntando a un endpoint distinto.
const (
	ModoTodas     = "todas"
	ModoHoy       = "hoy"
	ModoHistorial = "historial"
	ModoPasadas   = "pasadas"
)

// RolAdministrador nombre del rol con permisos completos
const RolAdministrador = "administrador"

// SolicitudesController estado de las vistas de solicitudes: el listado
// del día, el historial, el día anterior, los contadores por estado y
// los archivos adjuntos.
type SolicitudesController struct {
	svc         services.SolicitudesService
	navierasSvc services.NavierasService
	usuariosSvc services.UsuariosService
	ses         *session.Store
	notifier    Notifier
	logger      *zap.Logger

	mu               sync.Mutex
	enVuelo          int
	modo             string
	solicitudes      []models.Solicitud
	solicitud        models.Solicitud
	estadisticas     models.Estadisticas
	navierasOpciones []models.Naviera
	usuariosOpciones []models.Usuario
	total            int
	err              error
	filtros          models.FiltrosSolicitud
	dialogo          bool
	dialogoBorrar    bool
	mostrarFiltros   bool
}

func NewSolicitudesController(svc services.SolicitudesService, navierasSvc services.NavierasService, usuariosSvc services.UsuariosService, ses *session.Store, notifier Notifier, logger *zap.Logger) *SolicitudesController {
	return &SolicitudesController{
		svc:         svc,
		navierasSvc: navierasSvc,
		usuariosSvc: usuariosSvc,
		ses:         ses,
		notifier:    notifier,
		logger:      logger,
		modo:        ModoHoy,
		filtros: models.FiltrosSolicitud{
			Paginacion: models.PaginacionPorDefecto(),
		},
		mostrarFiltros: true,
	}
}

// SetModo selecciona el listado a consultar y vuelve a página 1
func (c *SolicitudesController) SetModo(modo string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modo = modo
	c.filtros.Page = 1
}

// IsAdmin el rol administrador ve todas las solicitudes y puede
// cambiar estados; los demás roles solo consultan
func (c *SolicitudesController) IsAdmin() bool {
	return c.ses.Rol() == RolAdministrador
}

// GetSolicitudes carga el listado del modo actual
func (c *SolicitudesController) GetSolicitudes(ctx context.Context) error {
	c.mu.Lock()
	c.enVuelo++
	filtros := c.filtros
	modo := c.modo
	c.mu.Unlock()

	lista, err := c.consultar(ctx, modo, filtros)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.enVuelo--
	if err != nil {
		c.err = err
		c.logger.Error("❌ Error cargando solicitudes",
			zap.String("modo", modo),
			zap.Error(err))
		return err
	}
	c.solicitudes = lista.Data
	c.total = lista.Total
	c.err = nil
	return nil
}

func (c *SolicitudesController) consultar(ctx context.Context, modo string, filtros models.FiltrosSolicitud) (*models.SolicitudesList, error) {
	switch modo {
	case ModoHoy:
		return c.svc.GetSolicitudesHoy(ctx, filtros)
	case ModoHistorial:
		return c.svc.GetHistorial(ctx, filtros)
	case ModoPasadas:
		return c.svc.GetSolicitudesPasadas(ctx, filtros)
	default:
		return c.svc.GetSolicitudes(ctx, filtros)
	}
}

// GetEstadisticas refresca los contadores por estado
func (c *SolicitudesController) GetEstadisticas(ctx context.Context) error {
	stats, err := c.svc.GetEstadisticas(ctx)
	if err != nil {
		c.logger.Error("❌ Error cargando estadísticas", zap.Error(err))
		return err
	}
	c.mu.Lock()
	c.estadisticas = *stats
	c.mu.Unlock()
	return nil
}

// CargarNavieras trae las navieras activas para el dropdown del formulario
func (c *SolicitudesController) CargarNavieras(ctx context.Context) error {
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

// CargarUsuarios trae los usuarios activos para el filtro por usuario,
// visible solo para el rol administrador
func (c *SolicitudesController) CargarUsuarios(ctx context.Context) error {
	activo := true
	lista, err := c.usuariosSvc.GetUsuarios(ctx, models.FiltrosUsuario{
		Paginacion: models.Paginacion{Page: 1, Limit: 1000, Sord: "ASC", Sidx: "usuario"},
		Activo:     &activo,
	})
	if err != nil {
		c.logger.Error("❌ Error cargando usuarios para dropdown", zap.Error(err))
		return err
	}
	c.mu.Lock()
	c.usuariosOpciones = lista.Data
	c.mu.Unlock()
	return nil
}

func (c *SolicitudesController) SetFiltros(f models.FiltrosSolicitud) {
	c.mu.Lock()
	defer c.mu.Unlock()
	paginacion := c.filtros.Paginacion
	c.filtros = f
	c.filtros.Paginacion = paginacion
}

func (c *SolicitudesController) OnFilterChange(ctx context.Context) error {
	c.mu.Lock()
	c.filtros.Page = 1
	c.filtros.BL = models.NormalizarTexto(c.filtros.BL)
	c.filtros.Contenedor = models.NormalizarTexto(c.filtros.Contenedor)
	c.filtros.Documento = models.NormalizarTexto(c.filtros.Documento)
	c.filtros.Tipo = models.NormalizarTexto(c.filtros.Tipo)
	c.filtros.Estado = models.NormalizarTexto(c.filtros.Estado)
	c.mu.Unlock()
	return c.GetSolicitudes(ctx)
}

func (c *SolicitudesController) OnPageChange(ctx context.Context, page int) error {
	c.mu.Lock()
	c.filtros.Page = page
	c.mu.Unlock()
	return c.GetSolicitudes(ctx)
}

func (c *SolicitudesController) ClearFilters(ctx context.Context) error {
	c.mu.Lock()
	c.filtros = models.FiltrosSolicitud{Paginacion: models.PaginacionPorDefecto()}
	c.mu.Unlock()
	return c.GetSolicitudes(ctx)
}

func (c *SolicitudesController) ToggleFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mostrarFiltros = !c.mostrarFiltros
}

func (c *SolicitudesController) OpenNew() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.solicitud = models.Solicitud{Tipo: models.TipoGateIn, TipoDocumento: "CI"}
	c.dialogo = true
}

func (c *SolicitudesController) Edit(s models.Solicitud) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.solicitud = s
	c.dialogo = true
}

func (c *SolicitudesController) HideDialog() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialogo = false
}

func (c *SolicitudesController) ConfirmDelete(s models.Solicitud) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.solicitud = s
	c.dialogoBorrar = true
}

// Save estampa el usuario de la sesión y crea o actualiza según el id
func (c *SolicitudesController) Save(ctx context.Context, s models.Solicitud) error {
	s.UsuarioID = c.ses.UsuarioID()
	if s.ID != 0 {
		return c.update(ctx, s)
	}
	return c.create(ctx, s)
}

func (c *SolicitudesController) create(ctx context.Context, s models.Solicitud) error {
	c.mu.Lock()
	c.enVuelo++
	c.mu.Unlock()
	_, err := c.svc.CreateSolicitud(ctx, s)
	c.mu.Lock()
	c.enVuelo--
	c.mu.Unlock()

	if err != nil {
		notificarErrorMutacion(c.notifier, err, "Conflicto al crear la solicitud", "Error al crear la solicitud")
		return err
	}
	notificarExito(c.notifier, "Solicitud creada correctamente")
	c.HideDialog()
	if err := c.GetSolicitudes(ctx); err != nil {
		return err
	}
	return c.GetEstadisticas(ctx)
}

func (c *SolicitudesController) update(ctx context.Context, s models.Solicitud) error {
	c.mu.Lock()
	c.enVuelo++
	c.mu.Unlock()
	_, err := c.svc.UpdateSolicitud(ctx, s.ID, s)
	c.mu.Lock()
	c.enVuelo--
	c.mu.Unlock()

	if err != nil {
		notificarErrorMutacion(c.notifier, err, "Conflicto al actualizar la solicitud", "Error al actualizar la solicitud")
		return err
	}
	notificarExito(c.notifier, "Solicitud actualizada correctamente")
	c.HideDialog()
	return c.GetSolicitudes(ctx)
}

func (c *SolicitudesController) Delete(ctx context.Context, s models.Solicitud) error {
	err := c.svc.DeleteSolicitud(ctx, s.ID)

	c.mu.Lock()
	c.dialogoBorrar = false
	c.mu.Unlock()

	if err != nil {
		notificarErrorBorrado(c.notifier, err,
			"No se puede eliminar la solicitud porque tiene registros relacionados",
			"Error al eliminar la solicitud")
		return err
	}
	notificarExito(c.notifier, "Solicitud eliminada correctamente")
	if err := c.GetSolicitudes(ctx); err != nil {
		return err
	}
	return c.GetEstadisticas(ctx)
}

// ChangeEstado pide la transición al backend y refresca listado y
// contadores. El valor no se valida acá, el backend decide.
func (c *SolicitudesController) ChangeEstado(ctx context.Context, s models.Solicitud, estado string) error {
	_, err := c.svc.ChangeEstado(ctx, s.ID, estado)
	if err != nil {
		notificarErrorMutacion(c.notifier, err, "Conflicto al cambiar el estado", "Error al cambiar el estado")
		return err
	}
	notificarExito(c.notifier, "Estado actualizado correctamente")
	if err := c.GetSolicitudes(ctx); err != nil {
		return err
	}
	return c.GetEstadisticas(ctx)
}

// UploadArchivo sube un adjunto del tipo indicado y refresca el listado
func (c *SolicitudesController) UploadArchivo(ctx context.Context, id int, tipo, nombre string, contenido []byte) error {
	var err error
	switch tipo {
	case services.ArchivoComprobante:
		err = c.svc.UploadComprobante(ctx, id, nombre, contenido)
	case services.ArchivoFactura:
		err = c.svc.UploadFactura(ctx, id, nombre, contenido)
	case services.ArchivoDress:
		err = c.svc.UploadDress(ctx, id, nombre, contenido)
	default:
		err = fmt.Errorf("tipo de archivo desconocido: %s", tipo)
		c.notifier.Notificar(Notificacion{Severidad: SeveridadError, Resumen: ResumenError, Detalle: "Tipo de archivo desconocido"})
		return err
	}
	if err != nil {
		notificarErrorMutacion(c.notifier, err, "Conflicto al subir el archivo", "Error al subir el archivo")
		return err
	}
	notificarExito(c.notifier, "Archivo subido correctamente")
	return c.GetSolicitudes(ctx)
}

// DownloadArchivo descarga un adjunto para guardarlo localmente
func (c *SolicitudesController) DownloadArchivo(ctx context.Context, id int, tipo string) (*api.Archivo, error) {
	var archivo *api.Archivo
	var err error
	switch tipo {
	case services.ArchivoComprobante:
		archivo, err = c.svc.DownloadComprobante(ctx, id)
	case services.ArchivoFactura:
		archivo, err = c.svc.DownloadFactura(ctx, id)
	case services.ArchivoDress:
		archivo, err = c.svc.DownloadDress(ctx, id)
	default:
		archivo, err = c.svc.ViewArchivo(ctx, id, tipo)
	}
	if err != nil {
		notificarErrorMutacion(c.notifier, err, "Conflicto al descargar el archivo", "Error al descargar el archivo")
		return nil, err
	}
	return archivo, nil
}

// ViewArchivo trae el adjunto por el canal autenticado para previsualizarlo
func (c *SolicitudesController) ViewArchivo(ctx context.Context, id int, tipo string) (*api.Archivo, error) {
	archivo, err := c.svc.ViewArchivo(ctx, id, tipo)
	if err != nil {
		notificarErrorMutacion(c.notifier, err, "Conflicto al abrir el archivo", "Error al abrir el archivo")
		return nil, err
	}
	return archivo, nil
}

// DeleteArchivo elimina un adjunto y refresca el listado
func (c *SolicitudesController) DeleteArchivo(ctx context.Context, id int, tipo string) error {
	if err := c.svc.DeleteFile(ctx, id, tipo); err != nil {
		notificarErrorBorrado(c.notifier, err,
			"No se puede eliminar el archivo",
			"Error al eliminar el archivo")
		return err
	}
	notificarExito(c.notifier, "Archivo eliminado correctamente")
	return c.GetSolicitudes(ctx)
}

// TiposOpciones opciones de tipo para el formulario
func (c *SolicitudesController) TiposOpciones() []models.Opcion {
	return models.TiposSolicitud()
}

// EstadosOpciones opciones de estado para el filtro
func (c *SolicitudesController) EstadosOpciones() []models.Opcion {
	return models.EstadosSolicitud()
}

func (c *SolicitudesController) Solicitudes() []models.Solicitud {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.solicitudes
}

func (c *SolicitudesController) Solicitud() models.Solicitud {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.solicitud
}

func (c *SolicitudesController) Estadisticas() models.Estadisticas {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.estadisticas
}

func (c *SolicitudesController) NavierasOpciones() []models.Naviera {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.navierasOpciones
}

func (c *SolicitudesController) UsuariosOpciones() []models.Usuario {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.usuariosOpciones
}

func (c *SolicitudesController) Modo() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.modo
}

func (c *SolicitudesController) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

func (c *SolicitudesController) Cargando() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enVuelo > 0
}

func (c *SolicitudesController) Error() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *SolicitudesController) Filtros() models.FiltrosSolicitud {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filtros
}

func (c *SolicitudesController) DialogoVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dialogo
}

func (c *SolicitudesController) DialogoBorrarVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dialogoBorrar
}

func (c *SolicitudesController) MostrarFiltros() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mostrarFiltros
}
