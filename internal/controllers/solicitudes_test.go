package controllers

import (
	"context"
	"testing"
	"time"

	"solicitudes-admin/internal/api"
	"solicitudes-admin/internal/config"
	"solicitudes-admin/internal/models"
	"solicitudes-admin/internal/services"
	"solicitudes-admin/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func nuevoEntornoSolicitudes(t *testing.T) (*SolicitudesController, *testutils.ServidorFalso, *NotifierRecorder) {
	t.Helper()
	srv := testutils.NuevoServidor(t)
	logger := zap.NewNop()
	ses := nuevaSesionPrueba(t)
	client := api.New(config.APIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, ses, logger)
	svc := services.NewSolicitudesService(client, logger)
	navierasSvc := services.NewNavierasService(client, logger)
	usuariosSvc := services.NewUsuariosService(client, logger)
	rec := &NotifierRecorder{}
	return NewSolicitudesController(svc, navierasSvc, usuariosSvc, ses, rec, logger), srv, rec
}

func TestGetSolicitudesPorModo(t *testing.T) {
	ctrl, srv, _ := nuevoEntornoSolicitudes(t)
	srv.SetSolicitudes([]models.Solicitud{
		{ID: 1, BL: "BL-001", Contenedor: "MSKU1234567", Tipo: models.TipoGateIn, Estado: models.EstadoPendiente},
	})

	for _, modo := range []string{ModoHoy, ModoHistorial, ModoPasadas, ModoTodas} {
		ctrl.SetModo(modo)
		require.NoError(t, ctrl.GetSolicitudes(context.Background()), "modo %s", modo)
		assert.Len(t, ctrl.Solicitudes(), 1)
		assert.Equal(t, 1, ctrl.Total())
	}
	assert.False(t, ctrl.Cargando())
}

func TestSetModoVuelveAPagina1(t *testing.T) {
	ctrl, srv, _ := nuevoEntornoSolicitudes(t)

	require.NoError(t, ctrl.OnPageChange(context.Background(), 4))
	assert.Equal(t, "4", srv.UltimaQuery().Get("page"))

	ctrl.SetModo(ModoHistorial)
	require.NoError(t, ctrl.GetSolicitudes(context.Background()))

	assert.Equal(t, "1", srv.UltimaQuery().Get("page"))
}

func TestChangeEstadoRefrescaListadoYEstadisticas(t *testing.T) {
	ctrl, srv, rec := nuevoEntornoSolicitudes(t)
	srv.SetSolicitudes([]models.Solicitud{
		{ID: 5, BL: "BL-005", Estado: models.EstadoPendiente},
	})
	srv.SetEstadisticas(models.Estadisticas{Total: 1, Verificadas: 1})

	err := ctrl.ChangeEstado(context.Background(), models.Solicitud{ID: 5}, models.EstadoVerificada)

	require.NoError(t, err)
	assert.Equal(t, SeveridadExito, rec.Notificaciones[0].Severidad)
	require.Len(t, ctrl.Solicitudes(), 1)
	assert.Equal(t, models.EstadoVerificada, ctrl.Solicitudes()[0].Estado)
	assert.Equal(t, 1, ctrl.Estadisticas().Verificadas)
}

func TestChangeEstadoInexistenteAdvierteNoEncontrado(t *testing.T) {
	ctrl, srv, rec := nuevoEntornoSolicitudes(t)
	_ = srv

	err := ctrl.ChangeEstado(context.Background(), models.Solicitud{ID: 999}, models.EstadoPagada)

	require.Error(t, err)
	assert.Equal(t, api.KindNotFound, api.Classify(err))
	assert.Equal(t, SeveridadAdvertencia, rec.Ultima().Severidad)
	assert.Equal(t, "Recurso no encontrado", rec.Ultima().Detalle)
}

func TestFiltrosDeSolicitudesSeNormalizan(t *testing.T) {
	ctrl, srv, _ := nuevoEntornoSolicitudes(t)

	vacio := ""
	bl := "BL-001"
	filtros := ctrl.Filtros()
	filtros.BL = &bl
	filtros.Contenedor = &vacio
	filtros.Estado = &vacio
	ctrl.SetFiltros(filtros)
	require.NoError(t, ctrl.OnFilterChange(context.Background()))

	q := srv.UltimaQuery()
	assert.Equal(t, "BL-001", q.Get("bl"))
	assert.False(t, q.Has("contenedor"))
	assert.False(t, q.Has("estado"))
	assert.Equal(t, "1", q.Get("page"))
}

func TestListadoViajaConTokenDeSesion(t *testing.T) {
	srv := testutils.NuevoServidor(t)
	logger := zap.NewNop()
	ses := nuevaSesionPrueba(t)
	client := api.New(config.APIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, ses, logger)
	authSvc := services.NewAuthService(client, logger)
	ses.SetAuthService(authSvc)
	svc := services.NewSolicitudesService(client, logger)
	navierasSvc := services.NewNavierasService(client, logger)
	usuariosSvc := services.NewUsuariosService(client, logger)
	ctrl := NewSolicitudesController(svc, navierasSvc, usuariosSvc, ses, &NotifierRecorder{}, logger)

	require.NoError(t, ses.Login(context.Background(), testutils.UsuarioValido, testutils.ClaveValida))
	require.NoError(t, ctrl.GetSolicitudes(context.Background()))

	assert.Equal(t, "Bearer "+testutils.TokenPrueba, srv.UltimoAuth())
	assert.True(t, ctrl.IsAdmin())
}

func TestArchivoSubirDescargarVerYEliminar(t *testing.T) {
	ctrl, srv, rec := nuevoEntornoSolicitudes(t)
	srv.SetSolicitudes([]models.Solicitud{
		{ID: 5, BL: "BL-005", Estado: models.EstadoPagada},
	})
	contenido := []byte("recibo de pago en PDF")

	err := ctrl.UploadArchivo(context.Background(), 5, services.ArchivoComprobante, "recibo.pdf", contenido)

	require.NoError(t, err)
	assert.Equal(t, SeveridadExito, rec.Notificaciones[0].Severidad)
	assert.True(t, srv.TieneArchivo(5, services.ArchivoComprobante))

	descargado, err := ctrl.DownloadArchivo(context.Background(), 5, services.ArchivoComprobante)
	require.NoError(t, err)
	assert.Equal(t, "recibo.pdf", descargado.Nombre)
	assert.Equal(t, contenido, descargado.Contenido)
	assert.NotEmpty(t, descargado.TipoMIME)

	vista, err := ctrl.ViewArchivo(context.Background(), 5, services.ArchivoComprobante)
	require.NoError(t, err)
	assert.Equal(t, contenido, vista.Contenido)

	require.NoError(t, ctrl.DeleteArchivo(context.Background(), 5, services.ArchivoComprobante))
	assert.False(t, srv.TieneArchivo(5, services.ArchivoComprobante))
	assert.Equal(t, SeveridadExito, rec.Ultima().Severidad)
}

func TestDescargarArchivoInexistenteAdvierteNoEncontrado(t *testing.T) {
	ctrl, _, rec := nuevoEntornoSolicitudes(t)

	_, err := ctrl.DownloadArchivo(context.Background(), 99, services.ArchivoFactura)

	require.Error(t, err)
	assert.Equal(t, api.KindNotFound, api.Classify(err))
	assert.Equal(t, "Recurso no encontrado", rec.Ultima().Detalle)
}

func TestOpcionesDeFormulario(t *testing.T) {
	ctrl, _, _ := nuevoEntornoSolicitudes(t)

	tipos := ctrl.TiposOpciones()
	estados := ctrl.EstadosOpciones()

	assert.Len(t, tipos, 4)
	assert.Equal(t, models.TipoGateIn, tipos[0].Value)
	assert.Len(t, estados, 5)
	assert.Equal(t, models.EstadoPendiente, estados[0].Value)
}
