package controllers

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"solicitudes-admin/internal/api"
	"solicitudes-admin/internal/config"
	"solicitudes-admin/internal/models"
	"solicitudes-admin/internal/services"
	"solicitudes-admin/internal/session"
	"solicitudes-admin/internal/storage"
	"solicitudes-admin/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type navNulo struct{}

func (navNulo) Push(string) {}

func nuevaSesionPrueba(t *testing.T) *session.Store {
	t.Helper()
	local, err := storage.Open(t.TempDir()+"/session.db", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { local.Close() })
	return session.New(local, navNulo{}, zap.NewNop())
}

func nuevoEntornoNavieras(t *testing.T) (*NavierasController, *testutils.ServidorFalso, *NotifierRecorder) {
	t.Helper()
	srv := testutils.NuevoServidor(t)
	logger := zap.NewNop()
	ses := nuevaSesionPrueba(t)
	client := api.New(config.APIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, ses, logger)
	svc := services.NewNavierasService(client, logger)
	rec := &NotifierRecorder{}
	return NewNavierasController(svc, ses, rec, logger), srv, rec
}

func TestGetNavierasCargaListadoYTotal(t *testing.T) {
	ctrl, srv, _ := nuevoEntornoNavieras(t)
	srv.SetNavieras([]models.Naviera{
		{ID: 1, Nombre: "Maersk", Activo: true},
		{ID: 2, Nombre: "MSC", Activo: true},
	})

	require.NoError(t, ctrl.GetNavieras(context.Background()))

	assert.Len(t, ctrl.Navieras(), 2)
	assert.Equal(t, 2, ctrl.Total())
	assert.False(t, ctrl.Cargando())
	assert.NoError(t, ctrl.Error())
}

func TestDeleteSinDependientesRefrescaListado(t *testing.T) {
	ctrl, srv, rec := nuevoEntornoNavieras(t)
	srv.SetNavieras([]models.Naviera{
		{ID: 1, Nombre: "Maersk", Activo: true},
		{ID: 2, Nombre: "MSC", Activo: true},
	})
	require.NoError(t, ctrl.GetNavieras(context.Background()))

	require.NoError(t, ctrl.Delete(context.Background(), models.Naviera{ID: 1}))

	assert.Equal(t, SeveridadExito, rec.Notificaciones[0].Severidad)
	assert.Len(t, ctrl.Navieras(), 1)
	assert.Equal(t, "MSC", ctrl.Navieras()[0].Nombre)
	assert.False(t, ctrl.DialogoBorrarVisible())
}

func TestDeleteConDependientesAdvierteSinRefrescar(t *testing.T) {
	ctrl, srv, rec := nuevoEntornoNavieras(t)
	srv.SetNavieras([]models.Naviera{
		{ID: 1, Nombre: "Maersk", Activo: true},
		{ID: 2, Nombre: "MSC", Activo: true},
	})
	require.NoError(t, ctrl.GetNavieras(context.Background()))
	srv.MarcarConDependientes(2)

	// Si el controlador refrescara, estos datos aparecerían en el listado
	srv.SetNavieras([]models.Naviera{{ID: 99, Nombre: "Centinela"}})

	err := ctrl.Delete(context.Background(), models.Naviera{ID: 2})

	require.Error(t, err)
	assert.Equal(t, api.KindConflict, api.Classify(err))
	assert.Equal(t, SeveridadAdvertencia, rec.Ultima().Severidad)
	assert.Equal(t, "La naviera tiene solicitudes relacionadas", rec.Ultima().Detalle)
	assert.Len(t, ctrl.Navieras(), 2, "el listado no debe refrescarse con conflicto")
	assert.False(t, ctrl.DialogoBorrarVisible())
}

func TestOnFilterChangeVuelveAPagina1(t *testing.T) {
	ctrl, srv, _ := nuevoEntornoNavieras(t)

	require.NoError(t, ctrl.OnPageChange(context.Background(), 5))
	assert.Equal(t, "5", srv.UltimaQuery().Get("page"))

	nombre := "Maersk"
	filtros := ctrl.Filtros()
	filtros.Nombre = &nombre
	ctrl.SetFiltros(filtros)
	require.NoError(t, ctrl.OnFilterChange(context.Background()))

	assert.Equal(t, "1", srv.UltimaQuery().Get("page"))
	assert.Equal(t, "Maersk", srv.UltimaQuery().Get("nombre"))
}

func TestFiltrosVaciosNoViajanAlBackend(t *testing.T) {
	ctrl, srv, _ := nuevoEntornoNavieras(t)

	vacio := ""
	filtros := ctrl.Filtros()
	filtros.Nombre = &vacio
	filtros.Descripcion = &vacio
	ctrl.SetFiltros(filtros)
	require.NoError(t, ctrl.OnFilterChange(context.Background()))

	q := srv.UltimaQuery()
	assert.False(t, q.Has("nombre"))
	assert.False(t, q.Has("descripcion"))
}

func TestCreateConValidacion400MuestraTodosLosMensajes(t *testing.T) {
	ctrl, srv, rec := nuevoEntornoNavieras(t)
	_ = srv

	err := ctrl.Save(context.Background(), models.Naviera{Nombre: ""})

	require.Error(t, err)
	ultima := rec.Ultima()
	assert.Equal(t, SeveridadAdvertencia, ultima.Severidad)
	assert.Contains(t, ultima.Detalle, "El nombre es obligatorio")
	assert.Contains(t, ultima.Detalle, "El nombre debe tener al menos 3 caracteres")
	assert.Contains(t, ultima.Detalle, "El nombre no puede exceder los 100 caracteres")
	assert.Equal(t, 2, strings.Count(ultima.Detalle, " | "))
}

func TestCreateDuplicadoAdvierteConMensajeDelBackend(t *testing.T) {
	ctrl, srv, rec := nuevoEntornoNavieras(t)
	srv.SetNavieras([]models.Naviera{{ID: 1, Nombre: "Maersk", Activo: true}})

	err := ctrl.Save(context.Background(), models.Naviera{Nombre: "Maersk"})

	require.Error(t, err)
	assert.Equal(t, api.KindConflict, api.Classify(err))
	assert.Equal(t, SeveridadAdvertencia, rec.Ultima().Severidad)
	assert.Equal(t, "Ya existe una naviera con ese nombre", rec.Ultima().Detalle)
}

func TestCreateExitosoCierraDialogoYRefresca(t *testing.T) {
	ctrl, srv, rec := nuevoEntornoNavieras(t)
	_ = srv
	ctrl.OpenNew()

	require.NoError(t, ctrl.Save(context.Background(), models.Naviera{Nombre: "Hapag-Lloyd", Activo: true}))

	assert.Equal(t, SeveridadExito, rec.Notificaciones[0].Severidad)
	assert.False(t, ctrl.DialogoVisible())
	assert.Len(t, ctrl.Navieras(), 1)
}

func TestSaveEstampaUsuarioDeSesionEnCreateYUpdate(t *testing.T) {
	srv := testutils.NuevoServidor(t)
	logger := zap.NewNop()
	ses := nuevaSesionPrueba(t)
	client := api.New(config.APIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, ses, logger)
	ses.SetAuthService(services.NewAuthService(client, logger))
	svc := services.NewNavierasService(client, logger)
	ctrl := NewNavierasController(svc, ses, &NotifierRecorder{}, logger)

	require.NoError(t, ses.Login(context.Background(), testutils.UsuarioValido, testutils.ClaveValida))
	require.Equal(t, 7, ses.UsuarioID())

	require.NoError(t, ctrl.Save(context.Background(), models.Naviera{Nombre: "Evergreen", Activo: true}))
	require.Len(t, ctrl.Navieras(), 1)
	creada := ctrl.Navieras()[0]
	assert.Equal(t, 7, creada.UsuarioID)

	creada.UsuarioID = 0
	require.NoError(t, ctrl.Save(context.Background(), creada))
	require.Len(t, ctrl.Navieras(), 1)
	assert.Equal(t, 7, ctrl.Navieras()[0].UsuarioID, "el update también debe estampar el usuario")
}

func TestErrorDeRedNotificaGenerico(t *testing.T) {
	srv := testutils.NuevoServidor(t)
	logger := zap.NewNop()
	ses := nuevaSesionPrueba(t)
	client := api.New(config.APIConfig{BaseURL: srv.URL, Timeout: 2 * time.Second}, ses, logger)
	svc := services.NewNavierasService(client, logger)
	rec := &NotifierRecorder{}
	ctrl := NewNavierasController(svc, ses, rec, logger)
	srv.Close()

	err := ctrl.Save(context.Background(), models.Naviera{Nombre: "Evergreen"})

	require.Error(t, err)
	assert.Equal(t, SeveridadError, rec.Ultima().Severidad)
	assert.Equal(t, "Error al crear la naviera", rec.Ultima().Detalle)
}

func TestGetNavierasConcurrentesDejanEstadoConsistente(t *testing.T) {
	ctrl, srv, _ := nuevoEntornoNavieras(t)
	srv.SetNavieras([]models.Naviera{
		{ID: 1, Nombre: "Maersk", Activo: true},
		{ID: 2, Nombre: "MSC", Activo: true},
		{ID: 3, Nombre: "CMA CGM", Activo: true},
	})
	srv.SetRetardoListado(30 * time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = ctrl.GetNavieras(context.Background())
		}()
	}
	wg.Wait()

	assert.False(t, ctrl.Cargando(), "sin peticiones en vuelo, Cargando debe ser false")
	assert.Equal(t, 3, ctrl.Total())
	assert.Len(t, ctrl.Navieras(), 3)
}
