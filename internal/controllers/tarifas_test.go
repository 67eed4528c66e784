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

func nuevoEntornoTarifas(t *testing.T) (*TarifasController, *testutils.ServidorFalso, *NotifierRecorder) {
	t.Helper()
	srv := testutils.NuevoServidor(t)
	logger := zap.NewNop()
	ses := nuevaSesionPrueba(t)
	client := api.New(config.APIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, ses, logger)
	svc := services.NewTarifasService(client, logger)
	navierasSvc := services.NewNavierasService(client, logger)
	rec := &NotifierRecorder{}
	return NewTarifasController(svc, navierasSvc, ses, rec, logger), srv, rec
}

func TestGetTarifasCargaListadoYTotal(t *testing.T) {
	ctrl, srv, _ := nuevoEntornoTarifas(t)
	srv.SetTarifas([]models.Tarifa{
		{ID: 1, NavieraID: 3, Tipo: models.TipoGateIn, MontoBase: 150, Activo: true},
		{ID: 2, NavieraID: 3, Tipo: models.TipoDemora, MontoBase: 80, Activo: true},
	})

	require.NoError(t, ctrl.GetTarifas(context.Background()))

	assert.Len(t, ctrl.Tarifas(), 2)
	assert.Equal(t, 2, ctrl.Total())
	assert.False(t, ctrl.Cargando())
}

func TestCreateTarifaExitosoCierraDialogoYRefresca(t *testing.T) {
	ctrl, _, rec := nuevoEntornoTarifas(t)
	ctrl.OpenNew()

	err := ctrl.Save(context.Background(), models.Tarifa{
		NavieraID: 3,
		Tipo:      models.TipoGateIn,
		MontoBase: 150,
		Activo:    true,
	})

	require.NoError(t, err)
	assert.Equal(t, SeveridadExito, rec.Notificaciones[0].Severidad)
	assert.False(t, ctrl.DialogoVisible())
	assert.Len(t, ctrl.Tarifas(), 1)
}

func TestCreateTarifaSinNavieraMuestraMensajesDeValidacion(t *testing.T) {
	ctrl, _, rec := nuevoEntornoTarifas(t)

	err := ctrl.Save(context.Background(), models.Tarifa{MontoBase: 150})

	require.Error(t, err)
	assert.Equal(t, api.KindValidation, api.Classify(err))
	assert.Equal(t, SeveridadAdvertencia, rec.Ultima().Severidad)
	assert.Contains(t, rec.Ultima().Detalle, "La naviera es obligatoria")
	assert.Contains(t, rec.Ultima().Detalle, " | ")
}

func TestCreateTarifaDuplicadaAdvierteConflicto(t *testing.T) {
	ctrl, srv, rec := nuevoEntornoTarifas(t)
	srv.SetTarifas([]models.Tarifa{
		{ID: 1, NavieraID: 3, Tipo: models.TipoGateIn, MontoBase: 150, Activo: true},
	})

	err := ctrl.Save(context.Background(), models.Tarifa{NavieraID: 3, Tipo: models.TipoGateIn, MontoBase: 200})

	require.Error(t, err)
	assert.Equal(t, api.KindConflict, api.Classify(err))
	assert.Equal(t, "Ya existe una tarifa de ese tipo para la naviera", rec.Ultima().Detalle)
}

func TestUpdateTarifaRefrescaListado(t *testing.T) {
	ctrl, srv, rec := nuevoEntornoTarifas(t)
	srv.SetTarifas([]models.Tarifa{
		{ID: 1, NavieraID: 3, Tipo: models.TipoGateIn, MontoBase: 150, Activo: true},
	})

	err := ctrl.Save(context.Background(), models.Tarifa{ID: 1, NavieraID: 3, Tipo: models.TipoGateIn, MontoBase: 175, Activo: true})

	require.NoError(t, err)
	assert.Equal(t, SeveridadExito, rec.Notificaciones[0].Severidad)
	require.Len(t, ctrl.Tarifas(), 1)
	assert.InDelta(t, 175.0, ctrl.Tarifas()[0].MontoBase, 0.001)
}

func TestDeleteTarifaConDependientesAdvierteSinRefrescar(t *testing.T) {
	ctrl, srv, rec := nuevoEntornoTarifas(t)
	srv.SetTarifas([]models.Tarifa{
		{ID: 1, NavieraID: 3, Tipo: models.TipoGateIn, MontoBase: 150, Activo: true},
	})
	require.NoError(t, ctrl.GetTarifas(context.Background()))
	srv.MarcarConDependientes(1)

	err := ctrl.Delete(context.Background(), models.Tarifa{ID: 1})

	require.Error(t, err)
	assert.Equal(t, api.KindConflict, api.Classify(err))
	assert.Equal(t, "La tarifa tiene solicitudes relacionadas", rec.Ultima().Detalle)
	assert.Len(t, ctrl.Tarifas(), 1)
	assert.False(t, ctrl.DialogoBorrarVisible())
}

func TestDeleteTarifaSinDependientesRefresca(t *testing.T) {
	ctrl, srv, rec := nuevoEntornoTarifas(t)
	srv.SetTarifas([]models.Tarifa{
		{ID: 1, NavieraID: 3, Tipo: models.TipoGateIn, MontoBase: 150, Activo: true},
	})
	require.NoError(t, ctrl.GetTarifas(context.Background()))

	require.NoError(t, ctrl.Delete(context.Background(), models.Tarifa{ID: 1}))

	assert.Equal(t, SeveridadExito, rec.Notificaciones[0].Severidad)
	assert.Empty(t, ctrl.Tarifas())
}

func TestCargarNavierasParaDropdownDeTarifas(t *testing.T) {
	ctrl, srv, _ := nuevoEntornoTarifas(t)
	srv.SetNavieras([]models.Naviera{{ID: 3, Nombre: "Maersk", Activo: true}})

	require.NoError(t, ctrl.CargarNavieras(context.Background()))

	assert.Len(t, ctrl.NavierasOpciones(), 1)
	q := srv.UltimaQuery()
	assert.Equal(t, "1000", q.Get("limit"))
	assert.Equal(t, "true", q.Get("activo"))
}
