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

func nuevoEntornoUsuarios(t *testing.T) (*UsuariosController, *testutils.ServidorFalso, *NotifierRecorder) {
	t.Helper()
	srv := testutils.NuevoServidor(t)
	logger := zap.NewNop()
	ses := nuevaSesionPrueba(t)
	client := api.New(config.APIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, ses, logger)
	svc := services.NewUsuariosService(client, logger)
	rolesSvc := services.NewRolesService(client, logger)
	rec := &NotifierRecorder{}
	return NewUsuariosController(svc, rolesSvc, ses, rec, logger), srv, rec
}

func TestCargarRolesParaDropdown(t *testing.T) {
	ctrl, srv, _ := nuevoEntornoUsuarios(t)
	srv.SetRoles([]models.Rol{
		{ID: 1, Nombre: "administrador", Activo: true},
		{ID: 2, Nombre: "cliente", Activo: true},
	})

	require.NoError(t, ctrl.CargarRoles(context.Background()))

	assert.Len(t, ctrl.RolesOpciones(), 2)
	q := srv.UltimaQuery()
	assert.Equal(t, "1000", q.Get("limit"))
	assert.Equal(t, "true", q.Get("activo"))
}

func TestCreateUsuarioDuplicadoAdvierte(t *testing.T) {
	ctrl, srv, rec := nuevoEntornoUsuarios(t)
	srv.SetUsuarios([]models.Usuario{
		{ID: 1, Usuario: "jperez", Correo: "jperez@puerto.bo", Activo: true},
	})

	err := ctrl.Save(context.Background(), models.Usuario{
		Usuario: "otro",
		Correo:  "jperez@puerto.bo",
	})

	require.Error(t, err)
	assert.Equal(t, api.KindConflict, api.Classify(err))
	assert.Equal(t, "Ya existe un usuario con ese correo", rec.Ultima().Detalle)
}

func TestEditLimpiaLaClave(t *testing.T) {
	ctrl, _, _ := nuevoEntornoUsuarios(t)

	ctrl.Edit(models.Usuario{ID: 3, Usuario: "jperez", Clave: "hash-que-no-va"})

	assert.Empty(t, ctrl.Usuario().Clave)
	assert.True(t, ctrl.DialogoVisible())
}

func TestResetPasswordCierraDialogo(t *testing.T) {
	ctrl, srv, rec := nuevoEntornoUsuarios(t)
	srv.SetUsuarios([]models.Usuario{
		{ID: 4, Usuario: "mlopez", Correo: "mlopez@puerto.bo", Activo: true},
	})
	ctrl.ConfirmResetPassword(models.Usuario{ID: 4})
	require.True(t, ctrl.DialogoResetVisible())

	require.NoError(t, ctrl.ResetPassword(context.Background(), models.Usuario{ID: 4}))

	assert.Equal(t, SeveridadExito, rec.Ultima().Severidad)
	assert.Equal(t, "Contraseña restablecida", rec.Ultima().Detalle)
	assert.False(t, ctrl.DialogoResetVisible())
	assert.Equal(t, []int{4}, srv.ResetsClave())
}

func TestResetPasswordInexistenteAdvierte(t *testing.T) {
	ctrl, _, rec := nuevoEntornoUsuarios(t)

	err := ctrl.ResetPassword(context.Background(), models.Usuario{ID: 99})

	require.Error(t, err)
	assert.Equal(t, api.KindNotFound, api.Classify(err))
	assert.Equal(t, "Recurso no encontrado", rec.Ultima().Detalle)
}
