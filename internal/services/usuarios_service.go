package services

import (
	"context"
	"fmt"

	"solicitudes-admin/internal/api"
	"solicitudes-admin/internal/models"

	"go.uber.org/zap"
)

// UsuariosService CRUD del recurso /usuarios
type UsuariosService interface {
	GetUsuarios(ctx context.Context, filtros models.FiltrosUsuario) (*models.UsuariosList, error)
	GetUsuario(ctx context.Context, id int) (*models.Usuario, error)
	CreateUsuario(ctx context.Context, usuario models.Usuario) (*models.Usuario, error)
	UpdateUsuario(ctx context.Context, id int, usuario models.Usuario) (*models.Usuario, error)
	DeleteUsuario(ctx context.Context, id int) error
	// ResetPassword restablece la clave de un usuario a la generada por el backend
	ResetPassword(ctx context.Context, id int) (*models.MensajeResponse, error)
}

type usuariosService struct {
	client *api.Client
	logger *zap.Logger
}

// NewUsuariosService crea una nueva instancia del servicio
func NewUsuariosService(client *api.Client, logger *zap.Logger) UsuariosService {
	return &usuariosService{client: client, logger: logger}
}

func (s *usuariosService) GetUsuarios(ctx context.Context, filtros models.FiltrosUsuario) (*models.UsuariosList, error) {
	var lista models.UsuariosList
	if err := s.client.Get(ctx, "/usuarios", filtros.Query(), &lista); err != nil {
		return nil, err
	}
	return &lista, nil
}

func (s *usuariosService) GetUsuario(ctx context.Context, id int) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := s.client.Get(ctx, fmt.Sprintf("/usuarios/%d", id), nil, &usuario); err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (s *usuariosService) CreateUsuario(ctx context.Context, usuario models.Usuario) (*models.Usuario, error) {
	var creado models.Usuario
	if err := s.client.Post(ctx, "/usuarios", usuario, &creado); err != nil {
		return nil, err
	}
	return &creado, nil
}

func (s *usuariosService) UpdateUsuario(ctx context.Context, id int, usuario models.Usuario) (*models.Usuario, error) {
	var actualizado models.Usuario
	if err := s.client.Patch(ctx, fmt.Sprintf("/usuarios/%d", id), usuario, &actualizado); err != nil {
		return nil, err
	}
	return &actualizado, nil
}

func (s *usuariosService) DeleteUsuario(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/usuarios/%d", id), nil)
}

func (s *usuariosService) ResetPassword(ctx context.Context, id int) (*models.MensajeResponse, error) {
	var resp models.MensajeResponse
	if err := s.client.Patch(ctx, fmt.Sprintf("/usuarios/%d/reset-password", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
