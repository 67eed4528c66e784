package services

import (
	"context"
	"fmt"

	"solicitudes-admin/internal/api"
	"solicitudes-admin/internal/models"

	"go.uber.org/zap"
)

// RolesService CRUD del recurso /roles
type RolesService interface {
	GetRoles(ctx context.Context, filtros models.FiltrosRol) (*models.RolesList, error)
	GetRol(ctx context.Context, id int) (*models.Rol, error)
	CreateRol(ctx context.Context, rol models.Rol) (*models.Rol, error)
	UpdateRol(ctx context.Context, id int, rol models.Rol) (*models.Rol, error)
	DeleteRol(ctx context.Context, id int) error
}

type rolesService struct {
	client *api.Client
	logger *zap.Logger
}

// NewRolesService crea una nueva instancia del servicio
func NewRolesService(client *api.Client, logger *zap.Logger) RolesService {
	return &rolesService{client: client, logger: logger}
}

func (s *rolesService) GetRoles(ctx context.Context, filtros models.FiltrosRol) (*models.RolesList, error) {
	var lista models.RolesList
	if err := s.client.Get(ctx, "/roles", filtros.Query(), &lista); err != nil {
		return nil, err
	}
	return &lista, nil
}

func (s *rolesService) GetRol(ctx context.Context, id int) (*models.Rol, error) {
	var rol models.Rol
	if err := s.client.Get(ctx, fmt.Sprintf("/roles/%d", id), nil, &rol); err != nil {
		return nil, err
	}
	return &rol, nil
}

func (s *rolesService) CreateRol(ctx context.Context, rol models.Rol) (*models.Rol, error) {
	var creado models.Rol
	if err := s.client.Post(ctx, "/roles", rol, &creado); err != nil {
		return nil, err
	}
	return &creado, nil
}

func (s *rolesService) UpdateRol(ctx context.Context, id int, rol models.Rol) (*models.Rol, error) {
	var actualizado models.Rol
	if err := s.client.Patch(ctx, fmt.Sprintf("/roles/%d", id), rol, &actualizado); err != nil {
		return nil, err
	}
	return &actualizado, nil
}

func (s *rolesService) DeleteRol(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/roles/%d", id), nil)
}
