package services

import (
	"context"
	"fmt"

	"solicitudes-admin/internal/api"
	"solicitudes-admin/internal/models"

	"go.uber.org/zap"
)

// NavierasService CRUD del recurso /navieras
type NavierasService interface {
	GetNavieras(ctx context.Context, filtros models.FiltrosNaviera) (*models.NavierasList, error)
	GetNaviera(ctx context.Context, id int) (*models.Naviera, error)
	CreateNaviera(ctx context.Context, naviera models.Naviera) (*models.Naviera, error)
	UpdateNaviera(ctx context.Context, id int, naviera models.Naviera) (*models.Naviera, error)
	DeleteNaviera(ctx context.Context, id int) error
}

type navierasService struct {
	client *api.Client
	logger *zap.Logger
}

// NewNavierasService crea una nueva instancia del servicio
func NewNavierasService(client *api.Client, logger *zap.Logger) NavierasService {
	return &navierasService{client: client, logger: logger}
}

// GetNavieras obtiene todas las navieras con filtros y paginación
func (s *navierasService) GetNavieras(ctx context.Context, filtros models.FiltrosNaviera) (*models.NavierasList, error) {
	var lista models.NavierasList
	if err := s.client.Get(ctx, "/navieras", filtros.Query(), &lista); err != nil {
		return nil, err
	}
	return &lista, nil
}

func (s *navierasService) GetNaviera(ctx context.Context, id int) (*models.Naviera, error) {
	var naviera models.Naviera
	if err := s.client.Get(ctx, fmt.Sprintf("/navieras/%d", id), nil, &naviera); err != nil {
		return nil, err
	}
	return &naviera, nil
}

func (s *navierasService) CreateNaviera(ctx context.Context, naviera models.Naviera) (*models.Naviera, error) {
	var creada models.Naviera
	if err := s.client.Post(ctx, "/navieras", naviera, &creada); err != nil {
		return nil, err
	}
	return &creada, nil
}

func (s *navierasService) UpdateNaviera(ctx context.Context, id int, naviera models.Naviera) (*models.Naviera, error) {
	var actualizada models.Naviera
	if err := s.client.Patch(ctx, fmt.Sprintf("/navieras/%d", id), naviera, &actualizada); err != nil {
		return nil, err
	}
	return &actualizada, nil
}

func (s *navierasService) DeleteNaviera(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/navieras/%d", id), nil)
}
