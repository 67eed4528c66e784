package services

import (
	"context"
	"fmt"

	"solicitudes-admin/internal/api"
	"solicitudes-admin/internal/models"

	"go.uber.org/zap"
)

// TarifasService CRUD del recurso /tarifas
type TarifasService interface {
	GetTarifas(ctx context.Context, filtros models.FiltrosTarifa) (*models.TarifasList, error)
	GetTarifa(ctx context.Context, id int) (*models.Tarifa, error)
	CreateTarifa(ctx context.Context, tarifa models.Tarifa) (*models.Tarifa, error)
	UpdateTarifa(ctx context.Context, id int, tarifa models.Tarifa) (*models.Tarifa, error)
	DeleteTarifa(ctx context.Context, id int) error
}

type tarifasService struct {
	client *api.Client
	logger *zap.Logger
}

// NewTarifasService crea una nueva instancia del servicio
func NewTarifasService(client *api.Client, logger *zap.Logger) TarifasService {
	return &tarifasService{client: client, logger: logger}
}

func (s *tarifasService) GetTarifas(ctx context.Context, filtros models.FiltrosTarifa) (*models.TarifasList, error) {
	var lista models.TarifasList
	if err := s.client.Get(ctx, "/tarifas", filtros.Query(), &lista); err != nil {
		return nil, err
	}
	return &lista, nil
}

func (s *tarifasService) GetTarifa(ctx context.Context, id int) (*models.Tarifa, error) {
	var tarifa models.Tarifa
	if err := s.client.Get(ctx, fmt.Sprintf("/tarifas/%d", id), nil, &tarifa); err != nil {
		return nil, err
	}
	return &tarifa, nil
}

func (s *tarifasService) CreateTarifa(ctx context.Context, tarifa models.Tarifa) (*models.Tarifa, error) {
	var creada models.Tarifa
	if err := s.client.Post(ctx, "/tarifas", tarifa, &creada); err != nil {
		return nil, err
	}
	return &creada, nil
}

func (s *tarifasService) UpdateTarifa(ctx context.Context, id int, tarifa models.Tarifa) (*models.Tarifa, error) {
	var actualizada models.Tarifa
	if err := s.client.Patch(ctx, fmt.Sprintf("/tarifas/%d", id), tarifa, &actualizada); err != nil {
		return nil, err
	}
	return &actualizada, nil
}

func (s *tarifasService) DeleteTarifa(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/tarifas/%d", id), nil)
}
