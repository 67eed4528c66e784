package services

import (
	"context"
	"fmt"

	"solicitudes-admin/internal/api"
	"solicitudes-admin/internal/models"

	"go.uber.org/zap"
)

// ConfiguracionesService recurso /configuraciones. La configuración
// principal es el registro con id fijo 1.
type ConfiguracionesService interface {
	GetPrincipal(ctx context.Context) (*models.Configuracion, error)
	UpdatePrincipal(ctx context.Context, cfg models.Configuracion) (*models.Configuracion, error)
	GetConfiguraciones(ctx context.Context) ([]models.Configuracion, error)
	CreateConfiguracion(ctx context.Context, cfg models.Configuracion) (*models.Configuracion, error)
	UpdateConfiguracion(ctx context.Context, id int, cfg models.Configuracion) (*models.Configuracion, error)
}

type configuracionesService struct {
	client *api.Client
	logger *zap.Logger
}

// NewConfiguracionesService crea una nueva instancia del servicio
func NewConfiguracionesService(client *api.Client, logger *zap.Logger) ConfiguracionesService {
	return &configuracionesService{client: client, logger: logger}
}

// GetPrincipal obtiene la configuración principal (ID: 1)
func (s *configuracionesService) GetPrincipal(ctx context.Context) (*models.Configuracion, error) {
	return s.get(ctx, models.ConfiguracionPrincipalID)
}

// UpdatePrincipal actualiza la configuración principal (ID: 1)
func (s *configuracionesService) UpdatePrincipal(ctx context.Context, cfg models.Configuracion) (*models.Configuracion, error) {
	return s.UpdateConfiguracion(ctx, models.ConfiguracionPrincipalID, cfg)
}

func (s *configuracionesService) GetConfiguraciones(ctx context.Context) ([]models.Configuracion, error) {
	var lista []models.Configuracion
	if err := s.client.Get(ctx, "/configuraciones", nil, &lista); err != nil {
		return nil, err
	}
	return lista, nil
}

func (s *configuracionesService) CreateConfiguracion(ctx context.Context, cfg models.Configuracion) (*models.Configuracion, error) {
	var creada models.Configuracion
	if err := s.client.Post(ctx, "/configuraciones", cfg, &creada); err != nil {
		return nil, err
	}
	return &creada, nil
}

func (s *configuracionesService) UpdateConfiguracion(ctx context.Context, id int, cfg models.Configuracion) (*models.Configuracion, error) {
	var actualizada models.Configuracion
	if err := s.client.Patch(ctx, fmt.Sprintf("/configuraciones/%d", id), cfg, &actualizada); err != nil {
		return nil, err
	}
	return &actualizada, nil
}

func (s *configuracionesService) get(ctx context.Context, id int) (*models.Configuracion, error) {
	var cfg models.Configuracion
	if err := s.client.Get(ctx, fmt.Sprintf("/configuraciones/%d", id), nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
