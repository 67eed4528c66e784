package services

import (
	"context"

	"solicitudes-admin/internal/api"
	"solicitudes-admin/internal/models"

	"go.uber.org/zap"
)

// DashboardService payload agregado del dashboard
type DashboardService interface {
	GetData(ctx context.Context) (*models.DashboardData, error)
}

type dashboardService struct {
	client *api.Client
	logger *zap.Logger
}

// NewDashboardService crea una nueva instancia del servicio
func NewDashboardService(client *api.Client, logger *zap.Logger) DashboardService {
	return &dashboardService{client: client, logger: logger}
}

// GetData obtiene /dashboard/data. Los campos ausentes quedan en su valor
// cero y las colecciones nulas se reemplazan por vacías, de modo que el
// consumidor nunca ve nils.
func (s *dashboardService) GetData(ctx context.Context) (*models.DashboardData, error) {
	data := models.DashboardPorDefecto()
	if err := s.client.Get(ctx, "/dashboard/data", nil, &data); err != nil {
		s.logger.Error("Error obteniendo datos del dashboard", zap.Error(err))
		return nil, err
	}
	if data.PaymentsTrend == nil {
		data.PaymentsTrend = []models.PuntoPago{}
	}
	if data.RequestTypeDistribution == nil {
		data.RequestTypeDistribution = map[string]int{}
	}
	if data.RequestStatusStats == nil {
		data.RequestStatusStats = []models.EstadoStat{}
	}
	if data.TopNavieras == nil {
		data.TopNavieras = []models.TopNaviera{}
	}
	return &data, nil
}
