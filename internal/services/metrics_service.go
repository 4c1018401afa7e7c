package services

import (
	"context"

	"turakBack/internal/models"
	"turakBack/internal/repositories"
)

type MetricsService struct {
	MetricsRepo *repositories.MetricsRepository
}

func (s *MetricsService) GetDashboardMetrics(ctx context.Context) (models.DashboardMetrics, error) {
	return s.MetricsRepo.GetDashboardMetrics(ctx)
}
