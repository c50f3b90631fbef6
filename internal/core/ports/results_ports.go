package ports

import (
	"context"

	"github.com/ballotbox/api/internal/core/domain"
)

type ResultsService interface {
	Results(ctx context.Context) (*domain.ResultsSnapshot, error)
	Stats(ctx context.Context) (*domain.StatsSnapshot, error)
}

type HealthChecker interface {
	Check(ctx context.Context) (*domain.HealthReport, error)
}
