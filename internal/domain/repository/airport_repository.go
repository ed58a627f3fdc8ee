package repository

import (
	"context"

	"aeron-recovery-service/internal/domain/entity"
)

// AirportRepository defines the interface for airport master data lookups
type AirportRepository interface {
	GetByAirportCode(ctx context.Context, code string) (*entity.Airport, error)
}
