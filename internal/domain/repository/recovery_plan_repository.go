package repository

import (
	"context"

	"aeron-recovery-service/internal/domain/entity"
)

// RecoveryPlanRepository records generated recovery plans for later review
type RecoveryPlanRepository interface {
	Save(ctx context.Context, plan *entity.RecoveryPlan) error
	FindRecent(ctx context.Context, limit int) ([]*entity.RecoveryPlan, error)
}
