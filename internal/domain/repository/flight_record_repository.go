package repository

import (
	"context"

	"aeron-recovery-service/internal/domain/entity"
)

// FlightRecordRepository is the durable copy of the record store.
// The in-memory store stays authoritative; this is written through after each mutation.
type FlightRecordRepository interface {
	LoadAll(ctx context.Context) ([]*entity.FlightRecord, error)
	Save(ctx context.Context, record *entity.FlightRecord) error
	Delete(ctx context.Context, id int) error
	// LastID returns the highest id ever saved, deleted rows included. 0 when empty.
	LastID(ctx context.Context) (int, error)
}
