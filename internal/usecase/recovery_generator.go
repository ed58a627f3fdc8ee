package usecase

import (
	"aeron-recovery-service/internal/domain/entity"
	"aeron-recovery-service/templates"
)

// RecoveryOptionGenerator produces a recovery plan for a selection of flights.
// It is a fixed rule set: only the number of ids influences the result.
type RecoveryOptionGenerator struct {
	options []templates.RecoveryOptionTemplate
	clock   Clock
	ids     IDGenerator
}

// NewRecoveryOptionGenerator creates a generator using the default option templates
func NewRecoveryOptionGenerator(clock Clock, ids IDGenerator) *RecoveryOptionGenerator {
	if clock == nil {
		clock = RealClock{}
	}
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &RecoveryOptionGenerator{
		options: templates.DefaultRecoveryOptions(),
		clock:   clock,
		ids:     ids,
	}
}

// Generate builds a plan for flightIDs. Ids are neither deduplicated nor
// checked against the store, and TotalPassengers is left at 0.
func (g *RecoveryOptionGenerator) Generate(flightIDs []int) (*entity.RecoveryPlan, error) {
	if len(flightIDs) == 0 {
		return nil, entity.NewValidationError("Flight IDs are required")
	}

	ids := make([]int, len(flightIDs))
	copy(ids, flightIDs)

	return &entity.RecoveryPlan{
		PlanID:                g.ids.New(),
		FlightIDs:             ids,
		AffectedFlights:       len(flightIDs),
		TotalPassengers:       0,
		EstimatedRecoveryTime: templates.EstimatedRecoveryTime,
		Options:               templates.Render(g.options),
		GeneratedAt:           g.clock.Now(),
	}, nil
}
