package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"aeron-recovery-service/internal/domain/entity"
	"aeron-recovery-service/internal/domain/repository"
	"aeron-recovery-service/pkg/logger"
	"aeron-recovery-service/pkg/metrics"
)

// ErrPlanLogDisabled is returned when no recovery plan repository is configured
var ErrPlanLogDisabled = errors.New("recovery plan log is not configured")

// FlightService is the boundary used by the transport layer. The record store
// stays authoritative; the repositories are optional collaborators and may be nil.
type FlightService struct {
	store       *RecordStore
	engine      *QueryEngine
	stats       *StatisticsAggregator
	generator   *RecoveryOptionGenerator
	flightRepo  repository.FlightRecordRepository
	airportRepo repository.AirportRepository
	planRepo    repository.RecoveryPlanRepository
	metrics     *metrics.Metrics
	logger      logger.Logger
}

// NewFlightService creates a new flight service
func NewFlightService(
	store *RecordStore,
	engine *QueryEngine,
	stats *StatisticsAggregator,
	generator *RecoveryOptionGenerator,
	flightRepo repository.FlightRecordRepository,
	airportRepo repository.AirportRepository,
	planRepo repository.RecoveryPlanRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *FlightService {
	return &FlightService{
		store:       store,
		engine:      engine,
		stats:       stats,
		generator:   generator,
		flightRepo:  flightRepo,
		airportRepo: airportRepo,
		planRepo:    planRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// Restore loads persisted flights into the store and returns how many were loaded
func (s *FlightService) Restore(ctx context.Context) (int, error) {
	if s.flightRepo == nil {
		return 0, nil
	}
	records, err := s.flightRepo.LoadAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("load persisted flights: %w", err)
	}
	lastID, err := s.flightRepo.LastID(ctx)
	if err != nil {
		return 0, fmt.Errorf("load flight id sequence: %w", err)
	}
	s.store.Restore(records, lastID)
	s.refreshGauge()
	s.logger.Info("Restored persisted flights", "count", len(records), "lastId", lastID)
	return len(records), nil
}

// SeedSampleData creates the demo flights when the store is empty
func (s *FlightService) SeedSampleData(ctx context.Context, now time.Time) error {
	if s.store.Len() > 0 {
		s.logger.Info("Skipping sample data, store is not empty", "count", s.store.Len())
		return nil
	}
	for _, fields := range SampleFlights(now) {
		if _, err := s.Create(ctx, fields); err != nil {
			return fmt.Errorf("seed flight %s: %w", fields.FlightNumber, err)
		}
	}
	return nil
}

// List returns all flights in the default priority order
func (s *FlightService) List() []*entity.FlightRecord {
	return s.store.List()
}

// Get returns a single flight
func (s *FlightService) Get(id int) (*entity.FlightRecord, error) {
	return s.store.Get(id)
}

// Search returns flights matching term in the default order. A blank term returns all.
func (s *FlightService) Search(term string) []*entity.FlightRecord {
	records := s.store.List()
	if strings.TrimSpace(term) == "" {
		return records
	}
	return s.engine.Search(records, term)
}

// Filter returns flights matching the equality filters in the default order
func (s *FlightService) Filter(spec FilterSpec) []*entity.FlightRecord {
	return s.engine.Filter(s.store.List(), spec)
}

// Query applies search, filters and sort as the dashboard does
func (s *FlightService) Query(q Query) []*entity.FlightRecord {
	return s.engine.Apply(s.store.List(), q)
}

// Statistics summarises every flight, or only the query result when q is set
func (s *FlightService) Statistics(q *Query) entity.FlightStatistics {
	records := s.store.List()
	if q != nil {
		records = s.engine.Apply(records, *q)
	}
	return s.stats.Compute(records)
}

// Facets lists the distinct filter values present in the store
func (s *FlightService) Facets() entity.Facets {
	return s.stats.Facets(s.store.List())
}

// Export writes the query result as the affected-flights CSV report
func (s *FlightService) Export(w io.Writer, q Query) error {
	return WriteExport(w, s.Query(q))
}

// Create validates and stores a new flight
func (s *FlightService) Create(ctx context.Context, fields entity.FlightFields) (*entity.FlightRecord, error) {
	s.fillAirportNames(ctx, &fields)
	if err := fields.Validate(); err != nil {
		s.countError("create")
		return nil, err
	}

	record := s.store.Create(fields)
	s.logger.Info("Flight created", "id", record.ID, "flightNumber", record.FlightNumber, "priority", record.Priority)
	s.countMutation("create")
	s.persist(ctx, record)
	return record, nil
}

// Update merges patch onto an existing flight
func (s *FlightService) Update(ctx context.Context, id int, patch entity.FlightPatch) (*entity.FlightRecord, error) {
	if err := patch.Validate(); err != nil {
		s.countError("update")
		return nil, err
	}

	record, err := s.store.Update(id, patch)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Flight updated", "id", id, "flightNumber", record.FlightNumber)
	s.countMutation("update")
	s.persist(ctx, record)
	return record, nil
}

// Delete removes a flight. Unknown ids yield entity.ErrNotFound.
func (s *FlightService) Delete(ctx context.Context, id int) error {
	if !s.store.Delete(id) {
		return entity.ErrNotFound
	}
	s.logger.Info("Flight deleted", "id", id)
	s.countMutation("delete")

	if s.flightRepo != nil {
		if err := s.flightRepo.Delete(ctx, id); err != nil {
			s.logger.Error("Failed to delete persisted flight", "id", id, "error", err)
			s.countError("persist_delete")
		}
	}
	return nil
}

// GenerateRecovery produces a recovery plan for the selected flight ids
func (s *FlightService) GenerateRecovery(ctx context.Context, flightIDs []int) (*entity.RecoveryPlan, error) {
	plan, err := s.generator.Generate(flightIDs)
	if err != nil {
		s.countError("recovery")
		return nil, err
	}
	s.logger.Info("Recovery plan generated",
		"planId", plan.PlanID,
		"affectedFlights", plan.AffectedFlights,
		"options", len(plan.Options),
	)
	if s.metrics != nil {
		s.metrics.RecoveryPlans.Inc()
		s.metrics.RecoveryFlights.Observe(float64(plan.AffectedFlights))
	}

	if s.planRepo != nil {
		if err := s.planRepo.Save(ctx, plan); err != nil {
			s.logger.Error("Failed to record recovery plan", "planId", plan.PlanID, "error", err)
			s.countError("plan_log")
		}
	}
	return plan, nil
}

// RecentPlans returns the latest recorded recovery plans, newest first
func (s *FlightService) RecentPlans(ctx context.Context, limit int) ([]*entity.RecoveryPlan, error) {
	if s.planRepo == nil {
		return nil, ErrPlanLogDisabled
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	plans, err := s.planRepo.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("find recent recovery plans: %w", err)
	}
	return plans, nil
}

// fillAirportNames looks up missing city names from the airport directory
func (s *FlightService) fillAirportNames(ctx context.Context, fields *entity.FlightFields) {
	if s.airportRepo == nil {
		return
	}
	lookup := func(code string) string {
		if code == "" {
			return ""
		}
		airport, err := s.airportRepo.GetByAirportCode(ctx, code)
		if errors.Is(err, entity.ErrNotFound) {
			s.logger.Debug("Airport not in directory", "code", code)
			return ""
		}
		if err != nil {
			s.logger.Warn("Airport lookup failed", "code", code, "error", err)
			return ""
		}
		return airport.DisplayName()
	}
	if fields.OriginName == "" {
		fields.OriginName = lookup(fields.Origin)
	}
	if fields.DestinationName == "" {
		fields.DestinationName = lookup(fields.Destination)
	}
}

// persist writes through to the durable repository. Failures are logged, never rolled back.
func (s *FlightService) persist(ctx context.Context, record *entity.FlightRecord) {
	s.refreshGauge()
	if s.flightRepo == nil {
		return
	}
	if err := s.flightRepo.Save(ctx, record); err != nil {
		s.logger.Error("Failed to persist flight", "id", record.ID, "error", err)
		s.countError("persist_save")
	}
}

func (s *FlightService) countMutation(operation string) {
	if s.metrics != nil {
		s.metrics.FlightMutations.WithLabelValues(operation).Inc()
	}
	if operation == "delete" {
		s.refreshGauge()
	}
}

func (s *FlightService) countError(operation string) {
	if s.metrics != nil {
		s.metrics.ErrorsCount.WithLabelValues(operation).Inc()
	}
}

func (s *FlightService) refreshGauge() {
	if s.metrics != nil {
		s.metrics.LiveFlights.Set(float64(s.store.Len()))
	}
}
