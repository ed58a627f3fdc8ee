package httpapi

import (
	"context"
	"io"

	"aeron-recovery-service/internal/domain/entity"
	"aeron-recovery-service/internal/usecase"
	"aeron-recovery-service/pkg/logger"
	"aeron-recovery-service/pkg/metrics"

	"github.com/gorilla/mux"
)

// FlightService is the core boundary the handlers call into
type FlightService interface {
	List() []*entity.FlightRecord
	Get(id int) (*entity.FlightRecord, error)
	Search(term string) []*entity.FlightRecord
	Filter(spec usecase.FilterSpec) []*entity.FlightRecord
	Query(q usecase.Query) []*entity.FlightRecord
	Statistics(q *usecase.Query) entity.FlightStatistics
	Facets() entity.Facets
	Export(w io.Writer, q usecase.Query) error
	Create(ctx context.Context, fields entity.FlightFields) (*entity.FlightRecord, error)
	Update(ctx context.Context, id int, patch entity.FlightPatch) (*entity.FlightRecord, error)
	Delete(ctx context.Context, id int) error
	GenerateRecovery(ctx context.Context, flightIDs []int) (*entity.RecoveryPlan, error)
	RecentPlans(ctx context.Context, limit int) ([]*entity.RecoveryPlan, error)
}

// NewRouter creates and configures a new router with all flight endpoints.
// Fixed paths are registered before /flights/{id} so they are not captured as ids.
func NewRouter(service FlightService, clock usecase.Clock, m *metrics.Metrics, log logger.Logger) *mux.Router {
	h := NewHandler(service, clock, log)

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.Use(Observe(m, log))

	// Views
	api.HandleFunc("/flights", h.ListFlights).Methods("GET")
	api.HandleFunc("/flights/query", h.QueryFlights).Methods("GET")
	api.HandleFunc("/flights/statistics", h.GetStatistics).Methods("GET")
	api.HandleFunc("/flights/facets", h.GetFacets).Methods("GET")
	api.HandleFunc("/flights/export", h.ExportFlights).Methods("GET")
	api.HandleFunc("/flights/search/{query}", h.SearchFlights).Methods("GET")
	api.HandleFunc("/flights/filter", h.FilterFlights).Methods("POST")

	// Recovery
	api.HandleFunc("/flights/recovery", h.GenerateRecovery).Methods("POST")
	api.HandleFunc("/flights/recovery/plans", h.ListRecoveryPlans).Methods("GET")

	// Records
	api.HandleFunc("/flights", h.CreateFlight).Methods("POST")
	api.HandleFunc("/flights/{id}", h.GetFlight).Methods("GET")
	api.HandleFunc("/flights/{id}", h.UpdateFlight).Methods("PATCH")
	api.HandleFunc("/flights/{id}", h.DeleteFlight).Methods("DELETE")

	return r
}
