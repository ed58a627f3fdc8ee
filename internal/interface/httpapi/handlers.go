package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"aeron-recovery-service/internal/domain/entity"
	"aeron-recovery-service/internal/usecase"
	"aeron-recovery-service/pkg/logger"
	"aeron-recovery-service/pkg/utils"

	"github.com/gorilla/mux"
)

// Handler serves the flight API
type Handler struct {
	service FlightService
	clock   usecase.Clock
	logger  logger.Logger
}

// NewHandler creates a new flight API handler
func NewHandler(service FlightService, clock usecase.Clock, log logger.Logger) *Handler {
	if clock == nil {
		clock = usecase.RealClock{}
	}
	return &Handler{
		service: service,
		clock:   clock,
		logger:  log,
	}
}

// FlightView is a flight row as rendered in the dashboard table
type FlightView struct {
	*entity.FlightRecord
	ImpactAge    string `json:"impactAge"`
	HighSeverity bool   `json:"highSeverity"`
}

// RecoveryRequest is the body of a recovery plan request
type RecoveryRequest struct {
	FlightIDs json.RawMessage `json:"flightIds"`
}

func (h *Handler) ListFlights(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.List())
}

func (h *Handler) GetFlight(w http.ResponseWriter, r *http.Request) {
	id, ok := flightID(w, r)
	if !ok {
		return
	}
	flight, err := h.service.Get(id)
	if err != nil {
		writeError(w, err, "Failed to fetch flight")
		return
	}
	writeJSON(w, http.StatusOK, flight)
}

// SearchFlights returns the default list when the query is blank
func (h *Handler) SearchFlights(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Search(mux.Vars(r)["query"]))
}

func (h *Handler) FilterFlights(w http.ResponseWriter, r *http.Request) {
	var spec usecase.FilterSpec
	if err := decodeBody(r, &spec); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid filter")
		return
	}
	writeJSON(w, http.StatusOK, h.service.Filter(spec))
}

// QueryFlights applies search, filters and sort in one call
func (h *Handler) QueryFlights(w http.ResponseWriter, r *http.Request) {
	now := h.clock.Now()
	flights := h.service.Query(queryFromRequest(r))

	views := make([]FlightView, 0, len(flights))
	for _, f := range flights {
		views = append(views, FlightView{
			FlightRecord: f,
			ImpactAge:    utils.FormatImpactAge(f.ImpactTimestamp, now),
			HighSeverity: utils.IsHighSeverity(f.ImpactSeverity),
		})
	}
	writeJSON(w, http.StatusOK, views)
}

// GetStatistics covers every flight unless scope=filtered
func (h *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	var q *usecase.Query
	if strings.EqualFold(r.URL.Query().Get("scope"), "filtered") {
		query := queryFromRequest(r)
		q = &query
	}
	writeJSON(w, http.StatusOK, h.service.Statistics(q))
}

func (h *Handler) GetFacets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Facets())
}

func (h *Handler) ExportFlights(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.service.Export(&buf, queryFromRequest(r)); err != nil {
		h.logger.Error("Failed to export flights", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to export flights")
		return
	}

	filename := fmt.Sprintf("affected-flights-%s.csv", h.clock.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *Handler) CreateFlight(w http.ResponseWriter, r *http.Request) {
	var fields entity.FlightFields
	if err := decodeBody(r, &fields); err != nil {
		writeError(w, invalidPayload(err), "Failed to create flight")
		return
	}

	flight, err := h.service.Create(r.Context(), fields)
	if err != nil {
		writeError(w, err, "Failed to create flight")
		return
	}
	writeJSON(w, http.StatusCreated, flight)
}

func (h *Handler) UpdateFlight(w http.ResponseWriter, r *http.Request) {
	id, ok := flightID(w, r)
	if !ok {
		return
	}

	var patch entity.FlightPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, invalidPayload(err), "Failed to update flight")
		return
	}

	flight, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		writeError(w, err, "Failed to update flight")
		return
	}
	writeJSON(w, http.StatusOK, flight)
}

func (h *Handler) DeleteFlight(w http.ResponseWriter, r *http.Request) {
	id, ok := flightID(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete flight")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GenerateRecovery(w http.ResponseWriter, r *http.Request) {
	var req RecoveryRequest
	var ids []int
	if err := decodeBody(r, &req); err != nil || json.Unmarshal(req.FlightIDs, &ids) != nil {
		writeMessage(w, http.StatusBadRequest, "Flight IDs are required")
		return
	}

	plan, err := h.service.GenerateRecovery(r.Context(), ids)
	if err != nil {
		writeError(w, err, "Failed to generate recovery options")
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (h *Handler) ListRecoveryPlans(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	plans, err := h.service.RecentPlans(r.Context(), limit)
	if errors.Is(err, usecase.ErrPlanLogDisabled) {
		writeMessage(w, http.StatusServiceUnavailable, "Recovery plan log is not configured")
		return
	}
	if err != nil {
		h.logger.Error("Failed to list recovery plans", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to list recovery plans")
		return
	}
	writeJSON(w, http.StatusOK, plans)
}

// flightID parses the {id} path variable, writing a 400 when it is not an integer
func flightID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid flight ID")
		return 0, false
	}
	return id, true
}

func queryFromRequest(r *http.Request) usecase.Query {
	v := r.URL.Query()
	return usecase.Query{
		Search: v.Get("search"),
		FilterSpec: usecase.FilterSpec{
			Status:   v.Get("status"),
			Priority: v.Get("priority"),
			Origin:   v.Get("origin"),
		},
		SortBy: v.Get("sortBy"),
	}
}

// decodeBody decodes a JSON body. An empty body leaves dst untouched.
func decodeBody(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func invalidPayload(err error) error {
	return entity.NewValidationError("Invalid flight data", entity.FieldError{Message: err.Error()})
}
