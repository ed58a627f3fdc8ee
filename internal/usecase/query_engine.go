package usecase

import (
	"sort"
	"strings"

	"aeron-recovery-service/internal/domain/entity"
)

// Sentinel filter values sent by the dashboard to mean "no restriction"
const (
	AllStatuses   = "All Statuses"
	AllPriorities = "All Priorities"
	AllOrigins    = "All Origins"
)

// FilterSpec holds the equality filters. Empty or sentinel values do not restrict.
type FilterSpec struct {
	Status   string `json:"status,omitempty"`
	Priority string `json:"priority,omitempty"`
	Origin   string `json:"origin,omitempty"`
}

// Query is the full dashboard view specification
type Query struct {
	Search string
	FilterSpec
	SortBy string
}

// QueryEngine derives filtered, searched and sorted views. It never mutates its input.
type QueryEngine struct {
	sorts SortRouter
}

// NewQueryEngine creates a query engine using sorts to resolve sort keys
func NewQueryEngine(sorts SortRouter) *QueryEngine {
	return &QueryEngine{sorts: sorts}
}

// Apply runs search, filter and then sort. An empty sort key means Priority.
func (e *QueryEngine) Apply(records []*entity.FlightRecord, q Query) []*entity.FlightRecord {
	out := e.Filter(e.Search(records, q.Search), q.FilterSpec)

	sortBy := q.SortBy
	if strings.TrimSpace(sortBy) == "" {
		sortBy = SortPriority
	}
	e.Sort(out, sortBy)
	return out
}

// Search keeps records whose flight number, airport codes or city names
// contain term, ignoring case. An empty term matches everything.
func (e *QueryEngine) Search(records []*entity.FlightRecord, term string) []*entity.FlightRecord {
	term = strings.ToLower(term)
	out := make([]*entity.FlightRecord, 0, len(records))
	for _, r := range records {
		if term == "" || matchesSearch(r, term) {
			out = append(out, r)
		}
	}
	return out
}

// Filter keeps records matching every restricting filter exactly
func (e *QueryEngine) Filter(records []*entity.FlightRecord, f FilterSpec) []*entity.FlightRecord {
	out := make([]*entity.FlightRecord, 0, len(records))
	for _, r := range records {
		if matchesFilter(r, f) {
			out = append(out, r)
		}
	}
	return out
}

// Sort orders records in place. Unknown keys leave the order untouched.
func (e *QueryEngine) Sort(records []*entity.FlightRecord, sortBy string) {
	if e.sorts == nil {
		return
	}
	handler := e.sorts.GetHandler(sortBy)
	if handler == nil {
		return
	}
	sort.SliceStable(records, func(i, j int) bool {
		return handler.Less(records[i], records[j])
	})
}

func matchesSearch(r *entity.FlightRecord, term string) bool {
	for _, field := range []string{r.FlightNumber, r.Origin, r.Destination, r.OriginName, r.DestinationName} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func matchesFilter(r *entity.FlightRecord, f FilterSpec) bool {
	if restricts(f.Status, AllStatuses) && string(r.Status) != f.Status {
		return false
	}
	if restricts(f.Priority, AllPriorities) && string(r.Priority) != f.Priority {
		return false
	}
	if restricts(f.Origin, AllOrigins) && r.Origin != f.Origin {
		return false
	}
	return true
}

func restricts(value, sentinel string) bool {
	return value != "" && value != sentinel
}
