package usecase

import (
	"sort"
	"sync"

	"aeron-recovery-service/internal/domain/entity"
)

// RecordStore owns the authoritative collection of disrupted flights.
// Ids start at 1, increase by one per create and are never reissued.
type RecordStore struct {
	mu      sync.RWMutex
	records map[int]*entity.FlightRecord
	nextID  int
	clock   Clock
}

// NewRecordStore creates an empty store
func NewRecordStore(clock Clock) *RecordStore {
	if clock == nil {
		clock = RealClock{}
	}
	return &RecordStore{
		records: make(map[int]*entity.FlightRecord),
		nextID:  1,
		clock:   clock,
	}
}

// List returns every record ordered by priority rank, then most recent impact first
func (s *RecordStore) List() []*entity.FlightRecord {
	s.mu.RLock()
	out := make([]*entity.FlightRecord, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r.Clone())
	}
	s.mu.RUnlock()

	// map order is random; id order makes full ties deterministic
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].Priority.Rank(), out[j].Priority.Rank()
		if ri != rj {
			return ri > rj
		}
		return out[i].ImpactTimestamp.After(out[j].ImpactTimestamp)
	})
	return out
}

// Get returns a copy of the record with the given id
func (s *RecordStore) Get(id int) (*entity.FlightRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return r.Clone(), nil
}

// Create assigns the next id, stamps updatedAt and stores the record
func (s *RecordStore) Create(fields entity.FlightFields) *entity.FlightRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := &entity.FlightRecord{
		ID:              s.nextID,
		FlightNumber:    fields.FlightNumber,
		Aircraft:        fields.Aircraft,
		Origin:          fields.Origin,
		Destination:     fields.Destination,
		OriginName:      fields.OriginName,
		DestinationName: fields.DestinationName,
		DepartureTime:   fields.DepartureTime,
		DepartureDate:   fields.DepartureDate,
		Status:          fields.Status,
		Priority:        fields.Priority,
		Passengers:      fields.Passengers,
		Connections:     fields.Connections,
		ImpactSeverity:  fields.ImpactSeverity,
		ImpactTimestamp: fields.ImpactTimestamp,
		UpdatedAt:       s.clock.Now(),
	}
	if fields.StatusDetail != nil {
		detail := *fields.StatusDetail
		record.StatusDetail = &detail
	}
	s.nextID++

	s.records[record.ID] = record
	return record.Clone()
}

// Update merges patch onto an existing record and refreshes updatedAt
func (s *RecordStore) Update(id int, patch entity.FlightPatch) (*entity.FlightRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.records[id]
	if !ok {
		return nil, entity.ErrNotFound
	}

	updated := existing.Clone()
	patch.Apply(updated)
	updated.UpdatedAt = s.clock.Now()

	s.records[id] = updated
	return updated.Clone(), nil
}

// Delete removes the record and reports whether anything was removed
func (s *RecordStore) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return false
	}
	delete(s.records, id)
	return true
}

// Restore loads previously persisted records, keeping their ids. lastID is the
// highest id ever issued, deleted records included. The counter moves past both
// it and the highest restored id so ids are never reissued.
func (s *RecordStore) Restore(records []*entity.FlightRecord, lastID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if lastID >= s.nextID {
		s.nextID = lastID + 1
	}

	for _, r := range records {
		if r == nil || r.ID <= 0 {
			continue
		}
		s.records[r.ID] = r.Clone()
		if r.ID >= s.nextID {
			s.nextID = r.ID + 1
		}
	}
}

// Len returns the number of live records
func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
