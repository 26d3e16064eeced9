package checkin

import (
	"context"
	"sort"
	"sync"

	"abgs/internal/checkin"
)

// Error Contract:
// All store methods follow this pattern:
// - Return nil error for successful operations; an empty list is a success
// - Return wrapped errors with context for infrastructure failures
// InMemoryCheckInStore stores check-ins in memory for tests/dev.
type InMemoryCheckInStore struct {
	mu      sync.RWMutex
	nextID  int64
	records []checkin.CheckIn
}

// NewInMemoryCheckInStore constructs an empty in-memory check-in store.
func NewInMemoryCheckInStore() *InMemoryCheckInStore {
	return &InMemoryCheckInStore{}
}

// Create assigns the next id and persists the record. Id assignment is
// serialized under the write lock so concurrent creates never collide.
func (s *InMemoryCheckInStore) Create(_ context.Context, record *checkin.CheckIn) (*checkin.CheckIn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	stored := *record
	stored.ID = s.nextID
	s.records = append(s.records, stored)

	result := stored
	return &result, nil
}

// ListByUser returns a snapshot of the user's check-ins ordered by
// (timestamp, id) ascending.
func (s *InMemoryCheckInStore) ListByUser(_ context.Context, userID string) ([]*checkin.CheckIn, error) {
	return s.list(func(record *checkin.CheckIn) bool {
		return record.UserID == userID
	}), nil
}

// ListByGoal returns a snapshot of all check-ins for the exact goal name,
// across users, ordered by (timestamp, id) ascending.
func (s *InMemoryCheckInStore) ListByGoal(_ context.Context, goalName string) ([]*checkin.CheckIn, error) {
	return s.list(func(record *checkin.CheckIn) bool {
		return record.GoalName == goalName
	}), nil
}

func (s *InMemoryCheckInStore) list(match func(*checkin.CheckIn) bool) []*checkin.CheckIn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Copy matching records so callers never observe later writes.
	result := make([]*checkin.CheckIn, 0)
	for i := range s.records {
		if match(&s.records[i]) {
			record := s.records[i]
			result = append(result, &record)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Timestamp.Equal(result[j].Timestamp) {
			return result[i].Timestamp.Before(result[j].Timestamp)
		}
		return result[i].ID < result[j].ID
	})
	return result
}
