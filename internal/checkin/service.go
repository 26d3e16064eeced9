package checkin

import (
	"context"
	"strings"
	"time"

	dErrors "abgs/pkg/domain-errors"
	"abgs/pkg/requestcontext"
)

// Store is the persistence boundary for check-in records. Implementations
// must assign unique, monotonically increasing ids under concurrent Create
// calls, and list operations must return a consistent snapshot ordered by
// timestamp ascending with ties broken by id ascending. An empty result is a
// success, not an error.
type Store interface {
	Create(ctx context.Context, record *CheckIn) (*CheckIn, error)
	ListByUser(ctx context.Context, userID string) ([]*CheckIn, error)
	ListByGoal(ctx context.Context, goalName string) ([]*CheckIn, error)
}

// SubmitInput carries a check-in submission. Timestamp is optional; when nil
// the request-scoped current time is used, which also supports backfill of
// historical check-ins when set.
type SubmitInput struct {
	UserID    string
	GoalName  string
	Status    string
	Timestamp *time.Time
}

// Service validates incoming check-in submissions and answers read queries.
// It holds no state of its own beyond the injected store; validation runs
// before any store call so invalid input never reaches persistence.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Submit validates and persists one check-in, returning the stored record
// including its store-assigned id. Store errors propagate unchanged.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*CheckIn, error) {
	goalName := strings.TrimSpace(in.GoalName)
	if goalName == "" {
		return nil, dErrors.NewValidation(KindEmptyGoalName, "goal_name must not be empty")
	}

	status, err := ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	// Default timestamp is evaluated per call, never captured once at
	// construction time.
	timestamp := requestcontext.Now(ctx)
	if in.Timestamp != nil {
		timestamp = *in.Timestamp
	}

	record := &CheckIn{
		UserID:    in.UserID,
		GoalName:  goalName,
		Status:    status,
		Timestamp: timestamp.UTC(),
	}
	return s.store.Create(ctx, record)
}

// History returns all check-ins reported by the user, oldest first.
func (s *Service) History(ctx context.Context, userID string) ([]*CheckIn, error) {
	return s.store.ListByUser(ctx, userID)
}

// CompletionRatio computes the fraction of completed check-ins for a goal
// across all users. A goal with no recorded check-ins yields a zero ratio
// with Total == 0 rather than an error.
func (s *Service) CompletionRatio(ctx context.Context, goalName string) (*Adherence, error) {
	records, err := s.store.ListByGoal(ctx, goalName)
	if err != nil {
		return nil, err
	}

	adherence := &Adherence{GoalName: goalName, Total: len(records)}
	for _, record := range records {
		if record.Status == StatusCompleted {
			adherence.Completed++
		} else {
			adherence.Missed++
		}
	}
	if adherence.Total > 0 {
		adherence.Ratio = float64(adherence.Completed) / float64(adherence.Total)
	}
	return adherence, nil
}
