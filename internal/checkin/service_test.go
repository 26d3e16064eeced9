package checkin_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"abgs/internal/checkin"
	checkinstore "abgs/internal/checkin/store/checkin"
	dErrors "abgs/pkg/domain-errors"
	"abgs/pkg/requestcontext"
)

// ServiceSuite exercises the check-in service against the real in-memory
// store, not mocks.
type ServiceSuite struct {
	suite.Suite
	store   *checkinstore.InMemoryCheckInStore
	service *checkin.Service
}

func (s *ServiceSuite) SetupTest() {
	s.store = checkinstore.NewInMemoryCheckInStore()
	s.service = checkin.NewService(s.store)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) TestSubmitEchoesFieldsAndAssignsID() {
	now := time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), now)

	record, err := s.service.Submit(ctx, checkin.SubmitInput{
		UserID:   "1",
		GoalName: "Exercise",
		Status:   "completed",
	})
	require.NoError(s.T(), err)

	assert.Equal(s.T(), int64(1), record.ID)
	assert.Equal(s.T(), "1", record.UserID)
	assert.Equal(s.T(), "Exercise", record.GoalName)
	assert.Equal(s.T(), checkin.StatusCompleted, record.Status)
	assert.True(s.T(), record.Timestamp.Equal(now))
}

func (s *ServiceSuite) TestSubmitAssignsFreshUniqueIDs() {
	ctx := context.Background()

	first, err := s.service.Submit(ctx, checkin.SubmitInput{UserID: "1", GoalName: "Read", Status: "completed"})
	require.NoError(s.T(), err)
	second, err := s.service.Submit(ctx, checkin.SubmitInput{UserID: "1", GoalName: "Read", Status: "missed"})
	require.NoError(s.T(), err)

	assert.NotEqual(s.T(), first.ID, second.ID)
	assert.Greater(s.T(), second.ID, first.ID)
}

func (s *ServiceSuite) TestSubmitInvalidStatusRejectedWithoutWrite() {
	ctx := context.Background()

	_, err := s.service.Submit(ctx, checkin.SubmitInput{UserID: "1", GoalName: "Exercise", Status: "done"})

	var dErr *dErrors.Error
	require.True(s.T(), errors.As(err, &dErr))
	assert.Equal(s.T(), dErrors.CodeValidation, dErr.Code)
	assert.Equal(s.T(), checkin.KindInvalidStatus, dErr.Kind)

	history, err := s.service.History(ctx, "1")
	require.NoError(s.T(), err)
	assert.Empty(s.T(), history, "invalid submission must not reach the store")
}

func (s *ServiceSuite) TestSubmitEmptyGoalNameRejectedWithoutWrite() {
	ctx := context.Background()

	for _, goalName := range []string{"", "   ", "\t\n"} {
		_, err := s.service.Submit(ctx, checkin.SubmitInput{UserID: "1", GoalName: goalName, Status: "completed"})

		var dErr *dErrors.Error
		require.True(s.T(), errors.As(err, &dErr), "goal name %q", goalName)
		assert.Equal(s.T(), dErrors.CodeValidation, dErr.Code)
		assert.Equal(s.T(), checkin.KindEmptyGoalName, dErr.Kind)
	}

	history, err := s.service.History(ctx, "1")
	require.NoError(s.T(), err)
	assert.Empty(s.T(), history)
}

func (s *ServiceSuite) TestSubmitTrimsGoalName() {
	record, err := s.service.Submit(context.Background(), checkin.SubmitInput{
		UserID:   "1",
		GoalName: "  Meditate  ",
		Status:   "completed",
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Meditate", record.GoalName)
}

func (s *ServiceSuite) TestSubmitExplicitTimestampBackfill() {
	backfill := time.Date(2025, 12, 24, 7, 0, 0, 0, time.FixedZone("CET", 3600))

	record, err := s.service.Submit(context.Background(), checkin.SubmitInput{
		UserID:    "1",
		GoalName:  "Exercise",
		Status:    "missed",
		Timestamp: &backfill,
	})
	require.NoError(s.T(), err)

	assert.True(s.T(), record.Timestamp.Equal(backfill))
	assert.Equal(s.T(), time.UTC, record.Timestamp.Location(), "timestamps are normalized to UTC")
}

func (s *ServiceSuite) TestSubmitDefaultTimestampEvaluatedPerCall() {
	first := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	second := first.Add(24 * time.Hour)

	recordOne, err := s.service.Submit(requestcontext.WithTime(context.Background(), first),
		checkin.SubmitInput{UserID: "1", GoalName: "Exercise", Status: "completed"})
	require.NoError(s.T(), err)
	recordTwo, err := s.service.Submit(requestcontext.WithTime(context.Background(), second),
		checkin.SubmitInput{UserID: "1", GoalName: "Exercise", Status: "completed"})
	require.NoError(s.T(), err)

	assert.True(s.T(), recordOne.Timestamp.Equal(first))
	assert.True(s.T(), recordTwo.Timestamp.Equal(second))
}

func (s *ServiceSuite) TestHistoryOrderedByTimestampThenID() {
	ctx := context.Background()
	base := time.Date(2026, 2, 1, 6, 0, 0, 0, time.UTC)

	late := base.Add(2 * time.Hour)
	early := base.Add(-time.Hour)

	// Insert out of chronological order; the tie pair shares a timestamp.
	_, err := s.service.Submit(ctx, checkin.SubmitInput{UserID: "1", GoalName: "Exercise", Status: "completed", Timestamp: &late})
	require.NoError(s.T(), err)
	_, err = s.service.Submit(ctx, checkin.SubmitInput{UserID: "1", GoalName: "Read", Status: "missed", Timestamp: &early})
	require.NoError(s.T(), err)
	_, err = s.service.Submit(ctx, checkin.SubmitInput{UserID: "1", GoalName: "Meditate", Status: "completed", Timestamp: &late})
	require.NoError(s.T(), err)

	history, err := s.service.History(ctx, "1")
	require.NoError(s.T(), err)
	require.Len(s.T(), history, 3)

	for i := 1; i < len(history); i++ {
		prev, curr := history[i-1], history[i]
		assert.False(s.T(), curr.Timestamp.Before(prev.Timestamp), "timestamps must be non-decreasing")
		if curr.Timestamp.Equal(prev.Timestamp) {
			assert.Greater(s.T(), curr.ID, prev.ID, "ties break by id ascending")
		}
	}
}

func (s *ServiceSuite) TestHistoryIdempotentWithoutInterveningWrites() {
	ctx := context.Background()
	_, err := s.service.Submit(ctx, checkin.SubmitInput{UserID: "7", GoalName: "Sleep", Status: "completed"})
	require.NoError(s.T(), err)

	first, err := s.service.History(ctx, "7")
	require.NoError(s.T(), err)
	second, err := s.service.History(ctx, "7")
	require.NoError(s.T(), err)

	assert.Equal(s.T(), first, second)
}

func (s *ServiceSuite) TestCompletionRatio() {
	ctx := context.Background()

	for _, status := range []string{"completed", "completed", "completed", "missed"} {
		_, err := s.service.Submit(ctx, checkin.SubmitInput{UserID: "1", GoalName: "Exercise", Status: status})
		require.NoError(s.T(), err)
	}

	adherence, err := s.service.CompletionRatio(ctx, "Exercise")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 4, adherence.Total)
	assert.Equal(s.T(), 3, adherence.Completed)
	assert.Equal(s.T(), 1, adherence.Missed)
	assert.InDelta(s.T(), 0.75, adherence.Ratio, 1e-9)
}

func (s *ServiceSuite) TestCompletionRatioEmptyGoalIsZeroNotError() {
	adherence, err := s.service.CompletionRatio(context.Background(), "Unknown")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 0, adherence.Total)
	assert.Zero(s.T(), adherence.Ratio)
}

func (s *ServiceSuite) TestCompletionRatioSpansUsers() {
	ctx := context.Background()
	_, err := s.service.Submit(ctx, checkin.SubmitInput{UserID: "1", GoalName: "Exercise", Status: "completed"})
	require.NoError(s.T(), err)
	_, err = s.service.Submit(ctx, checkin.SubmitInput{UserID: "2", GoalName: "Exercise", Status: "missed"})
	require.NoError(s.T(), err)

	adherence, err := s.service.CompletionRatio(ctx, "Exercise")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 2, adherence.Total)
	assert.InDelta(s.T(), 0.5, adherence.Ratio, 1e-9)
}

func (s *ServiceSuite) TestSubmitThenQueryScenario() {
	ctx := context.Background()

	_, err := s.service.Submit(ctx, checkin.SubmitInput{UserID: "1", GoalName: "Exercise", Status: "completed"})
	require.NoError(s.T(), err)
	_, err = s.service.Submit(ctx, checkin.SubmitInput{UserID: "1", GoalName: "Exercise", Status: "missed"})
	require.NoError(s.T(), err)

	history, err := s.service.History(ctx, "1")
	require.NoError(s.T(), err)
	require.Len(s.T(), history, 2)
	assert.Equal(s.T(), checkin.StatusCompleted, history[0].Status)
	assert.Equal(s.T(), checkin.StatusMissed, history[1].Status)

	adherence, err := s.service.CompletionRatio(ctx, "Exercise")
	require.NoError(s.T(), err)
	assert.InDelta(s.T(), 0.5, adherence.Ratio, 1e-9)
}

func (s *ServiceSuite) TestConcurrentSubmitsProduceDistinctIDs() {
	const goroutines = 100
	ctx := context.Background()

	var wg sync.WaitGroup
	ids := make(chan int64, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			record, err := s.service.Submit(ctx, checkin.SubmitInput{
				UserID:   "42",
				GoalName: "Hydrate",
				Status:   "completed",
			})
			if err == nil {
				ids <- record.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(s.T(), seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(s.T(), seen, goroutines, "no lost writes")

	history, err := s.service.History(ctx, "42")
	require.NoError(s.T(), err)
	assert.Len(s.T(), history, goroutines)
}

// failingStore returns the same error from every operation, standing in for
// an unreachable backend.
type failingStore struct {
	err error
}

func (f *failingStore) Create(context.Context, *checkin.CheckIn) (*checkin.CheckIn, error) {
	return nil, f.err
}

func (f *failingStore) ListByUser(context.Context, string) ([]*checkin.CheckIn, error) {
	return nil, f.err
}

func (f *failingStore) ListByGoal(context.Context, string) ([]*checkin.CheckIn, error) {
	return nil, f.err
}

func TestStoreErrorsPropagateUnchanged(t *testing.T) {
	storeErr := errors.New("insert check-in: connection reset")
	service := checkin.NewService(&failingStore{err: storeErr})
	ctx := context.Background()

	_, err := service.Submit(ctx, checkin.SubmitInput{UserID: "1", GoalName: "Exercise", Status: "completed"})
	require.ErrorIs(t, err, storeErr)
	assert.EqualError(t, err, storeErr.Error())

	_, err = service.History(ctx, "1")
	require.ErrorIs(t, err, storeErr)

	_, err = service.CompletionRatio(ctx, "Exercise")
	require.ErrorIs(t, err, storeErr)
}
