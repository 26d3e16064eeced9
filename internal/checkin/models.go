package checkin

import (
	"time"

	dErrors "abgs/pkg/domain-errors"
)

// Status is the closed set of check-in outcomes.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusMissed    Status = "missed"
)

// Validation kinds surfaced to clients alongside the validation_error code.
const (
	KindEmptyGoalName = "empty_goal_name"
	KindInvalidStatus = "invalid_status"
)

// ParseStatus validates a caller-supplied status string. Only the exact
// values "completed" and "missed" are accepted.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusCompleted, StatusMissed:
		return Status(s), nil
	default:
		return "", dErrors.NewValidation(KindInvalidStatus, "status must be \"completed\" or \"missed\"")
	}
}

// CheckIn is a single reported event of goal adherence at a point in time.
// Records are immutable after creation: the lifecycle is create, then
// permanently readable. ID is store-assigned and monotonic per store.
type CheckIn struct {
	ID        int64     `db:"id"`
	UserID    string    `db:"user_id"`
	GoalName  string    `db:"goal_name"`
	Status    Status    `db:"status"`
	Timestamp time.Time `db:"timestamp"`
}

// Adherence summarizes the check-ins recorded for one goal. Total is carried
// alongside Ratio so callers can tell "no data" (Total == 0, Ratio == 0)
// apart from a goal that was never completed.
type Adherence struct {
	GoalName  string
	Total     int
	Completed int
	Missed    int
	Ratio     float64
}
