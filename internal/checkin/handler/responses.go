package handler

import (
	"time"

	"abgs/internal/checkin"
)

// CheckInResponse is the wire representation of a stored check-in.
type CheckInResponse struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	GoalName  string    `json:"goal_name"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// AdherenceResponse is the HTTP response for GET /goals/{goalName}/completion.
type AdherenceResponse struct {
	GoalName  string  `json:"goal_name"`
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Missed    int     `json:"missed"`
	Ratio     float64 `json:"ratio"`
}

// FromCheckIn converts a domain CheckIn to its wire representation.
func FromCheckIn(record *checkin.CheckIn) *CheckInResponse {
	return &CheckInResponse{
		ID:        record.ID,
		UserID:    record.UserID,
		GoalName:  record.GoalName,
		Status:    string(record.Status),
		Timestamp: record.Timestamp,
	}
}

// FromCheckIns converts a history to wire form. An empty history serializes
// as [], not null.
func FromCheckIns(records []*checkin.CheckIn) []*CheckInResponse {
	responses := make([]*CheckInResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, FromCheckIn(record))
	}
	return responses
}

// FromAdherence converts a domain adherence summary to wire form.
func FromAdherence(adherence *checkin.Adherence) *AdherenceResponse {
	return &AdherenceResponse{
		GoalName:  adherence.GoalName,
		Total:     adherence.Total,
		Completed: adherence.Completed,
		Missed:    adherence.Missed,
		Ratio:     adherence.Ratio,
	}
}
