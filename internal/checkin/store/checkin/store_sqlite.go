package checkin

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"abgs/internal/checkin"
)

// SQLiteStore persists check-ins in SQLite through sqlx. The pure-Go driver
// makes it the zero-infrastructure durable backend for single-node
// deployments and CI.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLite constructs a SQLite-backed check-in store.
func NewSQLite(db *sqlx.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Create inserts the record and returns it with the rowid-assigned id.
// SQLite's single-writer model serializes id assignment.
func (s *SQLiteStore) Create(ctx context.Context, record *checkin.CheckIn) (*checkin.CheckIn, error) {
	query := `INSERT INTO checkins (user_id, goal_name, status, timestamp)
	          VALUES (?, ?, ?, ?)`

	result, err := s.db.ExecContext(ctx, query,
		record.UserID,
		record.GoalName,
		string(record.Status),
		record.Timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("create check-in: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create check-in id: %w", err)
	}

	stored := *record
	stored.ID = id
	return &stored, nil
}

func (s *SQLiteStore) ListByUser(ctx context.Context, userID string) ([]*checkin.CheckIn, error) {
	records := make([]*checkin.CheckIn, 0)
	query := `SELECT * FROM checkins WHERE user_id = ? ORDER BY timestamp ASC, id ASC`

	if err := s.db.SelectContext(ctx, &records, query, userID); err != nil {
		return nil, fmt.Errorf("list check-ins by user: %w", err)
	}
	return records, nil
}

func (s *SQLiteStore) ListByGoal(ctx context.Context, goalName string) ([]*checkin.CheckIn, error) {
	records := make([]*checkin.CheckIn, 0)
	query := `SELECT * FROM checkins WHERE goal_name = ? ORDER BY timestamp ASC, id ASC`

	if err := s.db.SelectContext(ctx, &records, query, goalName); err != nil {
		return nil, fmt.Errorf("list check-ins by goal: %w", err)
	}
	return records, nil
}
