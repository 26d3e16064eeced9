package checkin

import (
	"context"
	"database/sql"
	"fmt"

	"abgs/internal/checkin"
)

// PostgresStore persists check-ins in PostgreSQL.
// This store is pure I/O—validation and derived views belong in the service.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed check-in store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Create inserts the record and returns it with the database-assigned id.
// BIGSERIAL serializes id assignment, so concurrent creates never collide.
func (s *PostgresStore) Create(ctx context.Context, record *checkin.CheckIn) (*checkin.CheckIn, error) {
	query := `
		INSERT INTO checkins (user_id, goal_name, status, timestamp)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	stored := *record
	err := s.db.QueryRowContext(ctx, query,
		record.UserID,
		record.GoalName,
		string(record.Status),
		record.Timestamp,
	).Scan(&stored.ID)
	if err != nil {
		return nil, fmt.Errorf("create check-in: %w", err)
	}
	return &stored, nil
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID string) ([]*checkin.CheckIn, error) {
	query := `
		SELECT id, user_id, goal_name, status, timestamp
		FROM checkins
		WHERE user_id = $1
		ORDER BY timestamp ASC, id ASC
	`
	records, err := s.listRecords(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list check-ins by user: %w", err)
	}
	return records, nil
}

func (s *PostgresStore) ListByGoal(ctx context.Context, goalName string) ([]*checkin.CheckIn, error) {
	query := `
		SELECT id, user_id, goal_name, status, timestamp
		FROM checkins
		WHERE goal_name = $1
		ORDER BY timestamp ASC, id ASC
	`
	records, err := s.listRecords(ctx, query, goalName)
	if err != nil {
		return nil, fmt.Errorf("list check-ins by goal: %w", err)
	}
	return records, nil
}

func (s *PostgresStore) listRecords(ctx context.Context, query string, arg any) ([]*checkin.CheckIn, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*checkin.CheckIn, 0)
	for rows.Next() {
		var record checkin.CheckIn
		var status string
		if err := rows.Scan(&record.ID, &record.UserID, &record.GoalName, &status, &record.Timestamp); err != nil {
			return nil, err
		}
		record.Status = checkin.Status(status)
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
