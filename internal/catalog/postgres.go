package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/connectmate/connectmate_api/internal/model"
	"github.com/jackc/pgx/v5"
)

// Querier is the subset of pgxpool.Pool the Postgres source needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresSource struct {
	q Querier
}

func NewPostgresSource(q Querier) *PostgresSource {
	return &PostgresSource{q: q}
}

const activityColumns = `id, title, location, time_label, description, participants,
	max_participants, category, lat, lng, color, icon`

func (s *PostgresSource) List(ctx context.Context) ([]model.Activity, error) {
	stmt := `SELECT ` + activityColumns + ` FROM activities ORDER BY position, id`

	rows, err := s.q.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	out := make([]model.Activity, 0)
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return out, nil
}

func (s *PostgresSource) Get(ctx context.Context, id string) (model.Activity, error) {
	stmt := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1`

	a, err := scanActivity(s.q.QueryRow(ctx, stmt, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Activity{}, fmt.Errorf("activity %s: %w", id, model.ErrActivityNotFound)
		}
		return model.Activity{}, fmt.Errorf("get activity %s: %w", id, err)
	}
	return a, nil
}

func scanActivity(row pgx.Row) (model.Activity, error) {
	var a model.Activity
	err := row.Scan(
		&a.ID, &a.Title, &a.Location, &a.Time, &a.Description, &a.Participants,
		&a.MaxParticipants, &a.Category, &a.Lat, &a.Lng, &a.Color, &a.Icon,
	)
	return a, err
}
