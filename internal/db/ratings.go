package db

import (
	"context"
	"database/sql"

	"github.com/astrochat/astrochat/internal/types"
	"github.com/cockroachdb/errors"
)

// RatingStore keeps session ratings in SQLite.
type RatingStore struct {
	db *sql.DB
}

// NewRatingStore wraps an open database.
func NewRatingStore(conn *sql.DB) *RatingStore {
	return &RatingStore{db: conn}
}

// SubmitRating inserts a rating.
func (r *RatingStore) SubmitRating(ctx context.Context, rating types.SessionRating) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO astro_ratings (guid, session, stars, submitted_at)
		VALUES (?, ?, ?, ?)
	`, rating.ID, rating.Session, rating.Stars, rating.SubmittedAt)
	if err != nil {
		return errors.Wrapf(err, "insert rating %s", rating.ID)
	}
	return nil
}

// ListRatings returns the newest ratings first. limit <= 0 returns all.
func (r *RatingStore) ListRatings(ctx context.Context, limit int) ([]types.SessionRating, error) {
	query := `
		SELECT guid, session, stars, submitted_at
		FROM astro_ratings
		ORDER BY submitted_at DESC, guid DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query ratings")
	}
	defer rows.Close()

	var ratings []types.SessionRating
	for rows.Next() {
		var row types.SessionRating
		if err := rows.Scan(&row.ID, &row.Session, &row.Stars, &row.SubmittedAt); err != nil {
			return nil, errors.Wrap(err, "scan rating")
		}
		ratings = append(ratings, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate ratings")
	}
	return ratings, nil
}

// AverageStars returns the mean rating and the count for session ("" for all).
func (r *RatingStore) AverageStars(ctx context.Context, session string) (float64, int, error) {
	var avg sql.NullFloat64
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT AVG(stars), COUNT(*)
		FROM astro_ratings
		WHERE (? = '' OR session = ?)
	`, session, session).Scan(&avg, &count)
	if err != nil {
		return 0, 0, errors.Wrap(err, "average ratings")
	}
	return avg.Float64, count, nil
}
