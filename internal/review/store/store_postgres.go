package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"carenest/internal/platform/postgres"
	"carenest/internal/review/models"
	id "carenest/pkg/domain"
)

const columns = `id, caregiver_id, senior_id, booking_id, rating, comment,
	caregiver_response, response_date, is_visible, created_at, updated_at`

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, r *models.Review) error {
	_, err := postgres.Conn(ctx, s.db).ExecContext(ctx, `
		INSERT INTO reviews (`+columns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		uuid.UUID(r.ID), uuid.UUID(r.CaregiverID), uuid.UUID(r.SeniorID), uuid.UUID(r.BookingID),
		r.Rating, r.Comment, r.Response, r.ResponseDate, r.IsVisible, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert review: %w", postgres.MapError(err))
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, reviewID id.ReviewID) (*models.Review, error) {
	query := `SELECT ` + columns + ` FROM reviews WHERE id = $1`
	if postgres.InTx(ctx) {
		query += ` FOR UPDATE`
	}
	r, err := scanReview(postgres.Conn(ctx, s.db).QueryRowContext(ctx, query, uuid.UUID(reviewID)))
	if err != nil {
		return nil, postgres.MapError(err)
	}
	return r, nil
}

func (s *PostgresStore) Update(ctx context.Context, r *models.Review) error {
	res, err := postgres.Conn(ctx, s.db).ExecContext(ctx, `
		UPDATE reviews SET caregiver_response = $2, response_date = $3, is_visible = $4, updated_at = $5
		WHERE id = $1`,
		uuid.UUID(r.ID), r.Response, r.ResponseDate, r.IsVisible, r.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update review: %w", postgres.MapError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return postgres.MapError(sql.ErrNoRows)
	}
	return nil
}

func (s *PostgresStore) ListByCaregiver(ctx context.Context, caregiverID id.CaregiverID, visibleOnly bool) ([]*models.Review, error) {
	query := `SELECT ` + columns + ` FROM reviews WHERE caregiver_id = $1`
	if visibleOnly {
		query += ` AND is_visible`
	}
	query += ` ORDER BY created_at DESC`
	rows, err := postgres.Conn(ctx, s.db).QueryContext(ctx, query, uuid.UUID(caregiverID))
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()
	out := make([]*models.Review, 0)
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Summarize aggregates visible reviews in the database.
func (s *PostgresStore) Summarize(ctx context.Context, caregiverID id.CaregiverID) (models.Summary, error) {
	var sum models.Summary
	err := postgres.Conn(ctx, s.db).QueryRowContext(ctx, `
		SELECT COALESCE(AVG(rating), 0)::DOUBLE PRECISION, COUNT(*)
		FROM reviews WHERE caregiver_id = $1 AND is_visible`,
		uuid.UUID(caregiverID),
	).Scan(&sum.Average, &sum.Count)
	if err != nil {
		return models.Summary{}, fmt.Errorf("summarize reviews: %w", err)
	}
	return sum, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReview(row rowScanner) (*models.Review, error) {
	var (
		r                              models.Review
		rawID, rawCare, rawSen, rawBkg uuid.UUID
		responseDate                   sql.NullTime
	)
	err := row.Scan(&rawID, &rawCare, &rawSen, &rawBkg, &r.Rating, &r.Comment,
		&r.Response, &responseDate, &r.IsVisible, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	r.ID = id.ReviewID(rawID)
	r.CaregiverID = id.CaregiverID(rawCare)
	r.SeniorID = id.SeniorID(rawSen)
	r.BookingID = id.BookingID(rawBkg)
	if responseDate.Valid {
		r.ResponseDate = &responseDate.Time
	}
	return &r, nil
}
