package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"carenest/internal/booking/models"
	"carenest/internal/platform/postgres"
	id "carenest/pkg/domain"
)

const columns = `id, caregiver_id, senior_id, start_date, end_date, start_time, end_time,
	street, city, state, pincode, status, hourly_rate, total_hours, total_amount,
	payment_status, payment_date, special_instructions, caregiver_notes, is_reviewed,
	cancelled_by, cancellation_reason, cancellation_date, created_at, updated_at`

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, b *models.Booking) error {
	b.Recompute()
	by, reason, at := cancellationColumns(b.Cancellation)
	_, err := postgres.Conn(ctx, s.db).ExecContext(ctx, `
		INSERT INTO bookings (`+columns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		        $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)`,
		uuid.UUID(b.ID), uuid.UUID(b.CaregiverID), uuid.UUID(b.SeniorID),
		b.Window.StartDate, b.Window.EndDate, b.Window.StartTime, b.Window.EndTime,
		b.Location.Street, b.Location.City, b.Location.State, b.Location.Pincode,
		string(b.Status), b.HourlyRate, b.TotalHours, b.TotalAmount,
		string(b.PaymentStatus), b.PaymentDate, b.SpecialInstructions, b.CaregiverNotes, b.Reviewed,
		by, reason, at, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", postgres.MapError(err))
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, bookingID id.BookingID) (*models.Booking, error) {
	query := `SELECT ` + columns + ` FROM bookings WHERE id = $1`
	if postgres.InTx(ctx) {
		query += ` FOR UPDATE`
	}
	b, err := scanBooking(postgres.Conn(ctx, s.db).QueryRowContext(ctx, query, uuid.UUID(bookingID)))
	if err != nil {
		return nil, postgres.MapError(err)
	}
	return b, nil
}

// Update writes every mutable column. Parties and the window are immutable.
func (s *PostgresStore) Update(ctx context.Context, b *models.Booking) error {
	b.Recompute()
	by, reason, at := cancellationColumns(b.Cancellation)
	res, err := postgres.Conn(ctx, s.db).ExecContext(ctx, `
		UPDATE bookings SET
			status = $2, hourly_rate = $3, total_hours = $4, total_amount = $5,
			payment_status = $6, payment_date = $7, caregiver_notes = $8, is_reviewed = $9,
			cancelled_by = $10, cancellation_reason = $11, cancellation_date = $12, updated_at = $13
		WHERE id = $1`,
		uuid.UUID(b.ID), string(b.Status), b.HourlyRate, b.TotalHours, b.TotalAmount,
		string(b.PaymentStatus), b.PaymentDate, b.CaregiverNotes, b.Reviewed,
		by, reason, at, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update booking: %w", postgres.MapError(err))
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

func (s *PostgresStore) ListByCaregiver(ctx context.Context, caregiverID id.CaregiverID) ([]*models.Booking, error) {
	return s.list(ctx, `caregiver_id = $1`, uuid.UUID(caregiverID))
}

func (s *PostgresStore) ListBySenior(ctx context.Context, seniorID id.SeniorID) ([]*models.Booking, error) {
	return s.list(ctx, `senior_id = $1`, uuid.UUID(seniorID))
}

func (s *PostgresStore) list(ctx context.Context, where string, arg any) ([]*models.Booking, error) {
	rows, err := postgres.Conn(ctx, s.db).QueryContext(ctx,
		`SELECT `+columns+` FROM bookings WHERE `+where+` ORDER BY created_at DESC`, arg)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()
	out := make([]*models.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func cancellationColumns(c *models.Cancellation) (string, string, *time.Time) {
	if c == nil {
		return "", "", nil
	}
	at := c.At
	return string(c.By), c.Reason, &at
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*models.Booking, error) {
	var (
		b                         models.Booking
		rawID, rawCare, rawSenior uuid.UUID
		status, payment           string
		paymentDate, cancelledAt  sql.NullTime
		cancelledBy, reason       string
	)
	err := row.Scan(
		&rawID, &rawCare, &rawSenior,
		&b.Window.StartDate, &b.Window.EndDate, &b.Window.StartTime, &b.Window.EndTime,
		&b.Location.Street, &b.Location.City, &b.Location.State, &b.Location.Pincode,
		&status, &b.HourlyRate, &b.TotalHours, &b.TotalAmount,
		&payment, &paymentDate, &b.SpecialInstructions, &b.CaregiverNotes, &b.Reviewed,
		&cancelledBy, &reason, &cancelledAt, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.ID = id.BookingID(rawID)
	b.CaregiverID = id.CaregiverID(rawCare)
	b.SeniorID = id.SeniorID(rawSenior)
	b.Status = models.Status(status)
	b.PaymentStatus = models.PaymentStatus(payment)
	if paymentDate.Valid {
		b.PaymentDate = &paymentDate.Time
	}
	if cancelledAt.Valid {
		b.Cancellation = &models.Cancellation{
			By:     id.ActorRole(cancelledBy),
			Reason: reason,
			At:     cancelledAt.Time,
		}
	}
	return &b, nil
}
