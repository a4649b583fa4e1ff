package caregiver

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	dirmodels "carenest/internal/directory/models"
	"carenest/internal/identity/models"
	"carenest/internal/platform/postgres"
	id "carenest/pkg/domain"
)

const columns = `id, full_name, email, phone, date_of_birth, gender, profile_photo,
	street, city, state, pincode,
	aadhaar_number, pan_number, aadhaar_card, aadhaar_verified, pan_card, pan_verified,
	verification_status, verified_at, rejection_reason,
	experience, education, specializations, languages, availability, hourly_rate, bio,
	certifications, reference_notes,
	rating, review_count, is_active, is_available,
	total_bookings, completed_bookings, total_hours_worked,
	password_hash, registered_at, updated_at, last_login_at`

// PostgresStore persists caregivers. Reads inside a unit of work lock the row.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, c *models.Caregiver) error {
	verifiedAt, _ := c.Verification.VerifiedAt()
	_, err := postgres.Conn(ctx, s.db).ExecContext(ctx, `
		INSERT INTO caregivers (`+columns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
		        $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34, $35, $36, $37, $38, $39, $40)`,
		uuid.UUID(c.ID), c.FullName, c.Email, c.Phone, c.DateOfBirth, string(c.Gender), c.ProfilePhoto,
		c.Address.Street, c.Address.City, c.Address.State, c.Address.Pincode,
		c.AadhaarNumber, c.PANNumber, c.Documents.AadhaarCard.Ref, c.Documents.AadhaarCard.Verified,
		c.Documents.PanCard.Ref, c.Documents.PanCard.Verified,
		string(c.Verification.Status()), nullTime(verifiedAt), c.Verification.RejectionReason(),
		c.Experience, c.Education, pq.Array(c.Specializations), pq.Array(c.Languages), string(c.Availability),
		c.HourlyRate, c.Bio, pq.Array(c.Certifications), c.References,
		c.Rating, c.ReviewCount, c.IsActive, c.IsAvailable,
		c.TotalBookings, c.CompletedBookings, c.TotalHoursWorked,
		c.PasswordHash, c.RegisteredAt, c.UpdatedAt, c.LastLoginAt,
	)
	if err != nil {
		return fmt.Errorf("insert caregiver: %w", postgres.MapError(err))
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, caregiverID id.CaregiverID) (*models.Caregiver, error) {
	query := `SELECT ` + columns + ` FROM caregivers WHERE id = $1`
	if postgres.InTx(ctx) {
		query += ` FOR UPDATE`
	}
	c, err := scanCaregiver(postgres.Conn(ctx, s.db).QueryRowContext(ctx, query, uuid.UUID(caregiverID)))
	if err != nil {
		return nil, postgres.MapError(err)
	}
	return c, nil
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*models.Caregiver, error) {
	c, err := scanCaregiver(postgres.Conn(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+columns+` FROM caregivers WHERE email = $1`, email))
	if err != nil {
		return nil, postgres.MapError(err)
	}
	return c, nil
}

func (s *PostgresStore) Update(ctx context.Context, c *models.Caregiver) error {
	verifiedAt, _ := c.Verification.VerifiedAt()
	res, err := postgres.Conn(ctx, s.db).ExecContext(ctx, `
		UPDATE caregivers SET
			phone = $2, profile_photo = $3, street = $4, city = $5, state = $6, pincode = $7,
			aadhaar_card = $8, aadhaar_verified = $9, pan_card = $10, pan_verified = $11,
			verification_status = $12, verified_at = $13, rejection_reason = $14,
			experience = $15, education = $16, specializations = $17, languages = $18,
			availability = $19, hourly_rate = $20, bio = $21, certifications = $22, reference_notes = $23,
			rating = $24, review_count = $25, is_active = $26, is_available = $27,
			total_bookings = $28, completed_bookings = $29, total_hours_worked = $30,
			updated_at = $31, last_login_at = $32
		WHERE id = $1`,
		uuid.UUID(c.ID), c.Phone, c.ProfilePhoto,
		c.Address.Street, c.Address.City, c.Address.State, c.Address.Pincode,
		c.Documents.AadhaarCard.Ref, c.Documents.AadhaarCard.Verified,
		c.Documents.PanCard.Ref, c.Documents.PanCard.Verified,
		string(c.Verification.Status()), nullTime(verifiedAt), c.Verification.RejectionReason(),
		c.Experience, c.Education, pq.Array(c.Specializations), pq.Array(c.Languages),
		string(c.Availability), c.HourlyRate, c.Bio, pq.Array(c.Certifications), c.References,
		c.Rating, c.ReviewCount, c.IsActive, c.IsAvailable,
		c.TotalBookings, c.CompletedBookings, c.TotalHoursWorked,
		c.UpdatedAt, c.LastLoginAt,
	)
	if err != nil {
		return fmt.Errorf("update caregiver: %w", postgres.MapError(err))
	}
	return expectOneRow(res)
}

// RecordLogin touches only last_login_at so it cannot overwrite concurrent
// verification or rating writes.
func (s *PostgresStore) RecordLogin(ctx context.Context, caregiverID id.CaregiverID, at time.Time) error {
	res, err := postgres.Conn(ctx, s.db).ExecContext(ctx,
		`UPDATE caregivers SET last_login_at = $2 WHERE id = $1`, uuid.UUID(caregiverID), at)
	if err != nil {
		return fmt.Errorf("record caregiver login: %w", postgres.MapError(err))
	}
	return expectOneRow(res)
}

func (s *PostgresStore) ListPending(ctx context.Context) ([]*models.Caregiver, error) {
	rows, err := postgres.Conn(ctx, s.db).QueryContext(ctx,
		`SELECT `+columns+` FROM caregivers WHERE verification_status = 'pending' ORDER BY registered_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list pending caregivers: %w", err)
	}
	return collect(rows)
}

func (s *PostgresStore) ListIDs(ctx context.Context) ([]id.CaregiverID, error) {
	rows, err := postgres.Conn(ctx, s.db).QueryContext(ctx, `SELECT id FROM caregivers`)
	if err != nil {
		return nil, fmt.Errorf("list caregiver ids: %w", err)
	}
	defer rows.Close()
	var out []id.CaregiverID
	for rows.Next() {
		var u uuid.UUID
		if err := rows.Scan(&u); err != nil {
			return nil, fmt.Errorf("scan caregiver id: %w", err)
		}
		out = append(out, id.CaregiverID(u))
	}
	return out, rows.Err()
}

// Search runs the directory predicate as one count and one page query.
func (s *PostgresStore) Search(ctx context.Context, q dirmodels.Query) ([]*models.Caregiver, int, error) {
	where, args := buildSearchFilter(q)
	conn := postgres.Conn(ctx, s.db)

	var total int
	if err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM caregivers WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count caregivers: %w", err)
	}

	pageArgs := append(args, q.Limit, q.Offset())
	query := fmt.Sprintf(`SELECT %s FROM caregivers WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		columns, where, orderBy(q.Sort), len(args)+1, len(args)+2)
	rows, err := conn.QueryContext(ctx, query, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("search caregivers: %w", err)
	}
	items, err := collect(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func buildSearchFilter(q dirmodels.Query) (string, []any) {
	clauses := []string{"verification_status = 'verified'", "is_active = TRUE"}
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if q.Text != "" {
		p := arg(likePattern(q.Text))
		clauses = append(clauses, fmt.Sprintf("(full_name ILIKE %s OR bio ILIKE %s)", p, p))
	}
	if q.City != "" {
		clauses = append(clauses, "city ILIKE "+arg(likePattern(q.City)))
	}
	if q.Specialization != "" {
		clauses = append(clauses, arg(q.Specialization)+" = ANY(specializations)")
	}
	if q.MinRate != nil {
		clauses = append(clauses, "hourly_rate >= "+arg(*q.MinRate))
	}
	if q.MaxRate != nil {
		clauses = append(clauses, "hourly_rate <= "+arg(*q.MaxRate))
	}
	if q.Available != nil {
		clauses = append(clauses, "is_available = "+arg(*q.Available))
	}
	return strings.Join(clauses, " AND "), args
}

func orderBy(key dirmodels.SortKey) string {
	switch key {
	case dirmodels.SortExperience:
		return "experience DESC, registered_at DESC"
	case dirmodels.SortPriceLow:
		return "hourly_rate ASC, registered_at DESC"
	case dirmodels.SortPriceHigh:
		return "hourly_rate DESC, registered_at DESC"
	default:
		return "rating DESC, registered_at DESC"
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCaregiver(row rowScanner) (*models.Caregiver, error) {
	var (
		c                       models.Caregiver
		rawID                   uuid.UUID
		gender, availability    string
		status, rejectionReason string
		verifiedAt, lastLogin   sql.NullTime
		specs, langs, certs     pq.StringArray
	)
	err := row.Scan(
		&rawID, &c.FullName, &c.Email, &c.Phone, &c.DateOfBirth, &gender, &c.ProfilePhoto,
		&c.Address.Street, &c.Address.City, &c.Address.State, &c.Address.Pincode,
		&c.AadhaarNumber, &c.PANNumber, &c.Documents.AadhaarCard.Ref, &c.Documents.AadhaarCard.Verified,
		&c.Documents.PanCard.Ref, &c.Documents.PanCard.Verified,
		&status, &verifiedAt, &rejectionReason,
		&c.Experience, &c.Education, &specs, &langs, &availability, &c.HourlyRate, &c.Bio,
		&certs, &c.References,
		&c.Rating, &c.ReviewCount, &c.IsActive, &c.IsAvailable,
		&c.TotalBookings, &c.CompletedBookings, &c.TotalHoursWorked,
		&c.PasswordHash, &c.RegisteredAt, &c.UpdatedAt, &lastLogin,
	)
	if err != nil {
		return nil, err
	}
	c.ID = id.CaregiverID(rawID)
	c.Gender = models.Gender(gender)
	c.Availability = models.Availability(availability)
	c.Specializations = []string(specs)
	c.Languages = []string(langs)
	c.Certifications = []string(certs)

	var at *time.Time
	if verifiedAt.Valid {
		at = &verifiedAt.Time
	}
	if c.Verification, err = models.RestoreVerification(models.VerificationStatus(status), at, rejectionReason); err != nil {
		return nil, err
	}
	if lastLogin.Valid {
		c.LastLoginAt = &lastLogin.Time
	}
	return &c, nil
}

func collect(rows *sql.Rows) ([]*models.Caregiver, error) {
	defer rows.Close()
	out := make([]*models.Caregiver, 0)
	for rows.Next() {
		c, err := scanCaregiver(rows)
		if err != nil {
			return nil, fmt.Errorf("scan caregiver: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return postgres.MapError(sql.ErrNoRows)
	}
	return nil
}
