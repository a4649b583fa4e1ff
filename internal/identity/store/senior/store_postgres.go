package senior

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"carenest/internal/identity/models"
	"carenest/internal/platform/postgres"
	id "carenest/pkg/domain"
)

const columns = `id, guardian_name, email, phone, relationship, senior_name, senior_age,
	street, city, state, pincode, care_type, medical_conditions, special_needs,
	preferred_gender, start_date, budget, additional_info, is_active,
	password_hash, created_at, updated_at, last_login_at`

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (p *PostgresStore) Create(ctx context.Context, s *models.Senior) error {
	_, err := postgres.Conn(ctx, p.db).ExecContext(ctx, `
		INSERT INTO seniors (`+columns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`,
		uuid.UUID(s.ID), s.GuardianName, s.Email, s.Phone, string(s.Relationship), s.SeniorName, s.SeniorAge,
		s.Address.Street, s.Address.City, s.Address.State, s.Address.Pincode,
		string(s.CareType), s.MedicalConditions, s.SpecialNeeds,
		string(s.PreferredGender), s.StartDate, s.Budget, s.AdditionalInfo, s.IsActive,
		s.PasswordHash, s.CreatedAt, s.UpdatedAt, s.LastLoginAt,
	)
	if err != nil {
		return fmt.Errorf("insert senior: %w", postgres.MapError(err))
	}
	return nil
}

func (p *PostgresStore) FindByID(ctx context.Context, seniorID id.SeniorID) (*models.Senior, error) {
	query := `SELECT ` + columns + ` FROM seniors WHERE id = $1`
	if postgres.InTx(ctx) {
		query += ` FOR UPDATE`
	}
	s, err := scanSenior(postgres.Conn(ctx, p.db).QueryRowContext(ctx, query, uuid.UUID(seniorID)))
	if err != nil {
		return nil, postgres.MapError(err)
	}
	return s, nil
}

func (p *PostgresStore) FindByEmail(ctx context.Context, email string) (*models.Senior, error) {
	s, err := scanSenior(postgres.Conn(ctx, p.db).QueryRowContext(ctx,
		`SELECT `+columns+` FROM seniors WHERE email = $1`, email))
	if err != nil {
		return nil, postgres.MapError(err)
	}
	return s, nil
}

func (p *PostgresStore) Update(ctx context.Context, s *models.Senior) error {
	res, err := postgres.Conn(ctx, p.db).ExecContext(ctx, `
		UPDATE seniors SET
			phone = $2, street = $3, city = $4, state = $5, pincode = $6,
			care_type = $7, medical_conditions = $8, special_needs = $9,
			preferred_gender = $10, budget = $11, additional_info = $12, is_active = $13,
			updated_at = $14, last_login_at = $15
		WHERE id = $1`,
		uuid.UUID(s.ID), s.Phone, s.Address.Street, s.Address.City, s.Address.State, s.Address.Pincode,
		string(s.CareType), s.MedicalConditions, s.SpecialNeeds,
		string(s.PreferredGender), s.Budget, s.AdditionalInfo, s.IsActive,
		s.UpdatedAt, s.LastLoginAt,
	)
	if err != nil {
		return fmt.Errorf("update senior: %w", postgres.MapError(err))
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

func (p *PostgresStore) RecordLogin(ctx context.Context, seniorID id.SeniorID, at time.Time) error {
	res, err := postgres.Conn(ctx, p.db).ExecContext(ctx,
		`UPDATE seniors SET last_login_at = $2 WHERE id = $1`, uuid.UUID(seniorID), at)
	if err != nil {
		return fmt.Errorf("record senior login: %w", postgres.MapError(err))
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

func scanSenior(row *sql.Row) (*models.Senior, error) {
	var (
		s                                       models.Senior
		rawID                                   uuid.UUID
		relationship, careType, preferredGender string
		lastLogin                               sql.NullTime
	)
	err := row.Scan(
		&rawID, &s.GuardianName, &s.Email, &s.Phone, &relationship, &s.SeniorName, &s.SeniorAge,
		&s.Address.Street, &s.Address.City, &s.Address.State, &s.Address.Pincode,
		&careType, &s.MedicalConditions, &s.SpecialNeeds,
		&preferredGender, &s.StartDate, &s.Budget, &s.AdditionalInfo, &s.IsActive,
		&s.PasswordHash, &s.CreatedAt, &s.UpdatedAt, &lastLogin,
	)
	if err != nil {
		return nil, err
	}
	s.ID = id.SeniorID(rawID)
	s.Relationship = models.Relationship(relationship)
	s.CareType = models.CareType(careType)
	s.PreferredGender = models.PreferredGender(preferredGender)
	if lastLogin.Valid {
		s.LastLoginAt = &lastLogin.Time
	}
	return &s, nil
}
