package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carenest/internal/review/models"
	id "carenest/pkg/domain"
	"carenest/pkg/platform/sentinel"
)

func newMock(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgres(db), mock
}

func TestPostgresCreateDuplicateBooking(t *testing.T) {
	store, mock := newMock(t)
	r, err := models.New(id.NewReviewID(), id.NewCaregiverID(), id.NewSeniorID(), id.NewBookingID(), 4, "Great", time.Now())
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO reviews").
		WillReturnError(&pgconn.PgError{Code: "23505", TableName: "reviews", ConstraintName: "reviews_booking_id_key"})

	err = store.Create(context.Background(), r)
	assert.ErrorIs(t, err, sentinel.ErrAlreadyUsed)
	field, _ := sentinel.DuplicateField(err)
	assert.Equal(t, "booking_id", field)
}

func TestPostgresSummarizeFiltersVisible(t *testing.T) {
	store, mock := newMock(t)
	caregiverID := id.NewCaregiverID()

	mock.ExpectQuery(regexp.QuoteMeta("FROM reviews WHERE caregiver_id = $1 AND is_visible")).
		WithArgs(caregiverID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(4.5, 2))

	sum, err := store.Summarize(context.Background(), caregiverID)

	require.NoError(t, err)
	assert.Equal(t, models.Summary{Average: 4.5, Count: 2}, sum)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListVisibleOrdering(t *testing.T) {
	store, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE caregiver_id = $1 AND is_visible ORDER BY created_at DESC")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := store.ListByCaregiver(context.Background(), id.NewCaregiverID(), true)

	require.NoError(t, err)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdateMissingRow(t *testing.T) {
	store, mock := newMock(t)
	mock.ExpectExec("UPDATE reviews SET").WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Update(context.Background(), &models.Review{ID: id.NewReviewID()})
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}
