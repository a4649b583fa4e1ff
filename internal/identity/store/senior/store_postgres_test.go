package senior

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carenest/internal/identity/identitytest"
	"carenest/pkg/platform/sentinel"
)

func TestPostgresSeniorStore(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	store := NewPostgres(db)
	ctx := context.Background()

	t.Run("duplicate email", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO seniors").
			WillReturnError(&pgconn.PgError{Code: "23505", TableName: "seniors", ConstraintName: "seniors_email_key"})
		err := store.Create(ctx, identitytest.Senior())
		assert.ErrorIs(t, err, sentinel.ErrAlreadyUsed)
	})

	t.Run("find by email not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM seniors WHERE email = $1")).
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		_, err := store.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("update missing row", func(t *testing.T) {
		mock.ExpectExec("UPDATE seniors SET").WillReturnResult(sqlmock.NewResult(0, 0))
		assert.ErrorIs(t, store.Update(ctx, identitytest.Senior()), sentinel.ErrNotFound)
	})

	t.Run("record login", func(t *testing.T) {
		sn := identitytest.Senior()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE seniors SET last_login_at = $2 WHERE id = $1")).
			WithArgs(sqlmock.AnyArg(), identitytest.Epoch).
			WillReturnResult(sqlmock.NewResult(0, 1))
		assert.NoError(t, store.RecordLogin(ctx, sn.ID, identitytest.Epoch))
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
