package senior

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carenest/internal/identity/identitytest"
	id "carenest/pkg/domain"
	"carenest/pkg/platform/sentinel"
)

func TestInMemorySeniorStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemory()
	s := identitytest.Senior()
	require.NoError(t, store.Create(ctx, s))

	t.Run("duplicate email", func(t *testing.T) {
		dup := identitytest.Senior()
		dup.Email = s.Email
		err := store.Create(ctx, dup)
		assert.ErrorIs(t, err, sentinel.ErrAlreadyUsed)
		field, _ := sentinel.DuplicateField(err)
		assert.Equal(t, "email", field)
	})

	t.Run("find by email", func(t *testing.T) {
		found, err := store.FindByEmail(ctx, s.Email)
		require.NoError(t, err)
		assert.Equal(t, s.ID, found.ID)
	})

	t.Run("update persists", func(t *testing.T) {
		found, err := store.FindByID(ctx, s.ID)
		require.NoError(t, err)
		found.Budget = 35000
		require.NoError(t, store.Update(ctx, found))

		again, err := store.FindByID(ctx, s.ID)
		require.NoError(t, err)
		assert.InDelta(t, 35000, again.Budget, 1e-9)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := store.FindByID(ctx, id.NewSeniorID())
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
		assert.ErrorIs(t, store.Update(ctx, identitytest.Senior()), sentinel.ErrNotFound)
	})
}
