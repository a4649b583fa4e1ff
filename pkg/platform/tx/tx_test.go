package tx

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRunInTx(t *testing.T) {
	t.Run("nested calls do not deadlock", func(t *testing.T) {
		m := NewMemory()
		calls := 0
		err := m.RunInTx(context.Background(), func(ctx context.Context) error {
			calls++
			return m.RunInTx(ctx, func(context.Context) error {
				calls++
				return nil
			})
		})
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("propagates fn error", func(t *testing.T) {
		boom := errors.New("boom")
		err := NewMemory().RunInTx(context.Background(), func(context.Context) error { return boom })
		assert.ErrorIs(t, err, boom)
	})

	t.Run("failed work replays undo newest first", func(t *testing.T) {
		m := NewMemory()
		var replayed []string
		err := m.RunInTx(context.Background(), func(ctx context.Context) error {
			OnRollback(ctx, func() { replayed = append(replayed, "first") })
			return m.RunInTx(ctx, func(ctx context.Context) error {
				OnRollback(ctx, func() { replayed = append(replayed, "second") })
				return errors.New("boom")
			})
		})
		require.Error(t, err)
		assert.Equal(t, []string{"second", "first"}, replayed)
	})

	t.Run("committed work keeps its writes", func(t *testing.T) {
		m := NewMemory()
		undone := false
		err := m.RunInTx(context.Background(), func(ctx context.Context) error {
			OnRollback(ctx, func() { undone = true })
			return nil
		})
		require.NoError(t, err)
		assert.False(t, undone)
	})

	t.Run("undo outside a unit of work is ignored", func(t *testing.T) {
		OnRollback(context.Background(), func() { t.Fatal("must not run") })
	})

	t.Run("cancelled context is refused", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := NewMemory().RunInTx(ctx, func(context.Context) error {
			t.Fatal("fn must not run")
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("serializes concurrent work", func(t *testing.T) {
		m := NewMemory()
		counter := 0
		var wg sync.WaitGroup
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = m.RunInTx(context.Background(), func(context.Context) error {
					v := counter
					counter = v + 1
					return nil
				})
			}()
		}
		wg.Wait()
		assert.Equal(t, 50, counter)
	})
}

func TestFromWithoutTx(t *testing.T) {
	_, ok := From(context.Background())
	assert.False(t, ok)
	assert.Equal(t, context.Background(), WithTx(context.Background(), nil))
}
