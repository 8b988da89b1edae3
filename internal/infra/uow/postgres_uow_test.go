//go:build unit

package uow

import (
	"context"
	"testing"

	sqlc "hotel-admin/internal/infra/sqlc/generated"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTx records how a transaction ended; other pgx.Tx methods are unused.
type fakeTx struct {
	pgx.Tx
	commitErr error
	commits   int
	rollbacks int
	closed    bool
}

func (f *fakeTx) Commit(context.Context) error {
	f.commits++
	f.closed = true
	return f.commitErr
}

func (f *fakeTx) Rollback(context.Context) error {
	if f.closed {
		return pgx.ErrTxClosed
	}
	f.rollbacks++
	f.closed = true
	return nil
}

type fakePool struct {
	sqlc.DBTX
	tx       *fakeTx
	beginErr error
	begins   int
}

func (f *fakePool) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) {
	f.begins++
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	return f.tx, nil
}

func newTestUoW() (*PostgresUoW, *fakePool) {
	pool := &fakePool{tx: &fakeTx{}}
	return &PostgresUoW{pool: pool}, pool
}

func TestWithin(t *testing.T) {
	ctx := context.Background()

	t.Run("commits once on success", func(t *testing.T) {
		u, pool := newTestUoW()

		err := u.Within(ctx, func(context.Context, shared.Tx) error { return nil })

		require.NoError(t, err)
		assert.Equal(t, 1, pool.tx.commits)
		assert.Equal(t, 0, pool.tx.rollbacks)
	})

	t.Run("rolls back and returns the error unchanged", func(t *testing.T) {
		u, pool := newTestUoW()
		calls := 0

		err := u.Within(ctx, func(context.Context, shared.Tx) error {
			calls++
			return errs.ErrHotelNotFound
		})

		assert.ErrorIs(t, err, errs.ErrHotelNotFound)
		assert.Equal(t, 1, calls)
		assert.Equal(t, 0, pool.tx.commits)
		assert.Equal(t, 1, pool.tx.rollbacks)
	})

	t.Run("serialization failure is not replayed", func(t *testing.T) {
		u, pool := newTestUoW()
		calls := 0
		conflict := &pgconn.PgError{Code: "40001"}

		err := u.Within(ctx, func(context.Context, shared.Tx) error {
			calls++
			return conflict
		})

		assert.ErrorIs(t, err, conflict)
		assert.Equal(t, 1, calls)
		assert.Equal(t, 1, pool.begins)
	})

	t.Run("panic in fn still rolls back", func(t *testing.T) {
		u, pool := newTestUoW()

		assert.Panics(t, func() {
			_ = u.Within(ctx, func(context.Context, shared.Tx) error { panic("handler bug") })
		})
		assert.Equal(t, 0, pool.tx.commits)
		assert.Equal(t, 1, pool.tx.rollbacks)
	})

	t.Run("commit failure is a database failure", func(t *testing.T) {
		u, pool := newTestUoW()
		pool.tx.commitErr = assert.AnError

		err := u.Within(ctx, func(context.Context, shared.Tx) error { return nil })

		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
		assert.True(t, errs.Is(err, errTransactionCommit))
	})

	t.Run("begin failure never calls fn", func(t *testing.T) {
		u, pool := newTestUoW()
		pool.beginErr = assert.AnError
		called := false

		err := u.Within(ctx, func(context.Context, shared.Tx) error {
			called = true
			return nil
		})

		assert.False(t, called)
		assert.True(t, errs.Is(err, errTransactionBegin))
	})
}

func TestWithinReadOnly(t *testing.T) {
	u, pool := newTestUoW()

	assert.Panics(t, func() {
		_ = u.WithinReadOnly(context.Background(), func(context.Context, sqlc.DBTX) error { panic("read bug") })
	})
	assert.Equal(t, 1, pool.tx.rollbacks)
}
