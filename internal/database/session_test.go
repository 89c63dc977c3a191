package database

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConn_Resolution(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	session, err := pgxmock.NewConn()
	require.NoError(t, err)

	ctx := context.Background()
	assert.Same(t, pool, Conn(ctx, pool))

	ctx = WithSession(ctx, session)
	assert.Same(t, session, Conn(ctx, pool))
}

func TestInTx_Commit(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	pool.ExpectBegin()
	pool.ExpectExec("UPDATE ads").
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	pool.ExpectCommit()

	err = InTx(context.Background(), pool, func(ctx context.Context) error {
		_, err := Conn(ctx, pool).Exec(ctx, "UPDATE ads SET price = 1 WHERE id = $1", int64(7))
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestInTx_RollbackReturnsOriginalError(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	pool.ExpectBegin()
	pool.ExpectRollback()

	sentinel := errors.New("forbidden")
	err = InTx(context.Background(), pool, func(ctx context.Context) error {
		return sentinel
	})

	assert.ErrorIs(t, err, sentinel)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestInTx_RollsBackOnPanic(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	pool.ExpectBegin()
	pool.ExpectRollback()

	assert.PanicsWithValue(t, "boom", func() {
		_ = InTx(context.Background(), pool, func(ctx context.Context) error {
			panic("boom")
		})
	})
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestInTx_NestedReusesTransaction(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	pool.ExpectBegin()
	pool.ExpectCommit()

	calls := 0
	err = InTx(context.Background(), pool, func(ctx context.Context) error {
		return InTx(ctx, pool, func(ctx context.Context) error {
			calls++
			return nil
		})
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestInTx_BeginFailure(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	pool.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	called := false
	err = InTx(context.Background(), pool, func(ctx context.Context) error {
		called = true
		return nil
	})

	assert.Error(t, err)
	assert.False(t, called)
}
