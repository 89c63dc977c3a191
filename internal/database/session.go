package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// Querier is the subset of pgx shared by *pgxpool.Pool, *pgxpool.Conn and
// pgx.Tx. Repositories only ever talk to a Querier.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Session is a connection held for the duration of one request.
type Session interface {
	Querier
	Release()
}

// SessionSource hands out request sessions. *Database implements it.
type SessionSource interface {
	AcquireSession(ctx context.Context) (Session, error)
}

type (
	sessionKey struct{}
	txKey      struct{}
)

// WithSession stores the request session in ctx.
func WithSession(ctx context.Context, s Querier) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// Conn resolves the querier for ctx: the open transaction if any, then the
// request session, then fallback.
func Conn(ctx context.Context, fallback Querier) Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok && tx != nil {
		return tx
	}
	if s, ok := ctx.Value(sessionKey{}).(Querier); ok && s != nil {
		return s
	}
	return fallback
}

// InTx runs fn inside a transaction. Queries issued through Conn with the
// context passed to fn join that transaction. A nested InTx reuses the
// outer transaction.
//
// fn's error or panic rolls the transaction back. The error is returned
// unchanged so the error handler can still classify it.
func InTx(ctx context.Context, fallback Querier, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := Conn(ctx, fallback).Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	finished := false
	defer func() {
		if finished {
			return
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			zerolog.Ctx(ctx).Error().Err(rbErr).Msg("failed to roll back transaction")
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	finished = true
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
