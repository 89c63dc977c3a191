// Package repository holds the SQL for every table.
//
// Repositories never translate errors. They wrap driver errors with the
// table they came from ("table:ads: ...") and leave classification to
// sqlerr at the HTTP boundary.
package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/shanyrak/internal/database"
	"github.com/deppfellow/shanyrak/internal/sqlerr"
)

const (
	tableUsers     = "users"
	tableAds       = "ads"
	tableComments  = "comments"
	tableFavorites = "favorites"
)

func wrapErr(table, op string, err error) error {
	return fmt.Errorf("%s%s: %s: %w", sqlerr.TablePrefix, table, op, err)
}

// base resolves the querier for each call so repositories transparently
// join the request session or an open transaction.
type base struct {
	db database.Querier
}

func (b base) conn(ctx context.Context) database.Querier {
	return database.Conn(ctx, b.db)
}
