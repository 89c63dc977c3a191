package repository

import (
	"context"

	"github.com/deppfellow/shanyrak/internal/database"
	"github.com/deppfellow/shanyrak/internal/model/favorite"
	"github.com/jackc/pgx/v5"
)

type FavoriteRepository struct {
	base
}

func NewFavoriteRepository(db database.Querier) *FavoriteRepository {
	return &FavoriteRepository{base: base{db: db}}
}

// Add bookmarks adID for userID. It reports false when the pair already
// existed; the unique constraint makes concurrent calls safe.
func (r *FavoriteRepository) Add(ctx context.Context, userID, adID int64) (bool, error) {
	stmt := `
		INSERT INTO favorites (user_id, ad_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, ad_id) DO NOTHING
	`

	tag, err := r.conn(ctx).Exec(ctx, stmt, userID, adID)
	if err != nil {
		return false, wrapErr(tableFavorites, "add", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListByUser returns the favorited ads of userID in favoriting order.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]favorite.Item, error) {
	stmt := `
		SELECT a.id, a.address
		FROM favorites f
		JOIN ads a ON a.id = f.ad_id
		WHERE f.user_id = $1
		ORDER BY f.id
	`

	rows, err := r.conn(ctx).Query(ctx, stmt, userID)
	if err != nil {
		return nil, wrapErr(tableFavorites, "list by user", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (favorite.Item, error) {
		var it favorite.Item
		err := row.Scan(&it.ID, &it.Address)
		return it, err
	})
	if err != nil {
		return nil, wrapErr(tableFavorites, "list by user", err)
	}
	return items, nil
}

// Remove deletes the (userID, adID) bookmark and reports whether it existed.
func (r *FavoriteRepository) Remove(ctx context.Context, userID, adID int64) (bool, error) {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM favorites WHERE user_id = $1 AND ad_id = $2`, userID, adID)
	if err != nil {
		return false, wrapErr(tableFavorites, "remove", err)
	}
	return tag.RowsAffected() > 0, nil
}
