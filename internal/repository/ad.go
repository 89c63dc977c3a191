package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/deppfellow/shanyrak/internal/database"
	"github.com/deppfellow/shanyrak/internal/model/ad"
	"github.com/jackc/pgx/v5"
)

const adColumns = `id, type, price, address, area, rooms_count, description, user_id, created_at`

type AdRepository struct {
	base
}

func NewAdRepository(db database.Querier) *AdRepository {
	return &AdRepository{base: base{db: db}}
}

func (r *AdRepository) Create(ctx context.Context, a *ad.Ad) (int64, error) {
	stmt := `
		INSERT INTO ads (type, price, address, area, rooms_count, description, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err := r.conn(ctx).QueryRow(ctx, stmt,
		a.Type, a.Price, a.Address, a.Area, a.RoomsCount, a.Description, a.UserID,
	).Scan(&id)
	if err != nil {
		return 0, wrapErr(tableAds, "create", err)
	}
	return id, nil
}

// GetByID returns the ad with its comment count.
func (r *AdRepository) GetByID(ctx context.Context, id int64) (*ad.Details, error) {
	stmt := `
		SELECT a.id, a.type, a.price, a.address, a.area, a.rooms_count, a.description, a.user_id, a.created_at,
			(SELECT COUNT(*) FROM comments c WHERE c.ad_id = a.id) AS total_comments
		FROM ads a
		WHERE a.id = $1
	`

	var d ad.Details
	err := r.conn(ctx).QueryRow(ctx, stmt, id).Scan(
		&d.ID, &d.Type, &d.Price, &d.Address, &d.Area, &d.RoomsCount, &d.Description, &d.UserID, &d.CreatedAt,
		&d.TotalComments,
	)
	if err != nil {
		return nil, wrapErr(tableAds, "get by id", err)
	}
	return &d, nil
}

// GetForUpdate locks the ad row until the surrounding transaction ends.
func (r *AdRepository) GetForUpdate(ctx context.Context, id int64) (*ad.Ad, error) {
	stmt := `SELECT ` + adColumns + ` FROM ads WHERE id = $1 FOR UPDATE`

	var a ad.Ad
	err := r.conn(ctx).QueryRow(ctx, stmt, id).Scan(
		&a.ID, &a.Type, &a.Price, &a.Address, &a.Area, &a.RoomsCount, &a.Description, &a.UserID, &a.CreatedAt,
	)
	if err != nil {
		return nil, wrapErr(tableAds, "get for update", err)
	}
	return &a, nil
}

// Exists reports whether an ad with id is present. Absence is not an error.
func (r *AdRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM ads WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, wrapErr(tableAds, "exists", err)
	}
	return exists, nil
}

// buildAdFilter turns f into a WHERE clause and its positional arguments.
func buildAdFilter(f ad.Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Type != "" {
		add("type = $%d", f.Type)
	}
	if f.RoomsCount > 0 {
		add("rooms_count = $%d", f.RoomsCount)
	}
	if f.PriceFrom > 0 {
		add("price >= $%d", f.PriceFrom)
	}
	if f.PriceUntil > 0 {
		add("price <= $%d", f.PriceUntil)
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List returns one page of ads matching f, ordered by id, along with the
// number of matches before LIMIT/OFFSET.
func (r *AdRepository) List(ctx context.Context, f ad.Filter) (*ad.Page, error) {
	where, args := buildAdFilter(f)
	q := r.conn(ctx)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM ads`+where, args...).Scan(&total); err != nil {
		return nil, wrapErr(tableAds, "count", err)
	}

	stmt := fmt.Sprintf(
		`SELECT id, type, price, address, area, rooms_count FROM ads%s ORDER BY id LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2,
	)
	args = append(args, f.Limit, f.Offset)

	rows, err := q.Query(ctx, stmt, args...)
	if err != nil {
		return nil, wrapErr(tableAds, "list", err)
	}

	objects, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (ad.Summary, error) {
		var s ad.Summary
		err := row.Scan(&s.ID, &s.Type, &s.Price, &s.Address, &s.Area, &s.RoomsCount)
		return s, err
	})
	if err != nil {
		return nil, wrapErr(tableAds, "list", err)
	}

	return &ad.Page{Total: total, Objects: objects}, nil
}

func (r *AdRepository) Update(ctx context.Context, a *ad.Ad) error {
	stmt := `
		UPDATE ads
		SET type = $2, price = $3, address = $4, area = $5, rooms_count = $6, description = $7
		WHERE id = $1
	`

	tag, err := r.conn(ctx).Exec(ctx, stmt,
		a.ID, a.Type, a.Price, a.Address, a.Area, a.RoomsCount, a.Description,
	)
	if err != nil {
		return wrapErr(tableAds, "update", err)
	}
	if tag.RowsAffected() == 0 {
		return wrapErr(tableAds, "update", pgx.ErrNoRows)
	}
	return nil
}

// Delete removes the ad; its comments and favorites go with it through
// ON DELETE CASCADE.
func (r *AdRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM ads WHERE id = $1`, id)
	if err != nil {
		return wrapErr(tableAds, "delete", err)
	}
	if tag.RowsAffected() == 0 {
		return wrapErr(tableAds, "delete", pgx.ErrNoRows)
	}
	return nil
}
