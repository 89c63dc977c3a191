package repository

import (
	"context"

	"github.com/deppfellow/shanyrak/internal/database"
	"github.com/deppfellow/shanyrak/internal/model/comment"
	"github.com/jackc/pgx/v5"
)

type CommentRepository struct {
	base
}

func NewCommentRepository(db database.Querier) *CommentRepository {
	return &CommentRepository{base: base{db: db}}
}

func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) (int64, error) {
	stmt := `
		INSERT INTO comments (content, author_id, ad_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	if err := r.conn(ctx).QueryRow(ctx, stmt, c.Content, c.AuthorID, c.AdID).Scan(&id); err != nil {
		return 0, wrapErr(tableComments, "create", err)
	}
	return id, nil
}

// ListByAd returns the comments of an ad in insertion order.
func (r *CommentRepository) ListByAd(ctx context.Context, adID int64) ([]comment.Comment, error) {
	stmt := `
		SELECT id, content, author_id, ad_id, created_at
		FROM comments
		WHERE ad_id = $1
		ORDER BY id
	`

	rows, err := r.conn(ctx).Query(ctx, stmt, adID)
	if err != nil {
		return nil, wrapErr(tableComments, "list by ad", err)
	}

	comments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (comment.Comment, error) {
		var c comment.Comment
		err := row.Scan(&c.ID, &c.Content, &c.AuthorID, &c.AdID, &c.CreatedAt)
		return c, err
	})
	if err != nil {
		return nil, wrapErr(tableComments, "list by ad", err)
	}
	return comments, nil
}

// GetForUpdate locks the comment row until the surrounding transaction ends.
func (r *CommentRepository) GetForUpdate(ctx context.Context, id int64) (*comment.Comment, error) {
	stmt := `SELECT id, content, author_id, ad_id, created_at FROM comments WHERE id = $1 FOR UPDATE`

	var c comment.Comment
	err := r.conn(ctx).QueryRow(ctx, stmt, id).Scan(&c.ID, &c.Content, &c.AuthorID, &c.AdID, &c.CreatedAt)
	if err != nil {
		return nil, wrapErr(tableComments, "get for update", err)
	}
	return &c, nil
}

func (r *CommentRepository) Update(ctx context.Context, c *comment.Comment) error {
	tag, err := r.conn(ctx).Exec(ctx, `UPDATE comments SET content = $2 WHERE id = $1`, c.ID, c.Content)
	if err != nil {
		return wrapErr(tableComments, "update", err)
	}
	if tag.RowsAffected() == 0 {
		return wrapErr(tableComments, "update", pgx.ErrNoRows)
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return wrapErr(tableComments, "delete", err)
	}
	if tag.RowsAffected() == 0 {
		return wrapErr(tableComments, "delete", pgx.ErrNoRows)
	}
	return nil
}
