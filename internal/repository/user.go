package repository

import (
	"context"

	"github.com/deppfellow/shanyrak/internal/database"
	"github.com/deppfellow/shanyrak/internal/model/user"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, username, phone, password, name, city, created_at`

type UserRepository struct {
	base
}

func NewUserRepository(db database.Querier) *UserRepository {
	return &UserRepository{base: base{db: db}}
}

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Username, &u.Phone, &u.Password, &u.Name, &u.City, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	stmt := `
		INSERT INTO users (username, phone, password, name, city)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.conn(ctx).QueryRow(ctx, stmt, u.Username, u.Phone, u.Password, u.Name, u.City).Scan(&id)
	if err != nil {
		return 0, wrapErr(tableUsers, "create", err)
	}
	return id, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	stmt := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(r.conn(ctx).QueryRow(ctx, stmt, id))
	if err != nil {
		return nil, wrapErr(tableUsers, "get by id", err)
	}
	return u, nil
}

// GetByIDForUpdate locks the row until the surrounding transaction ends.
func (r *UserRepository) GetByIDForUpdate(ctx context.Context, id int64) (*user.User, error) {
	stmt := `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`

	u, err := scanUser(r.conn(ctx).QueryRow(ctx, stmt, id))
	if err != nil {
		return nil, wrapErr(tableUsers, "get by id for update", err)
	}
	return u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	stmt := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	u, err := scanUser(r.conn(ctx).QueryRow(ctx, stmt, username))
	if err != nil {
		return nil, wrapErr(tableUsers, "get by username", err)
	}
	return u, nil
}

// Update writes every mutable column of u.
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	stmt := `
		UPDATE users
		SET username = $2, phone = $3, password = $4, name = $5, city = $6
		WHERE id = $1
	`

	tag, err := r.conn(ctx).Exec(ctx, stmt, u.ID, u.Username, u.Phone, u.Password, u.Name, u.City)
	if err != nil {
		return wrapErr(tableUsers, "update", err)
	}
	if tag.RowsAffected() == 0 {
		return wrapErr(tableUsers, "update", pgx.ErrNoRows)
	}
	return nil
}
