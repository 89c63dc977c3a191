// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives validated
// payloads from the handlers, enforces ownership and credential rules, and
// runs check-then-act sequences inside a single transaction.
package service

import (
	"context"
	"errors"

	"github.com/deppfellow/shanyrak/internal/errs"
	"github.com/deppfellow/shanyrak/internal/model/ad"
	"github.com/deppfellow/shanyrak/internal/model/comment"
	"github.com/deppfellow/shanyrak/internal/model/favorite"
	"github.com/deppfellow/shanyrak/internal/model/user"
	"github.com/jackc/pgx/v5"
)

// The store interfaces are satisfied by the repositories.

type UserStore interface {
	Create(ctx context.Context, u *user.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*user.User, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*user.User, error)
	GetByUsername(ctx context.Context, username string) (*user.User, error)
	Update(ctx context.Context, u *user.User) error
}

type AdStore interface {
	Create(ctx context.Context, a *ad.Ad) (int64, error)
	GetByID(ctx context.Context, id int64) (*ad.Details, error)
	GetForUpdate(ctx context.Context, id int64) (*ad.Ad, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, f ad.Filter) (*ad.Page, error)
	Update(ctx context.Context, a *ad.Ad) error
	Delete(ctx context.Context, id int64) error
}

type CommentStore interface {
	Create(ctx context.Context, c *comment.Comment) (int64, error)
	ListByAd(ctx context.Context, adID int64) ([]comment.Comment, error)
	GetForUpdate(ctx context.Context, id int64) (*comment.Comment, error)
	Update(ctx context.Context, c *comment.Comment) error
	Delete(ctx context.Context, id int64) error
}

type FavoriteStore interface {
	Add(ctx context.Context, userID, adID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]favorite.Item, error)
	Remove(ctx context.Context, userID, adID int64) (bool, error)
}

// TokenIssuer signs bearer tokens.
type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

// notFound turns a missing row into a 404 carrying message and leaves
// every other error alone.
func notFound(err error, message string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NewNotFoundError(message, true, nil)
	}
	return err
}

func forbidden() error {
	return errs.NewForbiddenError("Forbidden", true)
}

// requireAd returns a 404 unless the ad exists.
func requireAd(ctx context.Context, ads interface {
	Exists(ctx context.Context, id int64) (bool, error)
}, adID int64,
) error {
	exists, err := ads.Exists(ctx, adID)
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewNotFoundError("Ad not found", true, nil)
	}
	return nil
}
