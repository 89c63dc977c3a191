package handler

import (
	"context"

	"github.com/deppfellow/shanyrak/internal/model/ad"
	"github.com/deppfellow/shanyrak/internal/model/comment"
	"github.com/deppfellow/shanyrak/internal/model/favorite"
	"github.com/deppfellow/shanyrak/internal/model/user"
)

// The handler layer depends on these views of the service layer; the
// concrete *service.XService types satisfy them.

type AuthService interface {
	Register(ctx context.Context, p *user.RegisterPayload) (int64, error)
	Login(ctx context.Context, p *user.LoginPayload) (*user.LoginResponse, error)
	Profile(ctx context.Context, userID int64) (*user.User, error)
	UpdateProfile(ctx context.Context, userID int64, patch user.Patch) error
}

type AdService interface {
	Create(ctx context.Context, userID int64, p *ad.CreateAdPayload) (int64, error)
	Get(ctx context.Context, id int64) (*ad.Details, error)
	List(ctx context.Context, f ad.Filter) (*ad.Page, error)
	Update(ctx context.Context, userID, id int64, patch ad.Patch) error
	Delete(ctx context.Context, userID, id int64) error
}

type CommentService interface {
	Create(ctx context.Context, userID, adID int64, content string) (int64, error)
	List(ctx context.Context, adID int64) ([]comment.Comment, error)
	Update(ctx context.Context, userID, adID, commentID int64, patch comment.Patch) error
	Delete(ctx context.Context, userID, adID, commentID int64) error
}

type FavoriteService interface {
	Add(ctx context.Context, userID, adID int64) error
	List(ctx context.Context, userID int64) ([]favorite.Item, error)
	Remove(ctx context.Context, userID, adID int64) error
}
