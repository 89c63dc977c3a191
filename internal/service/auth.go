package service

import (
	"context"
	"errors"

	"github.com/deppfellow/shanyrak/internal/database"
	"github.com/deppfellow/shanyrak/internal/errs"
	"github.com/deppfellow/shanyrak/internal/lib/password"
	"github.com/deppfellow/shanyrak/internal/model/user"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const tokenType = "bearer"

type AuthService struct {
	db     database.Querier
	users  UserStore
	tokens TokenIssuer
}

func NewAuthService(db database.Querier, users UserStore, tokens TokenIssuer) *AuthService {
	return &AuthService{
		db:     db,
		users:  users,
		tokens: tokens,
	}
}

// Register stores a new user with a hashed password. Duplicate usernames
// or phones surface as unique violations.
func (s *AuthService) Register(ctx context.Context, p *user.RegisterPayload) (int64, error) {
	hash, err := password.Hash(p.Password)
	if err != nil {
		return 0, err
	}

	id, err := s.users.Create(ctx, &user.User{
		Username: p.Username,
		Phone:    p.Phone,
		Password: hash,
		Name:     p.Name,
		City:     p.City,
	})
	if err != nil {
		return 0, err
	}

	zerolog.Ctx(ctx).Info().
		Str("event", "user_registered").
		Int64("new_user_id", id).
		Msg("user registered")

	return id, nil
}

// Login exchanges credentials for a bearer token. An unknown username and a
// wrong password produce the same 401.
func (s *AuthService) Login(ctx context.Context, p *user.LoginPayload) (*user.LoginResponse, error) {
	invalid := errs.NewUnauthorizedError("Wrong username or password", true)

	u, err := s.users.GetByUsername(ctx, p.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invalid
		}
		return nil, err
	}

	if err := password.Compare(u.Password, p.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, invalid
		}
		return nil, err
	}

	accessToken, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, err
	}

	return &user.LoginResponse{AccessToken: accessToken, Type: tokenType}, nil
}

func (s *AuthService) Profile(ctx context.Context, userID int64) (*user.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, "User not found")
	}
	return u, nil
}

// UpdateProfile applies patch to the caller's own row under a lock.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, patch user.Patch) error {
	if patch.Password != nil {
		hash, err := password.Hash(*patch.Password)
		if err != nil {
			return err
		}
		patch.Password = &hash
	}

	return database.InTx(ctx, s.db, func(ctx context.Context) error {
		u, err := s.users.GetByIDForUpdate(ctx, userID)
		if err != nil {
			return notFound(err, "User not found")
		}

		if patch.IsEmpty() {
			return nil
		}

		patch.Apply(u)
		return s.users.Update(ctx, u)
	})
}
