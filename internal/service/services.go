package service

import (
	"github.com/deppfellow/shanyrak/internal/repository"
	"github.com/deppfellow/shanyrak/internal/server"
)

type Services struct {
	Auth     *AuthService
	Ad       *AdService
	Comment  *CommentService
	Favorite *FavoriteService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	db := s.DB.Pool

	return &Services{
		Auth:     NewAuthService(db, repos.User, s.Tokens),
		Ad:       NewAdService(db, repos.Ad),
		Comment:  NewCommentService(db, repos.Ad, repos.Comment),
		Favorite: NewFavoriteService(repos.Ad, repos.Favorite),
	}, nil
}
