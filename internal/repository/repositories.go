package repository

import (
	"github.com/deppfellow/shanyrak/internal/server"
)

type Repositories struct {
	User     *UserRepository
	Ad       *AdRepository
	Comment  *CommentRepository
	Favorite *FavoriteRepository
}

func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		User:     NewUserRepository(s.DB.Pool),
		Ad:       NewAdRepository(s.DB.Pool),
		Comment:  NewCommentRepository(s.DB.Pool),
		Favorite: NewFavoriteRepository(s.DB.Pool),
	}
}
