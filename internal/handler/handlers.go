// Package handler is the first layer after the router.
//
// It binds and validates requests through the validation package, calls
// the service layer and writes the response. Errors are returned, never
// rendered here; the global error handler owns the response shape.
package handler

import (
	"github.com/deppfellow/shanyrak/internal/server"
	"github.com/deppfellow/shanyrak/internal/service"
)

// Handlers groups every HTTP handler so the router receives a single value.
type Handlers struct {
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	Auth     *AuthHandler
	Ad       *AdHandler
	Comment  *CommentHandler
	Favorite *FavoriteHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
		Auth:     NewAuthHandler(s, services.Auth),
		Ad:       NewAdHandler(s, services.Ad),
		Comment:  NewCommentHandler(s, services.Comment),
		Favorite: NewFavoriteHandler(s, services.Favorite),
	}
}
