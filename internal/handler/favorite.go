package handler

import (
	"github.com/deppfellow/shanyrak/internal/middleware"
	"github.com/deppfellow/shanyrak/internal/model/favorite"
	"github.com/deppfellow/shanyrak/internal/server"
	"github.com/labstack/echo/v4"
)

// FavoriteHandler manages the caller's bookmarked ads. Every route needs a
// bearer token.
type FavoriteHandler struct {
	Handler
	favorites FavoriteService
}

func NewFavoriteHandler(s *server.Server, favorites FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		Handler:   NewHandler(s),
		favorites: favorites,
	}
}

func (h *FavoriteHandler) AddFavorite(c echo.Context, p *favorite.FavoritePayload) error {
	return h.favorites.Add(c.Request().Context(), middleware.GetUserID(c), p.AdID)
}

func (h *FavoriteHandler) ListFavorites(c echo.Context, _ *favorite.ListFavoritesPayload) (*favorite.ListResponse, error) {
	items, err := h.favorites.List(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return nil, err
	}
	return &favorite.ListResponse{Shanyraks: items}, nil
}

func (h *FavoriteHandler) RemoveFavorite(c echo.Context, p *favorite.FavoritePayload) error {
	return h.favorites.Remove(c.Request().Context(), middleware.GetUserID(c), p.AdID)
}
