package handler

import (
	"github.com/deppfellow/shanyrak/internal/middleware"
	"github.com/deppfellow/shanyrak/internal/model"
	"github.com/deppfellow/shanyrak/internal/model/user"
	"github.com/deppfellow/shanyrak/internal/server"
	"github.com/labstack/echo/v4"
)

// AuthHandler serves registration, login and the caller's own profile.
type AuthHandler struct {
	Handler
	auth AuthService
}

func NewAuthHandler(s *server.Server, auth AuthService) *AuthHandler {
	return &AuthHandler{
		Handler: NewHandler(s),
		auth:    auth,
	}
}

func (h *AuthHandler) Register(c echo.Context, p *user.RegisterPayload) (*model.IDResponse, error) {
	id, err := h.auth.Register(c.Request().Context(), p)
	if err != nil {
		return nil, err
	}
	return &model.IDResponse{ID: id}, nil
}

// Login reads form fields, not JSON.
func (h *AuthHandler) Login(c echo.Context, p *user.LoginPayload) (*user.LoginResponse, error) {
	return h.auth.Login(c.Request().Context(), p)
}

func (h *AuthHandler) GetProfile(c echo.Context, _ *user.GetProfilePayload) (*user.User, error) {
	return h.auth.Profile(c.Request().Context(), middleware.GetUserID(c))
}

func (h *AuthHandler) UpdateProfile(c echo.Context, p *user.UpdateProfilePayload) error {
	return h.auth.UpdateProfile(c.Request().Context(), middleware.GetUserID(c), p.Patch())
}
