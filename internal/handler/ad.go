package handler

import (
	"github.com/deppfellow/shanyrak/internal/middleware"
	"github.com/deppfellow/shanyrak/internal/model"
	"github.com/deppfellow/shanyrak/internal/model/ad"
	"github.com/deppfellow/shanyrak/internal/server"
	"github.com/labstack/echo/v4"
)

// AdHandler serves /shanyraks. Reads are public, writes need a bearer token.
type AdHandler struct {
	Handler
	ads AdService
}

func NewAdHandler(s *server.Server, ads AdService) *AdHandler {
	return &AdHandler{
		Handler: NewHandler(s),
		ads:     ads,
	}
}

func (h *AdHandler) CreateAd(c echo.Context, p *ad.CreateAdPayload) (*model.IDResponse, error) {
	id, err := h.ads.Create(c.Request().Context(), middleware.GetUserID(c), p)
	if err != nil {
		return nil, err
	}
	return &model.IDResponse{ID: id}, nil
}

func (h *AdHandler) GetAd(c echo.Context, p *ad.GetAdPayload) (*ad.Details, error) {
	return h.ads.Get(c.Request().Context(), p.ID)
}

func (h *AdHandler) ListAds(c echo.Context, p *ad.ListAdsPayload) (*ad.Page, error) {
	return h.ads.List(c.Request().Context(), p.Filter())
}

func (h *AdHandler) UpdateAd(c echo.Context, p *ad.UpdateAdPayload) error {
	return h.ads.Update(c.Request().Context(), middleware.GetUserID(c), p.ID, p.Patch())
}

func (h *AdHandler) DeleteAd(c echo.Context, p *ad.DeleteAdPayload) error {
	return h.ads.Delete(c.Request().Context(), middleware.GetUserID(c), p.ID)
}
