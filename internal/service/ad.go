package service

import (
	"context"

	"github.com/deppfellow/shanyrak/internal/database"
	"github.com/deppfellow/shanyrak/internal/model/ad"
	"github.com/rs/zerolog"
)

type AdService struct {
	db  database.Querier
	ads AdStore
}

func NewAdService(db database.Querier, ads AdStore) *AdService {
	return &AdService{db: db, ads: ads}
}

func (s *AdService) Create(ctx context.Context, userID int64, p *ad.CreateAdPayload) (int64, error) {
	id, err := s.ads.Create(ctx, p.Ad(userID))
	if err != nil {
		return 0, err
	}

	zerolog.Ctx(ctx).Info().
		Str("event", "ad_created").
		Int64("ad_id", id).
		Msg("ad created")

	return id, nil
}

func (s *AdService) Get(ctx context.Context, id int64) (*ad.Details, error) {
	d, err := s.ads.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Ad not found")
	}
	return d, nil
}

func (s *AdService) List(ctx context.Context, f ad.Filter) (*ad.Page, error) {
	page, err := s.ads.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if page.Objects == nil {
		page.Objects = []ad.Summary{}
	}
	return page, nil
}

// Update checks existence and ownership on the locked row before touching it.
func (s *AdService) Update(ctx context.Context, userID, id int64, patch ad.Patch) error {
	return database.InTx(ctx, s.db, func(ctx context.Context) error {
		a, err := s.lockOwned(ctx, userID, id)
		if err != nil {
			return err
		}

		if patch.IsEmpty() {
			return nil
		}

		patch.Apply(a)
		return s.ads.Update(ctx, a)
	})
}

// Delete removes an owned ad together with its comments and favorites.
func (s *AdService) Delete(ctx context.Context, userID, id int64) error {
	return database.InTx(ctx, s.db, func(ctx context.Context) error {
		if _, err := s.lockOwned(ctx, userID, id); err != nil {
			return err
		}

		if err := s.ads.Delete(ctx, id); err != nil {
			return err
		}

		zerolog.Ctx(ctx).Info().
			Str("event", "ad_deleted").
			Int64("ad_id", id).
			Msg("ad deleted")
		return nil
	})
}

func (s *AdService) lockOwned(ctx context.Context, userID, id int64) (*ad.Ad, error) {
	a, err := s.ads.GetForUpdate(ctx, id)
	if err != nil {
		return nil, notFound(err, "Ad not found")
	}

	if a.UserID != userID {
		zerolog.Ctx(ctx).Warn().
			Int64("ad_id", id).
			Int64("owner_id", a.UserID).
			Msg("ad mutation by non-owner rejected")
		return nil, forbidden()
	}
	return a, nil
}
