package service

import (
	"context"

	"github.com/deppfellow/shanyrak/internal/errs"
	"github.com/deppfellow/shanyrak/internal/model/favorite"
	"github.com/rs/zerolog"
)

type FavoriteService struct {
	ads       AdStore
	favorites FavoriteStore
}

func NewFavoriteService(ads AdStore, favorites FavoriteStore) *FavoriteService {
	return &FavoriteService{ads: ads, favorites: favorites}
}

// Add bookmarks an ad. Repeating the call is a no-op.
func (s *FavoriteService) Add(ctx context.Context, userID, adID int64) error {
	if err := requireAd(ctx, s.ads, adID); err != nil {
		return err
	}

	added, err := s.favorites.Add(ctx, userID, adID)
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Debug().
		Int64("ad_id", adID).
		Bool("added", added).
		Msg("favorite stored")
	return nil
}

func (s *FavoriteService) List(ctx context.Context, userID int64) ([]favorite.Item, error) {
	items, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []favorite.Item{}
	}
	return items, nil
}

// Remove deletes the caller's own bookmark of adID.
func (s *FavoriteService) Remove(ctx context.Context, userID, adID int64) error {
	if err := requireAd(ctx, s.ads, adID); err != nil {
		return err
	}

	removed, err := s.favorites.Remove(ctx, userID, adID)
	if err != nil {
		return err
	}
	if !removed {
		return errs.NewNotFoundError("Favorite not found", true, nil)
	}
	return nil
}
