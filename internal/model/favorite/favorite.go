package favorite

import "github.com/go-playground/validator/v10"

// Item is a favorited ad as shown to its user: the ad id and address.
type Item struct {
	ID      int64  `json:"id"`
	Address string `json:"address"`
}

type ListResponse struct {
	Shanyraks []Item `json:"shanyraks"`
}

// ------------------------------------------------------------

type FavoritePayload struct {
	AdID int64 `param:"id" validate:"required,min=1"`
}

func (p *FavoritePayload) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// ------------------------------------------------------------

type ListFavoritesPayload struct{}

func (p *ListFavoritesPayload) Validate() error {
	return nil
}
