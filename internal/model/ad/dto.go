package ad

import "github.com/go-playground/validator/v10"

// present drops an empty string so it is not written over stored data.
func present[T ~string](v *T) *T {
	if v == nil || *v == "" {
		return nil
	}
	return v
}

// ------------------------------------------------------------

// CreateAdPayload uses pointers for numbers so that an explicit 0 price can
// be told apart from a missing one.
type CreateAdPayload struct {
	Type        Type     `json:"type" validate:"required,oneof=rent sell"`
	Price       *int64   `json:"price" validate:"required,min=0"`
	Address     string   `json:"address" validate:"required,max=255"`
	Area        *float64 `json:"area" validate:"required,gt=0"`
	RoomsCount  *int     `json:"rooms_count" validate:"required,min=1"`
	Description string   `json:"description" validate:"required,max=4000"`
}

func (p *CreateAdPayload) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Ad builds the entity owned by userID. Call only after Validate.
func (p *CreateAdPayload) Ad(userID int64) *Ad {
	return &Ad{
		Type:        p.Type,
		Price:       *p.Price,
		Address:     p.Address,
		Area:        *p.Area,
		RoomsCount:  *p.RoomsCount,
		Description: p.Description,
		UserID:      userID,
	}
}

// ------------------------------------------------------------

type GetAdPayload struct {
	ID int64 `param:"id" validate:"required,min=1"`
}

func (p *GetAdPayload) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// ------------------------------------------------------------

type ListAdsPayload struct {
	Limit      int   `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset     int   `query:"offset" validate:"min=0"`
	Type       Type  `query:"type" validate:"omitempty,oneof=rent sell"`
	RoomsCount int   `query:"rooms_count" validate:"min=0"`
	PriceFrom  int64 `query:"price_from" validate:"min=0"`
	PriceUntil int64 `query:"price_until" validate:"min=0"`
}

func (p *ListAdsPayload) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

func (p *ListAdsPayload) Filter() Filter {
	limit := p.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	return Filter{
		Type:       p.Type,
		RoomsCount: p.RoomsCount,
		PriceFrom:  p.PriceFrom,
		PriceUntil: p.PriceUntil,
		Limit:      limit,
		Offset:     p.Offset,
	}
}

// ------------------------------------------------------------

// UpdateAdPayload fields that are absent or "" leave the stored value
// untouched.
type UpdateAdPayload struct {
	ID          int64    `param:"id" json:"-" validate:"required,min=1"`
	Type        *Type    `json:"type" validate:"omitempty,oneof=rent sell"`
	Price       *int64   `json:"price" validate:"omitempty,min=0"`
	Address     *string  `json:"address" validate:"omitempty,max=255"`
	Area        *float64 `json:"area" validate:"omitempty,gt=0"`
	RoomsCount  *int     `json:"rooms_count" validate:"omitempty,min=1"`
	Description *string  `json:"description" validate:"omitempty,max=4000"`
}

func (p *UpdateAdPayload) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

func (p *UpdateAdPayload) Patch() Patch {
	return Patch{
		Type:        present(p.Type),
		Price:       p.Price,
		Address:     present(p.Address),
		Area:        p.Area,
		RoomsCount:  p.RoomsCount,
		Description: present(p.Description),
	}
}

// ------------------------------------------------------------

type DeleteAdPayload struct {
	ID int64 `param:"id" validate:"required,min=1"`
}

func (p *DeleteAdPayload) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
