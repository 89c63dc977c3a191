package ad

import "time"

type Type string

const (
	TypeRent Type = "rent"
	TypeSell Type = "sell"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Ad is a property listing, exposed over HTTP as a "shanyrak".
type Ad struct {
	ID          int64     `json:"id"`
	Type        Type      `json:"type"`
	Price       int64     `json:"price"`
	Address     string    `json:"address"`
	Area        float64   `json:"area"`
	RoomsCount  int       `json:"rooms_count"`
	Description string    `json:"description"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"-"`
}

// Details is an ad together with its comment count, which is computed at
// read time and never stored.
type Details struct {
	Ad
	TotalComments int64 `json:"total_comments"`
}

// Summary is the shape of an ad inside a listing page.
type Summary struct {
	ID         int64   `json:"id"`
	Type       Type    `json:"type"`
	Price      int64   `json:"price"`
	Address    string  `json:"address"`
	Area       float64 `json:"area"`
	RoomsCount int     `json:"rooms_count"`
}

// Filter narrows a listing. Zero values mean "no constraint".
type Filter struct {
	Type       Type
	RoomsCount int
	PriceFrom  int64
	PriceUntil int64
	Limit      int
	Offset     int
}

// Page is one slice of a filtered listing. Total counts every match, not
// just the returned objects.
type Page struct {
	Total   int64     `json:"total"`
	Objects []Summary `json:"objects"`
}

type Patch struct {
	Type        *Type
	Price       *int64
	Address     *string
	Area        *float64
	RoomsCount  *int
	Description *string
}

func (p Patch) Apply(a *Ad) {
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Price != nil {
		a.Price = *p.Price
	}
	if p.Address != nil {
		a.Address = *p.Address
	}
	if p.Area != nil {
		a.Area = *p.Area
	}
	if p.RoomsCount != nil {
		a.RoomsCount = *p.RoomsCount
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
}

func (p Patch) IsEmpty() bool {
	return p.Type == nil && p.Price == nil && p.Address == nil &&
		p.Area == nil && p.RoomsCount == nil && p.Description == nil
}
