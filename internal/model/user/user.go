package user

import "time"

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Phone     string    `json:"phone"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"-"`
}

// Patch is a partial profile update. A nil field is left untouched.
// Password holds the hash by the time the patch reaches storage.
type Patch struct {
	Username *string
	Phone    *string
	Password *string
	Name     *string
	City     *string
}

// Apply overwrites the fields of u that are present in p.
func (p Patch) Apply(u *User) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.City != nil {
		u.City = *p.City
	}
}

func (p Patch) IsEmpty() bool {
	return p.Username == nil && p.Phone == nil && p.Password == nil && p.Name == nil && p.City == nil
}
