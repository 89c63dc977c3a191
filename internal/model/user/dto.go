package user

import (
	"fmt"

	"github.com/deppfellow/shanyrak/internal/validation"
	"github.com/go-playground/validator/v10"
)

// MaxPasswordBytes is the longest password bcrypt accepts. The limit is in
// bytes, so a Cyrillic password reaches it at 36 characters.
const MaxPasswordBytes = 72

func checkPasswordBytes(password string) error {
	if len(password) > MaxPasswordBytes {
		return validation.CustomValidationErrors{{
			Field:   "password",
			Message: fmt.Sprintf("must not exceed %d bytes", MaxPasswordBytes),
		}}
	}
	return nil
}

// present drops an empty string so it is not written over stored data.
func present(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// ------------------------------------------------------------

type RegisterPayload struct {
	Username string `json:"username" validate:"required,max=64"`
	Phone    string `json:"phone" validate:"required,max=32"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"max=128"`
	City     string `json:"city" validate:"max=128"`
}

func (p *RegisterPayload) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return err
	}
	return checkPasswordBytes(p.Password)
}

// ------------------------------------------------------------

// LoginPayload is sent as an HTML form, not JSON.
type LoginPayload struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

func (p *LoginPayload) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Type        string `json:"type"`
}

// ------------------------------------------------------------

type GetProfilePayload struct{}

func (p *GetProfilePayload) Validate() error {
	return nil
}

// ------------------------------------------------------------

// UpdateProfilePayload fields that are absent or "" leave the stored value
// untouched.
type UpdateProfilePayload struct {
	Username *string `json:"username" validate:"omitempty,max=64"`
	Phone    *string `json:"phone" validate:"omitempty,max=32"`
	Password *string `json:"password"`
	Name     *string `json:"name" validate:"omitempty,max=128"`
	City     *string `json:"city" validate:"omitempty,max=128"`
}

func (p *UpdateProfilePayload) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return err
	}
	if p.Password != nil {
		return checkPasswordBytes(*p.Password)
	}
	return nil
}

// Patch converts the payload into a patch. The password is still plain
// text here.
func (p *UpdateProfilePayload) Patch() Patch {
	return Patch{
		Username: present(p.Username),
		Phone:    present(p.Phone),
		Password: present(p.Password),
		Name:     present(p.Name),
		City:     present(p.City),
	}
}
