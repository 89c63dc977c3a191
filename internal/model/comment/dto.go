package comment

import "github.com/go-playground/validator/v10"

// ------------------------------------------------------------

type CreateCommentPayload struct {
	AdID    int64  `param:"id" json:"-" validate:"required,min=1"`
	Content string `json:"content" validate:"required,max=2000"`
}

func (p *CreateCommentPayload) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// ------------------------------------------------------------

type ListCommentsPayload struct {
	AdID int64 `param:"id" validate:"required,min=1"`
}

func (p *ListCommentsPayload) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// ------------------------------------------------------------

// UpdateCommentPayload leaves the comment untouched when content is absent
// or "".
type UpdateCommentPayload struct {
	AdID      int64   `param:"id" json:"-" validate:"required,min=1"`
	CommentID int64   `param:"comment_id" json:"-" validate:"required,min=1"`
	Content   *string `json:"content" validate:"omitempty,max=2000"`
}

func (p *UpdateCommentPayload) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

func (p *UpdateCommentPayload) Patch() Patch {
	if p.Content == nil || *p.Content == "" {
		return Patch{}
	}
	return Patch{Content: p.Content}
}

// ------------------------------------------------------------

type DeleteCommentPayload struct {
	AdID      int64 `param:"id" validate:"required,min=1"`
	CommentID int64 `param:"comment_id" validate:"required,min=1"`
}

func (p *DeleteCommentPayload) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
