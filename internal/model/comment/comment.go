package comment

import "time"

type Comment struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	AuthorID  int64     `json:"author_id"`
	AdID      int64     `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type Patch struct {
	Content *string
}

func (p Patch) Apply(c *Comment) {
	if p.Content != nil {
		c.Content = *p.Content
	}
}

func (p Patch) IsEmpty() bool {
	return p.Content == nil
}

type ListResponse struct {
	Comments []Comment `json:"comments"`
}
