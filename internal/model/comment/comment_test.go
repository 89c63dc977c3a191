package comment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatchApply(t *testing.T) {
	c := &Comment{ID: 1, Content: "is it still available?", AuthorID: 2, AdID: 3}

	Patch{}.Apply(c)
	assert.Equal(t, "is it still available?", c.Content)

	content := "never mind"
	Patch{Content: &content}.Apply(c)
	assert.Equal(t, "never mind", c.Content)
	assert.Equal(t, int64(2), c.AuthorID)
}

func TestCreateCommentPayload_Validate(t *testing.T) {
	assert.NoError(t, (&CreateCommentPayload{AdID: 1, Content: "hi"}).Validate())
	assert.Error(t, (&CreateCommentPayload{AdID: 1}).Validate())
	assert.Error(t, (&CreateCommentPayload{Content: "hi"}).Validate())
}

func TestUpdateCommentPayload_Validate(t *testing.T) {
	empty := ""
	blank := &UpdateCommentPayload{AdID: 1, CommentID: 2, Content: &empty}
	assert.NoError(t, blank.Validate())
	assert.True(t, blank.Patch().IsEmpty())

	c := &Comment{Content: "is it still available?"}
	blank.Patch().Apply(c)
	assert.Equal(t, "is it still available?", c.Content)

	assert.NoError(t, (&UpdateCommentPayload{AdID: 1, CommentID: 2}).Validate())
	assert.True(t, (&UpdateCommentPayload{AdID: 1, CommentID: 2}).Patch().IsEmpty())
}
