package service

import (
	"context"

	"github.com/deppfellow/shanyrak/internal/database"
	"github.com/deppfellow/shanyrak/internal/errs"
	"github.com/deppfellow/shanyrak/internal/model/comment"
)

type CommentService struct {
	db       database.Querier
	ads      AdStore
	comments CommentStore
}

func NewCommentService(db database.Querier, ads AdStore, comments CommentStore) *CommentService {
	return &CommentService{db: db, ads: ads, comments: comments}
}

func (s *CommentService) Create(ctx context.Context, userID, adID int64, content string) (int64, error) {
	if err := requireAd(ctx, s.ads, adID); err != nil {
		return 0, err
	}

	return s.comments.Create(ctx, &comment.Comment{
		Content:  content,
		AuthorID: userID,
		AdID:     adID,
	})
}

func (s *CommentService) List(ctx context.Context, adID int64) ([]comment.Comment, error) {
	if err := requireAd(ctx, s.ads, adID); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByAd(ctx, adID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []comment.Comment{}
	}
	return comments, nil
}

func (s *CommentService) Update(ctx context.Context, userID, adID, commentID int64, patch comment.Patch) error {
	return database.InTx(ctx, s.db, func(ctx context.Context) error {
		c, err := s.lockAuthored(ctx, userID, adID, commentID)
		if err != nil {
			return err
		}

		if patch.IsEmpty() {
			return nil
		}

		patch.Apply(c)
		return s.comments.Update(ctx, c)
	})
}

func (s *CommentService) Delete(ctx context.Context, userID, adID, commentID int64) error {
	return database.InTx(ctx, s.db, func(ctx context.Context) error {
		if _, err := s.lockAuthored(ctx, userID, adID, commentID); err != nil {
			return err
		}
		return s.comments.Delete(ctx, commentID)
	})
}

// lockAuthored loads the comment under a lock. A comment that belongs to a
// different ad is reported as missing.
func (s *CommentService) lockAuthored(ctx context.Context, userID, adID, commentID int64) (*comment.Comment, error) {
	c, err := s.comments.GetForUpdate(ctx, commentID)
	if err != nil {
		return nil, notFound(err, "Comment not found")
	}

	if c.AdID != adID {
		return nil, errs.NewNotFoundError("Comment not found", true, nil)
	}
	if c.AuthorID != userID {
		return nil, forbidden()
	}
	return c, nil
}
