package handler

import (
	"github.com/deppfellow/shanyrak/internal/middleware"
	"github.com/deppfellow/shanyrak/internal/model"
	"github.com/deppfellow/shanyrak/internal/model/comment"
	"github.com/deppfellow/shanyrak/internal/server"
	"github.com/labstack/echo/v4"
)

type CommentHandler struct {
	Handler
	comments CommentService
}

func NewCommentHandler(s *server.Server, comments CommentService) *CommentHandler {
	return &CommentHandler{
		Handler:  NewHandler(s),
		comments: comments,
	}
}

func (h *CommentHandler) CreateComment(c echo.Context, p *comment.CreateCommentPayload) (*model.IDResponse, error) {
	id, err := h.comments.Create(c.Request().Context(), middleware.GetUserID(c), p.AdID, p.Content)
	if err != nil {
		return nil, err
	}
	return &model.IDResponse{ID: id}, nil
}

func (h *CommentHandler) ListComments(c echo.Context, p *comment.ListCommentsPayload) (*comment.ListResponse, error) {
	comments, err := h.comments.List(c.Request().Context(), p.AdID)
	if err != nil {
		return nil, err
	}
	return &comment.ListResponse{Comments: comments}, nil
}

func (h *CommentHandler) UpdateComment(c echo.Context, p *comment.UpdateCommentPayload) error {
	return h.comments.Update(c.Request().Context(), middleware.GetUserID(c), p.AdID, p.CommentID, p.Patch())
}

func (h *CommentHandler) DeleteComment(c echo.Context, p *comment.DeleteCommentPayload) error {
	return h.comments.Delete(c.Request().Context(), middleware.GetUserID(c), p.AdID, p.CommentID)
}
