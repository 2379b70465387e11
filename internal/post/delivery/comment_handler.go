package delivery

import (
	"errors"
	"net/http"

	"blog-backend/internal/post/dto"
	"blog-backend/internal/post/usecase"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
)

// CommentHandler handles comment-related HTTP requests
type CommentHandler struct {
	commentUsecase usecase.CommentUsecase
}

func NewCommentHandler(commentUsecase usecase.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		commentUsecase: commentUsecase,
	}
}

// ListComments returns a post's comments, newest first.
// GET /api/posts/:id/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	comments, err := h.commentUsecase.ListComments(c.Param("id"))
	if err != nil {
		h.renderError(c, err, "")
		return
	}

	responses := make([]*dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, dto.NewCommentResponse(comment))
	}

	c.JSON(http.StatusOK, responses)
}

// AddComment creates a comment on a post, authored by the authenticated user.
// POST /api/posts/:id/comments
func (h *CommentHandler) AddComment(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentUsecase.AddComment(userID, c.Param("id"), &req)
	if err != nil {
		h.renderError(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, dto.NewCommentResponse(comment))
}

// UpdateComment edits a comment on a post. Author only.
// PUT /api/posts/:id/comments/:commentID
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentUsecase.UpdateComment(userID, c.Param("id"), c.Param("commentID"), &req)
	if err != nil {
		h.renderError(c, err, "You are not allowed to update this comment.")
		return
	}

	c.JSON(http.StatusOK, dto.NewCommentResponse(comment))
}

// DeleteComment removes a comment from a post. Author only.
// DELETE /api/posts/:id/comments/:commentID
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID := c.GetString("userID")

	err := h.commentUsecase.DeleteComment(userID, c.Param("id"), c.Param("commentID"))
	if err != nil {
		h.renderError(c, err, "You are not allowed to delete this comment.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

func (h *CommentHandler) renderError(c *gin.Context, err error, forbiddenMessage string) {
	var fieldErrors validation.Errors
	switch {
	case errors.As(err, &fieldErrors):
		c.JSON(http.StatusBadRequest, fieldErrors)
	case errors.Is(err, usecase.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
	case errors.Is(err, usecase.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
	case errors.Is(err, usecase.ErrCommentForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": forbiddenMessage})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
