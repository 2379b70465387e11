package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"blog-backend/internal/post/dto"
	"blog-backend/internal/post/usecase"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
)

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	postUsecase usecase.PostUsecase
}

func NewPostHandler(postUsecase usecase.PostUsecase) *PostHandler {
	return &PostHandler{
		postUsecase: postUsecase,
	}
}

// ListPosts returns all posts, newest first. The optional author filter is an
// exact, case-insensitive username match; zero matches answer 404 with a
// message naming the author rather than an empty list.
// GET /api/posts?author=<username>&limit=20&offset=0
func (h *PostHandler) ListPosts(c *gin.Context) {
	author := c.Query("author")
	limit, offset := pagination(c)

	posts, total, err := h.postUsecase.ListPosts(author, limit, offset)
	if err != nil {
		var notFound *usecase.NoPostsForAuthorError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": notFound.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.NewPostListResponse(posts, total))
}

// SearchByCategory returns posts whose category name contains the term.
// GET /api/posts/search?category=<name>
func (h *PostHandler) SearchByCategory(c *gin.Context) {
	category := c.Query("category")
	limit, offset := pagination(c)

	posts, total, err := h.postUsecase.SearchByCategory(category, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.NewPostListResponse(posts, total))
}

// CreatePost creates a post authored by the authenticated user. Any author in
// the request body is ignored.
// POST /api/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUsecase.CreatePost(userID, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewPostResponse(post))
}

// GetPost returns a single post with its categories and comments.
// GET /api/posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUsecase.GetPost(c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPostResponse(post))
}

// ListMyPosts returns the authenticated user's posts.
// GET /api/posts/mine
func (h *PostHandler) ListMyPosts(c *gin.Context) {
	userID := c.GetString("userID")

	posts, err := h.postUsecase.ListMyPosts(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]*dto.PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, dto.NewPostResponse(post))
	}

	c.JSON(http.StatusOK, responses)
}

// UpdatePost replaces a post's title, body and categories. Author only.
// PUT /api/posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUsecase.UpdatePost(userID, c.Param("id"), &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPostResponse(post))
}

// DeletePost removes a post. Author only.
// DELETE /api/posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.postUsecase.DeletePost(userID, c.Param("id")); err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

func (h *PostHandler) renderError(c *gin.Context, err error) {
	var fieldErrors validation.Errors
	switch {
	case errors.As(err, &fieldErrors):
		c.JSON(http.StatusBadRequest, fieldErrors)
	case errors.Is(err, usecase.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
	case errors.Is(err, usecase.ErrPostForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed to modify this post."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
