package api

import (
	"net/http"

	"blog-backend/internal/search"

	"github.com/gin-gonic/gin"
)

// SearchHandler serves title search and completion from the search index.
type SearchHandler struct {
	index *search.MemoryIndex
}

func NewSearchHandler(index *search.MemoryIndex) *SearchHandler {
	return &SearchHandler{
		index: index,
	}
}

// SearchPosts matches post titles against the query and returns suggestions
// for completing it.
// GET /api/search/posts?title=<query>
func (h *SearchHandler) SearchPosts(c *gin.Context) {
	query := c.Query("title")

	results := h.index.SearchTitle(query)
	suggestions := h.index.Suggest(query)

	c.JSON(http.StatusOK, gin.H{
		"results":     results,
		"suggestions": suggestions,
	})
}
