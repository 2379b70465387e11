package api

import (
	authUsecase "blog-backend/internal/auth/usecase"
	postUsecase "blog-backend/internal/post/usecase"
	"blog-backend/internal/search"
	"blog-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	postUsecase    postUsecase.PostUsecase
	commentUsecase postUsecase.CommentUsecase
	index          *search.MemoryIndex
	config         *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, postUc postUsecase.PostUsecase, commentUc postUsecase.CommentUsecase, index *search.MemoryIndex, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:    authUc,
		postUsecase:    postUc,
		commentUsecase: commentUc,
		index:          index,
		config:         cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.postUsecase, h.commentUsecase, h.index)

	return r.Run(addr)
}
