package api

import (
	"net/http"

	"blog-backend/internal/auth/delivery"
	authUsecase "blog-backend/internal/auth/usecase"
	postDelivery "blog-backend/internal/post/delivery"
	postUsecase "blog-backend/internal/post/usecase"
	"blog-backend/internal/search"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, postUc postUsecase.PostUsecase, commentUc postUsecase.CommentUsecase, index *search.MemoryIndex) {
	authHandler := delivery.NewAuthHandler(authUc)
	postHandler := postDelivery.NewPostHandler(postUc)
	commentHandler := postDelivery.NewCommentHandler(commentUc)
	searchHandler := NewSearchHandler(index)

	requireAuth := delivery.AuthMiddleware(authUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", requireAuth, authHandler.Me)
		}

		// Public post routes
		api.GET("/posts", postHandler.ListPosts)
		api.GET("/posts/search", postHandler.SearchByCategory)

		// Title search backed by the index sink (public)
		api.GET("/search/posts", searchHandler.SearchPosts)

		// Protected post and comment routes
		posts := api.Group("/posts")
		posts.Use(requireAuth)
		{
			posts.POST("", postHandler.CreatePost)
			posts.GET("/mine", postHandler.ListMyPosts)
			posts.GET("/:id", postHandler.GetPost)
			posts.PUT("/:id", postHandler.UpdatePost)
			posts.DELETE("/:id", postHandler.DeletePost)

			posts.GET("/:id/comments", commentHandler.ListComments)
			posts.POST("/:id/comments", commentHandler.AddComment)
			posts.PUT("/:id/comments/:commentID", commentHandler.UpdateComment)
			posts.DELETE("/:id/comments/:commentID", commentHandler.DeleteComment)
		}
	}
}
