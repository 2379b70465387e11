package usecase

import (
	"blog-backend/internal/post/domain"
	"blog-backend/internal/post/dto"
)

// PostUsecase owns the post lifecycle and the author-only mutation rule.
type PostUsecase interface {
	CreatePost(authorID string, req *dto.PostRequest) (*domain.Post, error)
	GetPost(postID string) (*domain.Post, error)
	ListPosts(authorFilter string, limit, offset int) ([]*domain.Post, int64, error)
	ListMyPosts(userID string) ([]*domain.Post, error)
	SearchByCategory(category string, limit, offset int) ([]*domain.Post, int64, error)
	UpdatePost(userID, postID string, req *dto.PostRequest) (*domain.Post, error)
	DeletePost(userID, postID string) error
}

// CommentUsecase owns comments, which are always scoped to their parent post.
type CommentUsecase interface {
	AddComment(userID, postID string, req *dto.CommentRequest) (*domain.Comment, error)
	ListComments(postID string) ([]*domain.Comment, error)
	UpdateComment(userID, postID, commentID string, req *dto.CommentRequest) (*domain.Comment, error)
	DeleteComment(userID, postID, commentID string) error
}
