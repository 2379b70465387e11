package repository

import "blog-backend/internal/post/domain"

// PostRepository is the persistence boundary for posts. Finders preload the
// author; FindByID also preloads categories and comments.
type PostRepository interface {
	Create(post *domain.Post) error
	FindByID(id string) (*domain.Post, error)
	FindAll(limit, offset int) ([]*domain.Post, int64, error)
	FindByAuthorUsername(username string, limit, offset int) ([]*domain.Post, int64, error)
	FindByAuthorID(authorID string) ([]*domain.Post, error)
	FindByCategoryName(name string, limit, offset int) ([]*domain.Post, int64, error)
	Update(post *domain.Post) error
	ReplaceCategories(post *domain.Post, categories []domain.Category) error
	Delete(id string) error
}

// CategoryRepository resolves categories by normalized name.
type CategoryRepository interface {
	GetOrCreate(name string) (*domain.Category, error)
	FindAll() ([]*domain.Category, error)
}

type CommentRepository interface {
	Create(comment *domain.Comment) error
	FindByPost(postID string) ([]*domain.Comment, error)
	FindByPostAndID(postID, commentID string) (*domain.Comment, error)
	Update(comment *domain.Comment) error
	Delete(id string) error
}
