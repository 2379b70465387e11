package repository

import (
	"errors"
	"strings"
	"time"

	"blog-backend/internal/post/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// postRepository implements PostRepository with GORM
type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{
		db: db,
	}
}

func (r *postRepository) Create(post *domain.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()
	return r.db.Create(post).Error
}

func (r *postRepository) FindByID(id string) (*domain.Post, error) {
	var post domain.Post
	err := r.db.
		Preload("Author").
		Preload("Categories").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at DESC")
		}).
		Preload("Comments.Author").
		Where("id = ?", id).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) FindAll(limit, offset int) ([]*domain.Post, int64, error) {
	var posts []*domain.Post
	var total int64

	query := r.db.Model(&domain.Post{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Author").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error

	return posts, total, err
}

func (r *postRepository) FindByAuthorUsername(username string, limit, offset int) ([]*domain.Post, int64, error) {
	var posts []*domain.Post
	var total int64

	query := r.db.Model(&domain.Post{}).
		Joins("JOIN users ON users.id = posts.author_id").
		Where("LOWER(users.username) = LOWER(?)", username)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Select("posts.*").
		Preload("Author").
		Order("posts.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error

	return posts, total, err
}

func (r *postRepository) FindByAuthorID(authorID string) ([]*domain.Post, error) {
	var posts []*domain.Post
	err := r.db.
		Preload("Author").
		Preload("Categories").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at DESC")
		}).
		Preload("Comments.Author").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) FindByCategoryName(name string, limit, offset int) ([]*domain.Post, int64, error) {
	var posts []*domain.Post
	var total int64

	pattern := "%" + strings.ToLower(name) + "%"
	query := func() *gorm.DB {
		return r.db.Model(&domain.Post{}).
			Joins("JOIN post_categories ON post_categories.post_id = posts.id").
			Joins("JOIN categories ON categories.id = post_categories.category_id").
			Where("categories.name LIKE ?", pattern)
	}

	if err := query().Distinct("posts.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query().
		Select("DISTINCT posts.*").
		Preload("Author").
		Order("posts.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error

	return posts, total, err
}

func (r *postRepository) Update(post *domain.Post) error {
	post.UpdatedAt = time.Now()
	return r.db.Omit("Categories", "Comments", "Author").Save(post).Error
}

func (r *postRepository) ReplaceCategories(post *domain.Post, categories []domain.Category) error {
	return r.db.Model(post).Association("Categories").Replace(categories)
}

func (r *postRepository) Delete(id string) error {
	// Select clears the join rows and dependent comments alongside the post.
	return r.db.Select("Categories", "Comments").Delete(&domain.Post{ID: id}).Error
}
