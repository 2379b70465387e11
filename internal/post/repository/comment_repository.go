package repository

import (
	"errors"
	"time"

	"blog-backend/internal/post/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// commentRepository implements CommentRepository with GORM
type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{
		db: db,
	}
}

func (r *commentRepository) Create(comment *domain.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = time.Now()
	return r.db.Create(comment).Error
}

func (r *commentRepository) FindByPost(postID string) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	err := r.db.
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) FindByPostAndID(postID, commentID string) (*domain.Comment, error) {
	var comment domain.Comment
	err := r.db.
		Preload("Author").
		Where("post_id = ? AND id = ?", postID, commentID).
		First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Update(comment *domain.Comment) error {
	comment.UpdatedAt = time.Now()
	return r.db.Omit("Author").Save(comment).Error
}

func (r *commentRepository) Delete(id string) error {
	return r.db.Delete(&domain.Comment{}, "id = ?", id).Error
}
