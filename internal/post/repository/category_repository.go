package repository

import (
	"errors"
	"strings"

	"blog-backend/internal/post/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// categoryRepository implements CategoryRepository with GORM
type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// GetOrCreate normalizes the name to lowercase and returns the matching row,
// inserting it if absent. A duplicate-key failure from a concurrent insert is
// resolved by retrying the lookup.
func (r *categoryRepository) GetOrCreate(name string) (*domain.Category, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	var category domain.Category
	err := r.db.Where("name = ?", name).First(&category).Error
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category = domain.Category{
		ID:   uuid.New().String(),
		Name: name,
	}
	err = r.db.Create(&category).Error
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}

	// Someone else inserted the same name first.
	if err := r.db.Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindAll() ([]*domain.Category, error) {
	var categories []*domain.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}
