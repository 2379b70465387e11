package domain

import (
	"time"

	authdomain "blog-backend/internal/auth/domain"
)

// Post belongs to exactly one author, fixed at creation.
type Post struct {
	ID         string          `json:"id" gorm:"primaryKey"`
	Title      string          `json:"title" gorm:"size:200;not null"`
	Body       string          `json:"body" gorm:"type:text;not null"`
	AuthorID   string          `json:"author_id" gorm:"index;not null"`
	Author     authdomain.User `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Categories []Category      `json:"categories" gorm:"many2many:post_categories;"`
	Comments   []Comment       `json:"comments" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Category names are lowercased before lookup or creation so case variants
// collapse to a single row.
type Category struct {
	ID   string `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:30;uniqueIndex;not null"`
}

type Comment struct {
	ID        string          `json:"id" gorm:"primaryKey"`
	PostID    string          `json:"post_id" gorm:"index;not null"`
	AuthorID  string          `json:"author_id" gorm:"index;not null"`
	Author    authdomain.User `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Content   string          `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
