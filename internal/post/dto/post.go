package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"blog-backend/internal/post/domain"
)

type CategoryInput struct {
	Name string `json:"name"`
}

type PostRequest struct {
	Title      string          `json:"title"`
	Body       string          `json:"body"`
	Categories []CategoryInput `json:"categories"`
}

func (r PostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Body, validation.Required),
		validation.Field(&r.Categories, validation.Required),
	)
}

type CommentRequest struct {
	Content string `json:"content"`
}

func (r CommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.Required),
	)
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CommentResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_on"`
}

// PostResponse is the full representation with categories and comments.
type PostResponse struct {
	ID         string             `json:"id"`
	Title      string             `json:"title"`
	Body       string             `json:"body"`
	Author     string             `json:"author"`
	Categories []CategoryResponse `json:"categories"`
	Comments   []CommentResponse  `json:"comments"`
	CreatedAt  time.Time          `json:"created_on"`
	UpdatedAt  time.Time          `json:"updated_on"`
}

// PostSummaryResponse is the compact shape used by public listings.
type PostSummaryResponse struct {
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_on"`
	UpdatedAt time.Time `json:"updated_on"`
}

type PostListResponse struct {
	Posts []*PostSummaryResponse `json:"posts"`
	Total int64                  `json:"total"`
}

func NewCommentResponse(comment *domain.Comment) *CommentResponse {
	return &CommentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		Author:    comment.Author.Username,
		CreatedAt: comment.CreatedAt,
	}
}

func NewPostResponse(post *domain.Post) *PostResponse {
	categories := make([]CategoryResponse, 0, len(post.Categories))
	for _, category := range post.Categories {
		categories = append(categories, CategoryResponse{ID: category.ID, Name: category.Name})
	}

	comments := make([]CommentResponse, 0, len(post.Comments))
	for i := range post.Comments {
		comments = append(comments, *NewCommentResponse(&post.Comments[i]))
	}

	return &PostResponse{
		ID:         post.ID,
		Title:      post.Title,
		Body:       post.Body,
		Author:     post.Author.Username,
		Categories: categories,
		Comments:   comments,
		CreatedAt:  post.CreatedAt,
		UpdatedAt:  post.UpdatedAt,
	}
}

func NewPostSummaryResponse(post *domain.Post) *PostSummaryResponse {
	return &PostSummaryResponse{
		Title:     post.Title,
		Body:      post.Body,
		Author:    post.Author.Username,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

func NewPostListResponse(posts []*domain.Post, total int64) *PostListResponse {
	summaries := make([]*PostSummaryResponse, 0, len(posts))
	for _, post := range posts {
		summaries = append(summaries, NewPostSummaryResponse(post))
	}
	return &PostListResponse{Posts: summaries, Total: total}
}
