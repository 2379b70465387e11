package search

import (
	"log"

	"blog-backend/internal/post/domain"
)

// Hooks is the post-commit sink the content store invokes after each
// successful post write. Indexer failures are logged here and never reach the
// caller that triggered the save.
type Hooks struct {
	indexer Indexer
}

func NewHooks(indexer Indexer) *Hooks {
	return &Hooks{
		indexer: indexer,
	}
}

func (h *Hooks) PostSaved(post *domain.Post) {
	if h == nil || h.indexer == nil {
		return
	}
	defer h.recover("index", post.ID)

	categories := make([]string, 0, len(post.Categories))
	for _, category := range post.Categories {
		categories = append(categories, category.Name)
	}

	doc := Document{
		ID:         post.ID,
		Title:      post.Title,
		Author:     post.Author.Username,
		Categories: categories,
	}
	if err := h.indexer.Index(doc); err != nil {
		log.Printf("[Search] Failed to index post %s: %v", post.ID, err)
	}
}

func (h *Hooks) PostDeleted(postID string) {
	if h == nil || h.indexer == nil {
		return
	}
	defer h.recover("remove", postID)

	if err := h.indexer.Remove(postID); err != nil {
		log.Printf("[Search] Failed to remove post %s from index: %v", postID, err)
	}
}

func (h *Hooks) recover(op, postID string) {
	if r := recover(); r != nil {
		log.Printf("[Search] Indexer panicked during %s of post %s: %v", op, postID, r)
	}
}
