package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authdomain "blog-backend/internal/auth/domain"
	"blog-backend/internal/post/domain"
)

func seedIndex(t *testing.T) *MemoryIndex {
	t.Helper()

	index := NewMemoryIndex()
	docs := []Document{
		{ID: "1", Title: "Go Concurrency Patterns", Author: "janedoe", Categories: []string{"golang"}},
		{ID: "2", Title: "Testing in Go", Author: "janedoe", Categories: []string{"golang", "testing"}},
		{ID: "3", Title: "Cooking for Beginners", Author: "warren", Categories: []string{"food"}},
	}
	for _, doc := range docs {
		require.NoError(t, index.Index(doc))
	}
	return index
}

func TestMemoryIndexSearchTitle(t *testing.T) {
	index := seedIndex(t)

	results := index.SearchTitle("go")
	require.Len(t, results, 2)
	assert.Equal(t, "Go Concurrency Patterns", results[0].Title)
	assert.Equal(t, "Testing in Go", results[1].Title)

	assert.Len(t, index.SearchTitle("GO "), 2, "query is trimmed and case-insensitive")
	assert.Empty(t, index.SearchTitle("quantum"))
	assert.Len(t, index.SearchTitle(""), 3, "empty query matches everything")
}

func TestMemoryIndexSuggest(t *testing.T) {
	index := seedIndex(t)

	assert.Equal(t, []string{"Cooking for Beginners"}, index.Suggest("coo"))
	assert.Equal(t, []string{"Go Concurrency Patterns"}, index.Suggest("go c"))
	assert.Empty(t, index.Suggest("zzz"))
}

func TestMemoryIndexReindexReplacesDocument(t *testing.T) {
	index := seedIndex(t)

	require.NoError(t, index.Index(Document{ID: "1", Title: "Go Generics", Author: "janedoe"}))

	assert.Empty(t, index.SearchTitle("concurrency"))
	assert.Len(t, index.SearchTitle("generics"), 1)
}

func TestMemoryIndexRemove(t *testing.T) {
	index := seedIndex(t)

	require.NoError(t, index.Remove("3"))
	assert.Empty(t, index.SearchTitle("cooking"))
}

// faultyIndexer fails or panics on every call.
type faultyIndexer struct {
	panics bool
}

func (f *faultyIndexer) Index(doc Document) error {
	if f.panics {
		panic("index backend down")
	}
	return errors.New("index backend down")
}

func (f *faultyIndexer) Remove(id string) error {
	if f.panics {
		panic("index backend down")
	}
	return errors.New("index backend down")
}

func TestHooksIndexPost(t *testing.T) {
	index := NewMemoryIndex()
	hooks := NewHooks(index)

	hooks.PostSaved(&domain.Post{
		ID:         "post-1",
		Title:      "Go Concurrency Patterns",
		Author:     authdomain.User{Username: "janedoe"},
		Categories: []domain.Category{{Name: "golang"}},
	})

	results := index.SearchTitle("concurrency")
	require.Len(t, results, 1)
	assert.Equal(t, "janedoe", results[0].Author)
	assert.Equal(t, []string{"golang"}, results[0].Categories)

	hooks.PostDeleted("post-1")
	assert.Empty(t, index.SearchTitle("concurrency"))
}

func TestHooksSwallowIndexerFailures(t *testing.T) {
	hooks := NewHooks(&faultyIndexer{})

	assert.NotPanics(t, func() {
		hooks.PostSaved(&domain.Post{ID: "post-1", Title: "Go"})
		hooks.PostDeleted("post-1")
	})
}

func TestHooksSwallowIndexerPanics(t *testing.T) {
	hooks := NewHooks(&faultyIndexer{panics: true})

	assert.NotPanics(t, func() {
		hooks.PostSaved(&domain.Post{ID: "post-1", Title: "Go"})
		hooks.PostDeleted("post-1")
	})
}

func TestHooksNilIndexerIsNoop(t *testing.T) {
	hooks := NewHooks(nil)

	assert.NotPanics(t, func() {
		hooks.PostSaved(&domain.Post{ID: "post-1", Title: "Go"})
		hooks.PostDeleted("post-1")
	})
}
