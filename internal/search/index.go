package search

import (
	"sort"
	"strings"
	"sync"
)

// Document is the indexed projection of a post.
type Document struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Author     string   `json:"author"`
	Categories []string `json:"categories"`
}

// Indexer is the write side of the search index. A real deployment points this
// at an external index cluster; MemoryIndex backs development and tests.
type Indexer interface {
	Index(doc Document) error
	Remove(id string) error
}

// MemoryIndex is a process-local search index over post titles.
type MemoryIndex struct {
	mu   sync.RWMutex
	docs map[string]Document
}

func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		docs: make(map[string]Document),
	}
}

func (m *MemoryIndex) Index(doc Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[doc.ID] = doc
	return nil
}

func (m *MemoryIndex) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, id)
	return nil
}

// SearchTitle returns documents whose title contains the query,
// case-insensitively, ordered by title.
func (m *MemoryIndex) SearchTitle(query string) []Document {
	query = strings.ToLower(strings.TrimSpace(query))

	m.mu.RLock()
	defer m.mu.RUnlock()

	var results []Document
	for _, doc := range m.docs {
		if query == "" || strings.Contains(strings.ToLower(doc.Title), query) {
			results = append(results, doc)
		}
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Title < results[j].Title })
	return results
}

// Suggest returns distinct titles starting with the prefix, for completion.
func (m *MemoryIndex) Suggest(prefix string) []string {
	prefix = strings.ToLower(strings.TrimSpace(prefix))

	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[string]bool)
	var titles []string
	for _, doc := range m.docs {
		if prefix != "" && !strings.HasPrefix(strings.ToLower(doc.Title), prefix) {
			continue
		}
		if !seen[doc.Title] {
			seen[doc.Title] = true
			titles = append(titles, doc.Title)
		}
	}

	sort.Strings(titles)
	return titles
}
