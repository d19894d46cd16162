// Package memory holds enriched documents for the lifetime of the process.
// There is deliberately no persistence and no delete operation: the store
// models a single working session.
package memory

import (
	"strings"
	"sync"
	"time"

	"github.com/nikolaev-a/ai-doc-manager/internal/core/domain"
)

type Store struct {
	mu   sync.RWMutex
	docs []*domain.EnrichedDocument
}

func New() *Store {
	return &Store{}
}

// Insert prepends doc so the list stays most-recent-first. A zero ID is
// replaced with the current Unix-milli timestamp; uniqueness is only as
// good as the clock resolution.
func (s *Store) Insert(doc *domain.EnrichedDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc.ID == 0 {
		doc.ID = time.Now().UnixMilli()
	}
	s.docs = append([]*domain.EnrichedDocument{doc}, s.docs...)
}

// Filter applies a free-text query over file name, categories and extracted
// text, or a category membership check. A non-empty query wins over the
// category; the two are not combined.
func (s *Store) Filter(query, category string) []*domain.EnrichedDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if strings.TrimSpace(query) != "" {
		return s.filterByQuery(query)
	}
	if category != "" && category != "all" {
		return s.filterByCategory(category)
	}
	return s.snapshot()
}

func (s *Store) List() []*domain.EnrichedDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

func (s *Store) filterByQuery(query string) []*domain.EnrichedDocument {
	needle := strings.ToLower(query)
	out := make([]*domain.EnrichedDocument, 0, len(s.docs))
	for _, doc := range s.docs {
		if matchesQuery(doc, needle) {
			out = append(out, doc)
		}
	}
	return out
}

func (s *Store) filterByCategory(category string) []*domain.EnrichedDocument {
	out := make([]*domain.EnrichedDocument, 0, len(s.docs))
	for _, doc := range s.docs {
		for _, c := range doc.Metadata.Categories {
			if c == category {
				out = append(out, doc)
				break
			}
		}
	}
	return out
}

func (s *Store) snapshot() []*domain.EnrichedDocument {
	out := make([]*domain.EnrichedDocument, len(s.docs))
	copy(out, s.docs)
	return out
}

func matchesQuery(doc *domain.EnrichedDocument, needle string) bool {
	if strings.Contains(strings.ToLower(doc.File.Name), needle) {
		return true
	}
	for _, c := range doc.Metadata.Categories {
		if strings.Contains(strings.ToLower(c), needle) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(doc.ExtractedText), needle)
}
