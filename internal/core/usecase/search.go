package usecase

import (
	"github.com/nikolaev-a/ai-doc-manager/internal/core/domain"
	"github.com/nikolaev-a/ai-doc-manager/internal/core/ports"
)

// SearchDocumentsUseCase exposes the session store's filter semantics: a
// non-empty query searches file names, categories and extracted text; the
// category filter applies only when the query is empty.
type SearchDocumentsUseCase struct {
	store ports.DocumentStore
}

func NewSearchDocumentsUseCase(store ports.DocumentStore) *SearchDocumentsUseCase {
	return &SearchDocumentsUseCase{store: store}
}

func (uc *SearchDocumentsUseCase) Search(query, category string) []*domain.EnrichedDocument {
	return uc.store.Filter(query, category)
}
