package ports

import (
	"context"
	"io"

	"github.com/nikolaev-a/ai-doc-manager/internal/core/domain"
)

// DocumentUploader is the inbound contract for the upload enrichment pipeline.
type DocumentUploader interface {
	Upload(ctx context.Context, filename, mimeType, documentType string, body io.Reader) (*domain.EnrichedDocument, error)
}

// DocumentBrowser is the inbound read model over the session document store.
type DocumentBrowser interface {
	Search(query, category string) []*domain.EnrichedDocument
}
