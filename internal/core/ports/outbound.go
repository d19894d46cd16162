package ports

import (
	"context"
	"io"

	"github.com/nikolaev-a/ai-doc-manager/internal/core/domain"
)

// ObjectStorage persists original upload bytes, keyed by generated name.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// TextExtractor turns raw file bytes into text, dispatching on MIME type.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte, mimeType string) (string, error)
}

// OCREngine recognizes text in image bytes. External collaborator.
type OCREngine interface {
	Recognize(ctx context.Context, image []byte, language string) (string, error)
}

// Analyzer submits a bounded excerpt to the generative-text service and
// returns its free-form analysis text.
type Analyzer interface {
	Analyze(ctx context.Context, excerpt, documentType string) (string, error)
}

// AnalysisParser derives structured metadata from untrusted analysis text.
// Implementations must be total over all strings.
type AnalysisParser interface {
	Parse(analysisText string) domain.DocumentMetadata
}

// ConfidenceScorer supplies the metadata confidence signal.
type ConfidenceScorer interface {
	Score(analysisText string) float64
}

// LanguageDetector supplies the metadata language code.
type LanguageDetector interface {
	Detect(text string) string
}

// DocumentStore holds enriched documents for the lifetime of the process,
// most recent first.
type DocumentStore interface {
	Insert(doc *domain.EnrichedDocument)
	Filter(query, category string) []*domain.EnrichedDocument
	List() []*domain.EnrichedDocument
}
