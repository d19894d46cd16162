package domain

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// DefaultDocumentType is used when the client sends no type hint.
const DefaultDocumentType = "general"

// UploadedFile describes the received file as reported by the client.
// Immutable once constructed.
type UploadedFile struct {
	Name      string `json:"name"`
	MimeType  string `json:"type"`
	SizeBytes int64  `json:"size"`
}

// DocumentMetadata is the structured record derived from the analyzer's
// free-text reply. Categories is never empty; Categories[0] is always
// "Document".
type DocumentMetadata struct {
	Categories []string `json:"categories"`
	Entities   []string `json:"entities"`
	Sentiment  string   `json:"sentiment"`
	Confidence float64  `json:"confidence"`
	Language   string   `json:"language"`
}

// EnrichedDocument is a successfully processed upload held in the
// session-scoped document store. It is never mutated after insertion.
//
// ID is the insertion Unix-milli timestamp. Uniqueness holds only while
// inserts are spaced wider than the clock resolution.
type EnrichedDocument struct {
	ID            int64            `json:"id"`
	File          UploadedFile     `json:"file"`
	Metadata      DocumentMetadata `json:"metadata"`
	ExtractedText string           `json:"extracted_text,omitempty"`
	Type          string           `json:"type"`
	StoragePath   string           `json:"storage_path,omitempty"`
	Timestamp     string           `json:"timestamp"`
}
