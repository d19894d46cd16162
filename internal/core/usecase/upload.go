package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/nikolaev-a/ai-doc-manager/internal/core/domain"
	"github.com/nikolaev-a/ai-doc-manager/internal/core/ports"
)

// UploadDocumentUseCase runs the enrichment pipeline for one upload:
// persist original bytes, extract text, analyze with the generative
// service, parse the reply into metadata, insert into the session store.
// Enrichment is all-or-nothing; a failure at any stage leaves the store
// unchanged.
type UploadDocumentUseCase struct {
	storage   ports.ObjectStorage
	extractor ports.TextExtractor
	analyzer  ports.Analyzer
	parser    ports.AnalysisParser
	store     ports.DocumentStore
}

func NewUploadDocumentUseCase(
	storage ports.ObjectStorage,
	extractor ports.TextExtractor,
	analyzer ports.Analyzer,
	parser ports.AnalysisParser,
	store ports.DocumentStore,
) *UploadDocumentUseCase {
	return &UploadDocumentUseCase{
		storage:   storage,
		extractor: extractor,
		analyzer:  analyzer,
		parser:    parser,
		store:     store,
	}
}

func (uc *UploadDocumentUseCase) Upload(
	ctx context.Context,
	filename, mimeType, documentType string,
	body io.Reader,
) (*domain.EnrichedDocument, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, domain.WrapError(domain.ErrUpload, "read upload body", err)
	}
	if len(data) == 0 {
		return nil, domain.WrapError(domain.ErrInvalidInput, "read upload body", errors.New("empty file"))
	}

	if strings.TrimSpace(documentType) == "" {
		documentType = domain.DefaultDocumentType
	}

	now := time.Now().UTC()
	key := uploadKey(filename, now)
	if err := uc.storage.Save(ctx, key, bytes.NewReader(data)); err != nil {
		return nil, domain.WrapError(domain.ErrUpload, "save original upload", err)
	}

	text, err := uc.extractor.Extract(ctx, data, mimeType)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}

	analysis, err := uc.analyzer.Analyze(ctx, text, documentType)
	if err != nil {
		return nil, fmt.Errorf("analyze document: %w", err)
	}

	doc := &domain.EnrichedDocument{
		File: domain.UploadedFile{
			Name:      filename,
			MimeType:  mimeType,
			SizeBytes: int64(len(data)),
		},
		Metadata:      uc.parser.Parse(analysis),
		ExtractedText: text,
		Type:          documentType,
		StoragePath:   key,
		Timestamp:     now.Format(time.RFC3339),
	}
	uc.store.Insert(doc)

	return doc, nil
}

// uploadKey names stored files by upload time plus the original extension.
// Not collision-proof for uploads landing within the same millisecond.
func uploadKey(filename string, now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10) + sanitizeExtension(filepath.Ext(filename))
}

func sanitizeExtension(ext string) string {
	ext = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r
		case r >= '0' && r <= '9':
			return r
		case r == '.':
			return r
		default:
			return -1
		}
	}, ext)
	if ext == "." {
		return ""
	}
	return ext
}
