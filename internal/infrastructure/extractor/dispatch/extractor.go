// Package dispatch selects a text-extraction path by MIME type: images go
// through the OCR engine, everything else is decoded as UTF-8 text.
package dispatch

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"

	"github.com/nikolaev-a/ai-doc-manager/internal/core/domain"
	"github.com/nikolaev-a/ai-doc-manager/internal/core/ports"
)

type Extractor struct {
	ocr      ports.OCREngine
	language string
}

func NewExtractor(ocr ports.OCREngine, language string) *Extractor {
	if language == "" {
		language = "eng"
	}
	return &Extractor{ocr: ocr, language: language}
}

func (e *Extractor) Extract(ctx context.Context, data []byte, mimeType string) (string, error) {
	// The declared type wins; sniffing covers clients that omit it.
	mimeType = strings.TrimSpace(mimeType)
	if mimeType == "" {
		mimeType = mimetype.Detect(data).String()
	}

	if strings.HasPrefix(mimeType, "image/") {
		text, err := e.ocr.Recognize(ctx, data, e.language)
		if err != nil {
			return "", domain.WrapError(domain.ErrOCR, "recognize image text", err)
		}
		return text, nil
	}

	if !utf8.Valid(data) {
		return "", domain.WrapError(domain.ErrDecode, "decode document text",
			errors.New("content is not valid utf-8"))
	}
	return string(data), nil
}
