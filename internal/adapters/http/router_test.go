package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nikolaev-a/ai-doc-manager/internal/config"
	"github.com/nikolaev-a/ai-doc-manager/internal/core/domain"
	"github.com/nikolaev-a/ai-doc-manager/internal/core/usecase"
	"github.com/nikolaev-a/ai-doc-manager/internal/infrastructure/analysis"
	"github.com/nikolaev-a/ai-doc-manager/internal/infrastructure/extractor/dispatch"
	"github.com/nikolaev-a/ai-doc-manager/internal/infrastructure/storage/localfs"
	"github.com/nikolaev-a/ai-doc-manager/internal/infrastructure/store/memory"
)

type uploaderFake struct {
	doc    *domain.EnrichedDocument
	err    error
	gotDoc struct {
		filename string
		mimeType string
		docType  string
	}
}

func (f *uploaderFake) Upload(_ context.Context, filename, mimeType, documentType string, body io.Reader) (*domain.EnrichedDocument, error) {
	f.gotDoc.filename = filename
	f.gotDoc.mimeType = mimeType
	f.gotDoc.docType = documentType
	if _, err := io.Copy(io.Discard, body); err != nil {
		return nil, err
	}
	return f.doc, f.err
}

type browserFake struct {
	docs        []*domain.EnrichedDocument
	gotQuery    string
	gotCategory string
}

func (f *browserFake) Search(query, category string) []*domain.EnrichedDocument {
	f.gotQuery = query
	f.gotCategory = category
	return f.docs
}

func testConfig() config.Config {
	return config.Config{
		MaxUploadBytes:    1 << 20,
		CORSAllowedOrigin: "*",
	}
}

func newTestRouter(uploader *uploaderFake, browser *browserFake) http.Handler {
	return NewRouter(testConfig(), uploader, browser, nil, nil).Handler()
}

func multipartBody(t *testing.T, filename, content, docType string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile() error = %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if docType != "" {
		if err := writer.WriteField("type", docType); err != nil {
			t.Fatalf("WriteField() error = %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	return &body, writer.FormDataContentType()
}

func TestHealthzEndpoint(t *testing.T) {
	handler := newTestRouter(&uploaderFake{}, &browserFake{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
}

func TestUploadDocumentSuccess(t *testing.T) {
	uploader := &uploaderFake{doc: &domain.EnrichedDocument{
		File: domain.UploadedFile{Name: "report.txt", MimeType: "text/plain", SizeBytes: 5},
		Metadata: domain.DocumentMetadata{
			Categories: []string{"Document", "Financial"},
			Entities:   []string{"Company Names", "Dates", "Amounts"},
			Sentiment:  domain.SentimentPositive,
			Confidence: 0.85,
			Language:   "en",
		},
	}}
	handler := newTestRouter(uploader, &browserFake{})

	body, contentType := multipartBody(t, "report.txt", "hello", "financial")
	req := httptest.NewRequest(http.MethodPost, "/api/documents/upload", body)
	req.Header.Set("Content-Type", contentType)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", res.Code, res.Body.String())
	}

	var resp struct {
		Success  bool                     `json:"success"`
		Metadata *domain.DocumentMetadata `json:"metadata"`
		File     *domain.UploadedFile     `json:"file"`
	}
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatal("expected success=true")
	}
	if resp.Metadata == nil || resp.Metadata.Sentiment != domain.SentimentPositive {
		t.Fatalf("unexpected metadata: %+v", resp.Metadata)
	}
	if resp.File == nil || resp.File.Name != "report.txt" {
		t.Fatalf("unexpected file descriptor: %+v", resp.File)
	}
	if uploader.gotDoc.docType != "financial" {
		t.Fatalf("expected type field to pass through, got %q", uploader.gotDoc.docType)
	}
}

func TestUploadDocumentMissingFilePart(t *testing.T) {
	handler := newTestRouter(&uploaderFake{}, &browserFake{})

	req := httptest.NewRequest(http.MethodPost, "/api/documents/upload",
		bytes.NewBufferString("plain-text"))
	req.Header.Set("Content-Type", "text/plain")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}

	var resp map[string]any
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["success"] != false {
		t.Fatalf("expected success=false, got %v", resp)
	}
}

func TestUploadDocumentPipelineFailureIsGeneric(t *testing.T) {
	uploader := &uploaderFake{err: domain.WrapError(domain.ErrAIService, "analyze document",
		errors.New("model unavailable: secret-host:443"))}
	handler := newTestRouter(uploader, &browserFake{})

	body, contentType := multipartBody(t, "a.txt", "hello", "")
	req := httptest.NewRequest(http.MethodPost, "/api/documents/upload", body)
	req.Header.Set("Content-Type", contentType)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", res.Code)
	}

	var resp map[string]any
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["success"] != false {
		t.Fatalf("expected success=false, got %v", resp)
	}
	if resp["error"] != genericUploadError {
		t.Fatalf("expected generic error message, got %v", resp["error"])
	}
	if _, ok := resp["metadata"]; ok {
		t.Fatal("failure response must not carry metadata")
	}
}

func TestUploadDocumentInvalidInputIs400(t *testing.T) {
	uploader := &uploaderFake{err: domain.WrapError(domain.ErrInvalidInput, "read upload body",
		errors.New("empty file"))}
	handler := newTestRouter(uploader, &browserFake{})

	body, contentType := multipartBody(t, "a.txt", "x", "")
	req := httptest.NewRequest(http.MethodPost, "/api/documents/upload", body)
	req.Header.Set("Content-Type", contentType)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}
}

func TestListDocumentsPassesFilters(t *testing.T) {
	browser := &browserFake{docs: []*domain.EnrichedDocument{
		{ID: 2, File: domain.UploadedFile{Name: "b.txt"}},
		{ID: 1, File: domain.UploadedFile{Name: "a.txt"}},
	}}
	handler := newTestRouter(&uploaderFake{}, browser)

	req := httptest.NewRequest(http.MethodGet, "/api/documents?query=report&category=Legal", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	if browser.gotQuery != "report" || browser.gotCategory != "Legal" {
		t.Fatalf("filters not passed through: query=%q category=%q",
			browser.gotQuery, browser.gotCategory)
	}

	var resp struct {
		Documents []*domain.EnrichedDocument `json:"documents"`
		Count     int                        `json:"count"`
	}
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 2 || len(resp.Documents) != 2 {
		t.Fatalf("unexpected listing: %+v", resp)
	}
	if resp.Documents[0].ID != 2 {
		t.Fatal("listing order must be preserved")
	}
}

func TestUploadMethodNotAllowed(t *testing.T) {
	handler := newTestRouter(&uploaderFake{}, &browserFake{})
	req := httptest.NewRequest(http.MethodGet, "/api/documents/upload", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", res.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := newTestRouter(&uploaderFake{}, &browserFake{})
	req := httptest.NewRequest(http.MethodOptions, "/api/documents/upload", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", res.Code)
	}
	if res.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("expected permissive CORS origin header")
	}
}

type stubOCR struct{}

func (stubOCR) Recognize(context.Context, []byte, string) (string, error) {
	return "", errors.New("ocr not expected for text uploads")
}

type stubAnalyzer struct{ reply string }

func (s stubAnalyzer) Analyze(context.Context, string, string) (string, error) {
	return s.reply, nil
}

// Full pipeline through the HTTP surface: a plain-text upload is stored,
// extracted, analyzed and parsed into metadata, then becomes visible in
// the listing.
func TestUploadEndToEnd(t *testing.T) {
	storage, err := localfs.New(t.TempDir())
	if err != nil {
		t.Fatalf("localfs.New() error = %v", err)
	}
	store := memory.New()
	uploader := usecase.NewUploadDocumentUseCase(
		storage,
		dispatch.NewExtractor(stubOCR{}, "eng"),
		stubAnalyzer{reply: "This is a financial document with positive sentiment."},
		analysis.NewParser(
			analysis.ConstantScorer{Value: 0.85},
			analysis.ConstantDetector{Code: "en"},
		),
		store,
	)
	browser := usecase.NewSearchDocumentsUseCase(store)
	handler := NewRouter(testConfig(), uploader, browser, nil, nil).Handler()

	body, contentType := multipartBody(t, "report.txt",
		"This financial report shows positive growth", "")
	req := httptest.NewRequest(http.MethodPost, "/api/documents/upload", body)
	req.Header.Set("Content-Type", contentType)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", res.Code, res.Body.String())
	}

	var resp struct {
		Success  bool                     `json:"success"`
		Metadata *domain.DocumentMetadata `json:"metadata"`
		File     *domain.UploadedFile     `json:"file"`
	}
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Metadata == nil {
		t.Fatalf("unexpected response: %+v", resp)
	}

	wantCategories := []string{"Document", "Financial"}
	if len(resp.Metadata.Categories) != len(wantCategories) {
		t.Fatalf("unexpected categories %v", resp.Metadata.Categories)
	}
	for i, c := range wantCategories {
		if resp.Metadata.Categories[i] != c {
			t.Fatalf("unexpected categories %v", resp.Metadata.Categories)
		}
	}
	if resp.Metadata.Sentiment != domain.SentimentPositive {
		t.Fatalf("unexpected sentiment %q", resp.Metadata.Sentiment)
	}
	if len(resp.Metadata.Entities) != 3 || resp.Metadata.Entities[0] != "Company Names" {
		t.Fatalf("expected default entities, got %v", resp.Metadata.Entities)
	}
	if resp.Metadata.Confidence != 0.85 || resp.Metadata.Language != "en" {
		t.Fatalf("unexpected scoring: %+v", resp.Metadata)
	}
	if resp.File == nil || resp.File.Name != "report.txt" {
		t.Fatalf("unexpected file descriptor: %+v", resp.File)
	}

	listReq := httptest.NewRequest(http.MethodGet, "/api/documents?query=financial", nil)
	listRes := httptest.NewRecorder()
	handler.ServeHTTP(listRes, listReq)

	var listing struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(listRes.Body).Decode(&listing); err != nil {
		t.Fatalf("decode listing: %v", err)
	}
	if listing.Count != 1 {
		t.Fatalf("expected the uploaded document in the listing, got count=%d", listing.Count)
	}
}

func TestRequestIDIsEchoed(t *testing.T) {
	handler := newTestRouter(&uploaderFake{}, &browserFake{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "req-42")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if got := res.Header().Get(requestIDHeader); got != "req-42" {
		t.Fatalf("expected request id echo, got %q", got)
	}
}
