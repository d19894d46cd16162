package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/nikolaev-a/ai-doc-manager/internal/config"
	"github.com/nikolaev-a/ai-doc-manager/internal/core/domain"
	"github.com/nikolaev-a/ai-doc-manager/internal/core/ports"
	"github.com/nikolaev-a/ai-doc-manager/internal/observability/metrics"
)

const serviceName = "api"

// genericUploadError is the only failure detail exposed to clients; the
// concrete cause stays in the server log.
const genericUploadError = "Error processing document"

type Router struct {
	cfg      config.Config
	uploader ports.DocumentUploader
	browser  ports.DocumentBrowser
	httpMet  *metrics.HTTPServerMetrics
	pipeline *metrics.PipelineMetrics
}

func NewRouter(
	cfg config.Config,
	uploader ports.DocumentUploader,
	browser ports.DocumentBrowser,
	httpMet *metrics.HTTPServerMetrics,
	pipeline *metrics.PipelineMetrics,
) *Router {
	return &Router{
		cfg:      cfg,
		uploader: uploader,
		browser:  browser,
		httpMet:  httpMet,
		pipeline: pipeline,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/api/documents/upload", rt.uploadDocument)
	mux.HandleFunc("/api/documents", rt.listDocuments)
	if rt.httpMet != nil {
		mux.Handle("/metrics", rt.httpMet.Handler())
	}

	handler := requestIDMiddleware(accessLogMiddleware(mux))
	handler = corsMiddleware(rt.cfg.CORSAllowedOrigin, handler)
	if rt.httpMet != nil {
		handler = rt.httpMet.Middleware(serviceName, handler)
	}
	return handler
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type uploadResponse struct {
	Success  bool                     `json:"success"`
	Metadata *domain.DocumentMetadata `json:"metadata,omitempty"`
	File     *domain.UploadedFile     `json:"file,omitempty"`
	Error    string                   `json:"error,omitempty"`
}

func (rt *Router) uploadDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, rt.cfg.MaxUploadBytes)

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, uploadResponse{
			Success: false,
			Error:   "multipart field 'file' is required",
		})
		return
	}
	defer file.Close()

	rt.pipeline.StartUpload()
	start := time.Now()
	doc, err := rt.uploader.Upload(
		r.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		r.FormValue("type"),
		file,
	)
	rt.pipeline.FinishUpload(serviceName, time.Since(start), err)

	if err != nil {
		slog.Error("upload_failed",
			"request_id", requestIDFromContext(r.Context()),
			"filename", fileHeader.Filename,
			"error", err,
		)

		status := mapErrorToHTTPStatus(err)
		message := genericUploadError
		if status == http.StatusBadRequest {
			message = "invalid upload request"
		}
		writeJSON(w, status, uploadResponse{Success: false, Error: message})
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{
		Success:  true,
		Metadata: &doc.Metadata,
		File:     &doc.File,
	})
}

func (rt *Router) listDocuments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	docs := rt.browser.Search(r.URL.Query().Get("query"), r.URL.Query().Get("category"))
	writeJSON(w, http.StatusOK, map[string]any{
		"documents": docs,
		"count":     len(docs),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
