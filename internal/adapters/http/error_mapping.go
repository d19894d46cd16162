package httpadapter

import (
	"net/http"

	"github.com/nikolaev-a/ai-doc-manager/internal/core/domain"
)

// Pipeline failures (OCR, decode, AI service, storage) all collapse to 500
// on the wire; only malformed client input maps to 400.
func mapErrorToHTTPStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
