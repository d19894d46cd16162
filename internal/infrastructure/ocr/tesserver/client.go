// Package tesserver is an HTTP client for a tesseract OCR sidecar service.
// The engine itself is an external collaborator; this client only carries
// bytes and a language code across the wire.
package tesserver

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *Client) Recognize(ctx context.Context, image []byte, language string) (string, error) {
	if len(image) == 0 {
		return "", fmt.Errorf("empty image payload")
	}
	if language == "" {
		language = "eng"
	}

	request := map[string]any{
		"image":    base64.StdEncoding.EncodeToString(image),
		"language": language,
	}

	var response struct {
		Text string `json:"text"`
	}
	if err := c.postJSON(ctx, "/ocr", request, &response, "recognize"); err != nil {
		return "", err
	}
	return response.Text, nil
}
