package openai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nikolaev-a/ai-doc-manager/internal/core/domain"
)

type Client struct {
	baseURL     string
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	httpClient  *http.Client
}

func New(baseURL, apiKey, model string, maxTokens int, temperature float64) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		httpClient:  &http.Client{Timeout: 120 * time.Second},
	}
}

// Analyzer asks the completion API for a free-form analysis of a document
// excerpt. The reply is opaque here; structure is recovered downstream.
type Analyzer struct {
	client       *Client
	excerptLimit int
}

func NewAnalyzer(client *Client, excerptLimit int) *Analyzer {
	if excerptLimit <= 0 {
		excerptLimit = 1000
	}
	return &Analyzer{client: client, excerptLimit: excerptLimit}
}

func (a *Analyzer) Analyze(ctx context.Context, excerpt, documentType string) (string, error) {
	if strings.TrimSpace(documentType) == "" {
		documentType = domain.DefaultDocumentType
	}

	prompt := buildAnalysisPrompt(truncateExcerpt(excerpt, a.excerptLimit), documentType)

	text, err := a.client.complete(ctx, prompt)
	if err != nil {
		return "", domain.WrapError(domain.ErrAIService, "analyze document", err)
	}
	if text == "" {
		return "", domain.WrapError(domain.ErrAIService, "analyze document",
			fmt.Errorf("empty completion from model %s", a.client.model))
	}
	return text, nil
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	request := map[string]any{
		"model":       c.model,
		"prompt":      prompt,
		"max_tokens":  c.maxTokens,
		"temperature": c.temperature,
	}

	var response struct {
		Choices []struct {
			Text string `json:"text"`
		} `json:"choices"`
	}
	if err := c.postJSON(ctx, "/v1/completions", request, &response, "completion"); err != nil {
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("completion response has no choices")
	}
	return strings.TrimSpace(response.Choices[0].Text), nil
}
