package analysis

import (
	"regexp"
	"strings"

	"github.com/nikolaev-a/ai-doc-manager/internal/core/domain"
	"github.com/nikolaev-a/ai-doc-manager/internal/core/ports"
)

// categoryKeywords is checked in fixed order; matches append after the
// leading "Document" entry.
var categoryKeywords = []struct {
	keyword  string
	category string
}{
	{"legal", "Legal"},
	{"medical", "Medical"},
	{"financial", "Financial"},
	{"business", "Business"},
}

var defaultEntities = []string{"Company Names", "Dates", "Amounts"}

// The entity list runs to end-of-line only; whitespace around the colon
// must not swallow the newline.
var entitiesLine = regexp.MustCompile(`(?i)entities[ \t]*:[ \t]*([^\n]+)`)

// Parser turns the analyzer's free-text reply into structured metadata by
// case-insensitive keyword and pattern matching. It performs no I/O and
// never fails: any string input yields a valid record.
type Parser struct {
	scorer   ports.ConfidenceScorer
	detector ports.LanguageDetector
}

func NewParser(scorer ports.ConfidenceScorer, detector ports.LanguageDetector) *Parser {
	return &Parser{scorer: scorer, detector: detector}
}

func (p *Parser) Parse(analysisText string) domain.DocumentMetadata {
	return domain.DocumentMetadata{
		Categories: extractCategories(analysisText),
		Entities:   extractEntities(analysisText),
		Sentiment:  determineSentiment(analysisText),
		Confidence: p.scorer.Score(analysisText),
		Language:   p.detector.Detect(analysisText),
	}
}

func extractCategories(analysisText string) []string {
	lower := strings.ToLower(analysisText)
	categories := []string{"Document"}
	for _, ck := range categoryKeywords {
		if strings.Contains(lower, ck.keyword) {
			categories = append(categories, ck.category)
		}
	}
	return categories
}

func extractEntities(analysisText string) []string {
	match := entitiesLine.FindStringSubmatch(analysisText)
	if match == nil {
		return append([]string(nil), defaultEntities...)
	}

	var entities []string
	for _, token := range strings.Split(match[1], ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			entities = append(entities, token)
		}
	}
	if len(entities) == 0 {
		return append([]string(nil), defaultEntities...)
	}
	return entities
}

// determineSentiment tests "positive" before "negative"; the order is part
// of the contract.
func determineSentiment(analysisText string) string {
	lower := strings.ToLower(analysisText)
	switch {
	case strings.Contains(lower, domain.SentimentPositive):
		return domain.SentimentPositive
	case strings.Contains(lower, domain.SentimentNegative):
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}
