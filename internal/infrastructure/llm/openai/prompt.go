package openai

import "fmt"

// buildAnalysisPrompt asks for the five facets the metadata parser knows
// how to recover from free text.
func buildAnalysisPrompt(excerpt, documentType string) string {
	return fmt.Sprintf(`Analyze the following %s document and provide:
1. Main categories it belongs to
2. Key entities mentioned
3. Overall sentiment
4. Important dates and numbers
5. Key topics discussed

Document text:
%s
`, documentType, excerpt)
}

// truncateExcerpt bounds the text sent upstream; the cap is counted in
// characters, not bytes.
func truncateExcerpt(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
