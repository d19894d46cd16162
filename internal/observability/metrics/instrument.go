package metrics

import (
	"context"
	"time"

	"github.com/nikolaev-a/ai-doc-manager/internal/core/ports"
)

// InstrumentedExtractor decorates a TextExtractor with stage timing.
type InstrumentedExtractor struct {
	Service string
	Next    ports.TextExtractor
	Metrics *PipelineMetrics
}

func (e InstrumentedExtractor) Extract(ctx context.Context, data []byte, mimeType string) (string, error) {
	start := time.Now()
	text, err := e.Next.Extract(ctx, data, mimeType)
	e.Metrics.ObserveStage(e.Service, StageExtract, time.Since(start), err)
	return text, err
}

// InstrumentedAnalyzer decorates an Analyzer with stage timing.
type InstrumentedAnalyzer struct {
	Service string
	Next    ports.Analyzer
	Metrics *PipelineMetrics
}

func (a InstrumentedAnalyzer) Analyze(ctx context.Context, excerpt, documentType string) (string, error) {
	start := time.Now()
	text, err := a.Next.Analyze(ctx, excerpt, documentType)
	a.Metrics.ObserveStage(a.Service, StageAnalyze, time.Since(start), err)
	return text, err
}
