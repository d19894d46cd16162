package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/nikolaev-a/ai-doc-manager/internal/config"
	"github.com/nikolaev-a/ai-doc-manager/internal/core/ports"
	"github.com/nikolaev-a/ai-doc-manager/internal/core/usecase"
	"github.com/nikolaev-a/ai-doc-manager/internal/infrastructure/analysis"
	"github.com/nikolaev-a/ai-doc-manager/internal/infrastructure/extractor/dispatch"
	"github.com/nikolaev-a/ai-doc-manager/internal/infrastructure/llm/openai"
	"github.com/nikolaev-a/ai-doc-manager/internal/infrastructure/ocr/tesserver"
	"github.com/nikolaev-a/ai-doc-manager/internal/infrastructure/storage/localfs"
	"github.com/nikolaev-a/ai-doc-manager/internal/infrastructure/store/memory"
	"github.com/nikolaev-a/ai-doc-manager/internal/observability/logging"
	"github.com/nikolaev-a/ai-doc-manager/internal/observability/metrics"
)

const (
	serviceName = "api"

	constantConfidence = 0.85
	constantLanguage   = "en"
)

type App struct {
	Config config.Config
	Logger *slog.Logger

	HTTPMetrics     *metrics.HTTPServerMetrics
	PipelineMetrics *metrics.PipelineMetrics

	Store    ports.DocumentStore
	UploadUC ports.DocumentUploader
	SearchUC ports.DocumentBrowser
}

func New(cfg config.Config) (*App, error) {
	logger := logging.Setup(serviceName, cfg.LogLevel)

	httpMetrics := metrics.NewHTTPServerMetrics(serviceName)
	pipelineMetrics := metrics.NewPipelineMetrics(serviceName, httpMetrics.Registry())

	storage, err := localfs.New(cfg.UploadsPath)
	if err != nil {
		return nil, fmt.Errorf("init upload storage: %w", err)
	}

	ocr := tesserver.New(cfg.OCRURL)
	var extractor ports.TextExtractor = dispatch.NewExtractor(ocr, cfg.OCRLanguage)
	extractor = metrics.InstrumentedExtractor{
		Service: serviceName,
		Next:    extractor,
		Metrics: pipelineMetrics,
	}

	llmClient := openai.New(
		cfg.OpenAIURL,
		cfg.OpenAIAPIKey,
		cfg.OpenAIModel,
		cfg.OpenAIMaxTokens,
		cfg.OpenAITemperature,
	)
	var analyzer ports.Analyzer = openai.NewAnalyzer(llmClient, cfg.ExcerptLimit)
	analyzer = metrics.InstrumentedAnalyzer{
		Service: serviceName,
		Next:    analyzer,
		Metrics: pipelineMetrics,
	}

	parser := analysis.NewParser(
		analysis.NewConstantScorer(constantConfidence),
		analysis.NewConstantDetector(constantLanguage),
	)

	store := memory.New()

	uploadUC := usecase.NewUploadDocumentUseCase(storage, extractor, analyzer, parser, store)
	searchUC := usecase.NewSearchDocumentsUseCase(store)

	return &App{
		Config: cfg,
		Logger: logger,

		HTTPMetrics:     httpMetrics,
		PipelineMetrics: pipelineMetrics,

		Store:    store,
		UploadUC: uploadUC,
		SearchUC: searchUC,
	}, nil
}
