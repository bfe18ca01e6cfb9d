package analysis

import (
	"context"
	"errors"
	"strings"

	"github.com/tkonduri/LegalAPI/internal/analysis/language"
	"github.com/tkonduri/LegalAPI/internal/analysis/llm"
	"github.com/tkonduri/LegalAPI/internal/analysis/strategy"
	"github.com/tkonduri/LegalAPI/internal/config"
	"github.com/tkonduri/LegalAPI/internal/domain/docModel"
	"github.com/tkonduri/LegalAPI/internal/domain/jobModel"
	"github.com/tkonduri/LegalAPI/internal/metrics"
	"github.com/tkonduri/LegalAPI/pkg/logger_i"
)

// Service is the worker-facing contract. The worker never touches the
// reasoner, the detector or the extractors directly.
type Service interface {
	ProcessAnalysis(ctx context.Context, job jobModel.Job) jobModel.Job
	Run(ctx context.Context, doc docModel.Document, targetLang string) (docModel.OrchestrationOutput, error)
}

type service struct {
	reasoner llm.Provider
	ai       *strategy.AIAnalysis
	detector *language.Detector
	logger   *logger_i.Logger
}

// NewService wires the pipeline. A nil reasoner is valid: every AI step then
// runs its deterministic fallback.
func NewService(reasoner llm.Provider) Service {
	s := &service{
		reasoner: reasoner,
		detector: language.NewDetector(reasoner),
		logger:   logger_i.NewLogger("Analysis Service :"),
	}
	if reasoner != nil {
		s.ai = strategy.NewAIAnalysis(reasoner)
	}
	return s
}

// ErrEmptyDocument means extraction produced no usable text.
var ErrEmptyDocument = errors.New("document contains no extractable text")

func (s *service) ProcessAnalysis(ctx context.Context, jobt jobModel.Job) jobModel.Job {
	inMethodLogger := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY).(string), "JobId", jobt.Id)

	processContext, cancel := context.WithTimeout(ctx, config.JobExecutionTimeout)
	defer cancel()

	doc := docModel.Document{
		Name:       jobt.JobPayload.DocumentName,
		Path:       jobt.JobPayload.DocumentPath,
		InlineText: jobt.JobPayload.InlineText,
		Format:     jobt.JobPayload.Format,
	}

	// Extraction
	text, err := s.executeExtractionStep(inMethodLogger, &jobt, doc)
	if err != nil {
		return s.jobError(jobt, err, "EXTRACTION_FAILURE", false)
	}

	// Language Detection
	detected := s.executeDetectionStep(processContext, inMethodLogger, &jobt, text.Body)

	// Strategy
	record, usedAI := s.executeStrategyStep(processContext, inMethodLogger, &jobt, text.Body)

	// Entities
	entities := s.executeEntityStep(processContext, inMethodLogger, &jobt, text.Body, usedAI)

	// Translation
	translated := s.executeTranslationStep(processContext, inMethodLogger, &jobt, text.Body, detected, usedAI)

	output := merge(record, entities, text, detected, jobt.JobPayload.TargetLanguage, translated, usedAI)
	metrics.CountAnalysis(output.Engine)

	return returnOutput(jobt, &output)
}

// Run is the synchronous variant of the pipeline, used by callers that do not
// go through the job queue.
func (s *service) Run(ctx context.Context, doc docModel.Document, targetLang string) (docModel.OrchestrationOutput, error) {
	jobt := jobModel.Job{
		JobPayload: jobModel.JobPayload{
			DocumentName:   doc.Name,
			DocumentPath:   doc.Path,
			InlineText:     doc.InlineText,
			Format:         doc.Format,
			TargetLanguage: targetLang,
		},
	}
	if ctx.Value(config.TRACE_ID_KEY) == nil {
		ctx = context.WithValue(ctx, config.TRACE_ID_KEY, "sync")
	}

	jobt = s.ProcessAnalysis(ctx, jobt)
	if jobt.Status == jobModel.JobStatusError {
		return docModel.OrchestrationOutput{}, errors.New(jobt.Error.Message)
	}
	return *jobt.JobPayload.Output, nil
}

func merge(
	record docModel.AnalysisRecord,
	entities docModel.EntityBundle,
	text docModel.PlainText,
	detected string,
	targetLang string,
	translated string,
	usedAI bool,
) docModel.OrchestrationOutput {
	engine := "fallback"
	if usedAI {
		engine = "ai"
	}
	return docModel.OrchestrationOutput{
		Record:           record,
		Entities:         entities,
		DetectedLanguage: detected,
		TargetLanguage:   targetLang,
		WordCount:        text.WordCount,
		CharacterCount:   text.CharCount,
		SentenceCount:    text.SentenceCount,
		TranslatedText:   translated,
		Engine:           engine,
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
