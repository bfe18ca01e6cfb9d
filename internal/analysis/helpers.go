package analysis

import (
	"context"
	"net/http"
	"time"

	"github.com/tkonduri/LegalAPI/internal/analysis/extract"
	"github.com/tkonduri/LegalAPI/internal/analysis/patterns"
	"github.com/tkonduri/LegalAPI/internal/analysis/strategy"
	"github.com/tkonduri/LegalAPI/internal/domain/docModel"
	"github.com/tkonduri/LegalAPI/internal/domain/jobModel"
	"github.com/tkonduri/LegalAPI/internal/metrics"
	"github.com/tkonduri/LegalAPI/pkg/logger_i"
)

func returnOutput(job jobModel.Job, output *docModel.OrchestrationOutput) jobModel.Job {
	job.JobPayload.Output = output
	job.CurrentStep = jobModel.Complete
	return job
}

func logOutput(job jobModel.Job, status jobModel.InternalStatus, log *logger_i.Logger) jobModel.Job {
	job.CurrentStep = status
	log.Debug("ProcessAnalysis", "Current Status", job.CurrentStep)
	return job
}

func (s *service) jobError(job jobModel.Job, err error, message string, canRetry bool) jobModel.Job {
	s.logger.Error(message, "error", err)

	job.Error = jobModel.JobError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Document could not be analyzed: " + err.Error(),
		Retry:   canRetry,
	}
	job.Status = jobModel.JobStatusError
	return job
}

func (s *service) executeExtractionStep(log *logger_i.Logger, job *jobModel.Job, doc docModel.Document) (docModel.PlainText, error) {
	*job = logOutput(*job, jobModel.TextExtraction, log)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("text_extraction", time.Since(start)) }()

	text, err := extract.Text(doc)
	if err != nil {
		return docModel.PlainText{}, err
	}
	if isBlank(text.Body) {
		return docModel.PlainText{}, ErrEmptyDocument
	}
	return text, nil
}

func (s *service) executeDetectionStep(ctx context.Context, log *logger_i.Logger, job *jobModel.Job, text string) string {
	*job = logOutput(*job, jobModel.LanguageDetection, log)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("language_detection", time.Since(start)) }()

	return s.detector.Detect(ctx, text)
}

func (s *service) executeStrategyStep(ctx context.Context, log *logger_i.Logger, job *jobModel.Job, text string) (docModel.AnalysisRecord, bool) {
	*job = logOutput(*job, jobModel.StrategyCall, log)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("strategy_analysis", time.Since(start)) }()

	if s.ai != nil {
		return s.ai.Analyze(ctx, text, job.JobPayload.TargetLanguage)
	}
	return strategy.FallbackAnalysis{}.Analyze(ctx, text, job.JobPayload.TargetLanguage)
}

func (s *service) executeEntityStep(ctx context.Context, log *logger_i.Logger, job *jobModel.Job, text string, usedAI bool) docModel.EntityBundle {
	*job = logOutput(*job, jobModel.EntityExtraction, log)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("entity_extraction", time.Since(start)) }()

	if usedAI && s.ai != nil {
		return s.ai.ExtractEntities(ctx, text, job.JobPayload.TargetLanguage)
	}
	return patterns.ExtractEntities(text)
}

func (s *service) executeTranslationStep(ctx context.Context, log *logger_i.Logger, job *jobModel.Job, text string, detected string, usedAI bool) string {
	target := job.JobPayload.TargetLanguage
	if !usedAI || s.ai == nil || target == "" || target == detected {
		return ""
	}

	*job = logOutput(*job, jobModel.Translation, log)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("translation", time.Since(start)) }()

	return s.ai.Translate(ctx, text, detected, target)
}
