package jobModel

import (
	"context"
	"time"

	"github.com/tkonduri/LegalAPI/internal/domain/docModel"
)

type JobStatus string
type InternalStatus string

const (
	JobStatusQueued   JobStatus = "QUEUED"
	JobStatusRunning  JobStatus = "RUNNING"
	JobStatusComplete JobStatus = "COMPLETE"
	JobStatusError    JobStatus = "Error"

	AnalysisInit      InternalStatus = "Init"
	TextExtraction    InternalStatus = "TextExtraction"
	LanguageDetection InternalStatus = "LanguageDetection"
	StrategyCall      InternalStatus = "Strategy"
	EntityExtraction  InternalStatus = "EntityExtraction"
	Translation       InternalStatus = "Translation"
	HistoryWrite      InternalStatus = "HistoryWrite"
	Error             InternalStatus = "Error"

	Complete InternalStatus = "Complete"
)

type Job struct {
	Id          string         `json:"id"`
	TraceId     string         `json:"trace_id"`
	JobPayload  JobPayload     `json:"job_payload"`
	Error       JobError       `json:"error,omitempty"`
	CreatedTime time.Time      `json:"created_time"`
	EndTime     time.Time      `json:"end_time,omitempty"`
	Status      JobStatus      `json:"status"`
	CurrentStep InternalStatus `json:"current_step"`
}

type JobError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Retry   bool   `json:"retry"`
}

type JobPayload struct {
	UserId         string             `json:"user_id"`
	DocumentName   string             `json:"document_name"`
	DocumentPath   string             `json:"document_path,omitempty"`
	InlineText     string             `json:"inline_text,omitempty"`
	Format         docModel.DocFormat `json:"format"`
	TargetLanguage string             `json:"target_language"`

	Output *docModel.OrchestrationOutput `json:"output,omitempty"`
}

type JobStore interface {
	GetJob(ctx context.Context, jobId string) (Job, bool)
	SaveJob(ctx context.Context, job Job) error
	DeleteJob(ctx context.Context, jobID string)
}

// HistoryStore persists one immutable entry per completed analysis. A failed
// save never invalidates the computed output.
type HistoryStore interface {
	SaveEntry(ctx context.Context, entry docModel.HistoryEntry) error
	ListRecent(ctx context.Context, userId string, limit int) ([]docModel.HistoryEntry, error)
}
