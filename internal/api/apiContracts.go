package api

import (
	"time"

	"github.com/tkonduri/LegalAPI/internal/domain/docModel"
)

type JobExternalStatus string

const (
	JobStatusError JobExternalStatus = "Error"
)

type JobResponse struct {
	Id        string            `json:"id" example:"job_cz109"`
	Result    Result            `json:"result"`
	Error     *JobOutgoingError `json:"error,omitempty"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time,omitempty"`
}

type JobOutgoingError struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Job not found"`
	Retry   bool   `json:"can_retry" example:"false"`
}

type Result struct {
	Status   string                        `json:"status"`
	Analysis *docModel.OrchestrationOutput `json:"analysis,omitempty"`
}

type InitJobResponse struct {
	Id        string `json:"id"`
	StatusURL string `json:"status_url"`
}

type HistoryResponse struct {
	UserId  string                  `json:"user_id"`
	Entries []docModel.HistoryEntry `json:"entries"`
}

// requests---------------------

type AnalyzeTextRequest struct {
	Text           string `json:"text" validate:"required"`
	DocumentName   string `json:"document_name,omitempty"`
	TargetLanguage string `json:"target_language,omitempty"`
	UserID         string `json:"user_id,omitempty"`
}

type JobStatusRequest struct {
	JobId string `json:"job_id" validate:"required"`
}
