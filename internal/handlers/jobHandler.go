package handlers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tkonduri/LegalAPI/internal/config"
	"github.com/tkonduri/LegalAPI/internal/domain/docModel"
	"github.com/tkonduri/LegalAPI/internal/domain/jobModel"
	"github.com/tkonduri/LegalAPI/internal/job"
	"github.com/tkonduri/LegalAPI/internal/metrics"
	"github.com/tkonduri/LegalAPI/pkg/logger_i"
)

var (
	handlerInstance *JobHandler //private singleton
	once            sync.Once
	logJH           *logger_i.Logger
)

type JobHandler struct {
	service *job.Service
}

func InitJobHandler(jobService *job.Service) {
	once.Do(func() {
		handlerInstance = &JobHandler{service: jobService}

		logJH = logger_i.NewLogger("JobHandler")
		logRH = logger_i.NewLogger("RequestHandler")
		logJH.Info("Starting job handler")
	})

}

func CreateNewJob(newJob newJobData) {
	logJH.With("traceId", newJob.traceId, "job id", newJob.id)
	logJH.Info("To create new job")
	handlerInstance.pushToJobChannel(newJob)
}

func GetJobStatus(id string, traceId string) (result jobModel.Job, isFound bool) {
	ctxC := context.WithValue(context.Background(), config.TRACE_ID_KEY, traceId)
	if handlerInstance != nil {
		return handlerInstance.service.JobStore.GetJob(ctxC, id)
	}
	return result, false
}

func ListHistory(userId string, traceId string) ([]docModel.HistoryEntry, error) {
	if handlerInstance == nil || handlerInstance.service.HistoryStore == nil {
		return nil, errors.New("history store unavailable")
	}
	ctxC := context.WithValue(context.Background(), config.TRACE_ID_KEY, traceId)
	return handlerInstance.service.HistoryStore.ListRecent(ctxC, userId, config.HistoryListLimit)
}

// private methods
func (h *JobHandler) pushToJobChannel(newJob newJobData) {

	_job := jobModel.Job{}
	_job.Id = newJob.id
	_job.CreatedTime = time.Now()
	_job.TraceId = newJob.traceId
	_job.Status = jobModel.JobStatusQueued
	_job.CurrentStep = jobModel.AnalysisInit

	_job.JobPayload = jobModel.JobPayload{
		UserId:         newJob.userId,
		DocumentName:   newJob.documentName,
		DocumentPath:   newJob.documentPath,
		InlineText:     newJob.inlineText,
		Format:         newJob.format,
		TargetLanguage: newJob.targetLanguage,
	}

	//metrics
	metrics.IncrementJobsInQueue()

	h.service.JobChannel <- _job //this is a blocking send to prevent the system from being overwhelmed
	logJH.Info("Created new job")

	//a new worker is added every N requests, and eagerly for binary formats:
	//pdf/docx extraction plus the reasoner round-trips make those jobs the
	//slow ones, the idle timeout shrinks the pool back afterwards
	isHeavyDocument := newJob.format == docModel.PDF || newJob.format == docModel.DOCX

	accurateCount := atomic.AddInt64(&h.service.RequestCount, 1) //after sending a request increment counter
	if accurateCount%config.RequestsPerNewWorkerCount == 0 || isHeavyDocument {
		metrics.StartDispatcherSignalCount() //metrics
		logJH.Debug("Worker count ", accurateCount)
		h.service.DispatcherChannel <- true
	}
}
