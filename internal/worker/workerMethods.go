package worker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/tkonduri/LegalAPI/internal/adapter/utils"
	"github.com/tkonduri/LegalAPI/internal/config"
	"github.com/tkonduri/LegalAPI/internal/domain/docModel"
	jobmodel "github.com/tkonduri/LegalAPI/internal/domain/jobModel"
	"github.com/tkonduri/LegalAPI/internal/metrics"
)

func executeJob(job jobmodel.Job) {
	start := time.Now()
	defer func() {
		metrics.CaptureJobMetrics(string(job.Status), time.Since(start))
	}()
	ctxTrace := context.WithValue(context.Background(), config.TRACE_ID_KEY, job.TraceId)
	ctx, cancel := context.WithTimeout(ctxTrace, config.JobExecutionTimeout)
	defer cancel()
	logger.With("trace Id ", job.TraceId)
	logger.Debug("Processing job:", "job Id:", job.Id)

	saveJobState(ctx, job, jobmodel.JobStatusRunning)

	job = _analysisService.ProcessAnalysis(ctx, job)

	if job.Status != jobmodel.JobStatusError {
		// A failed history write never invalidates the computed output.
		job.CurrentStep = jobmodel.HistoryWrite
		if err := saveHistory(ctx, job); err != nil {
			logger.Error("Failed to save analysis history", "err", err)
		}
		job.CurrentStep = jobmodel.Complete
	}

	job.EndTime = time.Now()
	finalStatus := jobmodel.JobStatusComplete
	if job.Status == jobmodel.JobStatusError {
		finalStatus = jobmodel.JobStatusError
	}
	saveJobState(ctx, job, finalStatus)
}

// retireIdleWorker decrements the worker count only while it stays above the
// minimum. The swap keeps two workers timing out together from shrinking the
// pool below it.
func retireIdleWorker() bool {
	min := atomic.LoadInt64(&minWorkerCount)
	for {
		count := atomic.LoadInt64(&currentWorkerCount)
		if count <= min {
			return false
		}
		if atomic.CompareAndSwapInt64(&currentWorkerCount, count, count-1) {
			workerWaitGroup.Done()
			logger.Info("Removed worker ", "reason", "Idle worker timeout", "workerCount", count-1)
			metrics.DecrementActiveWorkerCount()
			return true
		}
	}
}

func removeWorker(reason string) {

	workerWaitGroup.Done()
	atomic.AddInt64(&currentWorkerCount, -1)
	logger.Info("Removed worker ", "reason", reason, "workerCount", currentWorkerCount)
	metrics.DecrementActiveWorkerCount()

}

func saveHistory(ctx context.Context, job jobmodel.Job) error {
	if _jobService.HistoryStore == nil || job.JobPayload.Output == nil {
		return nil
	}
	output := job.JobPayload.Output
	entry := docModel.HistoryEntry{
		Id:               utils.GetNewUUID(),
		UserId:           job.JobPayload.UserId,
		DocumentName:     job.JobPayload.DocumentName,
		AnalysisDate:     time.Now().UTC(),
		DocumentType:     output.Record.DocumentType,
		WordCount:        output.WordCount,
		OriginalLanguage: output.DetectedLanguage,
		TargetLanguage:   output.TargetLanguage,
		Summary:          output.Record.Summary,
	}
	return _jobService.HistoryStore.SaveEntry(ctx, entry)
}

func saveJobState(ctx context.Context, job jobmodel.Job, jobStatus jobmodel.JobStatus) {
	job.Status = jobStatus
	if err := _jobService.JobStore.SaveJob(ctx, job); err != nil {
		logger.Error("Failed to update status in Redis", "err", err)
	}
}
