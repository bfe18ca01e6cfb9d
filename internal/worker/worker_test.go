package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tkonduri/LegalAPI/internal/config"
	"github.com/tkonduri/LegalAPI/internal/domain/docModel"
	"github.com/tkonduri/LegalAPI/internal/domain/jobModel"
	"github.com/tkonduri/LegalAPI/internal/job"
	"github.com/tkonduri/LegalAPI/pkg/logger_i"
)

// MockAnalysisService to track if jobs are executed
type MockAnalysisService struct {
	ProcessedCount int32
	OnProcess      func(ctx context.Context, j jobModel.Job) jobModel.Job
}

func (m *MockAnalysisService) ProcessAnalysis(ctx context.Context, j jobModel.Job) jobModel.Job {
	atomic.AddInt32(&m.ProcessedCount, 1)
	if m.OnProcess != nil {
		return m.OnProcess(ctx, j)
	}
	return j
}

func (m *MockAnalysisService) Run(ctx context.Context, doc docModel.Document, targetLang string) (docModel.OrchestrationOutput, error) {
	return docModel.OrchestrationOutput{}, nil
}

type MockJobStore struct {
	OnSaveJob func(ctx context.Context, job jobModel.Job) error
}

func (m *MockJobStore) GetJob(ctx context.Context, jobId string) (jobModel.Job, bool) {
	panic("implement me")
}

func (m *MockJobStore) DeleteJob(ctx context.Context, jobID string) {
	panic("implement me")
}

func (m *MockJobStore) SaveJob(ctx context.Context, j jobModel.Job) error {
	if m.OnSaveJob != nil {
		return m.OnSaveJob(ctx, j)
	}
	return nil
}

// MockHistoryStore records saved entries
type MockHistoryStore struct {
	mu      sync.Mutex
	Entries []docModel.HistoryEntry
	OnSave  func(ctx context.Context, entry docModel.HistoryEntry) error
}

func (m *MockHistoryStore) SaveEntry(ctx context.Context, entry docModel.HistoryEntry) error {
	if m.OnSave != nil {
		return m.OnSave(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, entry)
	return nil
}

func (m *MockHistoryStore) ListRecent(ctx context.Context, userId string, limit int) ([]docModel.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Entries, nil
}

func TestWorkerPool_Flow(t *testing.T) {
	// 1. Setup
	jobSvc := &job.Service{
		JobChannel:        make(chan jobModel.Job, 10),
		DispatcherChannel: make(chan bool, 10),
		JobStore:          &MockJobStore{},
		HistoryStore:      &MockHistoryStore{},
	}
	mockAnalysis := &MockAnalysisService{}
	stopChan := make(chan bool)
	wg := &sync.WaitGroup{}

	InitServices(jobSvc, mockAnalysis)
	InitWorkerPool(stopChan, wg)

	// Reset global state for test
	atomic.StoreInt64(&currentWorkerCount, 0)

	t.Run("Dispatcher creates worker on signal", func(t *testing.T) {
		jobSvc.DispatcherChannel <- true

		time.Sleep(50 * time.Millisecond)

		count := atomic.LoadInt64(&currentWorkerCount)
		if count < 1 {
			t.Errorf("Expected at least 1 worker, got %d", count)
		}
	})

	t.Run("Worker processes a job", func(t *testing.T) {
		testJob := jobModel.Job{Id: "test-1"}
		jobSvc.JobChannel <- testJob

		time.Sleep(50 * time.Millisecond)

		processed := atomic.LoadInt32(&mockAnalysis.ProcessedCount)
		if processed != 1 {
			t.Errorf("Expected 1 job processed, got %d", processed)
		}
	})

	t.Run("Stop signal retires workers", func(t *testing.T) {
		close(stopChan)

		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			// Success
		case <-time.After(2 * time.Second):
			t.Error("Workers did not stop within timeout")
		}
	})
}

func TestWorker_SavesHistoryOnSuccess(t *testing.T) {
	history := &MockHistoryStore{}
	var savedStates []jobModel.JobStatus
	var mu sync.Mutex

	_jobService = &job.Service{
		JobStore: &MockJobStore{OnSaveJob: func(ctx context.Context, j jobModel.Job) error {
			mu.Lock()
			defer mu.Unlock()
			savedStates = append(savedStates, j.Status)
			return nil
		}},
		HistoryStore: history,
	}
	logger = logger_i.NewLogger("TestWorkerPool")
	_analysisService = &MockAnalysisService{
		OnProcess: func(ctx context.Context, j jobModel.Job) jobModel.Job {
			j.JobPayload.Output = &docModel.OrchestrationOutput{
				Record:           docModel.AnalysisRecord{DocumentType: "Legal Document", Summary: "done"},
				DetectedLanguage: "en",
				TargetLanguage:   "en",
				WordCount:        12,
			}
			j.CurrentStep = jobModel.Complete
			return j
		},
	}

	executeJob(jobModel.Job{
		Id:      "hist-job",
		TraceId: "hist-trace",
		JobPayload: jobModel.JobPayload{
			UserId:       "user-9",
			DocumentName: "contract.txt",
		},
	})

	if len(history.Entries) != 1 {
		t.Fatalf("Expected 1 history entry, got %d", len(history.Entries))
	}
	entry := history.Entries[0]
	if entry.UserId != "user-9" || entry.WordCount != 12 || entry.Id == "" {
		t.Errorf("Unexpected history entry: %+v", entry)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(savedStates) != 2 || savedStates[0] != jobModel.JobStatusRunning || savedStates[1] != jobModel.JobStatusComplete {
		t.Errorf("Unexpected job state sequence: %v", savedStates)
	}
}

func TestWorker_HistoryFailureDoesNotFailJob(t *testing.T) {
	var finalStatus jobModel.JobStatus

	_jobService = &job.Service{
		JobStore: &MockJobStore{OnSaveJob: func(ctx context.Context, j jobModel.Job) error {
			finalStatus = j.Status
			return nil
		}},
		HistoryStore: &MockHistoryStore{OnSave: func(ctx context.Context, entry docModel.HistoryEntry) error {
			return context.DeadlineExceeded
		}},
	}
	logger = logger_i.NewLogger("TestWorkerPool")
	_analysisService = &MockAnalysisService{
		OnProcess: func(ctx context.Context, j jobModel.Job) jobModel.Job {
			j.JobPayload.Output = &docModel.OrchestrationOutput{WordCount: 1}
			return j
		},
	}

	executeJob(jobModel.Job{Id: "hist-fail-job"})

	if finalStatus != jobModel.JobStatusComplete {
		t.Errorf("History failure must not fail the job, final status %v", finalStatus)
	}
}

func TestWorker_ErrorStatusPreserved(t *testing.T) {
	var finalStatus jobModel.JobStatus

	_jobService = &job.Service{
		JobStore: &MockJobStore{OnSaveJob: func(ctx context.Context, j jobModel.Job) error {
			finalStatus = j.Status
			return nil
		}},
		HistoryStore: &MockHistoryStore{},
	}
	logger = logger_i.NewLogger("TestWorkerPool")
	_analysisService = &MockAnalysisService{
		OnProcess: func(ctx context.Context, j jobModel.Job) jobModel.Job {
			j.Status = jobModel.JobStatusError
			return j
		},
	}

	executeJob(jobModel.Job{Id: "err-job"})

	if finalStatus != jobModel.JobStatusError {
		t.Errorf("Expected error status preserved, got %v", finalStatus)
	}
}

func TestWorker_IdleTimeoutShrinksPoolToMinimum(t *testing.T) {
	// Temporarily override config/globals for test
	atomic.StoreInt64(&currentWorkerCount, 0)
	atomic.StoreInt64(&minWorkerCount, 1)
	logger = logger_i.NewLogger("TestWorkerPool")
	jobSvc := &job.Service{
		JobChannel: make(chan jobModel.Job),
	}
	InitServices(jobSvc, &MockAnalysisService{})

	wg := &sync.WaitGroup{}
	stopChan := make(chan bool)
	workerWaitGroup = wg
	stopWorkerChannel = stopChan
	t.Cleanup(func() { close(stopChan) })

	// Spawn 2 workers manually; both go idle together
	createWorker()
	createWorker()
	time.Sleep(config.IdleWorkerTimeout)

	time.Sleep(100 * time.Millisecond)
	count := atomic.LoadInt64(&currentWorkerCount)
	if count != 1 {
		t.Errorf("Assertion Failed: Pool should have shrunk to the minimum of 1, but count is %d", count)
	}
}
