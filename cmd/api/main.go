// @title           Legal Document Analysis API
// @version         1.0
// @description     This API handles asynchronous legal document analysis: text extraction, language detection, clause/entity extraction and AI-assisted review.
// @termsOfService  http://swagger.io/terms/

// @contact.name    me lol
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/tkonduri/LegalAPI/internal/analysis"
	"github.com/tkonduri/LegalAPI/internal/analysis/llm"
	"github.com/tkonduri/LegalAPI/internal/analysis/llm/gemini"
	"github.com/tkonduri/LegalAPI/internal/analysis/llm/openai"
	"github.com/tkonduri/LegalAPI/internal/config"
	"github.com/tkonduri/LegalAPI/internal/data/store"
	jobmodel "github.com/tkonduri/LegalAPI/internal/domain/jobModel"
	"github.com/tkonduri/LegalAPI/internal/handlers"
	"github.com/tkonduri/LegalAPI/internal/job"
	"github.com/tkonduri/LegalAPI/internal/server"
	"github.com/tkonduri/LegalAPI/internal/worker"
	"github.com/tkonduri/LegalAPI/pkg/logger_i"
)

var (
	listenAddr        string
	requestCount      int64
	stopWorkerChannel chan bool
	workerWaitGroup   sync.WaitGroup
)

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	//init buffered job channel
	jobChannel := make(chan jobmodel.Job, config.BufferLimit)
	dispatcherChannel := make(chan bool, 1)
	stopWorkerChannel = make(chan bool, 1)

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//init job service, job store and history store
	serviceConfig := job.ServiceConfig{
		JobChannel:        jobChannel,
		RequestCount:      requestCount,
		DispatcherChannel: dispatcherChannel,
	}
	logger.Info("Starting job service")

	redisJobStore := store.GetRedisJobStore(serviceContext)
	if redisJobStore != nil {
		serviceConfig.JobStore = redisJobStore
	} else if config.FALLBACK_REDIS_TO_INTERNALSTORE {
		logger.Error("Redis job store is offline, using in-memory store")
		serviceConfig.JobStore = store.InitInMemoryJobStore()
	} else {
		logger.Error("Redis job store is offline. Shutting down.")
		return
	}

	historyStore, err := store.NewSQLiteHistoryStore(config.HistoryDBDir)
	if err != nil {
		//analysis still runs without history, only /history and persistence degrade
		logger.Error("History store failed to initialize", "error", err)
	} else {
		serviceConfig.HistoryStore = historyStore
		defer historyStore.Close()
	}

	service := job.InitJobService(serviceConfig)

	reasoner := initReasoner(serviceContext, logger)
	analysisService := analysis.NewService(reasoner)

	handlers.InitJobHandler(service)

	//init worker pool
	worker.InitServices(service, analysisService)
	worker.InitWorkerPool(stopWorkerChannel, &workerWaitGroup)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		WorkerStop:       stopWorkerChannel,
		Group:            &workerWaitGroup,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}

// initReasoner picks the configured AI provider. Returning nil is valid: the
// pipeline then runs its deterministic fallback for every AI step.
func initReasoner(ctx context.Context, logger *logger_i.Logger) llm.Provider {
	switch config.LLMProvider {
	case "openai":
		if config.OpenAIAPIKey == "" {
			logger.Error("LLM_PROVIDER=openai but OPENAI_API_KEY is empty, running fallback-only")
			return nil
		}
		return openai.GetOpenAIClient(config.OpenAIAPIKey, config.OpenAIModelName)
	default:
		if config.GoogleAPIKey == "" {
			logger.Error("GOOGLE_API_KEY is empty, running fallback-only")
			return nil
		}
		return gemini.GetGeminiClient(ctx, config.GeminiModelName, config.GoogleAPIKey)
	}
}
