package config

import (
	"log/slog"
	"os"
	"time"
)

const (
	IS_PROD                         = false
	LOG_LEVEL_PROD                  = slog.LevelInfo
	FALLBACK_REDIS_TO_INTERNALSTORE = true //if redis init fails, jobs fall back to an in-memory store
	TRACE_ID_KEY                    = "traceId"
	RATE_LIMIT_PER_SECOND           = 2
	BURST_RATE_LIMIT_PER_SECOND     = 5

	RequestsPerNewWorkerCount int64 = 10
	MaxWorkerCount            int64 = 10
	MinWorkerCount            int64 = 1
	IdleWorkerTimeout               = 1 * time.Minute

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 10 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//job requests buffer limit
	BufferLimit = 100

	//analysis pipeline
	JobExecutionTimeout = 120 * time.Second

	//language detection slices the document before prompting/guessing
	DetectPromptChars = 500
	DetectSampleChars = 1000
	DefaultLanguage   = "en"

	//clause context window around a trigger match
	ClauseWindowBefore = 50
	ClauseWindowAfter  = 100

	//a malformed AI analysis degrades to a summary-only record
	SummaryTruncateLimit = 1000

	//history listing cap, matches the dashboard page size
	HistoryListLimit = 20

	//llm
	GeminiModelName = "gemini-2.5-flash"
	OpenAIModelName = "gpt-4o-mini"

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	RedisJobStore = 0

	RedisJobStoreTTL = 24 * time.Hour
	RedisPassword    = ""
)

// Deployment values come from the environment, constants above are the dev
// defaults.
var (
	GoogleAPIKey = os.Getenv("GOOGLE_API_KEY")
	OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	LLMProvider  = os.Getenv("LLM_PROVIDER") //"gemini" (default) or "openai"
	HistoryDBDir = os.Getenv("HISTORY_DB_DIR")
	AuthToken    = os.Getenv("AUTH_TOKEN")

	//empty token means local dev, auth middleware lets everything through
	NoAuthBypass = AuthToken == ""
)
