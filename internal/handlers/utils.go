package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"github.com/tkonduri/LegalAPI/internal/adapter"
	"github.com/tkonduri/LegalAPI/internal/adapter/utils"
	"github.com/tkonduri/LegalAPI/internal/analysis/language"
	"github.com/tkonduri/LegalAPI/internal/config"
	"github.com/tkonduri/LegalAPI/internal/domain/jobModel"
)

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logRH.Error("Error encoding response: %v", err)
	}
}

func validateId(id string, traceId string) (result jobModel.Job, isFound bool) {
	if id == "" {
		logRH.Warn("Empty Job ID")
		return jobModel.Job{}, false
	}
	return GetJobStatus(id, traceId)
}

func validateContext(ctx context.Context) bool {
	logRH.With("traceId:", ctx.Value(config.TRACE_ID_KEY).(string))
	if ctx.Err() != nil {
		logRH.Warn("context error", ctx.Err())
		return false
	}

	select {
	case <-ctx.Done():
		logRH.Warn("context cancelled")
		return false
	default:
		return true

	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, id string, error string) {
	writeJsonResponse(w, httpCode, adapter.BadRequest(id, error, httpCode))
}

func getTargetDirectory() (string, string) {
	root, err := os.Getwd()
	if err != nil {
		return "", "Storage Error"
	}

	targetDir := filepath.Join(root, "temporary_data")
	if err := os.MkdirAll(targetDir, 0750); err != nil {
		return "", "Storage Error"
	}
	return targetDir, ""
}

// resolveTargetLanguage applies the default and rejects anything outside the
// supported set.
func resolveTargetLanguage(code string) (string, bool) {
	if code == "" {
		return config.DefaultLanguage, true
	}
	if !language.IsSupported(code) {
		return "", false
	}
	return code, true
}

func resolveUserId(userId string) string {
	if userId == "" {
		return "anonymous"
	}
	return userId
}

func enqueueAnalysis(request *http.Request, w http.ResponseWriter, data newJobData) {
	data.id = utils.GetNewUUID()
	data.traceId = request.Context().Value(config.TRACE_ID_KEY).(string)

	CreateNewJob(data)
	res := adapter.ToInitJobResponse(data.id)
	writeJsonResponse(w, http.StatusAccepted, res)
}
