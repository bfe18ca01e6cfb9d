package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/tkonduri/LegalAPI/internal/adapter"
	"github.com/tkonduri/LegalAPI/internal/adapter/utils"
	"github.com/tkonduri/LegalAPI/internal/analysis/extract"
	"github.com/tkonduri/LegalAPI/internal/api"
	"github.com/tkonduri/LegalAPI/internal/config"
	"github.com/tkonduri/LegalAPI/internal/domain/docModel"
	"github.com/tkonduri/LegalAPI/internal/domain/jobModel"
	"github.com/tkonduri/LegalAPI/internal/report"
	"github.com/tkonduri/LegalAPI/pkg/logger_i"
)

var logRH *logger_i.Logger

type newJobData struct {
	id             string
	userId         string
	documentName   string
	documentPath   string
	inlineText     string
	format         docModel.DocFormat
	targetLanguage string
	traceId        string
}

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// AnalyzeUploadHandler godoc
// @Summary      Upload a document for analysis
// @Description  Receives a PDF, DOCX or TXT file via multipart/form-data, queues an analysis job, and returns a job ID to track status.
// @Tags         Analysis
// @Accept       multipart/form-data
// @Produce      json
// @Param        document         formData  file    true   "The PDF, DOCX or TXT file to analyze"
// @Param        document_name    formData  string  false  "The display name of the document (defaults to the uploaded filename)"
// @Param        target_language  formData  string  false  "ISO 639-1 target language code (defaults to en)"
// @Param        user_id          formData  string  false  "Requesting user identifier"
// @Success      202  {object}  api.InitJobResponse  "Job successfully created"
// @Failure      400  {object}  api.JobResponse      "Unsupported format, invalid language or bad multipart data"
// @Router       /analyze [post]
func AnalyzeUploadHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {

		targetDir, errString := getTargetDirectory()

		if errString != "" {
			logRH.Error("Couldn't get target directory :", "err", errString)
			WriteErrorResponse(w, http.StatusInternalServerError, "", errString)
			return
		}

		const maxUploadSize = 32 << 20 //32mb
		err := r.ParseMultipartForm(maxUploadSize)
		if err != nil {
			WriteErrorResponse(w, http.StatusBadRequest, "", "File too large or bad request")
			return
		}

		fileReader, fileMetadata, err := r.FormFile("document")
		if err != nil {
			WriteErrorResponse(w, http.StatusBadRequest, "", "Could not retrieve file")
			return
		}
		defer fileReader.Close()

		docName := r.FormValue("document_name")
		if docName == "" {
			docName = fileMetadata.Filename
		}

		//format is rejected before any bytes are extracted
		format := extract.FormatFromName(fileMetadata.Filename)
		if format == docModel.ERR {
			logRH.Warn("Unsupported document format", "filename", fileMetadata.Filename)
			WriteErrorResponse(w, http.StatusBadRequest, docName, "Unsupported document format: only pdf, docx and txt are accepted")
			return
		}

		targetLang, ok := resolveTargetLanguage(r.FormValue("target_language"))
		if !ok {
			WriteErrorResponse(w, http.StatusBadRequest, docName, "Unsupported target language")
			return
		}

		filename := fmt.Sprintf("%d-%s", time.Now().UnixNano(), fileMetadata.Filename)
		tempFilePath := filepath.Join(targetDir, filename)
		destinationFileWriter, err := os.Create(tempFilePath)
		if err != nil {
			WriteErrorResponse(w, http.StatusInternalServerError, docName, "Storage error")
			return
		}
		defer destinationFileWriter.Close()

		if _, err := io.Copy(destinationFileWriter, fileReader); err != nil {
			WriteErrorResponse(w, http.StatusInternalServerError, docName, "Write error")
			return
		}

		enqueueAnalysis(r, w, newJobData{
			userId:         resolveUserId(r.FormValue("user_id")),
			documentName:   docName,
			documentPath:   tempFilePath,
			format:         format,
			targetLanguage: targetLang,
		})
		return
	}
	logRH.Warn("Invalid Context by request ", r.RemoteAddr)
}

// AnalyzeTextHandler godoc
// @Summary      Analyze pasted text
// @Description  Accepts raw legal text in the request body and queues an analysis job for it.
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request  body      api.AnalyzeTextRequest  true  "Text to analyze plus optional name, language and user"
// @Success      202      {object}  api.InitJobResponse     "Job successfully created"
// @Failure      400      {object}  api.JobResponse         "Empty text or invalid language"
// @Router       /analyze/text [post]
func AnalyzeTextHandler(w http.ResponseWriter, request *http.Request) {
	if validateContext(request.Context()) {

		var requestData api.AnalyzeTextRequest
		defer func(Body io.ReadCloser) {
			err := Body.Close()
			if err != nil {
				logRH.Error("Couldn't close the Analyze handler reader :", err)
			}
		}(request.Body)
		if err := json.NewDecoder(request.Body).Decode(&requestData); err != nil || requestData.Text == "" {
			logRH.Warn("Bad Analyze Request: ", "error:", err)
			WriteErrorResponse(w, http.StatusBadRequest, "", "text is required")
			return
		}

		targetLang, ok := resolveTargetLanguage(requestData.TargetLanguage)
		if !ok {
			WriteErrorResponse(w, http.StatusBadRequest, requestData.DocumentName, "Unsupported target language")
			return
		}

		docName := requestData.DocumentName
		if docName == "" {
			docName = "pasted_text"
		}

		enqueueAnalysis(request, w, newJobData{
			userId:         resolveUserId(requestData.UserID),
			documentName:   docName,
			inlineText:     requestData.Text,
			format:         docModel.Plain,
			targetLanguage: targetLang,
		})
		return
	}
	logRH.Warn("Invalid Context by request ", request.RemoteAddr)
}

// GetStatusHandler godoc
// @Summary      Get job status
// @Description  Retrieves the current status of a specific analysis job using its ID. A completed job carries the full analysis output.
// @Tags         Job Status
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  api.JobResponse  "The current status of the job"
// @Failure      404  {object}  api.JobResponse  "Job not found (returns Error object within JobResponse)"
// @Router       /status/{id} [get]
func GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		idString := utils.GetChiURLParam(r, "id")
		result, isFound := validateId(idString, r.Context().Value(config.TRACE_ID_KEY).(string))

		logRH.Debug("Get Status Request:", "URL path", r.URL.Path)
		if !isFound {
			WriteErrorResponse(w, http.StatusNotFound, idString, "Job not found")
			return
		}

		writeJsonResponse(w, http.StatusOK, adapter.ToAPIResponse(result))
	}
}

// GetHistoryHandler godoc
// @Summary      List recent analyses for a user
// @Description  Returns up to the 20 most recent analysis history entries for the given user, newest first.
// @Tags         History
// @Produce      json
// @Param        userId  path      string  true  "User identifier"
// @Success      200     {object}  api.HistoryResponse
// @Failure      500     {object}  api.JobResponse  "History store unavailable"
// @Router       /history/{userId} [get]
func GetHistoryHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		userId := utils.GetChiURLParam(r, "userId")
		if userId == "" {
			WriteErrorResponse(w, http.StatusBadRequest, "", "userId is required")
			return
		}

		entries, err := ListHistory(userId, r.Context().Value(config.TRACE_ID_KEY).(string))
		if err != nil {
			logRH.Error("Failed to list history", "err", err)
			WriteErrorResponse(w, http.StatusInternalServerError, userId, "Could not load history")
			return
		}

		writeJsonResponse(w, http.StatusOK, api.HistoryResponse{UserId: userId, Entries: entries})
	}
}

// GetReportHandler godoc
// @Summary      Download a plain-text analysis report
// @Description  Renders the completed analysis of a job as a downloadable plain-text report.
// @Tags         Reports
// @Produce      plain
// @Param        id   path      string  true  "Job ID"
// @Success      200  {string}  string           "The report body"
// @Failure      404  {object}  api.JobResponse  "Job not found or not finished yet"
// @Router       /report/{id} [get]
func GetReportHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		idString := utils.GetChiURLParam(r, "id")
		result, isFound := validateId(idString, r.Context().Value(config.TRACE_ID_KEY).(string))
		if !isFound {
			WriteErrorResponse(w, http.StatusNotFound, idString, "Job not found")
			return
		}
		if result.Status != jobModel.JobStatusComplete || result.JobPayload.Output == nil {
			WriteErrorResponse(w, http.StatusNotFound, idString, "Report not ready")
			return
		}

		body := report.BuildTextReport(result.JobPayload.DocumentName, *result.JobPayload.Output, time.Now())

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "legal_analysis_"+idString+".txt"))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(body)); err != nil {
			logRH.Error("Error writing report response", "err", err)
		}
	}
}
