package analysis_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tkonduri/LegalAPI/internal/analysis"
	"github.com/tkonduri/LegalAPI/internal/config"
	"github.com/tkonduri/LegalAPI/internal/domain/docModel"
	"github.com/tkonduri/LegalAPI/internal/domain/jobModel"
)

const sampleContract = `This Agreement is made between John Smith and TechCorp Inc.
Either party may terminate this agreement with 30 days written notice.
Payment terms: $120,000 due by 12/31/2025. All proprietary information remains confidential.`

const aiAnalysisJSON = `{
	"document_type": "Service Agreement",
	"parties": ["John Smith", "TechCorp Inc."],
	"dates": ["12/31/2025"],
	"financial_terms": ["$120,000"],
	"clauses": {"termination": ["30 days written notice"], "confidentiality": [], "indemnity": [], "payment": [], "dispute_resolution": []},
	"risks": ["Short notice period"],
	"obligations": ["Pay $120,000 by 12/31/2025"],
	"jurisdiction": "California",
	"summary": "A service agreement between two parties."
}`

const aiEntityJSON = `{"PERSONS": ["John Smith"], "ORGANIZATIONS": ["TechCorp Inc."], "DATES": ["12/31/2025"], "MONEY": ["$120,000"], "LOCATIONS": ["California"]}`

// routeByPrompt dispatches the mock on the prompt's trailing instruction the
// way the real pipeline sequences its reasoner calls.
func routeByPrompt(ctx context.Context, prompt string) (string, error) {
	switch {
	case strings.Contains(prompt, "ISO 639-1"):
		return "en", nil
	case strings.Contains(prompt, "Analysis (JSON format):"):
		return aiAnalysisJSON, nil
	case strings.Contains(prompt, "Entities (JSON):"):
		return aiEntityJSON, nil
	case strings.Contains(prompt, "Translation:"):
		return "Este Acuerdo se celebra entre las partes.", nil
	}
	return "", errors.New("unexpected prompt")
}

func TestProcessAnalysis_Scenarios(t *testing.T) {
	tests := []struct {
		name             string
		reasoner         *MockReasoner
		payload          jobModel.JobPayload
		expectedStatus   jobModel.JobStatus
		expectedStep     jobModel.InternalStatus
		expectedEngine   string
		expectTranslated bool
	}{
		{
			name:     "Success_Fallback_Flow",
			reasoner: nil,
			payload: jobModel.JobPayload{
				DocumentName:   "contract.txt",
				InlineText:     sampleContract,
				Format:         docModel.Plain,
				TargetLanguage: "en",
			},
			expectedStatus: jobModel.JobStatusQueued,
			expectedStep:   jobModel.Complete,
			expectedEngine: "fallback",
		},
		{
			name:     "Success_AI_Flow",
			reasoner: &MockReasoner{OnGenerate: routeByPrompt},
			payload: jobModel.JobPayload{
				DocumentName:   "contract.txt",
				InlineText:     sampleContract,
				Format:         docModel.Plain,
				TargetLanguage: "en",
			},
			expectedStatus: jobModel.JobStatusQueued,
			expectedStep:   jobModel.Complete,
			expectedEngine: "ai",
		},
		{
			name:     "Success_AI_Flow_With_Translation",
			reasoner: &MockReasoner{OnGenerate: routeByPrompt},
			payload: jobModel.JobPayload{
				DocumentName:   "contract.txt",
				InlineText:     sampleContract,
				Format:         docModel.Plain,
				TargetLanguage: "es",
			},
			expectedStatus:   jobModel.JobStatusQueued,
			expectedStep:     jobModel.Complete,
			expectedEngine:   "ai",
			expectTranslated: true,
		},
		{
			name: "AI_Failure_Degrades_To_Fallback",
			reasoner: &MockReasoner{OnGenerate: func(ctx context.Context, prompt string) (string, error) {
				return "", errors.New("quota exceeded")
			}},
			payload: jobModel.JobPayload{
				DocumentName:   "contract.txt",
				InlineText:     sampleContract,
				Format:         docModel.Plain,
				TargetLanguage: "en",
			},
			expectedStatus: jobModel.JobStatusQueued,
			expectedStep:   jobModel.Complete,
			expectedEngine: "fallback",
		},
		{
			name:     "Failure_Unsupported_Format",
			reasoner: nil,
			payload: jobModel.JobPayload{
				DocumentName:   "contract.xlsx",
				Format:         docModel.ERR,
				TargetLanguage: "en",
			},
			expectedStatus: jobModel.JobStatusError,
		},
		{
			name:     "Failure_Whitespace_Only_Document",
			reasoner: nil,
			payload: jobModel.JobPayload{
				DocumentName:   "empty.txt",
				InlineText:     "   \n\t ",
				Format:         docModel.Plain,
				TargetLanguage: "en",
			},
			expectedStatus: jobModel.JobStatusError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s analysis.Service
			if tt.reasoner != nil {
				s = analysis.NewService(tt.reasoner)
			} else {
				s = analysis.NewService(nil)
			}

			ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
			job := jobModel.Job{
				Id:         "test-job",
				Status:     jobModel.JobStatusQueued,
				JobPayload: tt.payload,
			}

			result := s.ProcessAnalysis(ctx, job)

			if result.Status != tt.expectedStatus {
				t.Fatalf("Status got %v, want %v (error: %+v)", result.Status, tt.expectedStatus, result.Error)
			}

			if tt.expectedStatus == jobModel.JobStatusError {
				if result.Error.Message == "" {
					t.Error("expected an error message on failed job")
				}
				return
			}

			if result.CurrentStep != tt.expectedStep {
				t.Errorf("Step got %v, want %v", result.CurrentStep, tt.expectedStep)
			}

			out := result.JobPayload.Output
			if out == nil {
				t.Fatal("expected output on completed job")
			}
			if out.Engine != tt.expectedEngine {
				t.Errorf("Engine got %s, want %s", out.Engine, tt.expectedEngine)
			}
			if out.DetectedLanguage != "en" {
				t.Errorf("DetectedLanguage got %s, want en", out.DetectedLanguage)
			}
			if out.WordCount == 0 || out.CharacterCount == 0 {
				t.Errorf("expected non-zero counts, got words=%d chars=%d", out.WordCount, out.CharacterCount)
			}
			if tt.expectTranslated && out.TranslatedText == "" {
				t.Error("expected translated text for differing target language")
			}
			if !tt.expectTranslated && out.TranslatedText != "" {
				t.Errorf("unexpected translated text %q", out.TranslatedText)
			}

			for _, c := range docModel.ClauseCategories {
				if _, ok := out.Record.Clauses[c]; !ok {
					t.Errorf("clause category %s missing from record", c)
				}
			}
		})
	}
}

func TestRun_ReturnsOutputWithoutQueue(t *testing.T) {
	s := analysis.NewService(nil)

	out, err := s.Run(context.Background(), docModel.Document{
		Name:       "contract.txt",
		InlineText: sampleContract,
		Format:     docModel.Plain,
	}, "en")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	found := false
	for _, p := range out.Record.Parties {
		if p == "TechCorp Inc." {
			found = true
		}
	}
	if !found {
		t.Errorf("expected TechCorp Inc. in parties, got %v", out.Record.Parties)
	}
}

func TestRun_UnsupportedFormatSurfacesError(t *testing.T) {
	s := analysis.NewService(nil)

	_, err := s.Run(context.Background(), docModel.Document{
		Name:   "sheet.xlsx",
		Format: docModel.ERR,
	}, "en")
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
