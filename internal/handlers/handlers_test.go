package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-analyzer/internal/metrics"
	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
	"alfredoptarigan/resume-analyzer/internal/textanalysis"
)

type memoryAnalysisRepo struct {
	records []models.AnalysisRecord
	err     error
}

func (m *memoryAnalysisRepo) Create(record *models.AnalysisRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, *record)
	return nil
}

func (m *memoryAnalysisRepo) FindByID(id uuid.UUID) (*models.AnalysisRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.records {
		if m.records[i].ID == id {
			return &m.records[i], nil
		}
	}
	return nil, repositories.ErrAnalysisNotFound
}

func (m *memoryAnalysisRepo) FindRecent(limit int) ([]models.AnalysisRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	if limit > len(m.records) {
		limit = len(m.records)
	}
	return m.records[:limit], nil
}

type stubGemini struct {
	text    string
	err     error
	prompts []string
}

func (s *stubGemini) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.text, s.err
}

func (s *stubGemini) GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxRetries int) (string, error) {
	return s.GenerateText(ctx, prompt, temperature)
}

type testServer struct {
	app      *fiber.App
	recorder *metrics.Recorder
}

type serverOptions struct {
	repo        repositories.AnalysisRepository
	gemini      services.GeminiService
	analyzer    services.AnalyzerService
	maxFileSize int64
	bodyLimit   int
}

func newTestServer(opts serverOptions) *testServer {
	recorder := metrics.NewRecorder()

	analyzerService := opts.analyzer
	if analyzerService == nil {
		analyzerService = services.NewAnalyzerService(
			textanalysis.NewAnalyzer(textanalysis.DefaultStopWords()),
			services.NewDocumentParserService(services.NewPDFParserService()),
			opts.repo,
			recorder,
		)
	}

	app := fiber.New(fiber.Config{
		BodyLimit:    opts.bodyLimit,
		ErrorHandler: ErrorHandler,
	})
	app.Use(recover.New())

	SetupRoutes(app, Routes{
		Analyze:    NewAnalyzeHandler(services.NewUploadService(opts.maxFileSize), analyzerService, recorder),
		Suggestion: NewSuggestionHandler(services.NewSuggestionService(opts.gemini, 1), recorder),
		History:    NewHistoryHandler(opts.repo),
		Metrics:    adaptor.HTTPHandler(recorder.Handler()),
	})

	return &testServer{app: app, recorder: recorder}
}

func (s *testServer) do(t *testing.T, req *http.Request) (int, map[string]any) {
	t.Helper()

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body), "body: %s", raw)
	return resp.StatusCode, body
}

type filePart struct {
	filename string
	data     []byte
}

func analyzeRequest(t *testing.T, path string, fields map[string]string, file *filePart) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		part, err := w.CreateFormFile("resume_pdf", file.filename)
		require.NoError(t, err)
		_, err = part.Write(file.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func jsonRequest(t *testing.T, method, path string, payload any) *http.Request {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

var errBoom = errors.New("boom")

func stringSlice(v any) []string {
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.(string))
	}
	return out
}

func readAll(t *testing.T, r io.Reader) string {
	t.Helper()
	raw, err := io.ReadAll(r)
	require.NoError(t, err)
	return strings.TrimSpace(string(raw))
}
