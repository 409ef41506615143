package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/metrics"
	"alfredoptarigan/resume-analyzer/internal/services"
)

const (
	msgNoFileSubmitted = "No resume file was submitted. Please try again."
	msgNoFileSelected  = "No resume file was selected. Please try again."
	msgNoJobText       = "No job description was provided. Please paste the job description."
	msgNoResumeText    = "Could not extract any text from the uploaded PDF. It might be an image-based or corrupted file."
	msgInternalError   = "A critical error happened on the server. Please try again later."
)

type AnalyzeHandler struct {
	uploadService   services.UploadService
	analyzerService services.AnalyzerService
	metrics         *metrics.Recorder
}

func NewAnalyzeHandler(
	uploadService services.UploadService,
	analyzerService services.AnalyzerService,
	recorder *metrics.Recorder,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		uploadService:   uploadService,
		analyzerService: analyzerService,
		metrics:         recorder,
	}
}

// HandleAnalyze handles POST /analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	file, err := c.FormFile("resume_pdf")
	if err != nil {
		return h.validationError(c, msgNoFileSubmitted)
	}

	if file.Filename == "" {
		return h.validationError(c, msgNoFileSelected)
	}

	jobDescription := c.FormValue("job_description")
	if strings.TrimSpace(jobDescription) == "" {
		return h.validationError(c, msgNoJobText)
	}
	companyName := c.FormValue("company_name")

	upload, err := h.uploadService.ReadFile(file)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoFile):
			return h.validationError(c, msgNoFileSelected)
		case errors.Is(err, services.ErrUnsupportedFileType),
			errors.Is(err, services.ErrFileTooLarge):
			return h.validationError(c, capitalize(err.Error()))
		default:
			return h.internalError(c, err)
		}
	}

	response, err := h.analyzerService.AnalyzeDocument(upload, jobDescription, companyName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnsupportedFileType):
			return h.validationError(c, capitalize(err.Error()))
		case errors.Is(err, services.ErrNoExtractableText):
			return h.validationError(c, msgNoResumeText)
		default:
			return h.internalError(c, err)
		}
	}

	return c.JSON(response)
}

func (h *AnalyzeHandler) validationError(c *fiber.Ctx, message string) error {
	h.metrics.ObserveFailure(metrics.OutcomeValidationError)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}

func (h *AnalyzeHandler) internalError(c *fiber.Ctx, err error) error {
	log.Printf("❌ Analysis failed: %v\n", err)
	h.metrics.ObserveFailure(metrics.OutcomeInternalError)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   msgInternalError,
		"details": err.Error(),
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
