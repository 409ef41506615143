package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/metrics"
	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type SuggestionHandler struct {
	suggestionService services.SuggestionService
	metrics           *metrics.Recorder
}

func NewSuggestionHandler(suggestionService services.SuggestionService, recorder *metrics.Recorder) *SuggestionHandler {
	return &SuggestionHandler{
		suggestionService: suggestionService,
		metrics:           recorder,
	}
}

// HandleSuggest handles POST /suggestions
func (h *SuggestionHandler) HandleSuggest(c *fiber.Ctx) error {
	var req models.SuggestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if strings.TrimSpace(req.ResumeText) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume_text is required",
		})
	}

	if strings.TrimSpace(req.JobDescription) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	suggestion, err := h.suggestionService.Suggest(c.UserContext(), req.Kind, req.ResumeText, req.JobDescription, req.CompanyName, req.Missing)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownSuggestion):
			h.metrics.ObserveSuggestion("unknown", "error")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "kind must be one of: improvements, cover_letter",
			})
		case errors.Is(err, services.ErrSuggestionsDisabled):
			h.metrics.ObserveSuggestion(req.Kind, "disabled")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "AI suggestions are not configured on this server",
			})
		default:
			h.metrics.ObserveSuggestion(req.Kind, "error")
			log.Printf("❌ Suggestion failed: %v\n", err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error":   "Failed to generate suggestion",
				"details": err.Error(),
			})
		}
	}

	h.metrics.ObserveSuggestion(req.Kind, "success")
	return c.JSON(models.SuggestionResponse{
		Kind:       req.Kind,
		Suggestion: suggestion,
	})
}
