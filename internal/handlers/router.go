package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Routes groups the handlers mounted by SetupRoutes. Metrics may be nil.
type Routes struct {
	Analyze    *AnalyzeHandler
	Suggestion *SuggestionHandler
	History    *HistoryHandler
	Metrics    fiber.Handler
}

func SetupRoutes(app *fiber.App, r Routes) {
	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /analyze",
				"POST /api/v1/analyze",
				"POST /api/v1/suggestions",
				"GET /api/v1/analyses",
				"GET /api/v1/analyses/:id",
				"GET /metrics",
			},
		})
	})

	app.Post("/analyze", r.Analyze.HandleAnalyze)

	if r.Metrics != nil {
		app.Get("/metrics", r.Metrics)
	}

	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/analyze", r.Analyze.HandleAnalyze)
	api.Post("/suggestions", r.Suggestion.HandleSuggest)
	api.Get("/analyses", r.History.HandleListAnalyses)
	api.Get("/analyses/:id", r.History.HandleGetAnalysis)
}

// ErrorHandler renders errors returned by handlers and panics caught by the
// recover middleware.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	if code == fiber.StatusInternalServerError {
		return c.Status(code).JSON(fiber.Map{
			"error":   msgInternalError,
			"details": err.Error(),
		})
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
