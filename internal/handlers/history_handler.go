package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type HistoryHandler struct {
	analysisRepo repositories.AnalysisRepository
}

// NewHistoryHandler accepts a nil repository when history is disabled.
func NewHistoryHandler(analysisRepo repositories.AnalysisRepository) *HistoryHandler {
	return &HistoryHandler{
		analysisRepo: analysisRepo,
	}
}

// HandleGetAnalysis handles GET /analyses/:id
func (h *HistoryHandler) HandleGetAnalysis(c *fiber.Ctx) error {
	if h.analysisRepo == nil {
		return historyDisabled(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	record, err := h.analysisRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrAnalysisNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Analysis not found",
			})
		}
		return err
	}

	return c.JSON(record)
}

// HandleListAnalyses handles GET /analyses
func (h *HistoryHandler) HandleListAnalyses(c *fiber.Ctx) error {
	if h.analysisRepo == nil {
		return historyDisabled(c)
	}

	limit := c.QueryInt("limit", defaultHistoryLimit)
	if limit <= 0 || limit > maxHistoryLimit {
		limit = defaultHistoryLimit
	}

	records, err := h.analysisRepo.FindRecent(limit)
	if err != nil {
		return err
	}
	if records == nil {
		records = []models.AnalysisRecord{}
	}

	return c.JSON(models.HistoryResponse{Analyses: records})
}

func historyDisabled(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": "Analysis history is disabled",
	})
}
