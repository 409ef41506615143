package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSuggestionsDisabled = errors.New("AI suggestions are not configured")
	ErrUnknownSuggestion   = errors.New("unknown suggestion kind")
)

type SuggestionService interface {
	Suggest(ctx context.Context, kind, resumeText, jobDescription, companyName string, missing []string) (string, error)
}

type suggestionService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	maxRetries    int
}

// NewSuggestionService returns a service that fails with ErrSuggestionsDisabled
// when gemini is nil.
func NewSuggestionService(gemini GeminiService, maxRetries int) SuggestionService {
	return &suggestionService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

func (s *suggestionService) Suggest(ctx context.Context, kind, resumeText, jobDescription, companyName string, missing []string) (string, error) {
	prompt, ok := s.promptBuilder.BuildSuggestionPrompt(kind, resumeText, jobDescription, companyName, missing)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSuggestion, kind)
	}

	if s.gemini == nil {
		return "", ErrSuggestionsDisabled
	}

	temperature := float32(0.4)
	if kind == SuggestionCoverLetter {
		temperature = 0.7
	}

	text, err := s.gemini.GenerateTextWithRetry(ctx, prompt, temperature, s.maxRetries)
	if err != nil {
		return "", fmt.Errorf("failed to generate %s: %w", kind, err)
	}

	return strings.TrimSpace(text), nil
}
