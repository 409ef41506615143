package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGemini struct {
	prompts      []string
	temperatures []float32
	reply        string
	err          error
}

func (f *fakeGemini) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.temperatures = append(f.temperatures, temperature)
	return f.reply, f.err
}

func (f *fakeGemini) GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxRetries int) (string, error) {
	return retryGenerate(ctx, maxRetries, 0, func() (string, error) {
		return f.GenerateText(ctx, prompt, temperature)
	})
}

func TestSuggestionService_Improvements(t *testing.T) {
	g := &fakeGemini{reply: "  - Mention Kubernetes\n"}
	s := NewSuggestionService(g, 3)

	got, err := s.Suggest(context.Background(), SuggestionImprovements, "python services", "python kubernetes", "Acme", []string{"kubernetes"})

	require.NoError(t, err)
	assert.Equal(t, "- Mention Kubernetes", got)
	require.Len(t, g.prompts, 1)
	assert.Contains(t, g.prompts[0], "kubernetes")
	assert.Equal(t, float32(0.4), g.temperatures[0])
}

func TestSuggestionService_CoverLetter(t *testing.T) {
	g := &fakeGemini{reply: "Dear Acme"}
	s := NewSuggestionService(g, 1)

	_, err := s.Suggest(context.Background(), SuggestionCoverLetter, "resume", "jd", "Acme", nil)

	require.NoError(t, err)
	assert.Contains(t, g.prompts[0], "position at Acme")
	assert.Equal(t, float32(0.7), g.temperatures[0])
}

func TestSuggestionService_Errors(t *testing.T) {
	_, err := NewSuggestionService(&fakeGemini{}, 1).Suggest(context.Background(), "poem", "r", "j", "", nil)
	assert.ErrorIs(t, err, ErrUnknownSuggestion)

	_, err = NewSuggestionService(nil, 1).Suggest(context.Background(), SuggestionImprovements, "r", "j", "", nil)
	assert.ErrorIs(t, err, ErrSuggestionsDisabled)

	g := &fakeGemini{err: errors.New("quota")}
	_, err = NewSuggestionService(g, 3).Suggest(context.Background(), SuggestionImprovements, "r", "j", "", nil)
	assert.Error(t, err)
	assert.Len(t, g.prompts, 3)
}

func TestRetryGenerate(t *testing.T) {
	calls := 0
	got, err := retryGenerate(context.Background(), 3, 0, func() (string, error) {
		calls++
		if calls < 2 {
			return "", ErrEmptyResponse
		}
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 2, calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls = 0
	_, err = retryGenerate(ctx, 5, time.Hour, func() (string, error) {
		calls++
		return "", ErrEmptyResponse
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)

	calls = 0
	_, err = retryGenerate(context.Background(), 0, time.Hour, func() (string, error) {
		calls++
		return "", ErrEmptyResponse
	})
	assert.ErrorIs(t, err, ErrEmptyResponse)
	assert.Equal(t, 1, calls)
}

func TestRetryGenerate_WaitsBetweenAttempts(t *testing.T) {
	var stamps []time.Time
	start := time.Now()

	_, err := retryGenerate(context.Background(), 3, 20*time.Millisecond, func() (string, error) {
		stamps = append(stamps, time.Now())
		return "", ErrEmptyResponse
	})

	assert.ErrorIs(t, err, ErrEmptyResponse)
	require.Len(t, stamps, 3)
	assert.GreaterOrEqual(t, stamps[1].Sub(stamps[0]), 20*time.Millisecond)
	assert.GreaterOrEqual(t, stamps[2].Sub(stamps[1]), 40*time.Millisecond)
	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
}

func TestRetryGenerate_CancelDuringDelay(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	calls := 0
	start := time.Now()
	_, err := retryGenerate(ctx, 5, time.Hour, func() (string, error) {
		calls++
		return "", ErrEmptyResponse
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, calls)
	assert.Less(t, time.Since(start), time.Minute)
}
