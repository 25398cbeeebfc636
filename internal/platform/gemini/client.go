package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heyged/gedprep/internal/config"
	"github.com/heyged/gedprep/internal/generation"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// TextClient sends a prompt to the language model and returns the text of
// its first candidate. Implementations return errors from the generation
// failure taxonomy.
type TextClient interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GenAIClient is the TextClient backed by the Gemini generateContent API.
type GenAIClient struct {
	models  *genai.Models
	model   string
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewGenAIClient creates a Gemini client from the LLM configuration.
// Requests are throttled to cfg.RequestsPerMinute.
func NewGenAIClient(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GenAIClient, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.RequestsPerMinute <= 0 {
		return nil, fmt.Errorf("%w: requests per minute must be positive", generation.ErrInvalidConfig)
	}

	httpOptions := genai.HTTPOptions{BaseURL: cfg.BaseURL}
	if cfg.RequestTimeout > 0 {
		timeout := cfg.RequestTimeout
		httpOptions.Timeout = &timeout
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.GeminiAPIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: httpOptions,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	interval := time.Minute / time.Duration(cfg.RequestsPerMinute)

	return &GenAIClient{
		models:  client.Models,
		model:   cfg.ModelName,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		logger:  logger.With("component", "gemini_client", "model", cfg.ModelName),
	}, nil
}

// GenerateText implements TextClient.
func (c *GenAIClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", &generation.TransportError{Err: err}
	}

	c.logger.DebugContext(ctx, "Making Gemini API call", "prompt_length", len(prompt))

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", &generation.TransportError{
				StatusCode: apiErr.Code,
				Body:       apiErr.Message,
				Err:        err,
			}
		}
		return "", &generation.TransportError{Err: err}
	}

	return candidateText(resp)
}

// candidateText extracts the text parts of the first candidate.
func candidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrEmptyGeneration)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: %w: prompt blocked (%s)",
			generation.ErrEmptyGeneration, generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", fmt.Errorf("%w: no candidates", generation.ErrEmptyGeneration)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: %w", generation.ErrEmptyGeneration, generation.ErrContentBlocked)
	}

	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in candidate", generation.ErrEmptyGeneration)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}

	if strings.TrimSpace(sb.String()) == "" {
		return "", fmt.Errorf("%w: candidate has no text", generation.ErrEmptyGeneration)
	}

	return sb.String(), nil
}
