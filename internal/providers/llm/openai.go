package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/quillhq/quill/internal/config"
	"github.com/quillhq/quill/internal/core"
	"github.com/quillhq/quill/pkg/retry"
)

// Sampling parameters every completion request carries. The frequency
// penalty discourages the looping phrases the legacy completion models are
// prone to.
const (
	topP             = 1.0
	frequencyPenalty = 1.2
	presencePenalty  = 0.0
)

// OpenAI is a completion client for the legacy /v1/completions API.
type OpenAI struct {
	baseProvider
	org     string
	retrier *retry.Retrier
}

func NewOpenAI(cfg *config.OpenAIConfig) *OpenAI {
	return &OpenAI{
		baseProvider: newBaseProvider(cfg.BaseURL, cfg.APIKey),
		org:          cfg.Org,
		retrier:      retry.NewDefaultRetrier(),
	}
}

func (o *OpenAI) headers() map[string]string {
	h := map[string]string{
		"Authorization": "Bearer " + o.apiKey,
	}
	if o.org != "" {
		h["OpenAI-Organization"] = o.org
	}
	return h
}

func (o *OpenAI) Complete(ctx context.Context, req core.CompletionRequest) (core.Completion, error) {
	payload := map[string]any{
		"model":             req.Model,
		"prompt":            req.Prompt,
		"temperature":       req.Temperature,
		"max_tokens":        req.MaxTokens,
		"top_p":             topP,
		"frequency_penalty": frequencyPenalty,
		"presence_penalty":  presencePenalty,
	}

	var completion core.Completion
	err := o.retrier.DoIf(ctx, func() error {
		resp, err := o.doRequest(ctx, http.MethodPost, "/v1/completions", payload, o.headers())
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		completion, err = parseCompletionResponse(resp)
		return err
	}, isTransient)

	if err != nil {
		return core.Completion{}, classifyAPIError(err)
	}
	return completion, nil
}

func parseCompletionResponse(resp *http.Response) (core.Completion, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return core.Completion{}, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return core.Completion{}, &statusError{status: resp.StatusCode, body: string(data)}
	}

	var result struct {
		ID      string `json:"id"`
		Choices []struct {
			Text         string `json:"text"`
			FinishReason string `json:"finish_reason"`
		} `json:"choices"`
		Usage struct {
			TotalTokens int `json:"total_tokens"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return core.Completion{}, fmt.Errorf("decode: %w", err)
	}
	if len(result.Choices) == 0 {
		return core.Completion{}, fmt.Errorf("empty choices: %s", string(data))
	}

	return core.Completion{
		ID:           result.ID,
		Text:         result.Choices[0].Text,
		FinishReason: result.Choices[0].FinishReason,
		TotalTokens:  result.Usage.TotalTokens,
	}, nil
}

func classifyAPIError(err error) error {
	var se *statusError
	if !errors.As(err, &se) {
		return fmt.Errorf("completion transport: %w", err)
	}

	switch se.status {
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", core.ErrRateLimited, se.body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", core.ErrInvalidModel, se.body)
	default:
		return fmt.Errorf("completion transport: %w", err)
	}
}
