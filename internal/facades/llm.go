package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sbilibin2017/gw-diet-planner/internal/logger"
)

// ErrUpstream is returned when a collaborator is unreachable or answers with garbage.
var ErrUpstream = errors.New("upstream service error")

// Completion is the text produced by the model along with its token usage.
type Completion struct {
	Content      string
	Model        string
	InputTokens  int
	OutputTokens int
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

// LLMFacade talks to an OpenAI compatible chat completions endpoint.
type LLMFacade struct {
	client     *http.Client
	baseURL    string
	apiKey     string
	model      string
	maxRetries uint64
}

type LLMOpt func(*LLMFacade)

func WithLLMMaxRetries(n uint64) LLMOpt {
	return func(f *LLMFacade) { f.maxRetries = n }
}

func NewLLMFacade(baseURL, apiKey, model string, timeout time.Duration, opts ...LLMOpt) *LLMFacade {
	if baseURL == "" {
		baseURL = "https://api.openai.com"
	}
	f := &LLMFacade{
		client:     &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		maxRetries: 2,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Complete sends one system and one user message and asks for a JSON object back.
// Transport failures, 429 and 5xx answers are retried with exponential backoff.
func (f *LLMFacade) Complete(ctx context.Context, system, user string) (*Completion, error) {
	payload, err := json.Marshal(chatRequest{
		Model: f.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		ResponseFormat: map[string]string{"type": "json_object"},
	})
	if err != nil {
		return nil, err
	}

	var body []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		if f.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+f.apiKey)
		}

		resp, err := f.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("status %d", resp.StatusCode)
		}
		if resp.StatusCode/100 != 2 {
			return backoff.Permanent(fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), f.maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		logger.Log.Errorw("llm request failed", "model", f.model, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	var chat chatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		logger.Log.Errorw("llm response decode failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrUpstream)
	}

	model := chat.Model
	if model == "" {
		model = f.model
	}

	return &Completion{
		Content:      stripCodeFence(chat.Choices[0].Message.Content),
		Model:        model,
		InputTokens:  chat.Usage.PromptTokens,
		OutputTokens: chat.Usage.CompletionTokens,
	}, nil
}

// stripCodeFence drops a surrounding ``` block some models add despite instructions.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
