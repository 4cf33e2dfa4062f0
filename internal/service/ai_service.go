package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"study_buddy_backend/internal/config"
	"study_buddy_backend/internal/model"
	"study_buddy_backend/internal/util"
	"study_buddy_backend/pkg/monitoring"
	"study_buddy_backend/pkg/tracing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// CompletionRequest 一次性的 chat completion 请求
type CompletionRequest struct {
	Kind        model.ContentType
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}

// Completer 文本生成服务
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

type AIService struct {
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (s *AIService) Configured() bool {
	return s.config.Configured()
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string          `json:"model"`
	Messages    []AIChatMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
	Temperature float64         `json:"temperature"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *AIService) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	ctx, span := tracing.Tracer.Start(ctx, "ai.complete", trace.WithAttributes(
		attribute.String("ai.content_type", string(req.Kind)),
		attribute.String("ai.model", s.config.Model),
		attribute.Int("ai.max_tokens", req.MaxTokens),
	))
	defer span.End()

	start := time.Now()
	text, err := s.complete(ctx, req)
	monitoring.ObserveGeneration(string(req.Kind), outcomeOf(err), time.Since(start))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	return text, nil
}

func (s *AIService) complete(ctx context.Context, req CompletionRequest) (string, error) {
	if !s.Configured() {
		return "", util.ErrProviderNotConfigured
	}

	reqBody := ChatCompletionRequest{
		Model: s.config.Model,
		Messages: []AIChatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := strings.TrimRight(s.config.BaseURL, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return "", err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("%w: %v", util.ErrDeadlineExceeded, err)
		}
		return "", fmt.Errorf("%w: %v", util.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("%w: %v", util.ErrDeadlineExceeded, err)
		}
		return "", fmt.Errorf("%w: %v", util.ErrUpstream, err)
	}

	var result ChatCompletionResponse
	decodeErr := json.Unmarshal(body, &result)

	if resp.StatusCode != http.StatusOK {
		msg := strings.TrimSpace(string(body))
		if decodeErr == nil && result.Error != nil && result.Error.Message != "" {
			msg = result.Error.Message
		}
		return "", fmt.Errorf("%w: AI API error (status %d): %s", util.ErrUpstream, resp.StatusCode, msg)
	}

	if decodeErr != nil {
		return "", fmt.Errorf("%w: decode completion: %v", util.ErrUpstream, decodeErr)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%w: AI returned no choices", util.ErrUpstream)
	}

	return result.Choices[0].Message.Content, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, util.ErrDeadlineExceeded):
		return "timeout"
	case errors.Is(err, util.ErrProviderNotConfigured):
		return "unconfigured"
	default:
		return "error"
	}
}
