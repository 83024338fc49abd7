package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/psatpute/HOA-OPs-AI/logging"
)

const (
	openAIEndpoint = "https://api.openai.com/v1/chat/completions"
	chatModel      = "gpt-3.5-turbo"
	chatSystemPrompt = "You are a helpful assistant for an HOA (Homeowners Association) management system. " +
		"Help users with questions about HOA operations, financial management, project tracking, and document management."
)

// ErrAINotConfigured is returned when no API key is set.
var ErrAINotConfigured = errors.New("OpenAI API key is not configured")

type AIService struct {
	APIKey     string
	Endpoint   string
	HTTPClient *http.Client
	Breaker    *gobreaker.CircuitBreaker
}

func NewAIService(apiKey string, breaker *gobreaker.CircuitBreaker) *AIService {
	return &AIService{
		APIKey:   apiKey,
		Endpoint: openAIEndpoint,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		Breaker: breaker,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Chat sends the user message to the chat-completion API behind the circuit
// breaker. Quota and rate-limit responses surface as ErrUnavailable, other
// upstream failures as ErrUpstream.
func (s *AIService) Chat(ctx context.Context, message string) (string, error) {
	if s.APIKey == "" {
		return "", ErrAINotConfigured
	}

	result, err := s.Breaker.Execute(func() (interface{}, error) {
		return s.complete(ctx, message)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		logging.Logger.Warnf("AI chat circuit open, rejecting request")
		return "", fmt.Errorf("%w: too many recent failures", ErrUnavailable)
	}
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (s *AIService) complete(ctx context.Context, message string) (string, error) {
	payload := chatCompletionRequest{
		Model: chatModel,
		Messages: []chatMessage{
			{Role: "system", Content: chatSystemPrompt},
			{Role: "user", Content: message},
		},
		Temperature: 0.7,
		MaxTokens:   500,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	var decoded chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusTooManyRequests || strings.Contains(strings.ToLower(decoded.Error.Message), "quota") {
			return "", fmt.Errorf("%w: API quota limits reached", ErrUnavailable)
		}
		return "", fmt.Errorf("%w: %s", ErrUpstream, decoded.Error.Message)
	}

	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("%w: response contained no choices", ErrUpstream)
	}
	return decoded.Choices[0].Message.Content, nil
}
