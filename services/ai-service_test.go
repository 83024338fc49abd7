package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAIService(endpoint string) *AIService {
	svc := NewAIService("test-key", gobreaker.NewCircuitBreaker(gobreaker.Settings{Name: "test"}))
	svc.Endpoint = endpoint
	return svc
}

func TestChatNotConfigured(t *testing.T) {
	svc := NewAIService("", gobreaker.NewCircuitBreaker(gobreaker.Settings{Name: "test"}))

	_, err := svc.Chat(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrAINotConfigured)
}

func TestChatSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Dues are billed monthly."}}]}`))
	}))
	defer server.Close()

	reply, err := newTestAIService(server.URL).Chat(context.Background(), "When are dues billed?")

	require.NoError(t, err)
	assert.Equal(t, "Dues are billed monthly.", reply)
}

func TestChatRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"Rate limit reached","type":"requests"}}`))
	}))
	defer server.Close()

	_, err := newTestAIService(server.URL).Chat(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestChatQuotaExceeded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"message":"You exceeded your current quota","type":"insufficient_quota"}}`))
	}))
	defer server.Close()

	_, err := newTestAIService(server.URL).Chat(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestChatUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"The server had an error","type":"server_error"}}`))
	}))
	defer server.Close()

	_, err := newTestAIService(server.URL).Chat(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestChatEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	_, err := newTestAIService(server.URL).Chat(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestChatCircuitOpens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"boom"}}`))
	}))
	defer server.Close()

	svc := NewAIService("test-key", gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "test",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 2
		},
	}))
	svc.Endpoint = server.URL

	for i := 0; i < 2; i++ {
		_, err := svc.Chat(context.Background(), "hello")
		assert.ErrorIs(t, err, ErrUpstream)
	}

	_, err := svc.Chat(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrUnavailable, "open circuit rejects without calling upstream")
}
