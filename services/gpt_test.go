package services_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"chatbox/dto"
	"chatbox/errors"
	"chatbox/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type completionRequest struct {
	Model       string                `json:"model"`
	Messages    []services.GPTMessage `json:"messages"`
	MaxTokens   int                   `json:"max_tokens"`
	Temperature float64               `json:"temperature"`
}

// newCompletionServer fakes the completions endpoint and captures the last
// request body it saw.
func newCompletionServer(t *testing.T, reply string) (*httptest.Server, *completionRequest) {
	t.Helper()

	captured := &completionRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		fmt.Fprintf(w, `{"choices":[{"message":{"content":%q}}]}`, reply)
	}))
	t.Cleanup(srv.Close)

	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_API_URL", srv.URL)
	return srv, captured
}

func TestCompleteSuccess(t *testing.T) {
	_, captured := newCompletionServer(t, "Hello there!")

	history := []dto.ChatTurn{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	}
	reply, err := services.Complete(context.Background(), "how are you?", history)
	require.NoError(t, err)
	assert.Equal(t, "Hello there!", reply)

	require.Len(t, captured.Messages, 4)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "user", captured.Messages[3].Role)
	assert.Equal(t, "how are you?", captured.Messages[3].Content)
	assert.Equal(t, 500, captured.MaxTokens)
	assert.NotEmpty(t, captured.Model)
}

func TestCompleteTrimsHistoryToLastTen(t *testing.T) {
	_, captured := newCompletionServer(t, "ok")

	history := make([]dto.ChatTurn, 15)
	for i := range history {
		history[i] = dto.ChatTurn{Role: "user", Content: fmt.Sprintf("turn-%d", i)}
	}

	_, err := services.Complete(context.Background(), "latest", history)
	require.NoError(t, err)

	// one system prompt + ten trailing turns + the new message
	require.Len(t, captured.Messages, 12)
	assert.Equal(t, "turn-5", captured.Messages[1].Content)
	assert.Equal(t, "turn-14", captured.Messages[10].Content)
	assert.Equal(t, "latest", captured.Messages[11].Content)
}

func TestCompleteUpstreamStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_API_URL", srv.URL)

	_, err := services.Complete(context.Background(), "hi", nil)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeUpstream))
}

func TestCompleteMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[]}`)
	}))
	t.Cleanup(srv.Close)
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_API_URL", srv.URL)

	_, err := services.Complete(context.Background(), "hi", nil)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeUpstream))
}

func TestCompleteMissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := services.Complete(context.Background(), "hi", nil)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeUpstream))
}
