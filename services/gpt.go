package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"chatbox/config"
	"chatbox/dto"
	"chatbox/errors"
)

const (
	gptModel        = "gpt-3.5-turbo"
	gptMaxTokens    = 500
	gptTemperature  = 0.7
	maxHistoryTurns = 10

	defaultCompletionURL = "https://api.openai.com/v1/chat/completions"

	systemPrompt = "You are a friendly and helpful assistant. Keep your answers concise and conversational."
)

// GPTResponse mirrors the fields read from the completions payload.
type GPTResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type GPTMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

var gptClient = &http.Client{Timeout: 15 * time.Second}

func completionURL() string {
	return config.GetEnvDefault("OPENAI_API_URL", defaultCompletionURL)
}

// Complete sends the conversation to the completions endpoint and returns
// the reply text. The message list is one fixed system instruction, the
// last maxHistoryTurns prior turns, then the new user message.
func Complete(ctx context.Context, message string, history []dto.ChatTurn) (string, error) {
	apiKey := config.GetEnv("OPENAI_API_KEY")
	if apiKey == "" {
		return "", errors.NewAppError(errors.ErrCodeUpstream, "OPENAI_API_KEY is not set", nil)
	}

	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}

	messages := make([]GPTMessage, 0, len(history)+2)
	messages = append(messages, GPTMessage{Role: "system", Content: systemPrompt})
	for _, turn := range history {
		messages = append(messages, GPTMessage{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, GPTMessage{Role: "user", Content: message})

	requestBody, err := json.Marshal(map[string]interface{}{
		"model":       gptModel,
		"messages":    messages,
		"max_tokens":  gptMaxTokens,
		"temperature": gptTemperature,
	})
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeUpstream, "Could not encode completion request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, completionURL(), bytes.NewBuffer(requestBody))
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeUpstream, "Could not build completion request", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := gptClient.Do(req)
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeUpstream, "Completion request failed", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.NewAppError(errors.ErrCodeUpstream,
			fmt.Sprintf("Completion endpoint returned status %d", resp.StatusCode), nil)
	}

	var gptResp GPTResponse
	if err := json.Unmarshal(body, &gptResp); err != nil || len(gptResp.Choices) == 0 {
		return "", errors.NewAppError(errors.ErrCodeUpstream, "Completion response missing choices", err)
	}

	return strings.TrimSpace(gptResp.Choices[0].Message.Content), nil
}
