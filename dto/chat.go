package dto

// ChatTurn is one prior line of the conversation replayed to the
// completion API.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message string     `json:"message"`
	History []ChatTurn `json:"history"`
}

type ChatResponse struct {
	Response string `json:"response"`
}
