package controllers

import (
	"net/http"
	"strings"

	"chatbox/dto"
	"chatbox/response"
	"chatbox/services"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	chat *services.ChatService
}

func NewChatController(chat *services.ChatService) *ChatController {
	return &ChatController{chat: chat}
}

// ChatPage renders the chat UI bound to the session username.
func (cc *ChatController) ChatPage(c *gin.Context) {
	c.HTML(http.StatusOK, "chat.html", gin.H{
		"username": c.GetString("username"),
	})
}

// ChatAPI handles one chat round-trip. Empty messages are rejected before
// any upstream or database work happens.
func (cc *ChatController) ChatAPI(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		response.BadRequest(c, "message must not be empty")
		return
	}

	reply := cc.chat.HandleUserMessage(c.Request.Context(), c.GetUint("userID"), req.Message, req.History)

	response.Success(c, dto.ChatResponse{Response: reply})
}
