package services

import (
	"context"

	"chatbox/dto"
	"chatbox/errors"
	"chatbox/models"
	"chatbox/services/logger"

	"gorm.io/gorm"
)

// FallbackReply is shown when the completion API cannot produce an answer.
const FallbackReply = "Sorry, I'm having trouble responding right now. Please try again in a moment."

type ChatService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewChatService(db *gorm.DB, log logger.Logger) *ChatService {
	return &ChatService{
		db:     db,
		logger: log,
	}
}

// HandleUserMessage runs one chat round-trip: completion, history write,
// reply. Upstream failures degrade to FallbackReply and a failed history
// write never aborts the response; both are logged instead. The returned
// string is always non-empty.
func (s *ChatService) HandleUserMessage(ctx context.Context, userID uint, message string, history []dto.ChatTurn) string {
	reply, err := Complete(ctx, message, history)
	if err != nil {
		s.logger.Error("completion request failed: %v", err)
		reply = FallbackReply
	}

	if err := s.SaveChatHistory(userID, message, reply); err != nil {
		s.logger.Error("failed to save chat history for user %d: %v", userID, err)
	}

	return reply
}

// SaveChatHistory appends one exchange with a server-assigned timestamp.
func (s *ChatService) SaveChatHistory(userID uint, message, response string) error {
	entry := models.ChatHistory{
		UserID:   userID,
		Message:  message,
		Response: response,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Could not save chat history", err)
	}
	return nil
}

// GetChatHistory returns a user's exchanges oldest first.
func (s *ChatService) GetChatHistory(userID uint) ([]models.ChatHistory, error) {
	var entries []models.ChatHistory
	if err := s.db.Where("user_id = ?", userID).Order("timestamp asc").Find(&entries).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not load chat history", err)
	}
	return entries, nil
}
