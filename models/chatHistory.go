package models

import "time"

// ChatHistory records one message/response exchange for a user.
type ChatHistory struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	Message   string    `json:"message" gorm:"not null"`
	Response  string    `json:"response" gorm:"not null"`
	Timestamp time.Time `json:"timestamp" gorm:"column:timestamp;autoCreateTime"`
}

func (ChatHistory) TableName() string {
	return "chat_history"
}
