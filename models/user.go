package models

import (
	"time"
)

// User is a Telegram user registered through the bot's /start command.
type User struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	TelegramID string    `gorm:"uniqueIndex;not null" json:"telegram_id"` // Telegram chat id, opaque to us
	Username   string    `json:"username"`
	CreatedAt  time.Time `json:"created_at"`
}
