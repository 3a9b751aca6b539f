package models

import "time"

// Gift records a single daily gift issued to a user. ReceivedOn holds the
// calendar day (YYYY-MM-DD) and shares a unique index with UserID so the
// database rejects a second gift for the same user on the same day.
type Gift struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint64    `gorm:"not null;uniqueIndex:idx_gifts_user_day" json:"user_id"`
	User       User      `json:"-"`
	GiftType   string    `gorm:"not null" json:"gift_type"`
	ReceivedOn string    `gorm:"not null;uniqueIndex:idx_gifts_user_day" json:"received_on"`
	ReceivedAt time.Time `gorm:"autoCreateTime" json:"received_at"`
}
