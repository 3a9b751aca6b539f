package dao

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Mishana2007/podarok/models"
)

// GiftDAO handles gift-related database operations
type GiftDAO struct {
	db *gorm.DB
}

func NewGiftDAO(db *gorm.DB) *GiftDAO {
	return &GiftDAO{db: db}
}

// CreateGift records a gift issued to a user on a given day. The caller
// supplies the day so it matches the eligibility check exactly; the unique
// index on (user_id, received_on) makes a second insert for the same day
// fail with gorm.ErrDuplicatedKey.
func (d *GiftDAO) CreateGift(userID uint64, giftType, day string) (*models.Gift, error) {
	gift := &models.Gift{UserID: userID, GiftType: giftType, ReceivedOn: day}
	if err := d.db.Create(gift).Error; err != nil {
		return nil, err
	}
	return gift, nil
}

// HasGiftOn reports whether the user already received a gift on the given day.
func (d *GiftDAO) HasGiftOn(userID uint64, day string) (bool, error) {
	var gift models.Gift
	err := d.db.Where("user_id = ? AND received_on = ?", userID, day).First(&gift).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CountGiftsOn counts the gifts a user received on the given day.
func (d *GiftDAO) CountGiftsOn(userID uint64, day string) (int64, error) {
	var count int64
	err := d.db.Model(&models.Gift{}).
		Where("user_id = ? AND received_on = ?", userID, day).
		Count(&count).Error
	return count, err
}
