package dao

import (
	"gorm.io/gorm"

	"github.com/Mishana2007/podarok/models"
)

// UserDAO handles user-related database operations
type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

// CreateUser creates a new user
func (d *UserDAO) CreateUser(telegramID, username string) (*models.User, error) {
	user := &models.User{TelegramID: telegramID, Username: username}
	if err := d.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByTelegramID retrieves a user by Telegram id
func (d *UserDAO) GetUserByTelegramID(telegramID string) (*models.User, error) {
	var user models.User
	if err := d.db.Where("telegram_id = ?", telegramID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID retrieves a user by internal id
func (d *UserDAO) GetUserByID(id uint64) (*models.User, error) {
	var user models.User
	if err := d.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
