package logic

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Mishana2007/podarok/dao"
	"github.com/Mishana2007/podarok/models"
)

// UserLogic handles user registration
type UserLogic struct {
	userDAO *dao.UserDAO
}

func NewUserLogic(userDAO *dao.UserDAO) *UserLogic {
	return &UserLogic{userDAO: userDAO}
}

// RegisterIfAbsent returns the user registered under telegramID, creating it
// on first contact. Repeat calls never update the stored username. Two
// near-simultaneous registrations of the same id are resolved by the unique
// index on telegram_id: the loser re-reads the winner's row.
func (l *UserLogic) RegisterIfAbsent(telegramID, username string) (*models.User, error) {
	user, err := l.userDAO.GetUserByTelegramID(telegramID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user, err = l.userDAO.CreateUser(telegramID, username)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return l.userDAO.GetUserByTelegramID(telegramID)
		}
		return nil, err
	}
	return user, nil
}
