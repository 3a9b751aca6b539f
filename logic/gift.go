package logic

import (
	"errors"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"github.com/Mishana2007/podarok/dao"
)

const dayLayout = "2006-01-02"

// DefaultGifts is the built-in gift catalog.
var DefaultGifts = []string{
	"Мышка Logitech G Pro",
	"Клавиатура Razer",
	"Наушники Sony",
	"Коврик для мыши",
}

var (
	// ErrUserNotFound means the gift was requested for an unregistered user.
	ErrUserNotFound = errors.New("user not found")
	// ErrAlreadyClaimed means the user already received a gift today. It is
	// a normal business outcome, not a failure.
	ErrAlreadyClaimed = errors.New("gift already received today")
)

// GiftLogic issues at most one random gift per user per calendar day.
type GiftLogic struct {
	userDAO *dao.UserDAO
	giftDAO *dao.GiftDAO
	catalog []string
	now     func() time.Time
}

func NewGiftLogic(userDAO *dao.UserDAO, giftDAO *dao.GiftDAO, catalog []string) *GiftLogic {
	if len(catalog) == 0 {
		catalog = DefaultGifts
	}
	return &GiftLogic{
		userDAO: userDAO,
		giftDAO: giftDAO,
		catalog: catalog,
		now:     time.Now,
	}
}

// Claim resolves the Telegram id to a registered user and issues today's
// gift. Returns ErrUserNotFound if the id was never registered.
func (l *GiftLogic) Claim(telegramID string) (string, error) {
	user, err := l.resolveUser(telegramID)
	if err != nil {
		return "", err
	}
	return l.IssueDaily(user)
}

func (l *GiftLogic) resolveUser(telegramID string) (uint64, error) {
	user, err := l.userDAO.GetUserByTelegramID(telegramID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return user.ID, nil
}

// IssueDaily issues a random gift from the catalog to the user, at most once
// per calendar day. The day-uniqueness is enforced by the database index on
// (user_id, received_on); the pre-check only short-circuits the common
// repeat-claim case, so two racing claims still produce exactly one gift.
func (l *GiftLogic) IssueDaily(userID uint64) (string, error) {
	if _, err := l.userDAO.GetUserByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	today := l.now().Format(dayLayout)

	claimed, err := l.giftDAO.HasGiftOn(userID, today)
	if err != nil {
		return "", err
	}
	if claimed {
		return "", ErrAlreadyClaimed
	}

	gift := l.catalog[rand.Intn(len(l.catalog))]

	if _, err := l.giftDAO.CreateGift(userID, gift, today); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", ErrAlreadyClaimed
		}
		return "", err
	}
	return gift, nil
}
