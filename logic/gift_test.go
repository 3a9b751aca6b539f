package logic

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Mishana2007/podarok/dao"
)

type giftFixture struct {
	users *dao.UserDAO
	gifts *dao.GiftDAO
	logic *GiftLogic
}

func newGiftFixture(t *testing.T) *giftFixture {
	t.Helper()
	db := newTestDB(t)
	users := dao.NewUserDAO(db)
	gifts := dao.NewGiftDAO(db)
	return &giftFixture{
		users: users,
		gifts: gifts,
		logic: NewGiftLogic(users, gifts, nil),
	}
}

func TestIssueDailyUnknownUser(t *testing.T) {
	f := newGiftFixture(t)

	_, err := f.logic.IssueDaily(999)
	assert.ErrorIs(t, err, ErrUserNotFound)

	// No gift row may be created for an unregistered user.
	count, err := f.gifts.CountGiftsOn(999, time.Now().Format(dayLayout))
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestClaimUnknownTelegramID(t *testing.T) {
	f := newGiftFixture(t)

	_, err := f.logic.Claim("does-not-exist")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestClaimOncePerDay(t *testing.T) {
	f := newGiftFixture(t)

	_, err := f.users.CreateUser("42", "alice")
	require.NoError(t, err)

	gift, err := f.logic.Claim("42")
	require.NoError(t, err)
	assert.Contains(t, DefaultGifts, gift)

	_, err = f.logic.Claim("42")
	assert.ErrorIs(t, err, ErrAlreadyClaimed)
}

func TestIssueDailyResetsNextDay(t *testing.T) {
	f := newGiftFixture(t)

	user, err := f.users.CreateUser("42", "alice")
	require.NoError(t, err)

	day1 := time.Date(2026, 8, 28, 23, 59, 0, 0, time.Local)
	f.logic.now = func() time.Time { return day1 }

	_, err = f.logic.IssueDaily(user.ID)
	require.NoError(t, err)
	_, err = f.logic.IssueDaily(user.ID)
	require.ErrorIs(t, err, ErrAlreadyClaimed)

	// Two minutes later it is a new calendar day and the user is eligible
	// again; a repeated label is allowed.
	f.logic.now = func() time.Time { return day1.Add(2 * time.Minute) }

	gift, err := f.logic.IssueDaily(user.ID)
	require.NoError(t, err)
	assert.Contains(t, DefaultGifts, gift)

	count, err := f.gifts.CountGiftsOn(user.ID, "2026-08-29")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestIssueDailyCustomCatalog(t *testing.T) {
	f := newGiftFixture(t)
	catalog := []string{"Стикерпак", "Промокод"}
	f.logic = NewGiftLogic(f.users, f.gifts, catalog)

	user, err := f.users.CreateUser("7", "bob")
	require.NoError(t, err)

	gift, err := f.logic.IssueDaily(user.ID)
	require.NoError(t, err)
	assert.Contains(t, catalog, gift)
}

func TestIssueDailyConcurrentClaims(t *testing.T) {
	f := newGiftFixture(t)

	user, err := f.users.CreateUser("42", "alice")
	require.NoError(t, err)

	const claims = 8
	results := make([]error, claims)

	var wg sync.WaitGroup
	for i := 0; i < claims; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = f.logic.IssueDaily(user.ID)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, ErrAlreadyClaimed)
		}
	}
	assert.Equal(t, 1, successes)

	count, err := f.gifts.CountGiftsOn(user.ID, f.logic.now().Format(dayLayout))
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestDuplicateInsertMapsToAlreadyClaimed(t *testing.T) {
	f := newGiftFixture(t)

	user, err := f.users.CreateUser("42", "alice")
	require.NoError(t, err)

	today := f.logic.now().Format(dayLayout)

	// Simulate a racing claim that landed between the eligibility check and
	// the insert: the row exists but IssueDaily has not seen it yet.
	_, err = f.gifts.CreateGift(user.ID, DefaultGifts[0], today)
	require.NoError(t, err)
	_, err = f.gifts.CreateGift(user.ID, DefaultGifts[1], today)
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	_, err = f.logic.IssueDaily(user.ID)
	assert.ErrorIs(t, err, ErrAlreadyClaimed)
}
