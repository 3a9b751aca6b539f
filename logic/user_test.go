package logic

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Mishana2007/podarok/dao"
	"github.com/Mishana2007/podarok/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Gift{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func TestRegisterIfAbsentIdempotent(t *testing.T) {
	db := newTestDB(t)
	userLogic := NewUserLogic(dao.NewUserDAO(db))

	first, err := userLogic.RegisterIfAbsent("42", "alice")
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	// Repeat registration returns the same row and keeps the first username.
	second, err := userLogic.RegisterIfAbsent("42", "renamed")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "alice", second.Username)
}

func TestRegisterIfAbsentDistinctUsers(t *testing.T) {
	db := newTestDB(t)
	userLogic := NewUserLogic(dao.NewUserDAO(db))

	alice, err := userLogic.RegisterIfAbsent("1", "alice")
	require.NoError(t, err)
	bob, err := userLogic.RegisterIfAbsent("2", "bob")
	require.NoError(t, err)

	assert.NotEqual(t, alice.ID, bob.ID)
}
