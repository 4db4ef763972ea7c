package services

import (
	"context"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/research-api/internal/auth"
	"github.com/ahmetcoskunkizilkaya/research-api/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the users and
// researches tables migrated. One connection max, so every statement sees
// the same in-memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Research{}))
	return db
}

func newTestTokenService() *auth.TokenService {
	return auth.NewTokenService("test-secret", time.Hour)
}

// seedUser creates an active account with the given credentials.
func seedUser(t *testing.T, db *gorm.DB, email, password string) *models.User {
	t.Helper()

	svc := NewAuthService(db, newTestTokenService())
	user, err := svc.CreateUser(context.Background(), email, password, "")
	require.NoError(t, err)
	return user
}
