package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"shop-backend/internal/models"
	"shop-backend/internal/repo"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to connect to in-memory db")

	err = db.AutoMigrate(&models.User{}, &models.Credential{}, &models.Category{}, &models.Product{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func newTestRepo(t *testing.T) *repo.GormRepo {
	return repo.New(newTestDB(t))
}

func testCtx() context.Context {
	return context.Background()
}
