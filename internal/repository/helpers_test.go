package repository

import (
	"testing"

	"petshare/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Post{}, &models.Comment{}, &models.LikeFlag{})
	require.NoError(t, err)

	return db
}

func newTestPost(id, createdAt string) *models.Post {
	return &models.Post{
		ID:        id,
		PetName:   "Biscuit",
		PetImage:  "https://example.com/biscuit.jpg",
		OwnerName: "Sam",
		Caption:   "Sunday nap",
		Hashtags:  "#nap #corgi",
		CreatedAt: createdAt,
		Timestamp: "0s ago",
	}
}
