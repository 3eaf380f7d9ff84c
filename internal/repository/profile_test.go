package repository

import (
	"context"
	"testing"

	"cortado/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Settings{},
		&models.Blog{},
		&models.Session{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Password: "hash"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestProfileRepositoryCreateAppliesDefaults(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "defaults")

	profile := &models.Profile{
		Brand:   "Lavazza",
		Product: "Qualita Oro",
		Roast:   "Medium",
		UserID:  user.ID,
	}
	require.NoError(t, repo.Create(ctx, profile))

	require.NotNil(t, profile.GrinderSetting)
	assert.Equal(t, DefaultGrinderSetting, *profile.GrinderSetting)
	require.NotNil(t, profile.GrindAmount)
	assert.Equal(t, DefaultGrindAmount, *profile.GrindAmount)
	require.NotNil(t, profile.GrindAmountGrams)
	assert.Equal(t, DefaultGrindAmountGrams, *profile.GrindAmountGrams)
}

func TestProfileRepositoryCreateKeepsExplicitValues(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "explicit")

	grinder := 12
	profile := &models.Profile{
		Brand:          "Illy",
		Product:        "Classico",
		Roast:          "Dark",
		GrinderSetting: &grinder,
		UserID:         user.ID,
	}
	require.NoError(t, repo.Create(ctx, profile))

	stored, err := repo.GetByID(ctx, profile.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.GrinderSetting)
	assert.Equal(t, 12, *stored.GrinderSetting)
}

func TestProfileRepositoryListIsScopedToUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	for _, p := range []*models.Profile{
		{Brand: "Lavazza", Product: "Oro", Roast: "Medium", UserID: alice.ID},
		{Brand: "Kimbo", Product: "Armonico", Roast: "Dark", UserID: alice.ID},
		{Brand: "Illy", Product: "Classico", Roast: "Light", UserID: bob.ID},
	} {
		require.NoError(t, repo.Create(ctx, p))
	}

	aliceProfiles, err := repo.ListByUserID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, aliceProfiles, 2)
	for _, p := range aliceProfiles {
		assert.Equal(t, alice.ID, p.UserID)
	}

	bobProfiles, err := repo.ListByUserID(ctx, bob.ID)
	require.NoError(t, err)
	assert.Len(t, bobProfiles, 1)
}

func TestProfileRepositoryUpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "editor")

	profile := &models.Profile{Brand: "Lavazza", Product: "Oro", Roast: "Medium", UserID: user.ID}
	require.NoError(t, repo.Create(ctx, profile))

	rating := 4.5
	profile.Rating = &rating
	require.NoError(t, repo.Update(ctx, profile))

	stored, err := repo.GetByID(ctx, profile.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Rating)
	assert.Equal(t, 4.5, *stored.Rating)

	require.NoError(t, repo.Delete(ctx, profile.ID))

	_, err = repo.GetByID(ctx, profile.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Deleting a missing row surfaces not found.
	err = repo.Delete(ctx, profile.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
