package repository

import (
	"context"

	"cortado/internal/cache"
	"cortado/internal/models"

	"gorm.io/gorm"
)

// SettingsRepository defines the interface for the global settings singleton.
type SettingsRepository interface {
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, settings *models.Settings) (*models.Settings, error)
}

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	var settings models.Settings
	err := cache.Aside(ctx, cache.SettingsKey(), &settings, cache.SettingsTTL, func() error {
		return r.db.WithContext(ctx).First(&settings).Error
	})
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Update replaces every mutable field of the singleton row; the id never
// changes.
func (r *settingsRepository) Update(ctx context.Context, settings *models.Settings) (*models.Settings, error) {
	var current models.Settings
	if err := r.db.WithContext(ctx).First(&current).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"grinder_setting_min": settings.GrinderSettingMin,
		"grinder_setting_max": settings.GrinderSettingMax,
		"dial_setting_min":    settings.DialSettingMin,
		"dial_setting_max":    settings.DialSettingMax,
		"grind_amount_min":    settings.GrindAmountMin,
		"grind_amount_max":    settings.GrindAmountMax,
	}
	if err := r.db.WithContext(ctx).Model(&current).Updates(updates).Error; err != nil {
		return nil, err
	}

	cache.InvalidateSettings(ctx)
	return &current, nil
}
