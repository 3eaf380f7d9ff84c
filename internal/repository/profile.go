package repository

import (
	"context"

	"cortado/internal/cache"
	"cortado/internal/models"

	"gorm.io/gorm"
)

// Defaults applied to omitted numeric fields on create. This follows the
// default-filling schema revision rather than the explicit-null one; partial
// updates never default-fill.
const (
	DefaultGrinderSetting   = 8
	DefaultGrindAmount      = 50.0
	DefaultGrindAmountGrams = 18.0
)

// ProfileRepository defines the interface for profile data operations
type ProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByID(ctx context.Context, id uint) (*models.Profile, error)
	ListByUserID(ctx context.Context, userID uint) ([]*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
	Delete(ctx context.Context, id uint) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	if profile.GrinderSetting == nil {
		v := DefaultGrinderSetting
		profile.GrinderSetting = &v
	}
	if profile.GrindAmount == nil {
		v := DefaultGrindAmount
		profile.GrindAmount = &v
	}
	if profile.GrindAmountGrams == nil {
		v := DefaultGrindAmountGrams
		profile.GrindAmountGrams = &v
	}

	err := r.db.WithContext(ctx).Create(profile).Error
	if err == nil {
		cache.InvalidateProfiles(ctx, profile.UserID)
	}
	return err
}

func (r *profileRepository) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) ListByUserID(ctx context.Context, userID uint) ([]*models.Profile, error) {
	profiles := []*models.Profile{}
	err := cache.Aside(ctx, cache.ProfilesKey(userID), &profiles, cache.ProfilesTTL, func() error {
		return r.db.WithContext(ctx).
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&profiles).Error
	})
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return err
	}
	cache.InvalidateProfiles(ctx, profile.UserID)
	return nil
}

func (r *profileRepository) Delete(ctx context.Context, id uint) error {
	profile, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&models.Profile{}, id).Error; err != nil {
		return err
	}
	cache.InvalidateProfiles(ctx, profile.UserID)
	return nil
}
