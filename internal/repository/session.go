package repository

import (
	"context"
	"time"

	"cortado/internal/cache"
	"cortado/internal/models"

	"gorm.io/gorm"
)

// SessionRepository defines the interface for the persisted session store.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteByUserID(ctx context.Context, userID uint) error
}

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *models.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

// GetByID resolves a session, serving hot lookups from the cache. An expired
// session is treated as not found and reaped.
func (r *sessionRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	var session models.Session
	err := cache.Aside(ctx, cache.SessionKey(id), &session, cache.SessionTTL, func() error {
		return r.db.WithContext(ctx).First(&session, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}

	if session.Expired(time.Now()) {
		_ = r.Delete(ctx, id)
		return nil, gorm.ErrRecordNotFound
	}
	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Delete(&models.Session{}, "id = ?", id).Error
	if err == nil {
		cache.InvalidateSession(ctx, id)
	}
	return err
}

// DeleteByUserID terminates every session the user holds. Cached entries are
// left to their short TTL; the DB row is the source of truth at expiry.
func (r *sessionRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	var sessions []models.Session
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&sessions).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Session{}).Error; err != nil {
		return err
	}
	for _, s := range sessions {
		cache.InvalidateSession(ctx, s.ID)
	}
	return nil
}
