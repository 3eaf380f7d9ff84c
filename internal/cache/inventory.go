package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	ProfilesKeyPrefix = "profiles:user:%d"
	SessionKeyPrefix  = "session:%s"
	SettingsKeyName   = "settings"
)

const (
	ProfilesTTL = 10 * time.Minute
	SessionTTL  = 5 * time.Minute
	SettingsTTL = 30 * time.Minute
)

func ProfilesKey(userID uint) string {
	return fmt.Sprintf(ProfilesKeyPrefix, userID)
}

func SessionKey(sessionID string) string {
	return fmt.Sprintf(SessionKeyPrefix, sessionID)
}

func SettingsKey() string {
	return SettingsKeyName
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateProfiles(ctx context.Context, userID uint) {
	Invalidate(ctx, ProfilesKey(userID))
}

func InvalidateSession(ctx context.Context, sessionID string) {
	Invalidate(ctx, SessionKey(sessionID))
}

func InvalidateSettings(ctx context.Context) {
	Invalidate(ctx, SettingsKey())
}
