package models

// Settings is the single global record defining the accepted numeric ranges
// for grinder, dial and grind-amount inputs. Exactly one row exists.
type Settings struct {
	ID                uint    `gorm:"primaryKey" json:"id"`
	GrinderSettingMin int     `gorm:"not null" json:"grinderSettingMin"`
	GrinderSettingMax int     `gorm:"not null" json:"grinderSettingMax"`
	DialSettingMin    float64 `gorm:"not null" json:"dialSettingMin"`
	DialSettingMax    float64 `gorm:"not null" json:"dialSettingMax"`
	GrindAmountMin    float64 `gorm:"not null" json:"grindAmountMin"`
	GrindAmountMax    float64 `gorm:"not null" json:"grindAmountMax"`
}

// DefaultSettings seeds the singleton row on first startup.
var DefaultSettings = Settings{
	GrinderSettingMin: 1,
	GrinderSettingMax: 16,
	DialSettingMin:    1,
	DialSettingMax:    100,
	GrindAmountMin:    0,
	GrindAmountMax:    25,
}
