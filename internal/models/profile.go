package models

import (
	"time"
)

// RoastOptions is the closed set of accepted roast levels.
var RoastOptions = []string{"Light", "Medium-Light", "Medium", "Medium-Dark", "Dark"}

// Closed option sets for the advanced tasting feedback block.
var (
	AppearanceOptions     = []string{"Pale", "Golden", "Reddish", "Dark"}
	AromaOptions          = []string{"Weak", "Balanced", "Intense"}
	TasteOptions          = []string{"Sour", "Balanced", "Bitter"}
	BodyOptions           = []string{"Light", "Medium", "Full"}
	AftertasteOptions     = []string{"Short", "Medium", "Lingering"}
	ExtractionTimeOptions = []string{"Under 20s", "20-30s", "Over 30s"}
)

// Profile is one recorded espresso brewing configuration and its optional
// tasting feedback. Numeric and tasting fields are pointers so an absent
// value is distinguishable from a zero value.
type Profile struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Brand            string    `gorm:"not null" json:"brand"`
	Product          string    `gorm:"not null" json:"product"`
	Roast            string    `gorm:"not null" json:"roast"`
	GrinderSetting   *int      `json:"grinderSetting"`
	GrindAmount      *float64  `json:"grindAmount"`
	GrindAmountGrams *float64  `json:"grindAmountGrams"`
	Rating           *float64  `json:"rating"`
	AdvancedFeedback bool      `json:"advancedFeedback"`
	Appearance       *string   `json:"appearance"`
	Aroma            *string   `json:"aroma"`
	Taste            *string   `json:"taste"`
	Body             *string   `json:"body"`
	Aftertaste       *string   `json:"aftertaste"`
	ExtractionTime   *string   `json:"extractionTime"`
	UserID           uint      `gorm:"not null;index" json:"userId"`
	User             User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CreatedAt        time.Time `json:"createdAt"`
}

// OwnerID returns the owning user's id.
func (p *Profile) OwnerID() uint { return p.UserID }
