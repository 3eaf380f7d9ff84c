package validation

import (
	"fmt"

	"cortado/internal/models"
)

// Inclusive bounds for the numeric profile fields.
const (
	GrinderSettingMin = 1
	GrinderSettingMax = 16

	GrindAmountMin = 1.0
	GrindAmountMax = 100.0

	GrindAmountGramsMin = 0.0
	GrindAmountGramsMax = 25.0

	RatingMin = 1.0
	RatingMax = 5.0
)

// ProfileInput is the accepted shape for profile creation and partial update.
// Every field is a pointer so an absent field is distinguishable from a
// zero-valued one.
type ProfileInput struct {
	Brand            *string  `json:"brand"`
	Product          *string  `json:"product"`
	Roast            *string  `json:"roast"`
	GrinderSetting   *int     `json:"grinderSetting"`
	GrindAmount      *float64 `json:"grindAmount"`
	GrindAmountGrams *float64 `json:"grindAmountGrams"`
	Rating           *float64 `json:"rating"`
	AdvancedFeedback *bool    `json:"advancedFeedback"`
	Appearance       *string  `json:"appearance"`
	Aroma            *string  `json:"aroma"`
	Taste            *string  `json:"taste"`
	Body             *string  `json:"body"`
	Aftertaste       *string  `json:"aftertaste"`
	ExtractionTime   *string  `json:"extractionTime"`
}

// ValidateProfile checks every constraint of the input and reports all
// violations at once. In partial mode required fields may be absent, but any
// present field is held to the same range and option checks.
func ValidateProfile(in *ProfileInput, partial bool) error {
	errs := FieldErrors{}

	checkRequiredString(errs, "brand", in.Brand, partial)
	checkRequiredString(errs, "product", in.Product, partial)

	if in.Roast == nil {
		if !partial {
			errs["roast"] = "roast is required"
		}
	} else if !inSet(*in.Roast, models.RoastOptions) {
		errs["roast"] = "roast must be one of: " + optionList(models.RoastOptions)
	}

	if in.GrinderSetting != nil {
		if *in.GrinderSetting < GrinderSettingMin || *in.GrinderSetting > GrinderSettingMax {
			errs["grinderSetting"] = fmt.Sprintf("grinderSetting must be between %d and %d",
				GrinderSettingMin, GrinderSettingMax)
		}
	}

	if in.GrindAmount != nil {
		if *in.GrindAmount < GrindAmountMin || *in.GrindAmount > GrindAmountMax {
			errs["grindAmount"] = fmt.Sprintf("grindAmount must be between %g and %g",
				GrindAmountMin, GrindAmountMax)
		}
	}

	if in.GrindAmountGrams != nil {
		if *in.GrindAmountGrams < GrindAmountGramsMin || *in.GrindAmountGrams > GrindAmountGramsMax {
			errs["grindAmountGrams"] = fmt.Sprintf("grindAmountGrams must be between %g and %g",
				GrindAmountGramsMin, GrindAmountGramsMax)
		}
	}

	if in.Rating != nil {
		if *in.Rating < RatingMin || *in.Rating > RatingMax {
			errs["rating"] = fmt.Sprintf("rating must be between %g and %g", RatingMin, RatingMax)
		}
	}

	checkOption(errs, "appearance", in.Appearance, models.AppearanceOptions)
	checkOption(errs, "aroma", in.Aroma, models.AromaOptions)
	checkOption(errs, "taste", in.Taste, models.TasteOptions)
	checkOption(errs, "body", in.Body, models.BodyOptions)
	checkOption(errs, "aftertaste", in.Aftertaste, models.AftertasteOptions)
	checkOption(errs, "extractionTime", in.ExtractionTime, models.ExtractionTimeOptions)

	// The tasting block is gated by the advancedFeedback flag. On create the
	// flag must be enabled for any attribute to be set; on partial update the
	// flag may be omitted (the stored value governs), but an explicit false
	// alongside attribute values is contradictory.
	gated := in.AdvancedFeedback == nil || !*in.AdvancedFeedback
	if partial {
		gated = in.AdvancedFeedback != nil && !*in.AdvancedFeedback
	}
	if gated {
		tasting := map[string]*string{
			"appearance":     in.Appearance,
			"aroma":          in.Aroma,
			"taste":          in.Taste,
			"body":           in.Body,
			"aftertaste":     in.Aftertaste,
			"extractionTime": in.ExtractionTime,
		}
		for name, value := range tasting {
			if value != nil {
				errs[name] = name + " requires advancedFeedback to be enabled"
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func checkRequiredString(errs FieldErrors, name string, value *string, partial bool) {
	if value == nil {
		if !partial {
			errs[name] = name + " is required"
		}
		return
	}
	if *value == "" {
		errs[name] = name + " must not be empty"
	}
}

func checkOption(errs FieldErrors, name string, value *string, options []string) {
	if value == nil {
		return
	}
	if !inSet(*value, options) {
		errs[name] = name + " must be one of: " + optionList(options)
	}
}
