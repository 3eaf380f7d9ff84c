package validation

// SettingsInput is the accepted shape for a settings update. Updates are a
// full-record replacement, so every field is required.
type SettingsInput struct {
	GrinderSettingMin *int     `json:"grinderSettingMin"`
	GrinderSettingMax *int     `json:"grinderSettingMax"`
	DialSettingMin    *float64 `json:"dialSettingMin"`
	DialSettingMax    *float64 `json:"dialSettingMax"`
	GrindAmountMin    *float64 `json:"grindAmountMin"`
	GrindAmountMax    *float64 `json:"grindAmountMax"`
}

// ValidateSettings requires every range field and checks each (min, max)
// pair for ordering.
func ValidateSettings(in *SettingsInput) error {
	errs := FieldErrors{}

	if in.GrinderSettingMin == nil {
		errs["grinderSettingMin"] = "grinderSettingMin is required"
	}
	if in.GrinderSettingMax == nil {
		errs["grinderSettingMax"] = "grinderSettingMax is required"
	}
	if in.DialSettingMin == nil {
		errs["dialSettingMin"] = "dialSettingMin is required"
	}
	if in.DialSettingMax == nil {
		errs["dialSettingMax"] = "dialSettingMax is required"
	}
	if in.GrindAmountMin == nil {
		errs["grindAmountMin"] = "grindAmountMin is required"
	}
	if in.GrindAmountMax == nil {
		errs["grindAmountMax"] = "grindAmountMax is required"
	}

	if in.GrinderSettingMin != nil && in.GrinderSettingMax != nil &&
		*in.GrinderSettingMin > *in.GrinderSettingMax {
		errs["grinderSettingMin"] = "grinderSettingMin must not exceed grinderSettingMax"
	}
	if in.DialSettingMin != nil && in.DialSettingMax != nil &&
		*in.DialSettingMin > *in.DialSettingMax {
		errs["dialSettingMin"] = "dialSettingMin must not exceed dialSettingMax"
	}
	if in.GrindAmountMin != nil && in.GrindAmountMax != nil &&
		*in.GrindAmountMin > *in.GrindAmountMax {
		errs["grindAmountMin"] = "grindAmountMin must not exceed grindAmountMax"
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
