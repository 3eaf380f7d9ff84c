package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func validInput() *ProfileInput {
	return &ProfileInput{
		Brand:            strPtr("Lavazza"),
		Product:          strPtr("Qualita Oro"),
		Roast:            strPtr("Medium"),
		GrinderSetting:   intPtr(8),
		GrindAmount:      floatPtr(50),
		GrindAmountGrams: floatPtr(18),
	}
}

func TestValidateProfileAccepts(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*ProfileInput)
	}{
		{"full valid input", func(in *ProfileInput) {}},
		{"boundary grinder setting", func(in *ProfileInput) { in.GrinderSetting = intPtr(16) }},
		{"boundary grams low", func(in *ProfileInput) { in.GrindAmountGrams = floatPtr(0) }},
		{"rating present", func(in *ProfileInput) { in.Rating = floatPtr(4.5) }},
		{"omitted optional numerics", func(in *ProfileInput) {
			in.GrinderSetting = nil
			in.GrindAmount = nil
			in.GrindAmountGrams = nil
		}},
		{"full tasting block", func(in *ProfileInput) {
			in.AdvancedFeedback = boolPtr(true)
			in.Appearance = strPtr("Golden")
			in.Aroma = strPtr("Intense")
			in.Taste = strPtr("Balanced")
			in.Body = strPtr("Full")
			in.Aftertaste = strPtr("Lingering")
			in.ExtractionTime = strPtr("20-30s")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.setup(in)
			assert.NoError(t, ValidateProfile(in, false))
		})
	}
}

func TestValidateProfileRejects(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*ProfileInput)
		field string
	}{
		{"missing brand", func(in *ProfileInput) { in.Brand = nil }, "brand"},
		{"empty brand", func(in *ProfileInput) { in.Brand = strPtr("") }, "brand"},
		{"missing product", func(in *ProfileInput) { in.Product = nil }, "product"},
		{"missing roast", func(in *ProfileInput) { in.Roast = nil }, "roast"},
		{"unknown roast", func(in *ProfileInput) { in.Roast = strPtr("Espresso") }, "roast"},
		{"grinder setting too high", func(in *ProfileInput) { in.GrinderSetting = intPtr(17) }, "grinderSetting"},
		{"grinder setting too low", func(in *ProfileInput) { in.GrinderSetting = intPtr(0) }, "grinderSetting"},
		{"grind amount too high", func(in *ProfileInput) { in.GrindAmount = floatPtr(101) }, "grindAmount"},
		{"grams negative", func(in *ProfileInput) { in.GrindAmountGrams = floatPtr(-1) }, "grindAmountGrams"},
		{"grams too high", func(in *ProfileInput) { in.GrindAmountGrams = floatPtr(26) }, "grindAmountGrams"},
		{"rating too low", func(in *ProfileInput) { in.Rating = floatPtr(0.5) }, "rating"},
		{"rating too high", func(in *ProfileInput) { in.Rating = floatPtr(5.5) }, "rating"},
		{"unknown appearance", func(in *ProfileInput) {
			in.AdvancedFeedback = boolPtr(true)
			in.Appearance = strPtr("Transparent")
		}, "appearance"},
		{"unknown extraction time", func(in *ProfileInput) {
			in.AdvancedFeedback = boolPtr(true)
			in.ExtractionTime = strPtr("1 minute")
		}, "extractionTime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.setup(in)

			err := ValidateProfile(in, false)
			require.Error(t, err)

			fieldErrs, ok := err.(FieldErrors)
			require.True(t, ok)
			assert.Contains(t, fieldErrs, tt.field)
		})
	}
}

func TestValidateProfileReportsAllViolations(t *testing.T) {
	in := &ProfileInput{
		Roast:          strPtr("Espresso"),
		GrinderSetting: intPtr(99),
		Rating:         floatPtr(0),
	}

	err := ValidateProfile(in, false)
	require.Error(t, err)

	fieldErrs, ok := err.(FieldErrors)
	require.True(t, ok)

	// Every failing field shows up at once, required and range alike.
	assert.Contains(t, fieldErrs, "brand")
	assert.Contains(t, fieldErrs, "product")
	assert.Contains(t, fieldErrs, "roast")
	assert.Contains(t, fieldErrs, "grinderSetting")
	assert.Contains(t, fieldErrs, "rating")
	assert.Len(t, fieldErrs, 5)
}

func TestValidateProfilePartial(t *testing.T) {
	t.Run("absent required fields allowed", func(t *testing.T) {
		in := &ProfileInput{Rating: floatPtr(4)}
		assert.NoError(t, ValidateProfile(in, true))
	})

	t.Run("empty input allowed", func(t *testing.T) {
		assert.NoError(t, ValidateProfile(&ProfileInput{}, true))
	})

	t.Run("present fields still checked", func(t *testing.T) {
		in := &ProfileInput{
			Brand:          strPtr(""),
			GrinderSetting: intPtr(17),
		}
		err := ValidateProfile(in, true)
		require.Error(t, err)

		fieldErrs, ok := err.(FieldErrors)
		require.True(t, ok)
		assert.Contains(t, fieldErrs, "brand")
		assert.Contains(t, fieldErrs, "grinderSetting")
	})
}

func TestValidateProfileTastingGate(t *testing.T) {
	t.Run("attributes without flag rejected on create", func(t *testing.T) {
		in := validInput()
		in.Taste = strPtr("Bitter")

		err := ValidateProfile(in, false)
		require.Error(t, err)

		fieldErrs, ok := err.(FieldErrors)
		require.True(t, ok)
		assert.Contains(t, fieldErrs, "taste")
	})

	t.Run("attributes with flag false rejected on create", func(t *testing.T) {
		in := validInput()
		in.AdvancedFeedback = boolPtr(false)
		in.Aroma = strPtr("Intense")

		err := ValidateProfile(in, false)
		require.Error(t, err)

		fieldErrs, ok := err.(FieldErrors)
		require.True(t, ok)
		assert.Contains(t, fieldErrs, "aroma")
	})

	t.Run("partial update may omit the flag", func(t *testing.T) {
		in := &ProfileInput{Taste: strPtr("Bitter")}
		assert.NoError(t, ValidateProfile(in, true))
	})

	t.Run("partial update with explicit false is contradictory", func(t *testing.T) {
		in := &ProfileInput{
			AdvancedFeedback: boolPtr(false),
			Taste:            strPtr("Bitter"),
		}
		err := ValidateProfile(in, true)
		require.Error(t, err)

		fieldErrs, ok := err.(FieldErrors)
		require.True(t, ok)
		assert.Contains(t, fieldErrs, "taste")
	})
}

func TestFieldErrorsMessage(t *testing.T) {
	err := FieldErrors{"b": "broken", "a": "absent"}
	// Keys are sorted so the message is stable.
	assert.Equal(t, "a: absent; b: broken", err.Error())
}
