package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSettingsInput() *SettingsInput {
	return &SettingsInput{
		GrinderSettingMin: intPtr(1),
		GrinderSettingMax: intPtr(16),
		DialSettingMin:    floatPtr(1),
		DialSettingMax:    floatPtr(100),
		GrindAmountMin:    floatPtr(0),
		GrindAmountMax:    floatPtr(25),
	}
}

func TestValidateSettings(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		assert.NoError(t, ValidateSettings(validSettingsInput()))
	})

	t.Run("every field required", func(t *testing.T) {
		err := ValidateSettings(&SettingsInput{})
		require.Error(t, err)

		fieldErrs, ok := err.(FieldErrors)
		require.True(t, ok)
		assert.Len(t, fieldErrs, 6)
	})

	t.Run("single missing field", func(t *testing.T) {
		in := validSettingsInput()
		in.GrindAmountMax = nil

		err := ValidateSettings(in)
		require.Error(t, err)

		fieldErrs, ok := err.(FieldErrors)
		require.True(t, ok)
		assert.Contains(t, fieldErrs, "grindAmountMax")
		assert.Len(t, fieldErrs, 1)
	})

	t.Run("min above max", func(t *testing.T) {
		in := validSettingsInput()
		in.GrinderSettingMin = intPtr(17)

		err := ValidateSettings(in)
		require.Error(t, err)

		fieldErrs, ok := err.(FieldErrors)
		require.True(t, ok)
		assert.Contains(t, fieldErrs, "grinderSettingMin")
	})
}

func TestValidateBlog(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		in := &BlogInput{Title: strPtr("First crack"), Content: strPtr("Notes on roasting.")}
		assert.NoError(t, ValidateBlog(in, false))
	})

	t.Run("missing fields", func(t *testing.T) {
		err := ValidateBlog(&BlogInput{}, false)
		require.Error(t, err)

		fieldErrs, ok := err.(FieldErrors)
		require.True(t, ok)
		assert.Contains(t, fieldErrs, "title")
		assert.Contains(t, fieldErrs, "content")
	})

	t.Run("partial allows absent fields", func(t *testing.T) {
		assert.NoError(t, ValidateBlog(&BlogInput{}, true))
	})

	t.Run("partial still rejects empty present field", func(t *testing.T) {
		err := ValidateBlog(&BlogInput{Title: strPtr("")}, true)
		require.Error(t, err)
	})
}
