package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mongotypes/pkg/validator"
)

func failing(field, msg string) validator.Rule {
	return validator.Rule{
		Check: func() bool { return false },
		Error: validator.ValidationError{Field: field, Message: msg, TranslationKey: "test." + field},
	}
}

func passing() validator.Rule {
	return validator.Rule{Check: func() bool { return true }}
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	t.Run("error string", func(t *testing.T) {
		assert.Equal(t, "validation failed", validator.ValidationErrors{}.Error())

		errs := validator.ValidationErrors{
			{Field: "owner", Message: "must be a valid ObjectID"},
			{Field: "car", Message: "must be a document"},
		}
		assert.Equal(t, "validation failed: owner: must be a valid ObjectID; car: must be a document", errs.Error())
	})

	t.Run("field helpers", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.True(t, errs.IsEmpty())

		errs.Add(validator.ValidationError{Field: "owner", Message: "first"})
		errs.Add(validator.ValidationError{Field: "car", Message: "other"})
		errs.Add(validator.ValidationError{Field: "owner", Message: "second"})

		assert.False(t, errs.IsEmpty())
		assert.True(t, errs.Has("owner"))
		assert.False(t, errs.Has("missing"))
		assert.Equal(t, []string{"first", "second"}, errs.Get("owner"))
		assert.Len(t, errs.GetErrors("car"), 1)
		assert.Nil(t, errs.Get("missing"))
		assert.Equal(t, []string{"owner", "car"}, errs.Fields())
	})

	t.Run("errors.Is matches the sentinel", func(t *testing.T) {
		err := fmt.Errorf("request: %w", validator.ValidationErrors{{Field: "owner"}})
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("no failures", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
		assert.NoError(t, validator.Apply(passing(), passing()))
	})

	t.Run("collects every failure in order", func(t *testing.T) {
		err := validator.Apply(failing("a", "bad a"), passing(), failing("b", "bad b"))
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, "a", errs[0].Field)
		assert.Equal(t, "test.b", errs[1].TranslationKey)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	original := validator.ValidationErrors{{Field: "owner", Message: "bad"}}
	assert.Equal(t, original, validator.ExtractValidationErrors(original))
	assert.Equal(t, original, validator.ExtractValidationErrors(fmt.Errorf("wrapped: %w", original)))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("plain")))
	assert.Nil(t, validator.ExtractValidationErrors(nil))

	assert.True(t, validator.IsValidationError(original))
	assert.False(t, validator.IsValidationError(errors.New("plain")))
	assert.False(t, validator.IsValidationError(nil))
}
