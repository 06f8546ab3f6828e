package errs_test

import (
	"errors"
	"testing"

	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	err := errs.NewObjectNotFoundError("ingredient", "ING1")
	assert.Equal(t, "ingredient", err.ParamName)
	assert.Equal(t, "ING1", err.ID)
	require.NoError(t, err.Cause)
	assert.Equal(t, "object not found: ING1", err.Error())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	cause := errors.New("ledger read failed")
	err = errs.NewObjectNotFoundErrorWithCause("location", "FARM1", cause)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t,
		"object not found: param is: location, ID is: FARM1 (cause: ledger read failed)",
		err.Error())

	assert.Equal(t, "object not found: %!s(int=7)", errs.NewObjectNotFoundError("page", 7).Error())
}

func TestValidationErrors_Messages(t *testing.T) {
	cause := errors.New("not a JSON object")

	tests := []struct {
		name     string
		err      error
		sentinel error
		want     string
	}{
		{
			name:     "required",
			err:      errs.NewValueIsRequiredError("itemId"),
			sentinel: errs.ErrValueIsRequired,
			want:     "value is required: itemId",
		},
		{
			name:     "required with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("ingredients", cause),
			sentinel: errs.ErrValueIsRequired,
			want:     "value is required: ingredients (cause: not a JSON object)",
		},
		{
			name:     "invalid",
			err:      errs.NewValueIsInvalidError("itemType"),
			sentinel: errs.ErrValueIsInvalid,
			want:     "value is invalid: itemType",
		},
		{
			name:     "invalid with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("parameters", cause),
			sentinel: errs.ErrValueIsInvalid,
			want:     "value is invalid: parameters (cause: not a JSON object)",
		},
		{
			name:     "out of range",
			err:      errs.NewValueIsOutOfRangeError("latitude", 91.5, -90, 90),
			sentinel: errs.ErrValueIsOutOfRange,
			want:     "value is invalid: 91.5 is latitude, min value is -90, max value is 90",
		},
		{
			name:     "out of range with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("longitude", -181, -180, 180, cause),
			sentinel: errs.ErrValueIsOutOfRange,
			want:     "value is invalid: -181 is longitude, min value is -180, max value is 180 (cause: not a JSON object)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestValueIsOutOfRangeError_Fields(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("latitude", 91.5, -90, 90)
	assert.Equal(t, "latitude", err.ParamName)
	assert.InDelta(t, 91.5, err.Value, 0)
	assert.Equal(t, -90, err.Min)
	assert.Equal(t, 90, err.Max)
	require.NoError(t, err.Cause)

	multiline := errs.NewValueIsOutOfRangeError("name", "Iceberg\nLettuce", 0, 10)
	assert.Contains(t, multiline.Error(), "Iceberg Lettuce")
	assert.NotContains(t, multiline.Error(), "\n")
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrObjectAlreadyExist)
		require.Error(t, errs.ErrAccessDenied)
		require.Error(t, errs.ErrStateIsInvalid)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "object already exists", errs.ErrObjectAlreadyExist.Error())
		assert.Equal(t, "access denied", errs.ErrAccessDenied.Error())
		assert.Equal(t, "state is invalid", errs.ErrStateIsInvalid.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("userId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("email")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("age", 150, 0, 120)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("username")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		alreadyExistsErr := errs.NewObjectAlreadyExistsError("ingredient", "I1")
		require.ErrorIs(t, alreadyExistsErr, errs.ErrObjectAlreadyExist)

		accessDeniedErr := errs.NewAccessDeniedError("caller is not the holder")
		require.ErrorIs(t, accessDeniedErr, errs.ErrAccessDenied)

		stateInvalidErr := errs.NewStateIsInvalidError("status")
		require.ErrorIs(t, stateInvalidErr, errs.ErrStateIsInvalid)
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	t.Run("NewObjectAlreadyExistsError", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsError("ingredient", "I1")

		assert.Equal(t, "ingredient", err.ParamName)
		assert.Equal(t, "I1", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object already exists: ingredient with id I1", err.Error())
		assert.Equal(t, errs.ErrObjectAlreadyExist, err.Unwrap())
	})

	t.Run("NewObjectAlreadyExistsErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicate key")
		err := errs.NewObjectAlreadyExistsErrorWithCause("location", "L1", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object already exists: location with id L1 (cause: duplicate key)", err.Error())
	})
}

func TestAccessDeniedError(t *testing.T) {
	t.Run("NewAccessDeniedError", func(t *testing.T) {
		err := errs.NewAccessDeniedError("organization agr2MSP is not allowed")

		assert.Equal(t, "organization agr2MSP is not allowed", err.Condition)
		require.NoError(t, err.Cause)
		assert.Equal(t, "access denied: organization agr2MSP is not allowed", err.Error())
		assert.Equal(t, errs.ErrAccessDenied, err.Unwrap())
	})

	t.Run("NewAccessDeniedErrorWithCause", func(t *testing.T) {
		cause := errors.New("no msp id in certificate")
		err := errs.NewAccessDeniedErrorWithCause("caller organization is unknown", cause)

		assert.Equal(t,
			"access denied: caller organization is unknown (cause: no msp id in certificate)",
			err.Error())
	})
}

func TestStateIsInvalidError(t *testing.T) {
	t.Run("NewStateIsInvalidError", func(t *testing.T) {
		err := errs.NewStateIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		assert.Equal(t, "state is invalid: status", err.Error())
		assert.Equal(t, errs.ErrStateIsInvalid, err.Unwrap())
	})

	t.Run("NewStateIsInvalidErrorWithCause", func(t *testing.T) {
		err := errs.NewStateIsInvalidErrorWithCause("status", errors.New("IDLE is not in transit"))

		assert.Equal(t, "state is invalid: status (cause: IDLE is not in transit)", err.Error())
	})
}

func TestIsValidation(t *testing.T) {
	assert.True(t, errs.IsValidation(errs.NewValueIsRequiredError("itemType")))
	assert.True(t, errs.IsValidation(errs.NewValueIsInvalidError("itemType")))
	assert.True(t, errs.IsValidation(errs.NewValueIsOutOfRangeError("latitude", 91, -90, 90)))
	assert.False(t, errs.IsValidation(errs.NewObjectNotFoundError("location", "L1")))
	assert.False(t, errs.IsValidation(errs.NewStateIsInvalidError("status")))
	assert.False(t, errs.IsValidation(nil))
}
