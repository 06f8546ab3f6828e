package guard_test

import (
	"errors"
	"testing"

	"supplychain/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotBuilt := errors.New("lot must be created via NewIngredientLot")

	tests := []struct {
		name  string
		guard guard.ConstructorGuard
		given error
		want  error
	}{
		{"constructed with custom error", guard.NewConstructorGuard(), errNotBuilt, nil},
		{"constructed with nil error", guard.NewConstructorGuard(), nil, nil},
		{"zero value with custom error", guard.ConstructorGuard{}, errNotBuilt, errNotBuilt},
		{"zero value falls back to default", guard.ConstructorGuard{}, nil, guard.ErrDefaultConstructorGuard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.guard.Validate(tt.given)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, err)
		})
	}
}

// TestConstructorGuardUsageExample shows a guarded value object the way the
// domain model uses it.
func TestConstructorGuardUsageExample(t *testing.T) {
	type Seal struct {
		code  string
		guard guard.ConstructorGuard
	}

	var errSealNotConstructed = errors.New("Seal must be created via NewSeal")

	newSeal := func(code string) (Seal, error) {
		if code == "" {
			return Seal{}, errors.New("code is required")
		}
		return Seal{code: code, guard: guard.NewConstructorGuard()}, nil
	}

	validateSeal := func(s Seal) error {
		return s.guard.Validate(errSealNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		seal, err := newSeal("LOT-2024-07")

		// Then
		require.NoError(t, err)
		require.NoError(t, validateSeal(seal))
		assert.Equal(t, "LOT-2024-07", seal.code)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		// Given
		var seal Seal

		// When
		err := validateSeal(seal)

		// Then
		require.Error(t, err)
		assert.Equal(t, errSealNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newSeal("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "code is required")
	})
}
