package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

func TestDirectory(t *testing.T) {
	d := kernel.DefaultDirectory()

	t.Run("default directory is valid", func(t *testing.T) {
		require.NoError(t, d.Validate())
	})

	t.Run("couriers", func(t *testing.T) {
		assert.True(t, d.IsCourier("courier1MSP"))
		assert.True(t, d.IsCourier("courier2MSP"))
		assert.False(t, d.IsCourier("agr1MSP"))
	})

	t.Run("receivers exclude couriers", func(t *testing.T) {
		assert.True(t, d.IsReceiver("agr1MSP"))
		assert.True(t, d.IsReceiver("floretteMSP"))
		assert.True(t, d.IsReceiver("retailerMSP"))
		assert.False(t, d.IsReceiver("courier1MSP"))
	})

	t.Run("known", func(t *testing.T) {
		assert.Len(t, d.Known(), 5)
		assert.True(t, d.IsKnown("retailerMSP"))
		assert.False(t, d.IsKnown("agr2MSP"))
	})

	t.Run("empty group is rejected", func(t *testing.T) {
		d := kernel.DefaultDirectory()
		d.Couriers = nil
		require.ErrorIs(t, d.Validate(), errs.ErrValueIsRequired)
	})
}

func TestParseOrgList(t *testing.T) {
	assert.Equal(t, []kernel.OrgID{"a", "b"}, kernel.ParseOrgList(" a, ,b "))
	assert.Nil(t, kernel.ParseOrgList(""))
}

func TestParseRole(t *testing.T) {
	r, err := kernel.ParseRole("Courier")
	require.NoError(t, err)
	assert.Equal(t, kernel.RoleCourier, r)

	_, err = kernel.ParseRole("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = kernel.ParseRole("courier")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestParseParameters(t *testing.T) {
	t.Run("object", func(t *testing.T) {
		p, err := kernel.ParseParameters(`{"temperature":"4C","humidity":80}`)
		require.NoError(t, err)
		assert.Equal(t, "4C", p["temperature"])
		assert.InDelta(t, 80.0, p["humidity"], 1e-9)
	})

	t.Run("blank", func(t *testing.T) {
		p, err := kernel.ParseParameters("  ")
		require.NoError(t, err)
		assert.Empty(t, p)
		assert.NotNil(t, p)
	})

	t.Run("null", func(t *testing.T) {
		p, err := kernel.ParseParameters("null")
		require.NoError(t, err)
		assert.NotNil(t, p)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := kernel.ParseParameters(`{"temperature":`)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("clone is independent", func(t *testing.T) {
		p := kernel.Parameters{"a": 1}
		c := p.Clone()
		c["b"] = 2
		assert.NotContains(t, p, "b")
	})
}
