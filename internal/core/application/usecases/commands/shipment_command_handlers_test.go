package commands_test

import (
	"testing"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/lot"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func idleAtFarm(t *testing.T) *lot.Custody {
	t.Helper()
	return custodyAt(t, lot.Ingredient, "ING1", lot.StatusRecord{
		Status: lot.Idle, HolderID: "agr1MSP", LocationID: "FARM1", Active: true,
	})
}

func inTransitWith(t *testing.T, holder string) *lot.Custody {
	t.Helper()
	return custodyAt(t, lot.Ingredient, "ING1", lot.StatusRecord{
		Status:        lot.InTransit,
		HolderID:      kernel.OrgID(holder),
		LocationID:    "FARM1",
		DestinationID: "FACTORY1",
		Active:        true,
	})
}

func TestStartShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	registry := new(MockRegistry)
	factory, uow := transaction(registry)

	mock.InOrder(
		registry.On("GetCustody", ctx, lot.Ingredient, "ING1").Return(idleAtFarm(t), nil).Once(),
		registry.On("GetLocation", ctx, "FARM1").Return(newWarehouse(t, "FARM1", "agr1MSP"), nil).Once(),
		registry.On("GetLocation", ctx, "FACTORY1").Return(newWarehouse(t, "FACTORY1", "floretteMSP"), nil).Once(),
		registry.On("SaveCustody", ctx, mock.AnythingOfType("*lot.Custody")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewStartShipmentCommand("INGREDIENT", "ING1", "courier1MSP", "FARM1", "FACTORY1")
	require.NoError(t, err)

	handler := commands.NewStartShipmentCommandHandler(factory, newAuthorizer(), nil)
	got, err := handler.Handle(ctx, producer, cmd)

	require.NoError(t, err)
	assert.Equal(t, lot.InTransit, got.Status())
	assert.Equal(t, "courier1MSP", got.Holder().String())
	assert.Equal(t, "FARM1", got.LocationID())
	assert.Equal(t, "FACTORY1", got.DestinationID())
	registry.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestStartShipmentCommandHandler_Handle_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		courier string
		custody func(t *testing.T) *lot.Custody
		caller  fakeCaller
		wantErr error
	}{
		{
			name:    "not the holder",
			courier: "courier1MSP",
			custody: func(t *testing.T) *lot.Custody { return idleAtFarm(t) },
			caller:  manufacturer,
			wantErr: errs.ErrAccessDenied,
		},
		{
			name:    "already in transit",
			courier: "courier1MSP",
			custody: func(t *testing.T) *lot.Custody { return inTransitWith(t, "agr1MSP") },
			caller:  producer,
			wantErr: errs.ErrStateIsInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			registry := new(MockRegistry)
			factory, uow := transaction(registry)

			registry.On("GetCustody", ctx, lot.Ingredient, "ING1").Return(tt.custody(t), nil).Once()
			registry.On("GetLocation", ctx, mock.Anything).Return(newWarehouse(t, "ANY", "agr1MSP"), nil).Maybe()

			cmd, err := commands.NewStartShipmentCommand("INGREDIENT", "ING1", tt.courier, "FARM1", "FACTORY1")
			require.NoError(t, err)

			handler := commands.NewStartShipmentCommandHandler(factory, newAuthorizer(), nil)
			_, err = handler.Handle(ctx, tt.caller, cmd)

			require.ErrorIs(t, err, tt.wantErr)
			registry.AssertNotCalled(t, "SaveCustody", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestStartShipmentCommandHandler_Handle_UnknownCourier(t *testing.T) {
	ctx := t.Context()
	registry := new(MockRegistry)
	factory, _ := transaction(registry)

	registry.On("GetCustody", ctx, lot.Ingredient, "ING1").Return(idleAtFarm(t), nil).Once()

	cmd, err := commands.NewStartShipmentCommand("INGREDIENT", "ING1", "retailerMSP", "FARM1", "FACTORY1")
	require.NoError(t, err)

	handler := commands.NewStartShipmentCommandHandler(factory, newAuthorizer(), nil)
	_, err = handler.Handle(ctx, producer, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.ErrorContains(t, err, "retailerMSP is not a courier")
	registry.AssertNotCalled(t, "GetLocation", mock.Anything, mock.Anything)
	registry.AssertNotCalled(t, "SaveCustody", mock.Anything, mock.Anything)
}

func TestStartShipmentCommandHandler_Handle_DestinationMissing(t *testing.T) {
	ctx := t.Context()
	registry := new(MockRegistry)
	factory, _ := transaction(registry)

	registry.On("GetCustody", ctx, lot.Ingredient, "ING1").Return(idleAtFarm(t), nil).Once()
	registry.On("GetLocation", ctx, "FARM1").Return(newWarehouse(t, "FARM1", "agr1MSP"), nil).Once()
	registry.On("GetLocation", ctx, "NOWHERE").Return(nil, nil).Once()

	cmd, err := commands.NewStartShipmentCommand("INGREDIENT", "ING1", "courier1MSP", "FARM1", "NOWHERE")
	require.NoError(t, err)

	handler := commands.NewStartShipmentCommandHandler(factory, newAuthorizer(), nil)
	_, err = handler.Handle(ctx, producer, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.ErrorContains(t, err, "NOWHERE")
}

func TestShipmentStepCommandHandler_Handle(t *testing.T) {
	t.Run("hands off to the next courier", func(t *testing.T) {
		ctx := t.Context()
		registry := new(MockRegistry)
		factory, uow := transaction(registry)

		registry.On("GetLocation", ctx, "HUB").Return(newWarehouse(t, "HUB", "courier1MSP"), nil).Once()
		registry.On("GetCustody", ctx, lot.Ingredient, "ING1").Return(inTransitWith(t, "courier1MSP"), nil).Once()
		registry.On("SaveCustody", ctx, mock.Anything).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		cmd, err := commands.NewShipmentStepCommand("INGREDIENT", "ING1", "courier2MSP", "HUB")
		require.NoError(t, err)

		got, err := commands.NewShipmentStepCommandHandler(factory, newAuthorizer(), nil).Handle(ctx, courier1, cmd)

		require.NoError(t, err)
		assert.Equal(t, lot.InTransit, got.Status())
		assert.Equal(t, "courier2MSP", got.Holder().String())
		assert.Equal(t, "HUB", got.LocationID())
		assert.Equal(t, "FACTORY1", got.DestinationID())
	})

	t.Run("same courier is rejected", func(t *testing.T) {
		ctx := t.Context()
		registry := new(MockRegistry)
		factory, uow := transaction(registry)

		registry.On("GetLocation", ctx, "HUB").Return(newWarehouse(t, "HUB", "courier1MSP"), nil).Once()
		registry.On("GetCustody", ctx, lot.Ingredient, "ING1").Return(inTransitWith(t, "courier1MSP"), nil).Once()

		cmd, err := commands.NewShipmentStepCommand("INGREDIENT", "ING1", "courier1MSP", "HUB")
		require.NoError(t, err)

		_, err = commands.NewShipmentStepCommandHandler(factory, newAuthorizer(), nil).Handle(ctx, courier1, cmd)

		require.ErrorIs(t, err, errs.ErrStateIsInvalid)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("caller is not the holder", func(t *testing.T) {
		ctx := t.Context()
		registry := new(MockRegistry)
		factory, _ := transaction(registry)

		registry.On("GetLocation", ctx, "HUB").Return(newWarehouse(t, "HUB", "courier1MSP"), nil).Once()
		registry.On("GetCustody", ctx, lot.Ingredient, "ING1").Return(inTransitWith(t, "courier1MSP"), nil).Once()

		cmd, err := commands.NewShipmentStepCommand("INGREDIENT", "ING1", "courier1MSP", "HUB")
		require.NoError(t, err)

		_, err = commands.NewShipmentStepCommandHandler(factory, newAuthorizer(), nil).Handle(ctx, courier2, cmd)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
		assert.ErrorContains(t, err, "organization courier2MSP is not the holder of ingredient ING1")
	})
}

func TestFinishShipmentCommandHandler_Handle(t *testing.T) {
	t.Run("delivers to the receiver", func(t *testing.T) {
		ctx := t.Context()
		registry := new(MockRegistry)
		factory, uow := transaction(registry)

		registry.On("GetLocation", ctx, "FACTORY1").Return(newWarehouse(t, "FACTORY1", "floretteMSP"), nil).Once()
		registry.On("GetCustody", ctx, lot.Ingredient, "ING1").Return(inTransitWith(t, "courier1MSP"), nil).Once()
		registry.On("SaveCustody", ctx, mock.Anything).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		cmd, err := commands.NewFinishShipmentCommand("INGREDIENT", "ING1", "floretteMSP", "FACTORY1")
		require.NoError(t, err)

		got, err := commands.NewFinishShipmentCommandHandler(factory, newAuthorizer(), nil).Handle(ctx, courier1, cmd)

		require.NoError(t, err)
		assert.Equal(t, lot.Delivered, got.Status())
		assert.Equal(t, "floretteMSP", got.Holder().String())
		assert.Equal(t, "FACTORY1", got.LocationID())
	})

	t.Run("courier cannot be the receiver", func(t *testing.T) {
		ctx := t.Context()
		registry := new(MockRegistry)
		factory, _ := transaction(registry)

		registry.On("GetCustody", ctx, lot.Ingredient, "ING1").Return(inTransitWith(t, "courier1MSP"), nil).Once()

		cmd, err := commands.NewFinishShipmentCommand("INGREDIENT", "ING1", "courier2MSP", "FACTORY1")
		require.NoError(t, err)

		_, err = commands.NewFinishShipmentCommandHandler(factory, newAuthorizer(), nil).Handle(ctx, courier1, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		registry.AssertNotCalled(t, "GetLocation", mock.Anything, mock.Anything)
	})

	t.Run("only couriers finish shipments", func(t *testing.T) {
		factory := new(MockUoWFactory)

		cmd, err := commands.NewFinishShipmentCommand("INGREDIENT", "ING1", "floretteMSP", "FACTORY1")
		require.NoError(t, err)

		_, err = commands.NewFinishShipmentCommandHandler(factory, newAuthorizer(), nil).Handle(t.Context(), producer, cmd)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
		factory.AssertNotCalled(t, "Create")
	})
}

func TestValidateFinishShipmentCommandHandler_Handle(t *testing.T) {
	delivered := func(t *testing.T, at string) *lot.Custody {
		return custodyAt(t, lot.Ingredient, "ING1", lot.StatusRecord{
			Status:        lot.Delivered,
			HolderID:      "floretteMSP",
			LocationID:    at,
			DestinationID: "FACTORY1",
			Active:        true,
		})
	}

	t.Run("validates at the destination", func(t *testing.T) {
		ctx := t.Context()
		registry := new(MockRegistry)
		factory, uow := transaction(registry)

		registry.On("GetCustody", ctx, lot.Ingredient, "ING1").Return(delivered(t, "FACTORY1"), nil).Once()
		registry.On("SaveCustody", ctx, mock.Anything).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		cmd, err := commands.NewValidateFinishShipmentCommand("INGREDIENT", "ING1")
		require.NoError(t, err)

		got, err := commands.NewValidateFinishShipmentCommandHandler(factory, newAuthorizer(), nil).
			Handle(ctx, manufacturer, cmd)

		require.NoError(t, err)
		assert.Equal(t, lot.Validated, got.Status())
	})

	t.Run("rejects a lot away from its destination", func(t *testing.T) {
		ctx := t.Context()
		registry := new(MockRegistry)
		factory, uow := transaction(registry)

		registry.On("GetCustody", ctx, lot.Ingredient, "ING1").Return(delivered(t, "HUB"), nil).Once()

		cmd, err := commands.NewValidateFinishShipmentCommand("INGREDIENT", "ING1")
		require.NoError(t, err)

		_, err = commands.NewValidateFinishShipmentCommandHandler(factory, newAuthorizer(), nil).
			Handle(ctx, manufacturer, cmd)

		require.ErrorIs(t, err, errs.ErrStateIsInvalid)
		registry.AssertNotCalled(t, "SaveCustody", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("lot does not exist", func(t *testing.T) {
		ctx := t.Context()
		registry := new(MockRegistry)
		factory, _ := transaction(registry)

		registry.On("GetCustody", ctx, lot.Product, "P9").Return(nil, nil).Once()

		cmd, err := commands.NewValidateFinishShipmentCommand("PRODUCT", "P9")
		require.NoError(t, err)

		_, err = commands.NewValidateFinishShipmentCommandHandler(factory, newAuthorizer(), nil).
			Handle(ctx, retailer, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

// A non-holder is denied before the shipment arguments are checked.
func TestShipmentHandlers_NonHolderIsDeniedBeforeArgumentChecks(t *testing.T) {
	validated := func(t *testing.T) *lot.Custody {
		return custodyAt(t, lot.Ingredient, "ING1", lot.StatusRecord{
			Status: lot.Validated, HolderID: "floretteMSP", LocationID: "FACTORY1", Active: true,
		})
	}

	tests := []struct {
		name    string
		custody func(t *testing.T) *lot.Custody
		handle  func(t *testing.T, factory commands.UoWFactory) error
	}{
		{
			name:    "start with a missing destination",
			custody: validated,
			handle: func(t *testing.T, factory commands.UoWFactory) error {
				cmd, err := commands.NewStartShipmentCommand("INGREDIENT", "ING1", "courier1MSP", "FACTORY1", "NOWHERE")
				require.NoError(t, err)
				_, err = commands.NewStartShipmentCommandHandler(factory, newAuthorizer(), nil).Handle(t.Context(), producer, cmd)
				return err
			},
		},
		{
			name:    "start with an unknown courier",
			custody: validated,
			handle: func(t *testing.T, factory commands.UoWFactory) error {
				cmd, err := commands.NewStartShipmentCommand("INGREDIENT", "ING1", "bogusMSP", "FACTORY1", "SHOP1")
				require.NoError(t, err)
				_, err = commands.NewStartShipmentCommandHandler(factory, newAuthorizer(), nil).Handle(t.Context(), producer, cmd)
				return err
			},
		},
		{
			name:    "step with an unknown courier",
			custody: func(t *testing.T) *lot.Custody { return inTransitWith(t, "courier1MSP") },
			handle: func(t *testing.T, factory commands.UoWFactory) error {
				cmd, err := commands.NewShipmentStepCommand("INGREDIENT", "ING1", "bogusMSP", "NOWHERE")
				require.NoError(t, err)
				_, err = commands.NewShipmentStepCommandHandler(factory, newAuthorizer(), nil).Handle(t.Context(), courier2, cmd)
				return err
			},
		},
		{
			name:    "finish at a missing location",
			custody: func(t *testing.T) *lot.Custody { return inTransitWith(t, "courier1MSP") },
			handle: func(t *testing.T, factory commands.UoWFactory) error {
				cmd, err := commands.NewFinishShipmentCommand("INGREDIENT", "ING1", "floretteMSP", "NOWHERE")
				require.NoError(t, err)
				_, err = commands.NewFinishShipmentCommandHandler(factory, newAuthorizer(), nil).Handle(t.Context(), courier2, cmd)
				return err
			},
		},
		{
			name:    "finish with an unknown receiver",
			custody: func(t *testing.T) *lot.Custody { return inTransitWith(t, "courier1MSP") },
			handle: func(t *testing.T, factory commands.UoWFactory) error {
				cmd, err := commands.NewFinishShipmentCommand("INGREDIENT", "ING1", "bogusMSP", "FACTORY1")
				require.NoError(t, err)
				_, err = commands.NewFinishShipmentCommandHandler(factory, newAuthorizer(), nil).Handle(t.Context(), courier2, cmd)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := new(MockRegistry)
			factory, uow := transaction(registry)

			registry.On("GetCustody", mock.Anything, lot.Ingredient, "ING1").Return(tt.custody(t), nil).Once()

			err := tt.handle(t, factory)

			require.ErrorIs(t, err, errs.ErrAccessDenied)
			registry.AssertNotCalled(t, "GetLocation", mock.Anything, mock.Anything)
			registry.AssertNotCalled(t, "SaveCustody", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}
