package commands_test

import (
	"testing"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/lot"
	"supplychain/internal/core/domain/services"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateItemLocationCommandHandler_Handle(t *testing.T) {
	t.Run("moves the lot", func(t *testing.T) {
		ctx := t.Context()
		registry := new(MockRegistry)
		factory, uow := transaction(registry)

		registry.On("GetCustody", ctx, lot.Ingredient, "ING1").Return(idleAtFarm(t), nil).Once()
		registry.On("GetLocation", ctx, "FARM2").Return(newWarehouse(t, "FARM2", "agr1MSP"), nil).Once()
		registry.On("SaveCustody", ctx, mock.Anything).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		cmd, err := commands.NewUpdateItemLocationCommand("INGREDIENT", "ING1", "FARM2")
		require.NoError(t, err)

		got, err := commands.NewUpdateItemLocationCommandHandler(factory, newAuthorizer(), nil).Handle(ctx, producer, cmd)

		require.NoError(t, err)
		assert.Equal(t, "FARM2", got.LocationID())
		assert.Equal(t, lot.Idle, got.Status())
		assert.Equal(t, "agr1MSP", got.Holder().String())
	})

	t.Run("location must exist", func(t *testing.T) {
		ctx := t.Context()
		registry := new(MockRegistry)
		factory, _ := transaction(registry)

		registry.On("GetCustody", ctx, lot.Ingredient, "ING1").Return(idleAtFarm(t), nil).Once()
		registry.On("GetLocation", ctx, "FARM2").Return(nil, nil).Once()

		cmd, err := commands.NewUpdateItemLocationCommand("INGREDIENT", "ING1", "FARM2")
		require.NoError(t, err)

		_, err = commands.NewUpdateItemLocationCommandHandler(factory, newAuthorizer(), nil).Handle(ctx, producer, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		registry.AssertNotCalled(t, "SaveCustody", mock.Anything, mock.Anything)
	})

	t.Run("any organization may try but only the holder succeeds", func(t *testing.T) {
		ctx := t.Context()
		registry := new(MockRegistry)
		factory, _ := transaction(registry)

		registry.On("GetCustody", ctx, lot.Ingredient, "ING1").Return(idleAtFarm(t), nil).Once()

		cmd, err := commands.NewUpdateItemLocationCommand("INGREDIENT", "ING1", "FARM2")
		require.NoError(t, err)

		_, err = commands.NewUpdateItemLocationCommandHandler(factory, newAuthorizer(), nil).
			Handle(ctx, caller("someoneMSP"), cmd)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
		registry.AssertNotCalled(t, "GetLocation", mock.Anything, mock.Anything)
	})
}

func TestUpdateItemParametersCommandHandler_Handle(t *testing.T) {
	t.Run("copies the location parameters", func(t *testing.T) {
		ctx := t.Context()
		registry := new(MockRegistry)
		factory, uow := transaction(registry)

		registry.On("GetCustody", ctx, lot.Ingredient, "ING1").Return(idleAtFarm(t), nil).Once()
		registry.On("GetLocation", ctx, "FARM1").Return(newWarehouse(t, "FARM1", "agr1MSP"), nil).Once()
		registry.On("SaveCustody", ctx, mock.Anything).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		cmd, err := commands.NewUpdateItemParametersCommand("INGREDIENT", "ING1")
		require.NoError(t, err)

		got, err := commands.NewUpdateItemParametersCommandHandler(factory, newAuthorizer(), nil).
			Handle(ctx, producer, cmd)

		require.NoError(t, err)
		assert.Equal(t, kernel.Parameters{"humidity": 60.0}, got.Parameters())
	})

	t.Run("caller must also hold the location", func(t *testing.T) {
		ctx := t.Context()
		registry := new(MockRegistry)
		factory, uow := transaction(registry)

		registry.On("GetCustody", ctx, lot.Ingredient, "ING1").Return(idleAtFarm(t), nil).Once()
		registry.On("GetLocation", ctx, "FARM1").Return(newWarehouse(t, "FARM1", "courier1MSP"), nil).Once()

		cmd, err := commands.NewUpdateItemParametersCommand("INGREDIENT", "ING1")
		require.NoError(t, err)

		_, err = commands.NewUpdateItemParametersCommandHandler(factory, newAuthorizer(), nil).
			Handle(ctx, producer, cmd)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
		assert.ErrorContains(t, err, "location FARM1")
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("admin role is not enough", func(t *testing.T) {
		factory := new(MockUoWFactory)

		cmd, err := commands.NewUpdateItemParametersCommand("INGREDIENT", "ING1")
		require.NoError(t, err)

		_, err = commands.NewUpdateItemParametersCommandHandler(factory, newAuthorizer(), nil).
			Handle(t.Context(), producerAdm, cmd)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
		factory.AssertNotCalled(t, "Create")
	})
}

func TestInvalidateItemCommandHandler_Handle(t *testing.T) {
	for _, status := range lot.AllStatuses() {
		t.Run(status.String(), func(t *testing.T) {
			ctx := t.Context()
			registry := new(MockRegistry)
			factory, uow := transaction(registry)

			current := custodyAt(t, lot.Product, "P1", lot.StatusRecord{
				Status: status, HolderID: "floretteMSP", LocationID: "FACTORY1", Active: true,
			})
			registry.On("GetCustody", ctx, lot.Product, "P1").Return(current, nil).Once()
			registry.On("SaveCustody", ctx, mock.Anything).Return(nil).Once()
			uow.On("Commit", ctx).Return(nil).Once()

			cmd, err := commands.NewInvalidateItemCommand("PRODUCT", "P1")
			require.NoError(t, err)

			got, err := commands.NewInvalidateItemCommandHandler(factory, newAuthorizer(), nil).
				Handle(ctx, manufacturer, cmd)

			require.NoError(t, err)
			assert.Equal(t, lot.LostOrDestroyed, got.Status())
			assert.False(t, got.Active())
		})
	}

	t.Run("couriers cannot invalidate", func(t *testing.T) {
		factory := new(MockUoWFactory)

		cmd, err := commands.NewInvalidateItemCommand("PRODUCT", "P1")
		require.NoError(t, err)

		_, err = commands.NewInvalidateItemCommandHandler(factory, newAuthorizer(), nil).Handle(t.Context(), courier1, cmd)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
	})

	t.Run("producer that does not hold the lot is denied", func(t *testing.T) {
		ctx := t.Context()
		registry := new(MockRegistry)
		factory, uow := transaction(registry)

		current := custodyAt(t, lot.Product, "P1", lot.StatusRecord{
			Status: lot.Validated, HolderID: "floretteMSP", LocationID: "FACTORY1", Active: true,
		})
		registry.On("GetCustody", ctx, lot.Product, "P1").Return(current, nil).Once()

		cmd, err := commands.NewInvalidateItemCommand("PRODUCT", "P1")
		require.NoError(t, err)

		_, err = commands.NewInvalidateItemCommandHandler(factory, newAuthorizer(), nil).Handle(ctx, producer, cmd)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
		assert.ErrorContains(t, err, "organization agr1MSP is not the holder of product P1")
		assert.Equal(t, lot.Validated, current.Status())
		registry.AssertNotCalled(t, "SaveCustody", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}

func TestDeleteIngredientCommandHandler_Handle(t *testing.T) {
	dir := kernel.DefaultDirectory()
	dir.Producers = append(dir.Producers, "agr2MSP")
	authz := services.NewAuthorizer(dir)

	ingredient, err := lot.NewIngredient("ING1", "Lettuce", "", "", "agr1MSP")
	require.NoError(t, err)

	t.Run("admin of the producer deletes", func(t *testing.T) {
		ctx := t.Context()
		registry := new(MockRegistry)
		factory, uow := transaction(registry)

		registry.On("GetLot", ctx, lot.Ingredient, "ING1").Return(ingredient, nil).Once()
		registry.On("DeleteLot", ctx, lot.Ingredient, "ING1").Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		cmd, err := commands.NewDeleteIngredientCommand("ING1")
		require.NoError(t, err)

		err = commands.NewDeleteIngredientCommandHandler(factory, authz, nil).Handle(ctx, producerAdm, cmd)

		require.NoError(t, err)
		registry.AssertExpectations(t)
	})

	t.Run("admin of another producer is denied", func(t *testing.T) {
		ctx := t.Context()
		registry := new(MockRegistry)
		factory, uow := transaction(registry)

		registry.On("GetLot", ctx, lot.Ingredient, "ING1").Return(ingredient, nil).Once()

		cmd, err := commands.NewDeleteIngredientCommand("ING1")
		require.NoError(t, err)

		err = commands.NewDeleteIngredientCommandHandler(factory, authz, nil).
			Handle(ctx, caller("agr2MSP", kernel.RoleAdmin), cmd)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
		assert.ErrorContains(t, err, "is not the creator of ingredient ING1")
		registry.AssertNotCalled(t, "DeleteLot", mock.Anything, mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("missing ingredient", func(t *testing.T) {
		ctx := t.Context()
		registry := new(MockRegistry)
		factory, _ := transaction(registry)

		registry.On("GetLot", ctx, lot.Ingredient, "ING1").Return(nil, nil).Once()

		cmd, err := commands.NewDeleteIngredientCommand("ING1")
		require.NoError(t, err)

		err = commands.NewDeleteIngredientCommandHandler(factory, authz, nil).Handle(ctx, producerAdm, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("producer without admin role", func(t *testing.T) {
		factory := new(MockUoWFactory)

		cmd, err := commands.NewDeleteIngredientCommand("ING1")
		require.NoError(t, err)

		err = commands.NewDeleteIngredientCommandHandler(factory, authz, nil).Handle(t.Context(), producer, cmd)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
		factory.AssertNotCalled(t, "Create")
	})
}
