package chaincode

import (
	"fmt"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/lot"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// ProduceIngredientLot registers a new ingredient lot held by its producer.
func (c *Contract) ProduceIngredientLot(
	tctx contractapi.TransactionContextInterface,
	ingredientLotID, name, description, lotCode, locationID, parameters string,
) (string, error) {
	const op = "ProduceIngredientLot"

	params, err := kernel.ParseParameters(parameters)
	if err != nil {
		return "", c.reject(op, err)
	}
	cmd, err := commands.NewProduceIngredientLotCommand(ingredientLotID, name, description, lotCode, locationID, params)
	if err != nil {
		return "", c.reject(op, err)
	}

	ctx, caller := invocation(tctx)
	created, err := c.handlers.ProduceIngredientLot.Handle(ctx, caller, cmd)
	if err != nil {
		return "", c.reject(op, err)
	}
	return c.encode(op, created)
}

// ManufactureProductLot consumes validated ingredients into a new product lot.
func (c *Contract) ManufactureProductLot(
	tctx contractapi.TransactionContextInterface,
	productLotID, name, description, ingredientIDs, lotCode, locationID, parameters string,
) (string, error) {
	const op = "ManufactureProductLot"

	ids, err := parseIngredientIDs(ingredientIDs)
	if err != nil {
		return "", c.reject(op, err)
	}
	params, err := kernel.ParseParameters(parameters)
	if err != nil {
		return "", c.reject(op, err)
	}
	cmd, err := commands.NewManufactureProductLotCommand(productLotID, name, description, lotCode, ids, locationID, params)
	if err != nil {
		return "", c.reject(op, err)
	}

	ctx, caller := invocation(tctx)
	created, err := c.handlers.ManufactureProductLot.Handle(ctx, caller, cmd)
	if err != nil {
		return "", c.reject(op, err)
	}
	return c.encode(op, created)
}

func (c *Contract) GetIngredient(tctx contractapi.TransactionContextInterface, id string) (string, error) {
	return c.getLot(tctx, "GetIngredient", lot.Ingredient, id)
}

func (c *Contract) GetProduct(tctx contractapi.TransactionContextInterface, id string) (string, error) {
	return c.getLot(tctx, "GetProduct", lot.Product, id)
}

func (c *Contract) GetIngredientStatus(tctx contractapi.TransactionContextInterface, id string) (string, error) {
	return c.getStatus(tctx, "GetIngredientStatus", lot.Ingredient, id)
}

func (c *Contract) GetProductStatus(tctx contractapi.TransactionContextInterface, id string) (string, error) {
	return c.getStatus(tctx, "GetProductStatus", lot.Product, id)
}

func (c *Contract) GetHistoricalDataIngredient(tctx contractapi.TransactionContextInterface, id string) (string, error) {
	return c.getHistory(tctx, "GetHistoricalDataIngredient", lot.Ingredient, id)
}

func (c *Contract) GetHistoricalDataProduct(tctx contractapi.TransactionContextInterface, id string) (string, error) {
	return c.getHistory(tctx, "GetHistoricalDataProduct", lot.Product, id)
}

func (c *Contract) ListIngredients(
	tctx contractapi.TransactionContextInterface, pageSize int32, bookmark string,
) (string, error) {
	return c.list(tctx, string(lot.Ingredient), pageSize, bookmark)
}

func (c *Contract) ListProducts(
	tctx contractapi.TransactionContextInterface, pageSize int32, bookmark string,
) (string, error) {
	return c.list(tctx, string(lot.Product), pageSize, bookmark)
}

// DeleteIngredient removes an ingredient lot. Only an administrator of the
// producing organization may do so.
func (c *Contract) DeleteIngredient(tctx contractapi.TransactionContextInterface, id string) (string, error) {
	const op = "DeleteIngredient"

	cmd, err := commands.NewDeleteIngredientCommand(id)
	if err != nil {
		return "", c.reject(op, err)
	}

	ctx, caller := invocation(tctx)
	if err = c.handlers.DeleteIngredient.Handle(ctx, caller, cmd); err != nil {
		return "", c.reject(op, err)
	}
	return fmt.Sprintf("ingredient with id %s deleted", id), nil
}

func (c *Contract) UpdateIngredientLocation(
	tctx contractapi.TransactionContextInterface, id, locationID string,
) (string, error) {
	return c.updateItemLocation(tctx, "UpdateIngredientLocation", lot.Ingredient, id, locationID)
}

func (c *Contract) UpdateProductLocation(
	tctx contractapi.TransactionContextInterface, id, locationID string,
) (string, error) {
	return c.updateItemLocation(tctx, "UpdateProductLocation", lot.Product, id, locationID)
}

func (c *Contract) UpdateIngredientParameters(tctx contractapi.TransactionContextInterface, id string) (string, error) {
	return c.updateItemParameters(tctx, "UpdateIngredientParameters", lot.Ingredient, id)
}

func (c *Contract) UpdateProductParameters(tctx contractapi.TransactionContextInterface, id string) (string, error) {
	return c.updateItemParameters(tctx, "UpdateProductParameters", lot.Product, id)
}

// SummarizeCustody counts the lots of one type per custody status.
func (c *Contract) SummarizeCustody(tctx contractapi.TransactionContextInterface, itemType string) (string, error) {
	const op = "SummarizeCustody"

	query, err := queries.NewSummarizeCustodyQuery(itemType)
	if err != nil {
		return "", c.reject(op, err)
	}

	ctx, _ := invocation(tctx)
	summary, err := c.handlers.SummarizeCustody.Handle(ctx, query)
	if err != nil {
		return "", c.reject(op, err)
	}

	counts := make(map[string]int, len(summary.Counts))
	for status, n := range summary.Counts {
		counts[status.String()] = n
	}
	return c.encode(op, map[string]any{
		"itemType": summary.ItemType,
		"counts":   counts,
		"total":    summary.Total,
	})
}

func (c *Contract) getLot(tctx contractapi.TransactionContextInterface, op string, t lot.Type, id string) (string, error) {
	query, err := queries.NewGetLotQuery(string(t), id)
	if err != nil {
		return "", c.reject(op, err)
	}
	ctx, _ := invocation(tctx)
	found, err := c.handlers.GetLot.Handle(ctx, query)
	return c.found(op, found, err)
}

func (c *Contract) getStatus(tctx contractapi.TransactionContextInterface, op string, t lot.Type, id string) (string, error) {
	query, err := queries.NewGetLotQuery(string(t), id)
	if err != nil {
		return "", c.reject(op, err)
	}
	ctx, _ := invocation(tctx)
	custody, err := c.handlers.GetLotStatus.Handle(ctx, query)
	return c.found(op, custody, err)
}

func (c *Contract) getHistory(tctx contractapi.TransactionContextInterface, op string, t lot.Type, id string) (string, error) {
	query, err := queries.NewGetHistoryQuery(string(t), id)
	if err != nil {
		return "", c.reject(op, err)
	}
	ctx, _ := invocation(tctx)
	entries, err := c.handlers.GetHistory.Handle(ctx, query)
	if err != nil {
		return "", c.reject(op, err)
	}
	return c.encode(op, entries)
}

func (c *Contract) list(
	tctx contractapi.TransactionContextInterface, docType string, pageSize int32, bookmark string,
) (string, error) {
	op := "List" + docType

	query, err := queries.NewListItemsQuery(docType, pageSize, bookmark)
	if err != nil {
		return "", c.reject(op, err)
	}
	op = string(query.Operation())

	ctx, caller := invocation(tctx)
	page, err := c.handlers.ListItems.Handle(ctx, caller, query)
	if err != nil {
		return "", c.reject(op, err)
	}
	return c.encode(op, page)
}

func (c *Contract) updateItemLocation(
	tctx contractapi.TransactionContextInterface, op string, t lot.Type, id, locationID string,
) (string, error) {
	cmd, err := commands.NewUpdateItemLocationCommand(string(t), id, locationID)
	if err != nil {
		return "", c.reject(op, err)
	}

	ctx, caller := invocation(tctx)
	if _, err = c.handlers.UpdateItemLocation.Handle(ctx, caller, cmd); err != nil {
		return "", c.reject(op, err)
	}
	return fmt.Sprintf("location of item with id %s changed", id), nil
}

func (c *Contract) updateItemParameters(
	tctx contractapi.TransactionContextInterface, op string, t lot.Type, id string,
) (string, error) {
	cmd, err := commands.NewUpdateItemParametersCommand(string(t), id)
	if err != nil {
		return "", c.reject(op, err)
	}

	ctx, caller := invocation(tctx)
	if _, err = c.handlers.UpdateItemParameters.Handle(ctx, caller, cmd); err != nil {
		return "", c.reject(op, err)
	}
	return fmt.Sprintf("parameters of item with id %s changed", id), nil
}
