package chaincode

import (
	"encoding/json"
	"strings"

	"supplychain/internal/pkg/errs"
)

// parseIngredientIDs accepts {"array":["ING1","ING2"]} as well as a bare
// JSON array.
func parseIngredientIDs(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errs.NewValueIsRequiredError("ingredients")
	}

	if strings.HasPrefix(raw, "[") {
		var ids []string
		if err := json.Unmarshal([]byte(raw), &ids); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("ingredients", err)
		}
		return ids, nil
	}

	var wrapped struct {
		Array []string `json:"array"`
	}
	if err := json.Unmarshal([]byte(raw), &wrapped); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("ingredients", err)
	}
	return wrapped.Array, nil
}
