package kernel

import (
	"encoding/json"
	"maps"
	"strings"

	"supplychain/internal/pkg/errs"
)

// Parameters is a free-form attribute map (sensor readings, environmental data).
// The domain stores and copies it but never interprets its contents.
type Parameters map[string]any

// ParseParameters decodes a JSON object. Blank input yields an empty map.
func ParseParameters(raw string) (Parameters, error) {
	if strings.TrimSpace(raw) == "" {
		return Parameters{}, nil
	}

	var p Parameters
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("parameters", err)
	}
	if p == nil {
		return Parameters{}, nil
	}
	return p, nil
}

// Clone returns a shallow copy so that holders of the original cannot mutate the copy's keys.
func (p Parameters) Clone() Parameters {
	if p == nil {
		return Parameters{}
	}
	return maps.Clone(p)
}
