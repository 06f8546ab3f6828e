package http

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator plugs go-playground/validator into echo's Bind/Validate
// flow. Field names in errors follow the json tags.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		return name
	})
	return &RequestValidator{validate: v}
}

func (rv *RequestValidator) Validate(i any) error {
	return rv.validate.Struct(i)
}

// validationMessage renders every failing field of a validator error.
func validationMessage(err validator.ValidationErrors) string {
	msgs := make([]string, 0, len(err))
	for _, e := range err {
		switch e.Tag() {
		case "required":
			msgs = append(msgs, e.Field()+" is required")
		case "oneof":
			msgs = append(msgs, e.Field()+" must be one of: "+e.Param())
		case "min":
			msgs = append(msgs, e.Field()+" must be at least "+e.Param())
		case "gte":
			msgs = append(msgs, e.Field()+" must be greater than or equal to "+e.Param())
		case "lte":
			msgs = append(msgs, e.Field()+" must be less than or equal to "+e.Param())
		default:
			msgs = append(msgs, e.Field()+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}
