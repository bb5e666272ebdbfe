package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerOnce sync.Once

var (
	membershipLevels = map[string]bool{"B": true, "S": true, "G": true}
	paymentStatuses  = map[string]bool{"P": true, "C": true, "F": true}
)

// RegisterValidators wires store-specific rules into gin's validator engine.
// Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		// Report json names instead of Go field names.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			if name == "" {
				return fld.Name
			}
			return name
		})

		// Validate decimals as floats so gte/lte/required work on money.
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				f, _ := d.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{})

		_ = v.RegisterValidation("membership", func(fl validator.FieldLevel) bool {
			return membershipLevels[fl.Field().String()]
		})
		_ = v.RegisterValidation("payment_status", func(fl validator.FieldLevel) bool {
			return paymentStatuses[fl.Field().String()]
		})
	})
}

// FieldErrors flattens a binding error into field -> message.
func FieldErrors(err error) map[string]string {
	fields := make(map[string]string)

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fe := range validationErrs {
			fields[fe.Field()] = fieldMessage(fe)
		}
		return fields
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		fields[typeErr.Field] = fmt.Sprintf("must be of type %s", typeErr.Type.String())
		return fields
	}

	fields["non_field_errors"] = err.Error()
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "min", "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "email":
		return "Enter a valid email address."
	case "uuid":
		return "Must be a valid UUID."
	case "numeric":
		return "A valid number is required."
	case "datetime":
		return fmt.Sprintf("Date has wrong format. Use %s.", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s.", fe.Param())
	case "membership":
		return "Must be one of: B, S, G."
	case "payment_status":
		return "Must be one of: P, C, F."
	default:
		return fmt.Sprintf("Failed on the '%s' rule.", fe.Tag())
	}
}
