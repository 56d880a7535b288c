// Package validation configures the struct validator shared by the API
// request types and the dashboard form schemas.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// MaxPrice is the largest amount a decimal(10,2) column holds.
var MaxPrice = decimal.RequireFromString("99999999.99")

// New returns a validator that reports fields by their JSON name and
// validates decimal.Decimal values as float64 numbers. The "price" tag
// accepts amounts with at most two decimal places up to MaxPrice.
func New() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	// Only fails on an empty tag name, which never happens here.
	_ = validate.RegisterValidation("price", validPrice)
	return validate
}

// validPrice checks the decimal as submitted. The float64 seen through
// fl.Field() has already lost digits, so the original is read from the
// parent struct when it is there.
func validPrice(fl validator.FieldLevel) bool {
	price := decimal.NewFromFloat(fl.Field().Float())
	if parent := reflect.Indirect(fl.Parent()); parent.Kind() == reflect.Struct {
		if f := parent.FieldByName(fl.StructFieldName()); f.IsValid() && f.CanInterface() {
			if d, ok := f.Interface().(decimal.Decimal); ok {
				price = d
			}
		}
	}
	return price.Equal(price.Truncate(2)) && price.LessThanOrEqual(MaxPrice)
}

// FieldError is a single violation, keyed by the JSON name of the field.
type FieldError struct {
	Field string
	Tag   string
}

// Fields flattens a validator error into its violations, in struct
// declaration order. It returns nil for any other kind of error.
func Fields(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		fields = append(fields, FieldError{Field: e.Field(), Tag: e.Tag()})
	}
	return fields
}

// First returns the message of the first violated field. messages is
// searched for "field.tag" first, then "field". ok is false when err
// carries no violation.
func First(err error, messages map[string]string) (field, message string, ok bool) {
	fields := Fields(err)
	if len(fields) == 0 {
		return "", "", false
	}
	field = fields[0].Field
	message, found := messages[field+"."+fields[0].Tag]
	if !found {
		message, found = messages[field]
	}
	if !found {
		message = field + " tidak valid"
	}
	return field, message, true
}
