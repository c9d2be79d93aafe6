package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	apperrors "github.com/frahmantamala/hr-records/internal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	_ = v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return money.GetCurrency(fl.Field().String()) != nil
	})
	return v
}

// Struct runs the `validate` tags of s and reports every failing field at
// once. It returns a nil error, never a typed nil.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewValidationError(err.Error(), apperrors.ErrCodeInvalidRequest)
	}

	details := apperrors.ValidationErrors{Errors: make([]apperrors.ValidationError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		details.Errors = append(details.Errors, apperrors.ValidationError{
			Field:   fe.Field(),
			Message: message(fe),
			Code:    string(apperrors.ErrCodeValidationFailed),
		})
	}
	return apperrors.NewValidationError("Validation failed", apperrors.ErrCodeValidationFailed).WithDetails(details)
}

// DecimalRange checks lower < upper for a pair of money fields.
func DecimalRange(lowerField string, lower decimal.Decimal, upperField string, upper decimal.Decimal) error {
	if lower.IsNegative() {
		return apperrors.NewValidationFieldError(lowerField, fmt.Sprintf("%s must not be negative", lowerField), apperrors.ErrCodeInvalidRange)
	}
	if !lower.LessThan(upper) {
		return apperrors.NewValidationFieldError(upperField,
			fmt.Sprintf("%s must be greater than %s", upperField, lowerField), apperrors.ErrCodeInvalidRange)
	}
	return nil
}

// NotNegative rejects negative money amounts.
func NotNegative(field string, value decimal.Decimal) error {
	if value.IsNegative() {
		return apperrors.NewValidationFieldError(field, fmt.Sprintf("%s must not be negative", field), apperrors.ErrCodeInvalidRange)
	}
	return nil
}

// MinorUnits rejects amounts with more decimal places than currency allows,
// e.g. cents on a JPY amount. Unknown currencies are left to the struct tags.
func MinorUnits(field string, value decimal.Decimal, currency string) error {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return nil
	}
	if !value.Equal(value.Truncate(int32(cur.Fraction))) {
		return apperrors.NewValidationFieldError(field,
			fmt.Sprintf("%s allows at most %d decimal places for %s", field, cur.Fraction, cur.Code), apperrors.ErrCodeInvalidRange)
	}
	return nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	case "currency":
		return fmt.Sprintf("%s must be an ISO 4217 currency code", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}
