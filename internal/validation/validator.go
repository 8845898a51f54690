package validation

import (
	"reflect"
	"regexp"
	"strings"

	"rental-backoffice/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("currency_code", validateCurrencyCode)
	_ = v.RegisterValidation("payout_method", validatePayoutMethod)
	_ = v.RegisterValidation("payment_flow", validatePaymentFlow)
	_ = v.RegisterValidation("booking_status", validateBookingStatus)
	_ = v.RegisterValidation("expense_payer", validateExpensePayer)
	_ = v.RegisterValidation("commission_rate", validateCommissionRate)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateCurrencyCode validates an ISO 4217 style three-letter currency code
func validateCurrencyCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	matched, _ := regexp.MatchString(`^[A-Z]{3}$`, code)
	return matched
}

// validatePayoutMethod validates that a payout method is one of the supported channels
func validatePayoutMethod(fl validator.FieldLevel) bool {
	return models.IsValidPayoutMethod(fl.Field().String())
}

// validatePaymentFlow validates who received the guest's payment
func validatePaymentFlow(fl validator.FieldLevel) bool {
	return models.IsValidPaymentFlow(fl.Field().String())
}

// validateBookingStatus validates that a booking status is one of the known states
func validateBookingStatus(fl validator.FieldLevel) bool {
	return models.IsValidBookingStatus(fl.Field().String())
}

// validateExpensePayer validates the paid-by attribution of an expense
func validateExpensePayer(fl validator.FieldLevel) bool {
	return models.IsValidExpensePayer(fl.Field().String())
}

// validateCommissionRate validates that a commission rate is a fraction in [0, 1]
func validateCommissionRate(fl validator.FieldLevel) bool {
	rate, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return rate.GreaterThanOrEqual(decimal.Zero) && rate.LessThanOrEqual(decimal.NewFromInt(1))
}
