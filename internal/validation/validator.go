package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"finance-tracker/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of every calendar date in request bodies and queries.
const DateLayout = "2006-01-02"

// Validator wraps the go-playground validator with ledger rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("amount", validateAmount)
	_ = v.RegisterValidation("signed_amount", validateSignedAmount)
	_ = v.RegisterValidation("civil_date", validateCivilDate)
	_ = v.RegisterValidation("currency_code", validateCurrencyCode)
	_ = v.RegisterValidation("account_type", validateAccountType)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("category_type", validateCategoryType)
	_ = v.RegisterValidation("budget_period", validateBudgetPeriod)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a request struct
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FieldErrors flattens validator errors into field name to message pairs.
// It returns nil when err carries no field errors.
func FieldErrors(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fieldErrors := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fieldErrors[fieldErr.Field()] = FormatFieldError(fieldErr)
	}
	return fieldErrors
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "hexcolor":
		return "must be a hex color such as #22C55E"
	case "amount":
		return "must be a non-negative amount with at most 2 decimal places"
	case "signed_amount":
		return "must be an amount with at most 2 decimal places"
	case "civil_date":
		return "must be a date in YYYY-MM-DD format"
	case "currency_code":
		return "must be an ISO 4217 currency code"
	case "account_type":
		return "must be one of: checking savings credit_card cash investment loan"
	case "transaction_type":
		return "must be one of: income expense transfer"
	case "category_type":
		return "must be one of: income expense"
	case "budget_period":
		return "must be one of: weekly monthly yearly"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}

// ParseDate parses a YYYY-MM-DD string into a civil date at midnight UTC
func ParseDate(raw string) (time.Time, error) {
	date, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", raw, err)
	}
	return date, nil
}

// ParseSignedAmount parses an amount that may be negative, such as an opening
// balance on a credit card.
func ParseSignedAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", models.ErrInvalidAmount, raw)
	}
	if err := models.ValidateAmount(amount.Abs()); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// Custom validation functions

// validateAmount accepts a non-negative decimal string with at most 2 decimal places
func validateAmount(fl validator.FieldLevel) bool {
	_, err := models.ParseAmount(fl.Field().String())
	return err == nil
}

// validateSignedAmount accepts any decimal string with at most 2 decimal places
func validateSignedAmount(fl validator.FieldLevel) bool {
	_, err := ParseSignedAmount(fl.Field().String())
	return err == nil
}

func validateCivilDate(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String())
	return err == nil
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	_, err := models.NormalizeCurrency(fl.Field().String())
	return err == nil
}

func validateAccountType(fl validator.FieldLevel) bool {
	return models.IsValidAccountType(fl.Field().String())
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(fl.Field().String())
}

func validateCategoryType(fl validator.FieldLevel) bool {
	return models.IsValidCategoryType(fl.Field().String())
}

func validateBudgetPeriod(fl validator.FieldLevel) bool {
	return models.IsValidBudgetPeriod(fl.Field().String())
}
