package domain

import (
	"github.com/go-playground/validator/v10"
)

// IsValidPostalCode reports whether s is a Thai postal code (exactly five ASCII digits)
func IsValidPostalCode(s string) bool {
	return len(s) == 5 && allDigits(s)
}

// IsValidPhone reports whether s looks like a Thai phone number:
// 9 or 10 digits starting with 0
func IsValidPhone(s string) bool {
	return (len(s) == 9 || len(s) == 10) && s[0] == '0' && allDigits(s)
}

// IsValidTaxID reports whether s is a 13 digit Thai tax identification number
func IsValidTaxID(s string) bool {
	return len(s) == 13 && allDigits(s)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// RegisterValidators adds the thpostal, thphone and thtaxid tags
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("thpostal", func(fl validator.FieldLevel) bool {
		return IsValidPostalCode(fl.Field().String())
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("thphone", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("thtaxid", func(fl validator.FieldLevel) bool {
		return IsValidTaxID(fl.Field().String())
	})
}

// NewValidator returns a validator with the Thai-specific tags registered
func NewValidator() *validator.Validate {
	v := validator.New()
	if err := RegisterValidators(v); err != nil {
		panic(err)
	}
	return v
}
