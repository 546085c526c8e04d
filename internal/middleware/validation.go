package middleware

import (
	"fmt"

	"github.com/evokeessence/evoke_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SupportedCurrencyTag is the binding tag accepting codes from the supported set, in any case.
const SupportedCurrencyTag = "supported_currency"

// RegisterValidators installs the custom binding tags on gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation(SupportedCurrencyTag, validateSupportedCurrency)
}

func validateSupportedCurrency(fl validator.FieldLevel) bool {
	return domain.IsSupportedCurrency(fl.Field().String())
}
