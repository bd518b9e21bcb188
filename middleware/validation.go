package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"resto-go-pos/pkg/security"
)

// RegisterValidators installs custom binding rules on gin's validator engine.
// Currently only "password", used by the auth DTOs.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
			return security.ValidatePasswordStrength(fl.Field().String()) == nil
		})
	}
}
