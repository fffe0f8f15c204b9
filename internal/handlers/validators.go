package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/SscSPs/property_ledger/internal/core/domain"
)

// registerValidators adds the ledger's custom binding tags to gin's validator.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	// accountcode: digits only, with a length that maps to a chart level
	_ = v.RegisterValidation("accountcode", func(fl validator.FieldLevel) bool {
		_, err := domain.LevelForCode(fl.Field().String())
		return err == nil
	})
}
