// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validPeriods = map[string]bool{
	"monthly": true,
	"weekly":  true,
	"all":     true,
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("report_period", validateReportPeriod)
	}
}

func validateReportPeriod(fl validator.FieldLevel) bool {
	return validPeriods[fl.Field().String()]
}
