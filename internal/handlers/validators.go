package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterCustomValidators wires domain-specific binding rules into gin's
// validator engine. Must run before routes are served.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("geo_lat", decimalInRange(-90, 90))
	_ = v.RegisterValidation("geo_long", decimalInRange(-180, 180))
}

// decimalInRange validates that a decimal field lies within [min, max].
func decimalInRange(min, max int64) validator.Func {
	lo := decimal.NewFromInt(min)
	hi := decimal.NewFromInt(max)
	return func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		if !ok {
			return false
		}
		return d.GreaterThanOrEqual(lo) && d.LessThanOrEqual(hi)
	}
}
