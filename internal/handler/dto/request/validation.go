package request

import (
	"resbook/internal/domain/resource"
	"resbook/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations adds the enum validations used by the request DTOs to
// gin's binding validator. Called once at bootstrap.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errs.New("unexpected binding validator engine")
	}

	if err := v.RegisterValidation("resourcekind", func(fl validator.FieldLevel) bool {
		return resource.Kind(fl.Field().String()).IsValid()
	}); err != nil {
		return errs.Wrap(err, "register resourcekind validation")
	}
	if err := v.RegisterValidation("spottype", func(fl validator.FieldLevel) bool {
		return resource.SpotType(fl.Field().String()).IsValid()
	}); err != nil {
		return errs.Wrap(err, "register spottype validation")
	}
	if err := v.RegisterValidation("vehicletype", func(fl validator.FieldLevel) bool {
		return resource.VehicleType(fl.Field().String()).IsValid()
	}); err != nil {
		return errs.Wrap(err, "register vehicletype validation")
	}
	return nil
}
