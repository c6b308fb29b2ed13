package request

import (
	"mansion-pos/internal/domain/deposit"
	"mansion-pos/internal/domain/payment"
	"mansion-pos/internal/domain/room"
	"mansion-pos/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var customTags = map[string]validator.Func{
	"payment_method": func(fl validator.FieldLevel) bool {
		return payment.Method(fl.Field().String()).IsValid()
	},
	"room_status": func(fl validator.FieldLevel) bool {
		return room.Status(fl.Field().String()).IsValid()
	},
	"bed_type": func(fl validator.FieldLevel) bool {
		return room.BedType(fl.Field().String()).IsValid()
	},
	"deposit_status": func(fl validator.FieldLevel) bool {
		return deposit.Status(fl.Field().String()).IsValid()
	},
}

// RegisterValidators installs the domain enum tags on gin's binding engine.
// Re-registering replaces the previous function, so calling it twice is safe.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errs.New("binding engine is not go-playground/validator")
	}
	for tag, fn := range customTags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return errs.Wrapf(err, "register %s", tag)
		}
	}
	return nil
}
