package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"hoteladmin/constants"
)

// RegisterBindingValidators registra los validadores de catálogo en el motor
// de binding de gin para que los tags de los dto los puedan usar.
func RegisterBindingValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("roomtype", func(fl validator.FieldLevel) bool {
		return constants.IsValidRoomType(fl.Field().String())
	})
	v.RegisterValidation("doctype", func(fl validator.FieldLevel) bool {
		return constants.IsValidDocumentType(fl.Field().String())
	})
	v.RegisterValidation("paymethod", func(fl validator.FieldLevel) bool {
		return constants.IsValidPaymentMethod(fl.Field().String())
	})
	v.RegisterValidation("resstatus", func(fl validator.FieldLevel) bool {
		return constants.IsValidReservationStatus(fl.Field().String())
	})
}
