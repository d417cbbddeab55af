package validator

import (
	"splendico/pkg/logger"
	"splendico/pkg/model"
	"splendico/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type RoomValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewRoomValidator(log *logger.Logger) *RoomValidator {
	return &RoomValidator{
		validate: validation.New(),
		logger:   log,
	}
}

func (v *RoomValidator) ValidateUpdate(update *model.RoomUpdate) error {
	if update.IsEmpty() {
		return validation.ValidationErrors{{
			Field:   "body",
			Message: "at least one of available, price, specialOffer, description is required",
		}}
	}
	return validation.Struct(v.validate, update)
}
