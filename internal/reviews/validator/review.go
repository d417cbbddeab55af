package validator

import (
	"splendico/pkg/logger"
	"splendico/pkg/model"
	"splendico/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type ReviewValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewReviewValidator(log *logger.Logger) *ReviewValidator {
	return &ReviewValidator{
		validate: validation.New(),
		logger:   log,
	}
}

func (v *ReviewValidator) Validate(review *model.Review) error {
	return validation.Struct(v.validate, review)
}
