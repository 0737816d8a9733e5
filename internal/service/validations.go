package service

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/habitlog/internal/error_values"
	"github.com/limbo/habitlog/pkg/entity"
	"github.com/limbo/habitlog/pkg/period"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("rating", func(fl validator.FieldLevel) bool {
			return entity.Rating(fl.Field().String()).Valid()
		})
		validate.RegisterValidation("frequency", func(fl validator.FieldLevel) bool {
			return period.Frequency(fl.Field().String()).Valid()
		})
	})
}

// validateStruct runs the validator and folds field errors onto
// ErrValidation. A failing frequency tag reports ErrUnsupportedFrequency.
func validateStruct(req any) error {
	InitValidator()
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errors.Join(errorvalues.ErrValidation, err)
	}
	joined := []error{errorvalues.ErrValidation}
	for _, fieldErr := range validationErrors {
		if fieldErr.Tag() == "frequency" {
			joined[0] = errorvalues.ErrUnsupportedFrequency
			continue
		}
		joined = append(joined, fieldErr)
	}
	return errors.Join(joined...)
}
