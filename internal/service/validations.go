package service

import (
	"errors"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/pkg/calendar"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
		// YYYY-MM-DD
		validate.RegisterValidation("calendar_date", func(fl validator.FieldLevel) bool {
			_, err := calendar.Parse(fl.Field().String())
			return err == nil
		})
		// HH:MM
		validate.RegisterValidation("clock_time", func(fl validator.FieldLevel) bool {
			return calendar.ValidTimeOfDay(fl.Field().String())
		})
	})
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		joined := []error{errorvalues.ErrValidation}
		for _, fieldErr := range fieldErrs {
			joined = append(joined, fieldErr)
		}
		return errors.Join(joined...)
	}
	return errors.New("validation unexpected error: " + err.Error())
}

func invalid(msg string) error {
	return errors.Join(errorvalues.ErrValidation, errors.New(msg))
}

// normalizeNames trims names and drops blank ones, order is kept
func normalizeNames(names []string) []string {
	result := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			result = append(result, name)
		}
	}
	return result
}
