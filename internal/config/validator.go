package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aleister1102/legacyurl/internal/common/errorwrapper"
	"github.com/aleister1102/legacyurl/internal/querystring"
	"github.com/go-playground/validator/v10"
)

// newValidator returns a validator with the custom rules used by the config tags.
func newValidator() *validator.Validate {
	validate := validator.New()

	// Register custom validation for LogLevel
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		level := strings.ToLower(fl.Field().String())
		switch level {
		case "", "debug", "info", "warn", "error", "fatal", "panic": // Allow empty for omitempty
			return true
		default:
			return false
		}
	})

	// Register custom validation for LogFormat
	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		format := strings.ToLower(fl.Field().String())
		switch format {
		case "", "console", "text", "json": // Allow empty for omitempty
			return true
		default:
			return false
		}
	})

	// Register custom validation for the query duplicate-key policy
	_ = validate.RegisterValidation("duplicatepolicy", func(fl validator.FieldLevel) bool {
		_, err := querystring.ParseDuplicatePolicy(fl.Field().String())
		return err == nil
	})

	return validate
}

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	if cfg == nil {
		return errorwrapper.NewConfigurationError("", "", "configuration is nil")
	}

	err := newValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("configuration validation error: %w", err)
	}

	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		msg := fmt.Sprintf("Validation failed for '%s': rule '%s'", e.StructNamespace(), e.Tag())
		if e.Param() != "" {
			msg += fmt.Sprintf(" (expected: %s)", e.Param())
		}
		if e.Value() != nil && e.Value() != "" {
			msg += fmt.Sprintf(", actual: '%v'", e.Value())
		}
		messages = append(messages, msg)
	}
	return errorwrapper.NewConfigurationError(sectionOf(errs[0]), errs[0].Field(), strings.Join(messages, "; "))
}

// sectionOf returns the top-level config section a validation error belongs to.
func sectionOf(e validator.FieldError) string {
	parts := strings.Split(e.StructNamespace(), ".")
	if len(parts) < 3 {
		return ""
	}
	return parts[1]
}
