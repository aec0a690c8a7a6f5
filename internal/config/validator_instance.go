package config

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	widgetIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]{0,31}$`)
)

// validatorInstance configures and returns the validator shared by the
// package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// report fields under their file key names
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("widget_id", func(fl validator.FieldLevel) bool {
			return widgetIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the shared validator for use outside the package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
