// Package validator wraps go-playground/validator with a lazily built
// singleton, a few project tags and a uniform multi-error format.
//
// Project tags:
//   - slug: lowercase letters, digits, '-' and '_' (channel and task names).
package validator

import (
	"errors"
	"fmt"
	"regexp"
	"sync"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidation is always the first error of the chain returned on failure.
var ErrValidation = errors.New("validation error")

var (
	validator     *gvalidator.Validate
	initValidator sync.Once

	slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

// errStringFormat renders one field violation.
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// Init builds the singleton. Calling it is optional; Validate calls it too.
func Init() {
	initValidator.Do(func() {
		validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
		_ = validator.RegisterValidation("slug", func(fl gvalidator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})
	})
}

func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidation}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Namespace(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v's struct tags.
func Validate(v any) error {
	Init()

	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// Var checks a single value against tag.
func Var(v any, tag string) error {
	Init()

	if err := validator.Var(v, tag); err != nil {
		return formatError(err)
	}

	return nil
}
