package portfolio

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator, reporting fields by their JSON names.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})

		validateInst = v
	})
	return validateInst
}

// ValidationError describes one invalid field of a portfolio document.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the document's schema and that cuisine IDs are unique.
// All problems found are returned joined together.
func Validate(p *Portfolio) error {
	if p == nil {
		return errors.New("portfolio is nil")
	}

	var errs []error
	if err := validatorInstance().Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			errs = append(errs, &ValidationError{Field: fe.Namespace(), Message: describe(fe)})
		}
	}

	seen := make(map[ID]int, len(p.Cuisines))
	for i, c := range p.Cuisines {
		if c == nil || c.ID == "" {
			continue
		}
		if j, ok := seen[c.ID]; ok {
			errs = append(errs, &ValidationError{
				Field:   fmt.Sprintf("Portfolio.cuisines[%d].id", i),
				Message: fmt.Sprintf("duplicate cuisine id %q (also used by cuisines[%d])", c.ID, j),
			})
			continue
		}
		seen[c.ID] = i
	}

	return errors.Join(errs...)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "nonblank":
		return "is required"
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
