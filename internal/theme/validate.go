package theme

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	lberrors "github.com/linebox-dev/linebox/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	colorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|#[0-9a-fA-F]{8}|[a-z][a-z-]*)$`)
)

// validatorInstance configures and returns the shared validator used by
// the theme package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			return colorPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks a theme against the engine's contract: a positive
// line height, well-formed palette entries, non-negative border
// defaults, and the mandatory gray fallback color.
func Validate(t Theme) error {
	if err := validatorInstance().Struct(t); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return lberrors.NewValidationError(first.Namespace(), fmt.Sprintf("failed %q constraint", first.Tag()), err)
		}
		return lberrors.NewValidationError("", "theme failed validation", err)
	}

	for name, value := range t.Colors {
		if !colorPattern.MatchString(value) {
			return lberrors.NewValidationError(
				fmt.Sprintf("colors.%s", name),
				fmt.Sprintf("%q is not a hex value or color keyword", value),
				nil,
			)
		}
	}

	if _, ok := t.Colors[FallbackColor]; !ok {
		return lberrors.NewValidationError(
			"colors."+FallbackColor,
			"themes must define a gray fallback border color",
			nil,
		)
	}

	return nil
}
