package config

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/themeforge/internal/render"
	"github.com/alexisbeaulieu97/themeforge/internal/theme"
	forgeerrors "github.com/alexisbeaulieu97/themeforge/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("font_id", func(fl validator.FieldLevel) bool {
			return theme.FontID(fl.Field().String()).Supported()
		})

		_ = v.RegisterValidation("resolver_tier", func(fl validator.FieldLevel) bool {
			return slices.Contains(render.Tiers(), fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := ve.Field()
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if hint := tagHint(ve.Tag()); hint != "" {
			msg += ": " + hint
		}
		return forgeerrors.NewValidationError(field, msg, err)
	}

	return forgeerrors.NewValidationError("settings", err.Error(), err)
}

func tagHint(tag string) string {
	switch tag {
	case "resolver_tier":
		return "expected one of " + strings.Join(render.Tiers(), ", ")
	case "font_id":
		ids := make([]string, 0, len(theme.Fonts()))
		for _, f := range theme.Fonts() {
			ids = append(ids, string(f.ID))
		}
		return "expected one of " + strings.Join(ids, ", ")
	default:
		return ""
	}
}
