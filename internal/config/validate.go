package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rileyhilliard/imgdeck/internal/errors"
	"github.com/rileyhilliard/imgdeck/internal/loading"
	"github.com/rileyhilliard/imgdeck/internal/theme"
	"github.com/rileyhilliard/imgdeck/internal/util"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator with the imgdeck rules
// registered and yaml key names in error namespaces.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			_, err := theme.ParseMode(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("anchor", func(fl validator.FieldLevel) bool {
			_, err := loading.ParseAnchor(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks the config for errors and returns a structured error
// naming the first offending key.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but imgdeck only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade imgdeck, or lower the version in "+ConfigFileName)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// convertValidationError maps the first validator failure to a CONFIG error.
func convertValidationError(err error) error {
	ves, ok := err.(validator.ValidationErrors)
	if !ok || len(ves) == 0 {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Config validation failed",
			"Check "+ConfigFileName)
	}

	fe := ves[0]
	key := yamlKey(fe)
	return errors.WrapWithCode(err, errors.ErrConfig,
		fmt.Sprintf("Invalid value for '%s': %v", key, fe.Value()),
		suggestion(key, fe))
}

// yamlKey turns "Config.loading.anchor" into "loading.anchor".
func yamlKey(fe validator.FieldError) string {
	_, key, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Namespace()
	}
	return key
}

func suggestion(key string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "theme":
		names := make([]string, 0, len(theme.Modes))
		for _, m := range theme.Modes {
			names = append(names, string(m))
		}
		return "Use " + util.JoinChoices(names) + "."
	case "anchor":
		names := make([]string, 0, len(loading.Anchors)+1)
		for _, a := range loading.Anchors {
			names = append(names, string(a))
		}
		names = append(names, "leave it empty")
		return "Use " + util.JoinChoices(names) + "."
	case "hexcolor|numeric":
		return "Use a hex color like '#1677ff' or an ANSI color number like '6'."
	case "oneof":
		return "Use " + util.JoinChoices(strings.Fields(fe.Param())) + "."
	case "required":
		return fmt.Sprintf("Set '%s' in %s.", key, ConfigFileName)
	case "gte":
		return fmt.Sprintf("'%s' must be at least %s.", key, fe.Param())
	case "lte":
		return fmt.Sprintf("'%s' must be at most %s.", key, fe.Param())
	default:
		return fmt.Sprintf("Check '%s' in %s.", key, ConfigFileName)
	}
}
