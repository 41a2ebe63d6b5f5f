package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	// Register custom validation for warehouse table/dataset identifiers
	_ = validate.RegisterValidation("tablename", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		if name == "" {
			return true // Optional field, required handled separately
		}
		return tableNamePattern.MatchString(name)
	})

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

	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			messages := make([]string, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("field '%s' failed on rule '%s'", fieldErr.Namespace(), fieldErr.Tag()))
			}
			return fmt.Errorf("config validation failed: %s", strings.Join(messages, "; "))
		}
		return err
	}

	// Staging and output must not collide: the truncate-on-first-chunk load
	// would wipe the staging data mid-run.
	wc := cfg.WarehouseConfig
	if wc.StagingTableName() == wc.OutputTable {
		return fmt.Errorf("config validation failed: staging table '%s' must differ from output table", wc.StagingTableName())
	}

	return nil
}
