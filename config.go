package typelog

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

// Config carries everything Open needs. File is the only required field.
type Config struct {
	// File is a file-system path, or one of the TargetStdout/TargetStderr
	// sentinels (matched case-insensitively).
	File string `validate:"required"`

	// Mode selects append (default) or clobber semantics for file sinks.
	// It is ignored for the standard streams.
	Mode Mode `validate:"omitempty,oneof=append clobber"`

	// Types, when non-nil, closes the registry to exactly these labels.
	// Duplicates collapse. A non-nil empty list is a ConfigError.
	Types []string `validate:"omitempty,dive,required"`

	// InvalidType is invoked once per rejected label. Nil selects the
	// default handler, which fails the log call with an InvalidTypeError.
	InvalidType InvalidTypeHandler `validate:"-"`

	// Registry injects a shared, read-only registry in place of
	// Types/InvalidType. Setting it together with either is a ConfigError.
	Registry *TypeRegistry `validate:"-"`
}

var validate *validator.Validate
var once sync.Once

func validateConfig(cfg *Config) error {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := validate.Struct(cfg); err != nil {
		return &ConfigError{Reason: errMsgConfigInvalid, Err: err}
	}

	// Distinguish "no restriction" (nil) from "restricted to nothing".
	if cfg.Types != nil && len(cfg.Types) == 0 {
		return &ConfigError{Reason: errMsgEmptyTypes}
	}
	if cfg.Registry != nil && (cfg.Types != nil || cfg.InvalidType != nil) {
		return &ConfigError{Reason: errMsgRegistryClash}
	}

	return nil
}
