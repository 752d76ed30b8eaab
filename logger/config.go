package logger

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/titanous/json5"
)

// Config describes a logger as read from a configuration file.
type Config struct {
	// Level is the minimum level name, e.g. "warning". Empty means everything.
	Level string `toml:"level" json:"level" validate:"omitempty,level"`
	// Channel is the default channel. Empty omits the channel tag.
	Channel string `toml:"channel" json:"channel"`
	// FilePath is appended to for every emitted line; empty disables file logging.
	FilePath string `toml:"file_path" json:"file_path"`
	// DateFormat is the timestamp pattern. Nil selects DefaultDateFormat,
	// an empty string drops the timestamp.
	DateFormat *string `toml:"date_format" json:"date_format"`
	// StdOut enables console output. Nil means enabled.
	StdOut *bool `toml:"stdout" json:"stdout"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("level", validLevel); err != nil {
		panic(err)
	}
	return v
}

func validLevel(fl validator.FieldLevel) bool {
	_, err := ParseLevel(fl.Field().String())
	return err == nil
}

// LoadConfig reads a logger configuration from a .toml, .json or .json5 file.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return cfg, wrapKind(ErrConfig, err, 0)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(content, &cfg); err != nil {
			var derr *toml.DecodeError
			if stderrors.As(err, &derr) {
				row, col := derr.Position()
				err = fmt.Errorf("%s: line %d, column %d: %w", path, row, col, err)
			}
			return cfg, wrapKind(ErrConfig, err, 0)
		}
	case ".json", ".json5":
		if err := json5.Unmarshal(content, &cfg); err != nil {
			return cfg, wrapKind(ErrConfig, fmt.Errorf("%s: %w", path, err), 0)
		}
	default:
		return cfg, wrapKind(ErrConfig, fmt.Errorf("unsupported config file extension %q", ext), 0)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration and reports every invalid field.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return wrapKind(ErrConfig, err, 0)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s: invalid value %q (%s)", fe.Field(), fe.Value(), fe.Tag()))
	}
	return wrapKind(ErrConfig, stderrors.New(strings.Join(msgs, "; ")), 0)
}

// NewFromConfig validates cfg and builds a logger from it.
func NewFromConfig(cfg Config) (*Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level := Everything
	if cfg.Level != "" {
		lvl, err := ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		level = lvl
	}

	l := New(level, cfg.Channel, cfg.FilePath)
	if cfg.DateFormat != nil {
		l.SetDateFormat(*cfg.DateFormat)
	}
	if cfg.StdOut != nil {
		l.SetStdOut(*cfg.StdOut)
	}
	return l, nil
}
