package main

import (
	"errors"
	"go/token"
	"io/fs"

	"github.com/23skdu/colfilter/internal/codegen"
	errs "github.com/23skdu/colfilter/internal/errors"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces the generator's environment variables.
const envPrefix = "GENFILTER"

// Config holds generator configuration. Flags override the environment.
type Config struct {
	Output    string `envconfig:"OUTPUT"`
	Package   string `envconfig:"PACKAGE" default:"filter"`
	FuncName  string `envconfig:"FUNC" default:"compactUnrolled"`
	Base      string `envconfig:"BASE" default:"hex"`
	Gofmt     bool   `envconfig:"GOFMT" default:"true"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`
}

// Config validation errors
var (
	ErrInvalidPackage   = errors.New("package must be a Go identifier")
	ErrInvalidFuncName  = errors.New("func must be a Go identifier")
	ErrInvalidBase      = errors.New("base must be 'hex' or 'decimal'")
	ErrInvalidLogFormat = errors.New("log_format must be 'json' or 'console'")
	ErrInvalidLogLevel  = errors.New("log_level must be debug, info, warn, or error")
)

// DefaultConfig returns a Config with default values
func DefaultConfig() Config {
	return Config{
		Output:    "",
		Package:   "filter",
		FuncName:  "compactUnrolled",
		Base:      string(codegen.BaseHex),
		Gofmt:     true,
		LogLevel:  "warn",
		LogFormat: "console",
	}
}

// LoadConfig reads envFile, if it exists, into the environment and then
// processes GENFILTER_* variables.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errs.WrapConfigurationError(err, "load", "reading env file").
				WithContext("file", envFile)
		}
	}

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, errs.WrapConfigurationError(err, "load", "reading environment")
	}
	return cfg, nil
}

// ValidateConfig validates the configuration and returns an error if invalid
func ValidateConfig(cfg *Config) error {
	if !token.IsIdentifier(cfg.Package) || cfg.Package == "_" {
		return ErrInvalidPackage
	}
	if !token.IsIdentifier(cfg.FuncName) || cfg.FuncName == "_" {
		return ErrInvalidFuncName
	}
	if _, err := codegen.ParseLiteralBase(cfg.Base); err != nil {
		return ErrInvalidBase
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return ErrInvalidLogFormat
	}
	if cfg.LogLevel != "debug" && cfg.LogLevel != "info" && cfg.LogLevel != "warn" && cfg.LogLevel != "error" {
		return ErrInvalidLogLevel
	}
	return nil
}

// Options converts a validated Config into generator options.
func (c *Config) Options() codegen.Options {
	opts := codegen.DefaultOptions()
	opts.Package = c.Package
	opts.FuncName = c.FuncName
	opts.Base, _ = codegen.ParseLiteralBase(c.Base)
	opts.Format = c.Gofmt
	return opts
}
