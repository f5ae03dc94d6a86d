package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/s0up4200/reloop/tmdb"
)

// EnvPrefix prefixes every environment override, e.g. RELOOP_TMDB_API_KEY
const EnvPrefix = "RELOOP"

// LegacyKeyEnv is also read for the API key
const LegacyKeyEnv = "tmdb_key"

const placeholderKey = "your-api-key-here"

var languagePattern = regexp.MustCompile(`^[a-z]{2}(-[A-Z]{2})?$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report fields by their config key
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("mapstructure")
	})
	for tag, fn := range customValidations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("config: register %s validation: %v", tag, err))
		}
	}
	return v
}

var customValidations = map[string]validator.Func{
	"apikey": func(fl validator.FieldLevel) bool {
		return fl.Field().String() != placeholderKey
	},
	"language": func(fl validator.FieldLevel) bool {
		return languagePattern.MatchString(fl.Field().String())
	},
}

// Load loads the configuration from file and environment. An explicit
// configPath must exist; otherwise a missing file is fine as long as the
// environment supplies what validation needs.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("tmdb.api_key", EnvPrefix+"_TMDB_API_KEY", LegacyKeyEnv); err != nil {
		return nil, fmt.Errorf("error binding environment: %w", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".reloop"))
		}

		// Check /etc
		v.AddConfigPath("/etc/reloop/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	// Validate configuration
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// TMDB defaults
	v.SetDefault("tmdb.base_url", tmdb.DefaultBaseURL)
	v.SetDefault("tmdb.language", "")
	v.SetDefault("tmdb.timeout", "30s")

	// Server defaults
	v.SetDefault("server.addr", "127.0.0.1:3000")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "5s")
	v.SetDefault("server.playground", true)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// Validate checks if the configuration is valid
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fieldError(verrs[0])
		}
		return err
	}
	return nil
}

func fieldError(fe validator.FieldError) error {
	// Namespace is e.g. Config.tmdb.api_key
	key := fe.Namespace()
	if _, rest, ok := strings.Cut(key, "."); ok {
		key = rest
	}

	switch fe.Tag() {
	case "required":
		if key == "tmdb.api_key" {
			return fmt.Errorf("%s is required (set it in the config file, %s_TMDB_API_KEY or %s)", key, EnvPrefix, LegacyKeyEnv)
		}
		return fmt.Errorf("%s is required", key)
	case "apikey":
		return fmt.Errorf("%s must be set to a valid API key", key)
	case "url":
		return fmt.Errorf("%s must be a valid URL: %v", key, fe.Value())
	case "language":
		return fmt.Errorf("%s must look like en or en-US: %v", key, fe.Value())
	case "hostname_port":
		return fmt.Errorf("%s must be host:port: %v", key, fe.Value())
	case "gt":
		return fmt.Errorf("%s must be positive: %v", key, fe.Value())
	case "gte":
		return fmt.Errorf("%s must not be negative: %v", key, fe.Value())
	case "oneof":
		return fmt.Errorf("%s must be one of %s: %v", key, strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	default:
		return fmt.Errorf("%s is invalid", key)
	}
}
