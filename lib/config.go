package lib

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	DefaultTable   = "MotivationalQuotes"
	DefaultModelID = "anthropic.claude-3-sonnet-20240229-v1:0"
)

type Config struct {
	Table  string      `koanf:"table"  validate:"required,min=3,max=255"`
	Author string      `koanf:"author"`
	Model  ModelConfig `koanf:"model"`
	Auth   AuthConfig  `koanf:"auth"`
	Log    LogConfig   `koanf:"log"`
}

type ModelConfig struct {
	ID string `koanf:"id" validate:"required"`
}

type AuthConfig struct {
	Tokens []string `koanf:"tokens" validate:"omitempty,dive,required"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"omitempty,oneof=debug info warn warning error"`
}

// recognized environment variables and the config keys they set
var configEnv = map[string]string{
	"DYNAMO_TABLE": "table",
	"QUOTE_AUTHOR": "author",
	"MODEL_ID":     "model.id",
	"AUTH_TOKENS":  "auth.tokens",
	"LOG_LEVEL":    "log.level",
}

func configDefaults() map[string]any {
	return map[string]any{
		"table":       DefaultTable,
		"author":      "",
		"model.id":    DefaultModelID,
		"auth.tokens": []string{},
		"log.level":   "info",
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig layers defaults, the yaml file named by QUOTES_CONFIG, and the
// environment, in that order of increasing precedence.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(confmap.Provider(configDefaults(), "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	path := os.Getenv("QUOTES_CONFIG")
	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		err = k.Load(file.Provider(path), yaml.Parser())
		if err != nil {
			return nil, fmt.Errorf("loading config file %q: %w", path, err)
		}
	}

	err = k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		name, ok := configEnv[key]
		if !ok {
			return "", nil
		}
		if name == "auth.tokens" {
			return name, SplitList(value)
		}
		return name, strings.TrimSpace(value)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	var lines []string
	for _, e := range verrs {
		field := strings.ToLower(strings.TrimPrefix(e.Namespace(), "Config."))
		switch e.Tag() {
		case "required":
			lines = append(lines, fmt.Sprintf("%s is required", field))
		case "oneof":
			lines = append(lines, fmt.Sprintf("%s must be one of: %s", field, e.Param()))
		default:
			lines = append(lines, fmt.Sprintf("%s failed validation: %s", field, e.Tag()))
		}
	}
	return fmt.Errorf("config validation failed:\n  %s", strings.Join(lines, "\n  "))
}
