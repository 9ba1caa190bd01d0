package config

import (
	"fmt"
	"os"
	"strings"

	ktoml "github.com/knadh/koanf/parsers/toml/v2"
	kenv "github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix префикс переменных окружения; "__" разделяет секции,
// например READTOML_LOG__VERBOSE=true
const EnvPrefix = "READTOML_"

// Config конфигурация readtoml
type Config struct {
	Log    LogConfig    `koanf:"log"`
	Action ActionConfig `koanf:"action"`
}

type LogConfig struct {
	Verbose bool   `koanf:"verbose"`
	Format  string `koanf:"format"` // plain | actions
}

type ActionConfig struct {
	// Metadata путь к action.yml вместо встроенного
	Metadata string `koanf:"metadata"`
}

// LoadOptions откуда читать конфигурацию
type LoadOptions struct {
	Path      string // TOML файл конфигурации (необязательно)
	EnableEnv bool   // применять переопределения READTOML_*
}

// Default настройки по умолчанию
func Default() Config {
	return Config{
		Log: LogConfig{Format: "plain"},
	}
}

// Load накладывает по порядку: дефолты, файл конфигурации, переменные окружения
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	if opts.Path != "" {
		if _, err := os.Stat(opts.Path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", opts.Path, err)
		}
		if err := k.Load(file.Provider(opts.Path), ktoml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config %s: %w", opts.Path, err)
		}
	}

	if opts.EnableEnv {
		err := k.Load(kenv.Provider(EnvPrefix, ".", func(s string) string {
			s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
			return strings.ReplaceAll(s, "__", ".")
		}), nil)
		if err != nil {
			return nil, fmt.Errorf("loading env overrides: %w", err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}
