package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
)

const (
	defaultIssuer     = "accounts-backend"
	defaultTTLMinutes = 60
	defaultBcryptCost = 10
)

// keys lists the settings read from the environment. Anything else in the
// environment is ignored, as are blank values.
var keys = map[string]struct{}{
	"port":                 {},
	"database_url":         {},
	"jwt_secret":           {},
	"jwt_issuer":           {},
	"jwt_ttl_minutes":      {},
	"bcrypt_cost":          {},
	"cors_allowed_origins": {},
	"log_level":            {},
	"log_format":           {},
}

// Config holds runtime configuration sourced from an optional YAML file and
// the environment.
type Config struct {
	Port        string        `validate:"required"`
	DatabaseURL string        `validate:"required"`
	JWTSecret   string        `validate:"required"`
	JWTIssuer   string        `validate:"required"`
	JWTTTL      time.Duration `validate:"gt=0"`
	BcryptCost  int           `validate:"min=4,max=31"`
	CORSOrigins []string      `validate:"min=1"`
	LogLevel    string        `validate:"oneof=debug info warn error"`
	LogFormat   string        `validate:"oneof=json text"`
}

// raw mirrors the flat key space before defaults are applied.
type raw struct {
	Port        string `koanf:"port"`
	DatabaseURL string `koanf:"database_url"`
	JWTSecret   string `koanf:"jwt_secret"`
	JWTIssuer   string `koanf:"jwt_issuer"`
	TTLMinutes  int    `koanf:"jwt_ttl_minutes"`
	BcryptCost  int    `koanf:"bcrypt_cost"`
	CORSOrigins string `koanf:"cors_allowed_origins"`
	LogLevel    string `koanf:"log_level"`
	LogFormat   string `koanf:"log_format"`
}

// Load reads the YAML file at path, when path is not empty, then overlays the
// environment. Environment values win.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, oops.With("path", path).Wrapf(err, "read config file")
		}
	}

	err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(key)
			value = strings.TrimSpace(value)
			if _, ok := keys[key]; !ok || value == "" {
				return "", nil
			}
			return key, value
		},
	}), nil)
	if err != nil {
		return Config{}, oops.Wrapf(err, "load environment")
	}

	var r raw
	if err := k.Unmarshal("", &r); err != nil {
		return Config{}, oops.Wrapf(err, "decode config")
	}

	cfg := Config{
		Port:        strings.TrimSpace(r.Port),
		DatabaseURL: strings.TrimSpace(r.DatabaseURL),
		JWTSecret:   strings.TrimSpace(r.JWTSecret),
		JWTIssuer:   fallback(r.JWTIssuer, defaultIssuer),
		JWTTTL:      defaultTTLMinutes * time.Minute,
		BcryptCost:  r.BcryptCost,
		CORSOrigins: parseCSV(fallback(r.CORSOrigins, "*")),
		LogLevel:    strings.ToLower(fallback(r.LogLevel, "info")),
		LogFormat:   strings.ToLower(fallback(r.LogFormat, "json")),
	}
	if r.TTLMinutes > 0 {
		cfg.JWTTTL = time.Duration(r.TTLMinutes) * time.Minute
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = defaultBcryptCost
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against its constraints and names the
// offending environment key on failure.
func (c Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) || len(fields) == 0 {
		return oops.Wrapf(err, "validate config")
	}
	first := fields[0]
	return oops.
		Code("invalid_config").
		With("field", first.Field()).
		Errorf("%s is invalid (%s)", envName(first.Field()), first.Tag())
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// SlogLevel maps LogLevel onto a slog level.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func envName(field string) string {
	switch field {
	case "Port":
		return "PORT"
	case "DatabaseURL":
		return "DATABASE_URL"
	case "JWTSecret":
		return "JWT_SECRET"
	case "JWTIssuer":
		return "JWT_ISSUER"
	case "JWTTTL":
		return "JWT_TTL_MINUTES"
	case "BcryptCost":
		return "BCRYPT_COST"
	case "CORSOrigins":
		return "CORS_ALLOWED_ORIGINS"
	case "LogLevel":
		return "LOG_LEVEL"
	case "LogFormat":
		return "LOG_FORMAT"
	default:
		return field
	}
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
