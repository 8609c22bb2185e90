package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/service"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/jwtx"
	"github.com/spf13/viper"
)

type Config struct {
	Issuer     string // Required: iss claim of access tokens
	Audience   string // Required: aud claim of access tokens
	SigningKey []byte // Required: HS256 shared secret, at least 32 bytes

	AccessTokenTTL  time.Duration // Required: from AUTH_ACCESS_TOKEN_MINUTES
	RefreshTokenTTL time.Duration // Required: from AUTH_REFRESH_TOKEN_DAYS

	DatabaseFile         string        // Optional: path to SQLite database file (default: auth.db)
	PepperFile           string        // Optional: path to file containing pepper for password hashing (default: pepper)
	DefaultRoles         []string      // Optional: roles provisioned at startup
	TokenRetention       time.Duration // Optional: how long dead refresh tokens are kept (default: 30 days)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

// LoadConfig reads the configuration from the environment, layered over an
// optional YAML file named by AUTH_CONFIG_FILE. Missing or invalid required
// options are reported together.
func LoadConfig() (Config, error) {
	v := viper.New()

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := v.GetString("auth.config_file"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	setDefaults(v)

	cfg := Config{
		Issuer:               strings.TrimSpace(v.GetString("auth.issuer")),
		Audience:             strings.TrimSpace(v.GetString("auth.audience")),
		SigningKey:           []byte(v.GetString("auth.signing_key")),
		AccessTokenTTL:       time.Duration(v.GetInt("auth.access_token_minutes")) * time.Minute,
		RefreshTokenTTL:      time.Duration(v.GetInt("auth.refresh_token_days")) * 24 * time.Hour,
		DatabaseFile:         v.GetString("auth.database_file"),
		PepperFile:           v.GetString("auth.pepper_file"),
		DefaultRoles:         splitList(v.GetString("auth.default_roles")),
		TokenRetention:       v.GetDuration("auth.token_retention"),
		Env:                  v.GetString("env"),
		LogLevel:             v.GetString("log.level"),
		LogFormat:            v.GetString("log.format"),
		Port:                 v.GetInt("port"),
		ShutdownGracePeriod:  v.GetDuration("shutdown.grace_period"),
		HousekeepingInterval: v.GetDuration("housekeeping.interval"),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("auth.database_file", "auth.db")
	v.SetDefault("auth.pepper_file", "pepper")
	v.SetDefault("auth.default_roles", strings.Join(service.DefaultRoles, ","))
	v.SetDefault("auth.token_retention", service.DefaultTokenRetention)

	v.SetDefault("env", "dev")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("port", 8080)
	v.SetDefault("shutdown.grace_period", 10*time.Second)
	v.SetDefault("housekeeping.interval", time.Hour)
}

func (c Config) validate() error {
	var errs []error

	if c.Issuer == "" {
		errs = append(errs, errors.New("AUTH_ISSUER is required"))
	}
	if c.Audience == "" {
		errs = append(errs, errors.New("AUTH_AUDIENCE is required"))
	}
	if len(c.SigningKey) < jwtx.MinHS256KeyLength {
		errs = append(errs, fmt.Errorf("AUTH_SIGNING_KEY must be at least %d bytes", jwtx.MinHS256KeyLength))
	}
	if c.AccessTokenTTL <= 0 {
		errs = append(errs, errors.New("AUTH_ACCESS_TOKEN_MINUTES must be a positive integer"))
	}
	if c.RefreshTokenTTL <= 0 {
		errs = append(errs, errors.New("AUTH_REFRESH_TOKEN_DAYS must be a positive integer"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d is out of range", c.Port))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
