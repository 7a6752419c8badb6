package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/color-game/colorimetry/converter"
)

const configFileEnv = "CONFIG_FILE"

var (
	ErrJwtSecretMissing = errors.New("JWT_SECRET is required when ADMIN_PASSWORD_HASH is set")
	ErrInvalidRetention = errors.New("history retention and prune interval must be positive")
	ErrInvalidMode      = errors.New("invalid conversion mode")
	ErrConfigFile       = errors.New("failed to read config file")
)

// Config holds every runtime setting of the service.
type Config struct {
	HTTPPort          string        `toml:"http_port"`
	DatabaseType      string        `toml:"db_type"`
	DatabaseHost      string        `toml:"db_host"`
	DatabaseUser      string        `toml:"db_user"`
	DatabasePassword  string        `toml:"db_password"`
	DatabaseName      string        `toml:"db_name"`
	SSLMode           string        `toml:"ssl_mode"`
	MigrationsDir     string        `toml:"migrations_dir"` // empty uses the embedded set
	HistoryEnabled    bool          `toml:"history_enabled"`
	HistoryRetention  time.Duration `toml:"-"`
	PruneInterval     time.Duration `toml:"-"`
	JwtSecret         string        `toml:"jwt_secret"`
	JwtAccessDuration int           `toml:"jwt_access_duration"` // seconds
	JwtDomain         string        `toml:"jwt_domain"`
	AdminPasswordHash string        `toml:"admin_password_hash"`
	AllowedOrigins    []string      `toml:"allowed_origins"`
	DevMode           bool          `toml:"dev_mode"`
	ConversionMode    string        `toml:"conversion_mode"`

	// durations as strings in the TOML file, e.g. "720h"
	HistoryRetentionText string `toml:"history_retention"`
	PruneIntervalText    string `toml:"prune_interval"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		HTTPPort:          ":8080",
		DatabaseType:      "postgres",
		DatabaseHost:      "localhost",
		DatabaseUser:      "postgres",
		DatabaseName:      "colorimetry",
		SSLMode:           "disable",
		HistoryEnabled:    true,
		HistoryRetention:  30 * 24 * time.Hour,
		PruneInterval:     time.Hour,
		JwtAccessDuration: 900, // 15 minutes
		AllowedOrigins:    []string{"http://localhost:3000", "http://localhost:5173"},
		DevMode:           true,
		ConversionMode:    "strict",
	}
}

// Load reads .env if present, then the optional TOML file named by
// CONFIG_FILE, then environment variables. Later sources win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv(configFileEnv); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	cfg.HTTPPort = getEnv("HTTP_PORT", cfg.HTTPPort)
	cfg.DatabaseType = getEnv("DB_TYPE", cfg.DatabaseType)
	cfg.DatabaseHost = getEnv("DB_HOST", cfg.DatabaseHost)
	cfg.DatabaseUser = getEnv("DB_USER", cfg.DatabaseUser)
	cfg.DatabasePassword = getEnv("DB_PASSWORD", cfg.DatabasePassword)
	cfg.DatabaseName = getEnv("DB_NAME", cfg.DatabaseName)
	cfg.SSLMode = getEnv("SSL_MODE", cfg.SSLMode)
	cfg.MigrationsDir = getEnv("MIGRATIONS_DIR", cfg.MigrationsDir)
	cfg.HistoryEnabled = getEnvBool("HISTORY_ENABLED", cfg.HistoryEnabled)
	cfg.HistoryRetention = getEnvDuration("HISTORY_RETENTION", cfg.HistoryRetention)
	cfg.PruneInterval = getEnvDuration("PRUNE_INTERVAL", cfg.PruneInterval)
	cfg.JwtSecret = getEnv("JWT_SECRET", cfg.JwtSecret)
	cfg.JwtAccessDuration = getEnvInt("JWT_ACCESS_DURATION", cfg.JwtAccessDuration)
	cfg.JwtDomain = getEnv("JWT_DOMAIN", cfg.JwtDomain)
	cfg.AdminPasswordHash = getEnv("ADMIN_PASSWORD_HASH", cfg.AdminPasswordHash)
	cfg.AllowedOrigins = getEnvSlice("ALLOWED_ORIGINS", cfg.AllowedOrigins)
	cfg.DevMode = getEnvBool("DEV_MODE", cfg.DevMode)
	cfg.ConversionMode = getEnv("CONVERSION_MODE", cfg.ConversionMode)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.AdminPasswordHash != "" && c.JwtSecret == "" {
		return ErrJwtSecretMissing
	}
	if c.HistoryEnabled && (c.HistoryRetention <= 0 || c.PruneInterval <= 0) {
		return fmt.Errorf("%w, got: %v / %v", ErrInvalidRetention, c.HistoryRetention, c.PruneInterval)
	}
	if _, err := converter.ParseMode(c.ConversionMode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMode, err)
	}
	return nil
}

// Mode returns the configured conversion mode. Validate has checked it.
func (c *Config) Mode() converter.Mode {
	mode, _ := converter.ParseMode(c.ConversionMode)
	return mode
}

func loadFile(path string, cfg *Config) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("%w %s: %v", ErrConfigFile, path, err)
	}
	var err error
	if cfg.HistoryRetentionText != "" {
		if cfg.HistoryRetention, err = time.ParseDuration(cfg.HistoryRetentionText); err != nil {
			return fmt.Errorf("%w %s: history_retention: %v", ErrConfigFile, path, err)
		}
	}
	if cfg.PruneIntervalText != "" {
		if cfg.PruneInterval, err = time.ParseDuration(cfg.PruneIntervalText); err != nil {
			return fmt.Errorf("%w %s: prune_interval: %v", ErrConfigFile, path, err)
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

func getEnvSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return strings.Split(value, ",")
}
