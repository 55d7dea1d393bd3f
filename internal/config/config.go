package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/julianstephens/wellfit/internal/constants"
	"github.com/julianstephens/wellfit/internal/logger"
	"github.com/julianstephens/wellfit/internal/utils"
)

// ClientConfig drives the CLI and TUI.
type ClientConfig struct {
	APIURL      string
	Timezone    string
	HTTPTimeout time.Duration
}

// ServerConfig drives `wellfit serve`.
type ServerConfig struct {
	Addr           string
	Database       string
	JWTSecret      string
	TokenTTL       time.Duration
	AllowedOrigins []string
	Timezone       string
	ValueFloor     int
	ValueCeiling   int
	Environment    string
}

// LoadDotEnv reads a .env file from the working directory if one exists.
// Real environment variables always win over the file.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded, using environment variables", "error", err)
	}
}

func LoadClient() (*ClientConfig, error) {
	timeout, err := getEnvInt(constants.EnvHTTPTimeout, int(constants.DefaultHTTPTimeout/time.Second))
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %d", constants.EnvHTTPTimeout, timeout)
	}

	tz := getEnv(constants.EnvTimezone, constants.DefaultTimezone)
	if !utils.ValidateTimezone(tz) {
		return nil, fmt.Errorf("%s: unknown timezone %q", constants.EnvTimezone, tz)
	}

	return &ClientConfig{
		APIURL:      strings.TrimRight(getEnv(constants.EnvAPIURL, constants.DefaultAPIURL), "/"),
		Timezone:    tz,
		HTTPTimeout: time.Duration(timeout) * time.Second,
	}, nil
}

// LoadServer reads server settings. configDir anchors the default sqlite path.
func LoadServer(configDir string) (*ServerConfig, error) {
	ttlHours, err := getEnvInt(constants.EnvTokenTTLHours, int(constants.DefaultTokenTTL/time.Hour))
	if err != nil {
		return nil, err
	}
	floor, err := getEnvInt(constants.EnvValueFloor, constants.DefaultValueFloor)
	if err != nil {
		return nil, err
	}
	ceiling, err := getEnvInt(constants.EnvValueCeiling, constants.DefaultValueCeiling)
	if err != nil {
		return nil, err
	}
	if ceiling != 0 && ceiling < floor {
		return nil, fmt.Errorf("%s (%d) is below %s (%d)", constants.EnvValueCeiling, ceiling, constants.EnvValueFloor, floor)
	}

	cfg := &ServerConfig{
		Addr:           getEnv(constants.EnvServerAddr, constants.DefaultServerAddr),
		Database:       getEnv(constants.EnvDatabase, filepath.Join(configDir, constants.DefaultDBFile)),
		JWTSecret:      getEnv(constants.EnvJWTSecret, constants.DefaultJWTSecret),
		TokenTTL:       time.Duration(ttlHours) * time.Hour,
		AllowedOrigins: splitList(getEnv(constants.EnvAllowedOrigins, constants.DefaultAllowedOrigins)),
		Timezone:       getEnv(constants.EnvTimezone, constants.DefaultTimezone),
		ValueFloor:     floor,
		ValueCeiling:   ceiling,
		Environment:    getEnv(constants.EnvEnvironment, "development"),
	}

	if !utils.ValidateTimezone(cfg.Timezone) {
		return nil, fmt.Errorf("%s: unknown timezone %q", constants.EnvTimezone, cfg.Timezone)
	}
	if !cfg.IsDevelopment() && cfg.JWTSecret == constants.DefaultJWTSecret {
		return nil, fmt.Errorf("%s must be set outside development", constants.EnvJWTSecret)
	}
	return cfg, nil
}

func (c *ServerConfig) IsDevelopment() bool {
	switch strings.ToLower(c.Environment) {
	case "", "dev", "development", "test":
		return true
	}
	return false
}

// ExpandHome resolves a leading ~ against the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(raw) == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
