package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"liyu1981.xyz/apar-inspection-service/pkg/auth"
	"liyu1981.xyz/apar-inspection-service/pkg/common"
)

type Config struct {
	DBType       string
	HttpHostPort string
	GrpcHostPort string

	DefaultRate  float64
	DefaultBurst int

	JWTSecret string
	JWTExpire time.Duration

	AdminName     string
	AdminEmail    string
	AdminPassword string

	Seed bool
}

// LoadConfig reads the server settings from the environment, after .env has
// been loaded.
func LoadConfig() (*Config, error) {
	var err error
	cfg := &Config{
		DBType:        common.EnvOrDefault(common.EnvKeyAparDBType, "file"),
		HttpHostPort:  strings.TrimSpace(os.Getenv(common.EnvKeyAparHttpHostPort)),
		GrpcHostPort:  strings.TrimSpace(os.Getenv(common.EnvKeyAparGrpcHostPort)),
		JWTSecret:     os.Getenv(common.EnvKeyAparJWTSecret),
		JWTExpire:     auth.DefaultTokenExpiry,
		AdminName:     common.EnvOrDefault(common.EnvKeyAparAdminName, "Administrator"),
		AdminEmail:    common.EnvOrDefault(common.EnvKeyAparAdminEmail, "admin@example.com"),
		AdminPassword: os.Getenv(common.EnvKeyAparAdminPassword),
	}

	switch cfg.DBType {
	case "file", "memory":
	default:
		return nil, fmt.Errorf("unknown %s: %q, should be file or memory", common.EnvKeyAparDBType, cfg.DBType)
	}

	if cfg.HttpHostPort == "" {
		// fallback to default http port
		cfg.HttpHostPort = ":1080"
	}

	if cfg.DefaultRate, err = strconv.ParseFloat(common.EnvOrDefault(common.EnvKeyAparDefaultRate, "10"), 64); err != nil {
		return nil, fmt.Errorf("invalid %s, should be a float64 value: %w", common.EnvKeyAparDefaultRate, err)
	}
	if cfg.DefaultBurst, err = strconv.Atoi(common.EnvOrDefault(common.EnvKeyAparDefaultBurst, "20")); err != nil {
		return nil, fmt.Errorf("invalid %s, should be an int value: %w", common.EnvKeyAparDefaultBurst, err)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("%s must be set", common.EnvKeyAparJWTSecret)
	}
	if v := os.Getenv(common.EnvKeyAparJWTExpire); v != "" {
		if cfg.JWTExpire, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("invalid %s, should be a duration like 24h: %w", common.EnvKeyAparJWTExpire, err)
		}
	}

	if v := os.Getenv(common.EnvKeyAparSeed); v != "" {
		if cfg.Seed, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("invalid %s, should be true or false: %w", common.EnvKeyAparSeed, err)
		}
	}

	return cfg, nil
}
