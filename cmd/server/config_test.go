package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"liyu1981.xyz/apar-inspection-service/pkg/common"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv(common.EnvKeyAparJWTSecret, "secret")
	t.Setenv(common.EnvKeyAparDBType, "")
	t.Setenv(common.EnvKeyAparHttpHostPort, "")
	t.Setenv(common.EnvKeyAparDefaultRate, "")
	t.Setenv(common.EnvKeyAparDefaultBurst, "")
	t.Setenv(common.EnvKeyAparJWTExpire, "")
	t.Setenv(common.EnvKeyAparSeed, "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.DBType)
	assert.Equal(t, ":1080", cfg.HttpHostPort)
	assert.Equal(t, 10.0, cfg.DefaultRate)
	assert.Equal(t, 20, cfg.DefaultBurst)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpire)
	assert.False(t, cfg.Seed)
}

func TestLoadConfig_Values(t *testing.T) {
	t.Setenv(common.EnvKeyAparJWTSecret, "secret")
	t.Setenv(common.EnvKeyAparDBType, "memory")
	t.Setenv(common.EnvKeyAparGrpcHostPort, " :50051 ")
	t.Setenv(common.EnvKeyAparDefaultRate, "2.5")
	t.Setenv(common.EnvKeyAparDefaultBurst, "5")
	t.Setenv(common.EnvKeyAparJWTExpire, "90m")
	t.Setenv(common.EnvKeyAparSeed, "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.DBType)
	assert.Equal(t, ":50051", cfg.GrpcHostPort)
	assert.Equal(t, 2.5, cfg.DefaultRate)
	assert.Equal(t, 5, cfg.DefaultBurst)
	assert.Equal(t, 90*time.Minute, cfg.JWTExpire)
	assert.True(t, cfg.Seed)
}

func TestLoadConfig_Errors(t *testing.T) {
	cases := map[string]map[string]string{
		"missing secret":  {common.EnvKeyAparJWTSecret: ""},
		"unknown db type": {common.EnvKeyAparDBType: "postgres"},
		"bad rate":        {common.EnvKeyAparDefaultRate: "fast"},
		"bad burst":       {common.EnvKeyAparDefaultBurst: "1.5"},
		"bad expiry":      {common.EnvKeyAparJWTExpire: "tomorrow"},
		"bad seed flag":   {common.EnvKeyAparSeed: "maybe"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(common.EnvKeyAparJWTSecret, "secret")
			t.Setenv(common.EnvKeyAparDBType, "memory")
			for k, v := range env {
				t.Setenv(k, v)
			}

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
