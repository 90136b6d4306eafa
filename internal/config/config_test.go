package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "com.midoriai.leaflogic", cfg.AppID)
				assert.Equal(t, "file", cfg.StoreDriver)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, 10, cfg.DBMaxOpenConnections)
				assert.Equal(t, 2, cfg.DBMaxIdleConnections)
				assert.True(t, cfg.AuthRateLimitEnabled)
				assert.Equal(t, 1.0, cfg.AuthRateLimitPerSec)
				assert.Equal(t, 5, cfg.AuthRateLimitBurst)
				assert.True(t, cfg.MetricsEnabled)
				assert.Equal(t, "securecore", cfg.MetricsNamespace)
				assert.Equal(t, 8081, cfg.MetricsPort)
			},
		},
		{
			name: "load custom store configuration",
			envVars: map[string]string{
				"STORE_DRIVER": "postgres",
				"STORE_PATH":   "/tmp/store.json",
				"KEEPER_URI":   "base64key://c21lbGx5IGNoZWVzZSBzbWVsbHkgY2hlZXNlIHNtZWw=",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "postgres", cfg.StoreDriver)
				assert.Equal(t, "/tmp/store.json", cfg.StorePath)
				assert.Equal(t, "base64key://c21lbGx5IGNoZWVzZSBzbWVsbHkgY2hlZXNlIHNtZWw=", cfg.KeeperURI)
			},
		},
		{
			name: "load custom auth rate limit configuration",
			envVars: map[string]string{
				"AUTH_RATE_LIMIT_ENABLED": "false",
				"AUTH_RATE_LIMIT_PER_SEC": "2.5",
				"AUTH_RATE_LIMIT_BURST":   "10",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.AuthRateLimitEnabled)
				assert.Equal(t, 2.5, cfg.AuthRateLimitPerSec)
				assert.Equal(t, 10, cfg.AuthRateLimitBurst)
			},
		},
		{
			name: "load custom metrics configuration",
			envVars: map[string]string{
				"METRICS_ENABLED":   "false",
				"METRICS_NAMESPACE": "leaflogic",
				"METRICS_PORT":      "9099",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.MetricsEnabled)
				assert.Equal(t, "leaflogic", cfg.MetricsNamespace)
				assert.Equal(t, 9099, cfg.MetricsPort)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}
			defer func() {
				for k := range tt.envVars {
					os.Unsetenv(k)
				}
			}()

			cfg := Load()
			tt.validate(t, cfg)
		})
	}
}
