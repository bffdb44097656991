package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("MONGODB_DB_NAME", "storefront")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "", cfg.Redis.URL)
	assert.Equal(t, time.Hour, cfg.GetAccessTokenExpiry())
	assert.Equal(t, 30*time.Minute, cfg.GetProductCacheTTL())
	assert.Equal(t, 10*time.Second, cfg.Mongo.Timeout)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, 10.0, cfg.RateLimit)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://mongo:27017")
	t.Setenv("MONGODB_DB_NAME", "storefront_test")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "9090")
	t.Setenv("ACCESS_TOKEN_EXPIRY_MINUTES", "15")
	t.Setenv("PRODUCT_CACHE_TTL_MINUTES", "not-a-number")
	t.Setenv("RATE_LIMIT_PER_SECOND", "2.5")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 15*time.Minute, cfg.GetAccessTokenExpiry())
	assert.Equal(t, 30*time.Minute, cfg.GetProductCacheTTL())
	assert.Equal(t, 2.5, cfg.RateLimit)
	assert.Equal(t, "console", cfg.Logger.Format)
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "no mongo uri",
			env:     map[string]string{"MONGODB_URI": "", "MONGODB_DB_NAME": "db", "JWT_SECRET": "s"},
			wantErr: "MONGODB_URI",
		},
		{
			name:    "no database",
			env:     map[string]string{"MONGODB_URI": "mongodb://x", "MONGODB_DB_NAME": "", "JWT_SECRET": "s"},
			wantErr: "MONGODB_DB_NAME",
		},
		{
			name:    "no jwt secret",
			env:     map[string]string{"MONGODB_URI": "mongodb://x", "MONGODB_DB_NAME": "db", "JWT_SECRET": ""},
			wantErr: "JWT_SECRET",
		},
		{
			name:    "non positive expiry",
			env:     map[string]string{"MONGODB_URI": "mongodb://x", "MONGODB_DB_NAME": "db", "JWT_SECRET": "s", "ACCESS_TOKEN_EXPIRY_MINUTES": "0"},
			wantErr: "ACCESS_TOKEN_EXPIRY_MINUTES",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
