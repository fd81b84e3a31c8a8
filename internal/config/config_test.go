package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "catalog_db", cfg.Mongo.DBName)
	assert.Equal(t, 15*time.Second, cfg.Mongo.Timeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MONGO_DBNAME", "catalog_test")
	t.Setenv("MONGO_TIMEOUT", "30")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "catalog_test", cfg.Mongo.DBName)
	assert.Equal(t, 30*time.Second, cfg.Mongo.Timeout)
}

func TestGetEnvAsIntFallbackOnGarbage(t *testing.T) {
	t.Setenv("MONGO_TIMEOUT", "not-a-number")

	cfg := Load()
	assert.Equal(t, 15*time.Second, cfg.Mongo.Timeout)
}
