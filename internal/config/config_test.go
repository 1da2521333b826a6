package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8000", cfg.GetServerAddr())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, DefaultSearchConfig(), cfg.Search)
	assert.Equal(t, 10, cfg.Search.DefaultLimit)
	assert.Equal(t, 10, cfg.Search.MaxLimit)
	assert.Equal(t, 10, cfg.Search.MaxPage)
	assert.Equal(t, 50000.0, cfg.Search.GeoRadiusMeters)
	assert.Zero(t, cfg.Cache.SearchCacheTTL)
}

func TestFromViper_ExcludedCodes(t *testing.T) {
	v := viper.New()
	v.Set("SEARCH_EXCLUDED_ACTIVITIES", "26, 33")
	v.Set("SEARCH_EXCLUDED_DISTRICTS", "NC,RDQC ,")
	v.Set("SEARCH_EXCLUDED_TYPES", "RR")
	v.Set("SEARCH_CACHE_TTL", 60)
	v.Set("REDIS_HOST", "redis")
	v.Set("REDIS_PORT", 6380)

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, []int{26, 33}, cfg.Search.ExcludedActivities)
	assert.Equal(t, []string{"NC", "RDQC"}, cfg.Search.ExcludedDistricts)
	assert.Equal(t, []string{"RR"}, cfg.Search.ExcludedTypes)
	assert.Equal(t, time.Minute, cfg.Cache.SearchCacheTTL)
	assert.Equal(t, "redis:6380", cfg.GetRedisAddr())
}

func TestFromViper_InvalidExcludedActivity(t *testing.T) {
	v := viper.New()
	v.Set("SEARCH_EXCLUDED_ACTIVITIES", "26,hiking")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: 5432, User: "rst", Password: "secret", DBName: "rst", SSLMode: "require",
	}}

	assert.Equal(t, "host=db port=5432 user=rst password=secret dbname=rst sslmode=require", cfg.GetDatabaseDSN())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	db := DatabaseConfig{Host: "localhost", Port: 5433, User: "postgres", Password: "postgres", DBName: "recreation_test", SSLMode: "disable"}
	cfg := &Config{Database: db}

	assert.Equal(t, "host=localhost port=5433 user=postgres password=postgres dbname=recreation_test sslmode=disable", db.DSN())
	assert.Equal(t, db.DSN(), cfg.GetDatabaseDSN())
}
