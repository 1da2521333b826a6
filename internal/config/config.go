package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Search   SearchConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	SearchCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

// SearchConfig - параметры поиска и административно скрытые коды фасетов
type SearchConfig struct {
	DefaultLimit       int
	MaxLimit           int
	MaxPage            int
	GeoRadiusMeters    float64
	ExcludedActivities []int
	ExcludedDistricts  []string
	ExcludedTypes      []string
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// без .env работаем только на переменных окружения
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return fromViper(viper.GetViper())
}

func fromViper(v *viper.Viper) (*Config, error) {
	excludedActivities, err := parseIntList(v.GetString("SEARCH_EXCLUDED_ACTIVITIES"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEARCH_EXCLUDED_ACTIVITIES: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("API_HOST"),
			Port:        v.GetInt("API_PORT"),
			Env:         v.GetString("API_ENV"),
			CORSOrigins: v.GetString("API_CORS_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			SearchCacheTTL: time.Duration(v.GetInt("SEARCH_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Search: SearchConfig{
			DefaultLimit:       v.GetInt("SEARCH_DEFAULT_LIMIT"),
			MaxLimit:           v.GetInt("SEARCH_MAX_LIMIT"),
			MaxPage:            v.GetInt("SEARCH_MAX_PAGE"),
			GeoRadiusMeters:    v.GetFloat64("SEARCH_GEO_RADIUS_METERS"),
			ExcludedActivities: excludedActivities,
			ExcludedDistricts:  parseList(v.GetString("SEARCH_EXCLUDED_DISTRICTS")),
			ExcludedTypes:      parseList(v.GetString("SEARCH_EXCLUDED_TYPES")),
		},
	}

	// Set default values if not provided
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Server.CORSOrigins == "" {
		cfg.Server.CORSOrigins = "http://localhost:3000,http://localhost:5173"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	applySearchDefaults(&cfg.Search)

	return cfg, nil
}

// DefaultSearchConfig - значения поиска по умолчанию (используются и в тестах)
func DefaultSearchConfig() SearchConfig {
	var sc SearchConfig
	applySearchDefaults(&sc)
	return sc
}

func applySearchDefaults(sc *SearchConfig) {
	if sc.DefaultLimit == 0 {
		sc.DefaultLimit = 10
	}
	if sc.MaxLimit == 0 {
		sc.MaxLimit = 10
	}
	if sc.MaxPage == 0 {
		sc.MaxPage = 10
	}
	if sc.GeoRadiusMeters == 0 {
		sc.GeoRadiusMeters = 50000
	}
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func parseIntList(s string) ([]int, error) {
	parts := parseList(s)
	if len(parts) == 0 {
		return nil, nil
	}
	result := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", p, err)
		}
		result = append(result, n)
	}
	return result, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return c.Database.DSN()
}

// DSN - строка подключения в формате key=value для pgx и lib/pq
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
