package postgres

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/recreation-search/internal/config"
	"go.uber.org/zap"
)

const pingTimeout = 5 * time.Second

// DB - подключение к каталогу объектов отдыха
type DB struct {
	*sqlx.DB
	logger *zap.Logger
}

// New открывает пул pgx по настройкам DatabaseConfig и проверяет соединение
func New(cfg *config.DatabaseConfig, logger *zap.Logger) (*DB, error) {
	conn, err := sqlx.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open catalog database: %w", err)
	}
	applyPoolSettings(conn, cfg)

	db := &DB{DB: conn, logger: logger}
	if err := db.Health(context.Background()); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping catalog database %s:%d: %w", cfg.Host, cfg.Port, err)
	}

	logger.Info("PostgreSQL connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.DBName),
		zap.Int("max_conns", cfg.MaxConns),
	)

	return db, nil
}

func applyPoolSettings(conn *sqlx.DB, cfg *config.DatabaseConfig) {
	conn.SetMaxOpenConns(cfg.MaxConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	conn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
}

func (db *DB) Close() error {
	db.logger.Info("Closing PostgreSQL connection")
	return db.DB.Close()
}

// Health - ping с ограничением pingTimeout, используется /health
func (db *DB) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return db.PingContext(ctx)
}

// NewDBForTest оборачивает готовое подключение (sqlmock или тестовая база)
func NewDBForTest(sqlxDB *sqlx.DB, logger *zap.Logger) *DB {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DB{DB: sqlxDB, logger: logger}
}
