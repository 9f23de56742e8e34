package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func LoadConfiguration(ctx context.Context) Config {
	return Config{
		host:     env.GetVariableOrDefault(ctx, "POSTGRES_HOST", ""),
		user:     env.GetVariableOrDefault(ctx, "POSTGRES_USER", ""),
		password: env.GetVariableOrDefault(ctx, "POSTGRES_PASSWORD", ""),
		port:     env.GetVariableOrDefault(ctx, "POSTGRES_PORT", "5432"),
		dbname:   env.GetVariableOrDefault(ctx, "POSTGRES_DBNAME", "alerts"),
		sslmode:  env.GetVariableOrDefault(ctx, "POSTGRES_SSLMODE", "disable"),
	}
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

var (
	ErrNoRows        = errors.New("no rows in result set")
	ErrQueryRow      = errors.New("could not execute query")
	ErrStoreFailed   = errors.New("could not store data")
	ErrAlertNotFound = errors.New("alert not found")
)

type Storage struct {
	pool *pgxpool.Pool
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, config.ConnStr())
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Initialize(ctx context.Context) error {
	return s.createTables(ctx)
}

func (s *Storage) Close() {
	s.pool.Close()
}

func (s *Storage) createTables(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS alerts (
			identifier	TEXT	NOT NULL,
			host		TEXT	NOT NULL,
			payload		JSONB	NOT NULL,
			source_ip	TEXT	NULL,
			received_at	timestamp with time zone NOT NULL,
			modified_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_alerts_identifier PRIMARY KEY (identifier)
		);

		CREATE TABLE IF NOT EXISTS suppressed_alerts (
			id			TEXT	NOT NULL,
			identifier	TEXT	NOT NULL,
			host		TEXT	NOT NULL,
			reason		TEXT	NOT NULL,
			payload		JSONB	NOT NULL,
			received_at	timestamp with time zone NOT NULL,
			CONSTRAINT pkey_suppressed_alerts PRIMARY KEY (id)
		);

		CREATE TABLE IF NOT EXISTS storm_alerts (
			id			TEXT	NOT NULL,
			identifier	TEXT	NOT NULL,
			host		TEXT	NOT NULL,
			reason		TEXT	NOT NULL,
			payload		JSONB	NOT NULL,
			received_at	timestamp with time zone NOT NULL,
			CONSTRAINT pkey_storm_alerts PRIMARY KEY (id)
		);

		CREATE TABLE IF NOT EXISTS processed_alerts (
			id			TEXT	NOT NULL,
			source		TEXT	NOT NULL,
			host		TEXT	NOT NULL,
			message		TEXT	NULL,
			severity	TEXT	NULL,
			team		TEXT	NOT NULL,
			owner		TEXT	NOT NULL,
			maintenance	BOOLEAN	NOT NULL DEFAULT FALSE,
			timestamp	timestamp with time zone NOT NULL,
			CONSTRAINT pkey_processed_alerts PRIMARY KEY (id)
		);

		CREATE INDEX IF NOT EXISTS idx_alerts_host ON alerts (host);
		CREATE INDEX IF NOT EXISTS idx_processed_alerts_host ON processed_alerts (host);
	`)
	if err != nil {
		return fmt.Errorf("could not create tables: %w", err)
	}

	return nil
}
