package postgres

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"frontdesk/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// New opens the read and write pools. Both may point at the same server.
func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres
	retry := retryPolicy{attempts: max(1, pg.MaxRetry), wait: time.Duration(pg.RetryWaitTime) * time.Second}

	return &Connection{
		Read:  connect(newTarget("read", pg.Prefix, pg.Read), retry),
		Write: connect(newTarget("write", pg.Prefix, pg.Write), retry),
	}
}

func newTarget(role, prefix string, node config.PostgresNode) target {
	return target{
		role:     role,
		host:     node.Host,
		port:     node.Port,
		user:     node.Username,
		password: node.Password,
		name:     prefix + node.Name,
		sslMode:  node.SSLMode,
	}
}

// WithTransaction runs fn inside a write transaction. The transaction is committed when fn
// returns nil and rolled back otherwise, including when fn panics.
func (c *Connection) WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := c.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Ping checks that the write database answers.
func (c *Connection) Ping(ctx context.Context) error {
	if c.Write == nil {
		return errors.New("write database is not connected")
	}

	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping write database: %w", err)
	}

	return nil
}

type target struct {
	role     string
	host     string
	port     string
	user     string
	password string
	name     string
	sslMode  string
}

func (t target) dsn() string {
	query := url.Values{}
	if t.sslMode != "" {
		query.Set("sslmode", t.sslMode)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(t.user, t.password),
		Host:     net.JoinHostPort(t.host, t.port),
		Path:     t.name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

type retryPolicy struct {
	attempts int
	wait     time.Duration
}

// connect retries until the database answers. The process stops when every attempt fails.
func connect(t target, retry retryPolicy) *sqlx.DB {
	logger := log.With().Str("role", t.role).Str("host", t.host).Str("port", t.port).Str("database", t.name).Logger()

	for attempt := 1; attempt <= retry.attempts; attempt++ {
		db, err := sqlx.Connect("postgres", t.dsn())
		if err == nil {
			db.SetMaxIdleConns(postgresMaxIdleConnection)
			db.SetMaxOpenConns(postgresMaxOpenConnection)

			logger.Info().Msg("Connected to database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")
		time.Sleep(retry.wait)
	}

	logger.Fatal().Int("attempts", retry.attempts).Msg("Giving up connecting to database")

	return nil
}
