package postgres

//nolint:revive
import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"tutorials/config"
)

const driverName = "postgres"

const (
	sslModeDisable    = "disable"
	sslModeRequire    = "require"
	sslModeVerifyFull = "verify-full"
)

type Connection struct {
	DB *sqlx.DB
}

// New opens the pool and warms it up to the configured minimum. The cleanup closes the pool.
func New(cfg *config.Config) (*Connection, func(), error) {
	db, err := CreatePostgresConnection(cfg)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database connection")
		}
	}

	return &Connection{DB: db}, cleanup, nil
}

// SSLMode maps the require/reject-unauthorized flags onto a libpq sslmode.
func SSLMode(cfg *config.Config) string {
	switch {
	case !cfg.DB.SSL.Require:
		return sslModeDisable
	case cfg.DB.SSL.RejectUnauthorized:
		return sslModeVerifyFull
	default:
		return sslModeRequire
	}
}

// DSN builds the connection URL shared by the pool and the migrator.
func DSN(cfg *config.Config, params map[string]string) string {
	query := url.Values{}
	query.Set("sslmode", SSLMode(cfg))

	if seconds := acquireTimeout(cfg) / time.Second; seconds > 0 {
		query.Set("connect_timeout", strconv.Itoa(int(seconds)))
	}

	for key, value := range params {
		query.Set(key, value)
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(cfg.DB.Username, cfg.DB.Password),
		Host:     net.JoinHostPort(cfg.DB.Host, cfg.DB.Port),
		Path:     "/" + cfg.DB.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func acquireTimeout(cfg *config.Config) time.Duration {
	return time.Duration(cfg.DB.Pool.Acquire) * time.Millisecond
}

// CreatePostgresConnection connects with retries and applies the pool settings.
func CreatePostgresConnection(cfg *config.Config) (*sqlx.DB, error) {
	descriptor := DSN(cfg, nil)

	var lastErr error

	for retry := range max(cfg.DB.MaxRetry, 1) {
		db, err := connect(cfg, descriptor)
		if err == nil {
			log.
				Info().
				Str("host", cfg.DB.Host).
				Str("port", cfg.DB.Port).
				Str("dbName", cfg.DB.Name).
				Str("sslMode", SSLMode(cfg)).
				Msg("Connected to database")

			return db, nil
		}

		lastErr = err

		log.
			Error().
			Err(err).
			Str("host", cfg.DB.Host).
			Str("port", cfg.DB.Port).
			Str("dbName", cfg.DB.Name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(cfg.DB.RetryWaitTime) * time.Second)
	}

	return nil, fmt.Errorf("failed connecting to database after %d attempts: %w", max(cfg.DB.MaxRetry, 1), lastErr)
}

func connect(cfg *config.Config, descriptor string) (*sqlx.DB, error) {
	ctx := context.Background()

	if timeout := acquireTimeout(cfg); timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	db, err := sqlx.ConnectContext(ctx, driverName, descriptor)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	ConfigurePool(db, cfg)

	if err := warmUp(ctx, db, cfg.DB.Pool.Min); err != nil {
		_ = db.Close()

		return nil, err
	}

	return db, nil
}

// ConfigurePool applies the pool sizing and idle eviction.
func ConfigurePool(db *sqlx.DB, cfg *config.Config) {
	poolMax := max(cfg.DB.Pool.Max, 1)

	db.SetMaxOpenConns(poolMax)
	db.SetMaxIdleConns(poolMax)

	if cfg.DB.Pool.Idle > 0 {
		db.SetConnMaxIdleTime(time.Duration(cfg.DB.Pool.Idle) * time.Millisecond)
	}
}

// warmUp opens min connections up front and returns them to the idle set.
func warmUp(ctx context.Context, db *sqlx.DB, minConns int) error {
	if minConns <= 0 {
		return nil
	}

	conns := make([]*sqlx.Conn, 0, minConns)

	defer func() {
		for _, conn := range conns {
			_ = conn.Close()
		}
	}()

	for range minConns {
		conn, err := db.Connx(ctx)
		if err != nil {
			return fmt.Errorf("failed to warm up connection pool: %w", err)
		}

		conns = append(conns, conn)
	}

	return nil
}
