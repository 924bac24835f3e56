package redis

import (
	"context"
	"fmt"
	"net"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"tutorials/config"
)

// New returns a nil client when caching is disabled, which the cache layer treats as a no-op store.
func New(cfg *config.Config) (*goRedis.Client, func(), error) {
	if !cfg.Cache.Enable {
		log.Info().Msg("Cache disabled, skipping Redis connection")

		return nil, func() {}, nil
	}

	ctx := context.Background()
	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(cfg.Cache.Redis.Primary.Host, cfg.Cache.Redis.Primary.Port),
		Password: cfg.Cache.Redis.Primary.Password,
		DB:       cfg.Cache.Redis.Primary.DB,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()

		return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info().
		Int("db", cfg.Cache.Redis.Primary.DB).
		Str("host", cfg.Cache.Redis.Primary.Host).
		Str("port", cfg.Cache.Redis.Primary.Port).
		Msg("Connected to Redis")

	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Redis connection")
		}
	}

	return client, cleanup, nil
}
