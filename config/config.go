package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT"      default:"8081"`
		Host     string `envconfig:"HOST"      default:"0.0.0.0"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"5"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"NAME"     default:"tutorials"`
		Timezone string `envconfig:"TIMEZONE" default:"UTC"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS" default:"false"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"   default:"Accept,Content-Type,X-Request-ID"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"   default:"GET,POST,PUT,DELETE,OPTIONS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"   default:"*"`
			Enable           bool     `envconfig:"ENABLE"            default:"true"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"   default:"300"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"         default:"false"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"   default:"100"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
		} `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	Cache struct {
		Enable bool `envconfig:"ENABLE" default:"false"`
		Redis  struct {
			Primary struct {
				Host     string `envconfig:"HOST"     default:"localhost"`
				Port     string `envconfig:"PORT"     default:"6379"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"       default:"0"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"60"`
	} `envconfig:"CACHE"`

	DB struct {
		Host     string `envconfig:"HOST"     default:"localhost"`
		Port     string `envconfig:"PORT"     default:"5432"`
		Username string `envconfig:"USER"     default:"postgres"`
		Password string `envconfig:"PASSWORD" default:"postgres_123"`
		Name     string `envconfig:"NAME"     default:"postgres"`
		SSL      struct {
			Require            bool `envconfig:"REQUIRE"             default:"true"`
			RejectUnauthorized bool `envconfig:"REJECT_UNAUTHORIZED" default:"false"`
		} `envconfig:"SSL"`
		Pool struct {
			Max     int `envconfig:"MAX"     default:"5"`
			Min     int `envconfig:"MIN"     default:"0"`
			Acquire int `envconfig:"ACQUIRE" default:"30000"`
			Idle    int `envconfig:"IDLE"    default:"10000"`
		} `envconfig:"POOL"`
		MaxRetry       int    `envconfig:"MAX_RETRY"       default:"3"`
		RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME" default:"2"`
		MigrationTable string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
		AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"    default:"true"`
	} `envconfig:"DB"`

	Client struct {
		APIURL          string `envconfig:"API_URL"           default:"http://localhost:8081/api/tutorials"`
		TimeoutSeconds  int    `envconfig:"TIMEOUT_SECONDS"   default:"10"`
		CacheSize       int    `envconfig:"CACHE_SIZE"        default:"128"`
		CacheTTLSeconds int    `envconfig:"CACHE_TTL_SECONDS" default:"30"`
	} `envconfig:"CLIENT"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

// Load reads the configuration from the environment, applying defaults for unset variables.
func Load() (Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("processing environment variables: %w", err)
	}

	return cfg, nil
}

func Init() error {
	var err error

	once.Do(func() {
		if loadErr := godotenv.Load(".env"); loadErr != nil {
			log.Debug().Err(loadErr).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		conf, err = Load()
		if err != nil {
			return
		}

		initialized = true

		log.Debug().Msg("Service configuration initialized successfully")
	})

	return err
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
