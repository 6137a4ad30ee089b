package app

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every environment variable this service reads.
const EnvPrefix = "CLUB"

type Config struct {
	// AuthSecret is the shared HS256 secret the external auth provider
	// signs identity tokens with.
	AuthSecret string `envconfig:"AUTH_SECRET" required:"true"`
	// AuthIssuer, when set, must match the iss claim of every token.
	AuthIssuer string `envconfig:"AUTH_ISSUER"`

	DatabaseFile string `envconfig:"DATABASE_FILE" default:"club.db"`

	Env       string `envconfig:"ENV" default:"dev"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	Port                int           `envconfig:"PORT" default:"8080"`
	ShutdownGracePeriod time.Duration `envconfig:"SHUTDOWN_GRACE_PERIOD" default:"10s"`
}

// LoadConfig reads configuration from the environment, with a .env file as
// an optional local-development overlay. A missing .env file is not an
// error.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
