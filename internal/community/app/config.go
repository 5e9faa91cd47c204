package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Env                  string        `env:"ENV"                   envDefault:"dev"`  // dev, staging, prod
	LogLevel             string        `env:"LOG_LEVEL"             envDefault:"info"` // debug, info, warn, error
	LogFormat            string        `env:"LOG_FORMAT"            envDefault:"json"` // json, text
	Port                 int           `env:"PORT"                  envDefault:"8080"`
	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`

	DatabaseDriver string `env:"DATABASE_DRIVER" envDefault:"sqlite"` // sqlite, postgres
	DatabaseFile   string `env:"DATABASE_FILE"   envDefault:"community.db"`
	DatabaseURL    string `env:"DATABASE_URL"` // required for postgres

	PepperFile     string `env:"PEPPER_FILE"     envDefault:"pepper"`
	PasswordHasher string `env:"PASSWORD_HASHER" envDefault:"argon2id"` // argon2id, bcrypt

	// AdminUsername is granted admin authority on registration.
	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"ssar"`

	SessionCookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"community_session"`
	SessionTTL        time.Duration `env:"SESSION_TTL"         envDefault:"24h"`
	SessionIssuer     string        `env:"SESSION_ISSUER"      envDefault:"pet-community"`
	// SessionKeyFile holds the Ed25519 PEM signing session cookies. Empty
	// means a fresh key per start, logging everyone out on restart.
	SessionKeyFile string `env:"SESSION_KEY_FILE"`

	AtomicViewCount bool `env:"BOARD_ATOMIC_VIEW_COUNT" envDefault:"false"`

	MailDriver   string `env:"MAIL_DRIVER"    envDefault:"log"` // log, resend
	MailFrom     string `env:"MAIL_FROM"      envDefault:"Pet Community <noreply@example.com>"`
	ResendAPIKey string `env:"RESEND_API_KEY"`

	OTelEnabled  bool   `env:"OTEL_ENABLED"  envDefault:"false"`
	OTelEndpoint string `env:"OTEL_ENDPOINT"`
}

// LoadConfig reads Config from the environment and checks the values that
// cannot be defaulted.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.DatabaseDriver = strings.ToLower(strings.TrimSpace(cfg.DatabaseDriver))
	switch cfg.DatabaseDriver {
	case DriverSQLite:
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL is required for the %s driver", DriverPostgres)
		}
	default:
		return Config{}, fmt.Errorf("unknown DATABASE_DRIVER %q", cfg.DatabaseDriver)
	}

	if cfg.ShutdownGracePeriod <= 0 {
		cfg.ShutdownGracePeriod = 10 * time.Second
	}
	if cfg.HousekeepingInterval <= 0 {
		cfg.HousekeepingInterval = time.Hour
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	return cfg, nil
}
