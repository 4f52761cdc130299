package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	BackendSheets   = "sheets"
	BackendPostgres = "postgres"
)

type Config struct {
	Env           string `yaml:"env" env:"ENV" env-default:"local"`
	LedgerBackend string `yaml:"ledger_backend" env:"LEDGER_BACKEND" env-default:"sheets"`
	BaseURL       string `yaml:"base_url" env:"APP_BASE_URL" env-default:"https://hitech-seat-booking.onrender.com"`
	ClearToken    string `yaml:"clear_token" env:"CLEAR_TOKEN"`
	EventTime     string `yaml:"event_time" env:"EVENT_TIME_STR" env-default:"January 31st, 2026 at 7:00 PM"`
	HTTPServer    `yaml:"http_server"`
	Sheet         `yaml:"sheet"`
	Database      `yaml:"database"`
	Twilio        `yaml:"twilio"`
	Redis         `yaml:"redis"`
	RateLimit     `yaml:"rate_limit"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS"`
	Port        string        `yaml:"port" env:"PORT" env-default:"5000"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"30s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// Sheet locates the booking spreadsheet. Key wins over Name when both are set.
type Sheet struct {
	Name               string `yaml:"name" env:"GOOGLE_SHEET_NAME" env-default:"HitechConcertBookings"`
	Key                string `yaml:"key" env:"GOOGLE_SHEET_KEY"`
	ServiceAccountFile string `yaml:"service_account_file" env:"SERVICE_ACCOUNT_FILE" env-default:"/etc/secrets/service_account.json"`
}

type Database struct {
	Host     string `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"POSTGRES_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD"`
	DBName   string `yaml:"dbname" env:"POSTGRES_DB" env-default:"seat_booker"`
	SSLMode  string `yaml:"sslmode" env:"POSTGRES_SSLMODE" env-default:"disable"`
}

type Twilio struct {
	AccountSID string `yaml:"account_sid" env:"TWILIO_ACCOUNT_SID"`
	AuthToken  string `yaml:"auth_token" env:"TWILIO_AUTH_TOKEN"`
	From       string `yaml:"from" env:"TWILIO_WHATSAPP_FROM"`
	ContentSID string `yaml:"content_sid" env:"TWILIO_CONTENT_SID_CONCERT"`
}

// Redis is optional. An empty Addr disables rate limiting.
type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type RateLimit struct {
	Requests int           `yaml:"requests" env:"RATE_LIMIT_REQUESTS" env-default:"20"`
	Window   time.Duration `yaml:"window" env:"RATE_LIMIT_WINDOW" env-default:"1m"`
	// TrustedProxies is the number of reverse proxies in front of the server
	// that append to X-Forwarded-For. Zero keys clients on the TCP peer.
	TrustedProxies int `yaml:"trusted_proxies" env:"RATE_LIMIT_TRUSTED_PROXIES" env-default:"0"`
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

// Load reads a .env file when present, then either the YAML file at
// CONFIG_PATH or the environment alone.
func Load() (*Config, error) {
	const op = "config.Load"

	_ = godotenv.Load()

	var cfg Config

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("%s: config file does not exist: %s", op, configPath)
		}

		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if cfg.HTTPServer.Address == "" {
		cfg.HTTPServer.Address = net.JoinHostPort("0.0.0.0", cfg.HTTPServer.Port)
	}

	switch cfg.LedgerBackend {
	case BackendSheets, BackendPostgres:
	default:
		return nil, fmt.Errorf("%s: unknown ledger backend %q", op, cfg.LedgerBackend)
	}

	if cfg.RateLimit.Requests < 1 || cfg.RateLimit.Window <= 0 {
		return nil, fmt.Errorf("%s: %w", op, errors.New("rate limit requests and window must be positive"))
	}

	if cfg.RateLimit.TrustedProxies < 0 {
		return nil, fmt.Errorf("%s: %w", op, errors.New("rate limit trusted proxies must not be negative"))
	}

	return &cfg, nil
}

func (t Twilio) Configured() bool {
	return t.AccountSID != "" && t.AuthToken != "" && t.From != "" && t.ContentSID != ""
}
