package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Postgres Postgres `validate:"required"`
	Redis    Redis    `validate:"required"`
	Kafka    Kafka    `validate:"required"`

	Cache Cache
	Auth  Auth `validate:"required"`

	Zarinpal Zarinpal `validate:"required"`
	Stripe   Stripe

	Pending PendingPayments
	Outbox  Outbox
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,numeric"`
	// PublicURL is where customers reach the service; gateway callbacks and
	// order redirects are built from it.
	PublicURL string `validate:"required,url"`

	ReadHeaderTimeout time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type Redis struct {
	Addr     string `validate:"required,hostname_port"`
	Password string
	DB       int `validate:"gte=0"`

	VerifyLockTTL time.Duration `validate:"gt=0"`
}

type Kafka struct {
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	BatchTimeout time.Duration `validate:"gte=0"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type Auth struct {
	JWTSecret string `validate:"required,min=16"`
}

type Zarinpal struct {
	MerchantID  string `validate:"required"`
	Sandbox     bool
	AccessToken string
	APIBaseURL  string `validate:"omitempty,url"`
	CallbackURL string `validate:"required,url"`
	Currency    string `validate:"required,oneof=IRR IRT"`

	// USDToRial converts dollar amounts when no toman price is known.
	USDToRial     string        `validate:"required,numeric"`
	MinimumAmount int64         `validate:"gt=0"`
	Timeout       time.Duration `validate:"gt=0"`
}

// Stripe is optional; the card gateway is disabled when SecretKey is empty.
type Stripe struct {
	SecretKey      string
	PublishableKey string
	Currency       string `validate:"omitempty,len=3"`
}

type PendingPayments struct {
	TTL           time.Duration `validate:"gt=0"`
	SweepInterval time.Duration `validate:"gt=0"`
}

type Outbox struct {
	PollInterval time.Duration `validate:"gt=0"`
	BatchSize    int           `validate:"gte=1"`
}

func New() Config {
	publicURL := strings.TrimRight(env("PUBLIC_URL", "http://localhost:8080"), "/")

	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host:      env("HOST", "localhost"),
			Port:      env("PORT", "8080"),
			PublicURL: publicURL,

			ReadHeaderTimeout: envDuration("HTTP_READ_HEADER_TIMEOUT", 5*time.Second),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "storefront"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Redis: Redis{
			Addr:     env("REDIS_ADDR", "localhost:6379"),
			Password: env("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),

			VerifyLockTTL: envDuration("VERIFY_LOCK_TTL", time.Minute),
		},

		Kafka: Kafka{
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),
			Topic:   env("KAFKA_TOPIC", "checkout-events"),

			BatchTimeout: envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},

		Auth: Auth{
			JWTSecret: env("JWT_SECRET", ""),
		},

		Zarinpal: Zarinpal{
			MerchantID:  env("ZARINPAL_MERCHANT_ID", ""),
			Sandbox:     envBool("ZARINPAL_SANDBOX", false),
			AccessToken: env("ZARINPAL_ACCESS_TOKEN", ""),
			APIBaseURL:  env("ZARINPAL_API_URL", ""),
			CallbackURL: env("ZARINPAL_CALLBACK_URL", publicURL+"/checkout/verify"),
			Currency:    env("ZARINPAL_CURRENCY", "IRR"),

			USDToRial:     env("ZARINPAL_USD_TO_RIAL", "500000"),
			MinimumAmount: int64(envInt("ZARINPAL_MINIMUM_AMOUNT", 10000)),
			Timeout:       envDuration("ZARINPAL_TIMEOUT", 15*time.Second),
		},

		Stripe: Stripe{
			SecretKey:      env("STRIPE_SECRET_KEY", ""),
			PublishableKey: env("STRIPE_PUBLISHABLE_KEY", ""),
			Currency:       env("STRIPE_CURRENCY", "USD"),
		},

		Pending: PendingPayments{
			TTL:           envDuration("PENDING_PAYMENT_TTL", time.Hour),
			SweepInterval: envDuration("PENDING_PAYMENT_SWEEP_INTERVAL", 5*time.Minute),
		},

		Outbox: Outbox{
			PollInterval: envDuration("OUTBOX_POLL_INTERVAL", time.Second),
			BatchSize:    envInt("OUTBOX_BATCH_SIZE", 100),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func (c Config) StripeEnabled() bool {
	return c.Stripe.SecretKey != ""
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
