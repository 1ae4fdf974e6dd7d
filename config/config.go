package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	if os.Getenv("GO_ENV") == "local" {
		_ = godotenv.Load(".env")
	}

	if err := env.Parse(&Config); err != nil {
		logrus.Errorf("Error initializing: %s", err.Error())
		return nil, err
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	BitPay
	Kafka
	Redis
}

type APP struct {
	PORT string `env:"APP_PORT" envDefault:"8080"`
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// BitPay holds the gateway settings: the shared secret expected in the IPN
// "key" query parameter and the API used to re-fetch invoices.
type BitPay struct {
	WebhookKey string        `env:"BITPAY_WEBHOOK_KEY,required"`
	BaseURL    string        `env:"BITPAY_BASE_URL" envDefault:"https://bitpay.com"`
	APIToken   string        `env:"BITPAY_API_TOKEN"`
	Timeout    time.Duration `env:"BITPAY_TIMEOUT" envDefault:"10s"`
}

type Kafka struct {
	Brokers          string        `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	PublishTopics    string        `env:"KAFKA_PUBLISH_TOPICS" envDefault:"billing.account.credited"`
	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

// Redis is optional. An empty ADDR disables the in-flight invoice claim.
type Redis struct {
	ADDR     string        `env:"REDIS_ADDR"`
	PASSWORD string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	ClaimTTL time.Duration `env:"REDIS_CLAIM_TTL" envDefault:"30s"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}
