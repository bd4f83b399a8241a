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
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Error("Error can't get the environment variables by file")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	SSLCommerz
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE"`
}

type APP struct {
	PORT string `env:"APP_PORT" envDefault:"8080"`
}

// SSLCommerz holds the merchant credentials plus the callback URLs handed to
// the gateway at session initiation. StoreID/StorePassword may legitimately be
// empty at boot; the callback pipeline resolves and re-checks them per request
// instead of crashing the service.
type SSLCommerz struct {
	StoreID       string `env:"SSLCZ_STORE_ID"`
	StorePassword string `env:"SSLCZ_STORE_PASSWORD"`
	Environment   string `env:"SSLCZ_ENVIRONMENT" envDefault:"sandbox"`
	SuccessURL    string `env:"SSLCZ_SUCCESS_URL"`
	FailURL       string `env:"SSLCZ_FAIL_URL"`
	CancelURL     string `env:"SSLCZ_CANCEL_URL"`
	IPNURL        string `env:"SSLCZ_IPN_URL"`
}

type Kafka struct {
	Brokers              string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	GatewayConsumerGroup string `env:"KAFKA_GATEWAY_GROUP_ID" envDefault:"sslcommerz-gateway"`
	PublishTopics        string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"payments.reconciled,payments.dlq"`
	SubscriberTopics     string `env:"KAFKA_SUBSCRIBER_TOPICS" envDefault:"orders.created"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
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
