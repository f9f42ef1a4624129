package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort      string
	MetricsPort      string
	FrontendURL      string
	BackendURL       string
	SSLCommerzConfig SSLCommerzConfig
	PostgreSQLConfig PostgreSQLConfig
	KafkaConfig      KafkaConfig
	SMTPConfig       SMTPConfig
	TracingConfig    TracingConfig
}

type SSLCommerzConfig struct {
	StoreID       string
	StorePassword string
	IsLive        bool
}

type PostgreSQLConfig struct {
	DBHost     string
	DBName     string
	DBPort     string
	DBUsername string
	DBPassword string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type SMTPConfig struct {
	Host     string
	Port     int
	Sender   string
	Password string
}

type TracingConfig struct {
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		FrontendURL: os.Getenv("FRONTEND_URL"),
		BackendURL:  os.Getenv("BACKEND_URL"),
		SSLCommerzConfig: SSLCommerzConfig{
			StoreID:       os.Getenv("SSLC_STORE_ID"),
			StorePassword: os.Getenv("SSLC_STORE_PASSWORD"),
			IsLive:        os.Getenv("IS_LIVE") == "true",
		},
		PostgreSQLConfig: PostgreSQLConfig{
			DBHost:     os.Getenv("DB_HOST"),
			DBName:     os.Getenv("DB_NAME"),
			DBPort:     os.Getenv("DB_PORT"),
			DBUsername: os.Getenv("DB_USERNAME"),
			DBPassword: os.Getenv("DB_PASSWORD"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
		},
		SMTPConfig: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Sender:   os.Getenv("SMTP_SENDER"),
			Password: os.Getenv("SMTP_PASSWORD"),
			Port:     587,
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	if conf.ServicePort == "" {
		conf.ServicePort = "3030"
	}

	if partition := os.Getenv("BROKER_PARTITION"); partition != "" {
		if p, err := strconv.Atoi(partition); err == nil {
			conf.KafkaConfig.BrokerPartition = p
		}
	}

	return &conf
}

// Validate must pass before the listener binds. Live mode with sandbox
// credentials is refused outright: a misconfigured deployment would
// otherwise take real checkouts through the gateway's test environment.
func (c *Config) Validate() error {
	if c.SSLCommerzConfig.StoreID == "" || c.SSLCommerzConfig.StorePassword == "" {
		return errors.New("SSLCommerz store credentials are not set")
	}

	if c.SSLCommerzConfig.IsLive &&
		(strings.Contains(c.SSLCommerzConfig.StoreID, "test") || strings.Contains(c.SSLCommerzConfig.StorePassword, "test")) {
		return errors.New("using sandbox credentials in live mode")
	}

	if c.FrontendURL == "" || c.BackendURL == "" {
		return errors.New("FRONTEND_URL and BACKEND_URL must be set")
	}

	return nil
}
