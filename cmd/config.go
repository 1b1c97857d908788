package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"grubdash/internal/adapters/out/rabbitmq"
	"grubdash/internal/jobs"

	"github.com/joho/godotenv"
)

// Store drivers accepted in STORE_DRIVER.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

type Config struct {
	HTTPPort         string
	StoreDriver      string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	SeedData         bool
	RabbitMQURL      string
	RabbitMQExchange string
	ReportSchedule   string
}

// LoadConfig reads the configuration from the environment after loading
// envFile, if it exists. Variables already set in the environment win over
// the file.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	config := Config{
		HTTPPort:         getEnv("HTTP_PORT", "5000"),
		StoreDriver:      getEnv("STORE_DRIVER", StoreMemory),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", "postgres"),
		DBName:           getEnv("DB_NAME", "grubdash"),
		DBSslMode:        getEnv("DB_SSLMODE", "disable"),
		RabbitMQURL:      getEnv("RABBITMQ_URL", ""),
		RabbitMQExchange: getEnv("RABBITMQ_EXCHANGE", rabbitmq.DefaultExchange),
		ReportSchedule:   getEnv("REPORT_SCHEDULE", jobs.DefaultReportSchedule),
	}

	switch config.StoreDriver {
	case StoreMemory, StorePostgres:
	default:
		return Config{}, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreMemory, StorePostgres, config.StoreDriver)
	}

	// Sample data is loaded by default only into the in-memory store.
	seed, err := strconv.ParseBool(getEnv("SEED_DATA", strconv.FormatBool(config.StoreDriver == StoreMemory)))
	if err != nil {
		return Config{}, fmt.Errorf("SEED_DATA: %w", err)
	}
	config.SeedData = seed

	return config, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
