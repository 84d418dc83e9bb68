package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret     string
	SessionTTL    time.Duration
	TokenPoolSize int
	Timezone      string
	LogLevel      string

	// AdminName and AdminPIN create the first admin when the staff table is empty.
	AdminName string
	AdminPIN  string

	// Optional change targets. An empty URL disables the target.
	NatsURL     string
	RabbitMQURL string

	Jobs jobs.Config
}

// LoadConfig reads .env when present and then the process environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.AutomaticEnv()

	defaults := jobs.DefaultConfig()
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("SESSION_TTL", 12*time.Hour)
	v.SetDefault("TOKEN_POOL_SIZE", 20)
	v.SetDefault("TIMEZONE", "Asia/Manila")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ADMIN_NAME", "Admin")
	v.SetDefault("RELAY_SCHEDULE", defaults.RelaySchedule)
	v.SetDefault("RELAY_BATCH_SIZE", defaults.RelayBatchSize)
	v.SetDefault("RECONCILE_SCHEDULE", defaults.ReconcileSchedule)
	v.SetDefault("PURGE_SCHEDULE", defaults.PurgeSchedule)
	v.SetDefault("CHANGE_RETENTION", defaults.ChangeRetention)

	config := Config{
		HTTPPort:      v.GetString("HTTP_PORT"),
		DBHost:        v.GetString("DB_HOST"),
		DBPort:        v.GetString("DB_PORT"),
		DBUser:        v.GetString("DB_USER"),
		DBPassword:    v.GetString("DB_PASSWORD"),
		DBName:        v.GetString("DB_NAME"),
		DBSslMode:     v.GetString("DB_SSLMODE"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		SessionTTL:    v.GetDuration("SESSION_TTL"),
		TokenPoolSize: v.GetInt("TOKEN_POOL_SIZE"),
		Timezone:      v.GetString("TIMEZONE"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		AdminName:     v.GetString("ADMIN_NAME"),
		AdminPIN:      v.GetString("ADMIN_PIN"),
		NatsURL:       v.GetString("NATS_URL"),
		RabbitMQURL:   v.GetString("RABBITMQ_URL"),
		Jobs:          jobs.Config{
			RelaySchedule:     v.GetString("RELAY_SCHEDULE"),
			RelayBatchSize:    v.GetInt("RELAY_BATCH_SIZE"),
			ReconcileSchedule: v.GetString("RECONCILE_SCHEDULE"),
			PurgeSchedule:     v.GetString("PURGE_SCHEDULE"),
			ChangeRetention:   v.GetDuration("CHANGE_RETENTION"),
		},
	}
	return config, config.Validate()
}

func (c Config) Validate() error {
	var err error
	if c.JWTSecret == "" {
		err = errors.Join(err, errors.New("JWT_SECRET is required"))
	}
	if c.DBName == "" {
		err = errors.Join(err, errors.New("DB_NAME is required"))
	}
	if c.TokenPoolSize < 1 {
		err = errors.Join(err, fmt.Errorf("TOKEN_POOL_SIZE must be positive, got %d", c.TokenPoolSize))
	}
	if c.Jobs.RelayBatchSize < 1 {
		err = errors.Join(err, fmt.Errorf("RELAY_BATCH_SIZE must be positive, got %d", c.Jobs.RelayBatchSize))
	}
	return err
}

// DSN is the keyword/value connection string understood by both pgx and lib/pq.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
