package config

import (
	"time"
)

type DatabaseConfig struct {
	URL            string        `yaml:"url"`
	MaxPoolSize    int           `yaml:"max_pool_size"`
	MinPoolSize    int           `yaml:"min_pool_size"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
}

func loadDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		URL:            getEnv("DATABASE_URL", "postgres://postgres:password@db:5432/rating_db"),
		MaxPoolSize:    getEnvAsInt("DATABASE_MAX_POOL_SIZE", 20),
		MinPoolSize:    getEnvAsInt("DATABASE_MIN_POOL_SIZE", 2),
		ConnectTimeout: getEnvAsDuration("DATABASE_CONNECT_TIMEOUT", 10*time.Second),
	}
}
