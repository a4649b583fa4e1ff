// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const devSigningKey = "dev-secret-key-change-in-production"

// Server captures HTTP server level configuration.
type Server struct {
	Addr       string        `envconfig:"CARENEST_ADDR" default:":8080"`
	LogLevel   string        `envconfig:"LOG_LEVEL" default:"info"`
	AdminToken string        `envconfig:"ADMIN_TOKEN"`
	HTTP       HTTPConfig
	Auth       AuthConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Kafka      KafkaConfig
	Reconcile  ReconcileConfig
	Notify     NotifyConfig
}

// HTTPConfig bounds how long a client may hold a connection.
type HTTPConfig struct {
	ReadHeaderTimeout time.Duration `envconfig:"HTTP_READ_HEADER_TIMEOUT" default:"5s"`
	ReadTimeout       time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"15s"`
	WriteTimeout      time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout       time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"90s"`
	MaxHeaderBytes    int           `envconfig:"HTTP_MAX_HEADER_BYTES" default:"65536"`
}

// AuthConfig configures token issuance.
type AuthConfig struct {
	JWTSigningKey string        `envconfig:"JWT_SIGNING_KEY"`
	JWTTTL        time.Duration `envconfig:"JWT_TTL" default:"720h"`
	Issuer        string        `envconfig:"JWT_ISSUER" default:"carenest"`
	BcryptCost    int           `envconfig:"BCRYPT_COST" default:"10"`
}

// DatabaseConfig selects Postgres. An empty URL keeps everything in memory.
type DatabaseConfig struct {
	URL             string        `envconfig:"DATABASE_URL"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"30m"`
	TxTimeout       time.Duration `envconfig:"DB_TX_TIMEOUT" default:"5s"`
}

// RedisConfig backs the token revocation list. Empty URL uses an in-memory list.
type RedisConfig struct {
	URL          string        `envconfig:"REDIS_URL"`
	PoolSize     int           `envconfig:"REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"REDIS_WRITE_TIMEOUT" default:"3s"`
}

// KafkaConfig enables the notification topic. No brokers means log-only delivery.
type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS"`
	Topic   string   `envconfig:"NOTIFY_TOPIC" default:"carenest.notifications"`
}

// ReconcileConfig schedules the rating reconciliation sweep. Zero disables it.
type ReconcileConfig struct {
	Interval time.Duration `envconfig:"RECONCILE_INTERVAL" default:"1h"`
}

// NotifyConfig sizes the notification dispatch queue and names the admin inbox.
type NotifyConfig struct {
	QueueSize  int    `envconfig:"NOTIFY_QUEUE_SIZE" default:"256"`
	AdminEmail string `envconfig:"ADMIN_EMAIL" default:"admin@carenest.local"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Server, error) {
	_ = godotenv.Load(".env")
	return FromEnv()
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	var cfg Server
	if err := envconfig.Process("", &cfg); err != nil {
		return Server{}, fmt.Errorf("load config: %w", err)
	}
	if cfg.Auth.JWTSigningKey == "" {
		cfg.Auth.JWTSigningKey = devSigningKey
	}
	if cfg.Notify.QueueSize <= 0 {
		return Server{}, fmt.Errorf("load config: NOTIFY_QUEUE_SIZE must be positive")
	}
	return cfg, nil
}

// UsingDevSigningKey reports whether tokens are signed with the built-in development key.
func (s Server) UsingDevSigningKey() bool {
	return s.Auth.JWTSigningKey == devSigningKey
}
