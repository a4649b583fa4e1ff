package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 720*time.Hour, cfg.Auth.JWTTTL)
	assert.Equal(t, "carenest.notifications", cfg.Kafka.Topic)
	assert.Equal(t, time.Hour, cfg.Reconcile.Interval)
	assert.Equal(t, 256, cfg.Notify.QueueSize)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadHeaderTimeout)
	assert.Equal(t, 90*time.Second, cfg.HTTP.IdleTimeout)
	assert.Empty(t, cfg.Database.URL)
	assert.True(t, cfg.UsingDevSigningKey())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("CARENEST_ADDR", ":9090")
	t.Setenv("JWT_SIGNING_KEY", "prod-key")
	t.Setenv("JWT_TTL", "1h")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("RECONCILE_INTERVAL", "0s")
	t.Setenv("HTTP_WRITE_TIMEOUT", "2m")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, time.Hour, cfg.Auth.JWTTTL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Zero(t, cfg.Reconcile.Interval)
	assert.Equal(t, 2*time.Minute, cfg.HTTP.WriteTimeout)
	assert.False(t, cfg.UsingDevSigningKey())
}

func TestFromEnvRejectsBadDuration(t *testing.T) {
	t.Setenv("JWT_TTL", "forever")
	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnvRejectsEmptyQueue(t *testing.T) {
	t.Setenv("NOTIFY_QUEUE_SIZE", "0")
	_, err := FromEnv()
	assert.Error(t, err)
}
