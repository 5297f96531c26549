package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(WithWriteTimeout(time.Minute), WithLogLevel(zapcore.WarnLevel))
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, time.Minute, cfg.Server.WriteTimeout)
	require.Equal(t, 24*time.Hour, cfg.Auth.TTL)
	require.Equal(t, "library", cfg.Auth.Issuer)
	require.Equal(t, "library.loans", cfg.Kafka.LoanTopic)
	require.False(t, cfg.Kafka.Enabled())
	require.Equal(t, zapcore.WarnLevel, cfg.Log.LogLevel)
	require.Equal(t, 10, cfg.BcryptCost)
	require.Equal(t, time.Hour, cfg.SweepInterval)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("LIBRARY_HTTP_PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("KAFKA_ADDRS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("SWEEP_INTERVAL", "0s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED_FILE", "/etc/library/seed.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, "s3cret", cfg.Auth.Secret)
	require.Equal(t, 30*time.Minute, cfg.Auth.TTL)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Addrs)
	require.True(t, cfg.Kafka.Enabled())
	require.Zero(t, cfg.SweepInterval)
	require.Equal(t, zapcore.DebugLevel, cfg.Log.LogLevel)
	require.Equal(t, "/etc/library/seed.yaml", cfg.SeedFile)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("BCRYPT_COST", "ten")
	_, err := Load()
	require.Error(t, err)
}
