package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"
)

func TestLoggerConfig_LogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  logger.Level
	}{
		{"debug", logger.DebugLevel},
		{"info", logger.InfoLevel},
		{"warn", logger.WarnLevel},
		{"error", logger.ErrorLevel},
		{"", logger.InfoLevel},
		{"verbose", logger.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, LoggerConfig{Level: tt.level}.LogLevel())
		})
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{
		Host:     "db",
		Port:     5433,
		User:     "vb",
		Password: "secret",
		Database: "vaccinebooker",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=db port=5433 user=vb password=secret dbname=vaccinebooker sslmode=disable",
		p.DSN(),
	)
}

func TestRedisConfig_Enabled(t *testing.T) {
	assert.False(t, RedisConfig{}.Enabled())
	assert.True(t, RedisConfig{Addr: "localhost:6379"}.Enabled())
}
