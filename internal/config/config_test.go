package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("TICKER_LIMIT", "")
	t.Setenv("MIGRATE_DOWN", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "./migrations", cfg.Database.MigrationsPath)
	assert.False(t, cfg.Database.MigrateDown)
	assert.Equal(t, 4, cfg.Homepage.NewsPerCategory)
	assert.Equal(t, MaxTickerItems, cfg.Homepage.TickerLimit)
	assert.Empty(t, cfg.Events.Brokers)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HOMEPAGE_NEWS_PER_CATEGORY", "6")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "3s")
	t.Setenv("DB_LOG_SQL", "true")
	t.Setenv("MIGRATE_DOWN", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Homepage.NewsPerCategory)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Events.Brokers)
	assert.Equal(t, 3*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Database.LogSQL)
	assert.True(t, cfg.Database.MigrateDown)
}

func TestLoad_TickerLimitClamped(t *testing.T) {
	t.Setenv("TICKER_LIMIT", "99")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, MaxTickerItems, cfg.Homepage.TickerLimit)

	t.Setenv("TICKER_LIMIT", "-4")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Homepage.TickerLimit)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Database: DatabaseConfig{Host: "db", Name: "news_portal"},
			Homepage: HomepageConfig{NewsPerCategory: 4, TickerLimit: 30},
			Events:   EventsConfig{Topic: "news-portal.content"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing host", func(c *Config) { c.Database.Host = "" }, true},
		{"missing db name", func(c *Config) { c.Database.Name = "" }, true},
		{"ticker above cap", func(c *Config) { c.Homepage.TickerLimit = 31 }, true},
		{"zero news per category", func(c *Config) { c.Homepage.NewsPerCategory = 0 }, true},
		{"brokers without topic", func(c *Config) {
			c.Events.Brokers = []string{"kafka:9092"}
			c.Events.Topic = ""
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetDSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "news", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=news sslmode=disable", cfg.GetDSN())
}
