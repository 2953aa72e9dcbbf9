package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	var cfg Config
	cfg.Server.Listen = ":8080"
	cfg.Server.Timeout = 30 * time.Second
	cfg.Database.DSN = "file:test.db"
	cfg.Engagement = EngagementConfig{ThresholdSeconds: 20, ThresholdScrollPct: 50, SessionTimeout: 30 * time.Minute}
	cfg.Recommend = RecommendConfig{Limit: 10}
	cfg.Sources = []SourceConfig{{ID: "golang", Name: "Golang Forum", FeedURL: "https://forum.example.com/latest.rss"}}
	return &cfg
}

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, VerifyAgainstEmbeddedSchema(validConfig()))
	})

	t.Run("missing listen", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.Listen = ""
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.listen is required")
	})

	t.Run("missing timeout", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.Timeout = 0
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.timeout is required")
	})

	t.Run("source without feed url", func(t *testing.T) {
		cfg := validConfig()
		cfg.Sources[0].FeedURL = ""
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "feed_url is required")
	})
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	data, err := schema.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), "threshold_seconds")
	assert.Contains(t, string(data), "feed_url")
}
