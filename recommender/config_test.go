package recommender

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSentiment(t *testing.T) {
	assert.Equal(t, SentimentPositive, ParseSentiment("positive"))
	assert.Equal(t, SentimentNegative, ParseSentiment(" NEGATIVE "))
	assert.Equal(t, SentimentNeutral, ParseSentiment("NEUTRAL"))
	assert.Equal(t, SentimentNeutral, ParseSentiment(""))
	assert.Equal(t, SentimentNeutral, ParseSentiment("LABEL_0"))
}

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	assert.Equal(t, 5, cfg.TopN)
	assert.Equal(t, 30, cfg.PoolSize)
	assert.Equal(t, 0.2, cfg.UpliftBoost)
}

func TestSanitizeConfigPoolAtLeastTopN(t *testing.T) {
	cfg := sanitizeConfig(Config{TopN: 10, PoolSize: 3})
	assert.Equal(t, 10, cfg.PoolSize)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.TopN)
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	require.NoError(t, SaveConfig(path, Config{TopN: 7, PoolSize: 40, UpliftBoost: 0.1}))
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.TopN)
	assert.Equal(t, 40, cfg.PoolSize)
	assert.Equal(t, 0.1, cfg.UpliftBoost)
}
