package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"smartlunch": map[string]any{
			"baseUrl":            "",
			"defaultPlacePolicy": "last",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"refresh": map[string]any{
			"funding": "30m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SMARTLUNCH_BASEURL", want: "smartlunch.baseUrl"},
		{envKey: "SMARTLUNCH_DEFAULTPLACEPOLICY", want: "smartlunch.defaultPlacePolicy"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "REFRESH_FUNDING", want: "refresh.funding"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.SmartLunch.BaseURL = " https://example.test/ "

	cfg.ApplyDefaults()

	assert.Equal(t, "https://example.test", cfg.SmartLunch.BaseURL)
	assert.Equal(t, 25*time.Second, cfg.SmartLunch.Timeout)
	assert.Equal(t, DefaultPlaceLast, cfg.SmartLunch.DefaultPlacePolicy)
	assert.Equal(t, 15*time.Minute, cfg.Refresh.Places)
	assert.Equal(t, 30*time.Minute, cfg.Refresh.Funding)
	assert.Equal(t, 5*time.Minute, cfg.Refresh.Expiry)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "16KB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadHeaderTimeout)
	require.NoError(t, cfg.Validate())
}

func TestValidate_RejectsUnknownPolicy(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	cfg.SmartLunch.DefaultPlacePolicy = "random"

	require.Error(t, cfg.Validate())
}

func TestValidate_PostgresNeedsSection(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	cfg.Storage.Driver = StoragePostgres

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres")
}
