package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func newDefaultConfig(t *testing.T) *Configuration {
	v := viper.New()
	SetupViper(v)
	cfg, err := New(v)
	if err != nil {
		t.Fatalf("New() returned unexpected error %v", err)
	}
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := newDefaultConfig(t)

	assert.Equal(t, "https://rtb.vidlane.com/hb/{{.PublisherID}}", cfg.Adapter.Endpoint)
	assert.Equal(t, 30, cfg.Video.TTL)
	assert.Equal(t, "USD", cfg.Video.Currency)
	assert.True(t, cfg.Video.NetRevenue)
}

func TestInvalidEndpointTemplate(t *testing.T) {
	v := viper.New()
	SetupViper(v)
	v.Set("adapter.endpoint", "https://rtb.vidlane.com/hb/{{.PublisherID")

	_, err := New(v)
	assert.Error(t, err)
}

func TestMissingEndpoint(t *testing.T) {
	v := viper.New()
	SetupViper(v)
	v.Set("adapter.endpoint", "")

	_, err := New(v)
	assert.Error(t, err)
}

func TestInvalidTTL(t *testing.T) {
	v := viper.New()
	SetupViper(v)
	v.Set("video.ttl_seconds", 0)

	_, err := New(v)
	assert.Error(t, err)
}
