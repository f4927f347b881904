package config

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/spf13/viper"
)

// Configuration holds the fixed settings the adapter is constructed with.
// It is read once at startup and never mutated afterwards.
type Configuration struct {
	Adapter Adapter `mapstructure:"adapter"`
	Video   Video   `mapstructure:"video"`
}

type Adapter struct {
	// Endpoint is a template producing the destination URL. The publisher
	// account is filled in through the {{.PublisherID}} macro.
	Endpoint string `mapstructure:"endpoint"`
}

// Video holds the fixed fields stamped onto every normalized video bid.
type Video struct {
	TTL        int    `mapstructure:"ttl_seconds"`
	Currency   string `mapstructure:"currency"`
	NetRevenue bool   `mapstructure:"net_revenue"`
}

// New uses viper to assemble the adapter configuration.
func New(v *viper.Viper) (*Configuration, error) {
	var c Configuration
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("viper failed to unmarshal adapter config: %v", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (cfg *Configuration) validate() error {
	if cfg.Adapter.Endpoint == "" {
		return fmt.Errorf("adapter.endpoint is required")
	}
	if _, err := template.New("endpointTemplate").Parse(cfg.Adapter.Endpoint); err != nil {
		return fmt.Errorf("adapter.endpoint is not a valid url template: %v", err)
	}
	if cfg.Video.TTL <= 0 {
		return fmt.Errorf("video.ttl_seconds must be positive: %d", cfg.Video.TTL)
	}
	if cfg.Video.Currency == "" {
		return fmt.Errorf("video.currency is required")
	}
	return nil
}

// SetupViper sets the default config values and binds environment variables,
// so New produces a working Configuration with no config file present.
func SetupViper(v *viper.Viper) {
	v.SetDefault("adapter.endpoint", "https://rtb.vidlane.com/hb/{{.PublisherID}}")
	v.SetDefault("video.ttl_seconds", 30)
	v.SetDefault("video.currency", "USD")
	v.SetDefault("video.net_revenue", true)

	v.SetEnvPrefix("VIDLANE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}
