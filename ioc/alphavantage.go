package ioc

import (
	"os"
	"time"

	"github.com/market-lens/market-lens/internal/service/market/alphavantage"
	"github.com/spf13/viper"
)

func InitAlphaVantageCli() *alphavantage.Client {
	type Config struct {
		ApiKey     string `mapstructure:"api_key"`
		BaseURL    string `mapstructure:"base_url"`
		TimeoutSec int    `mapstructure:"timeout_sec"`
	}

	var cfg Config
	if err := viper.UnmarshalKey("market.alphavantage", &cfg); err != nil {
		panic(err)
	}
	if v := os.Getenv("ALPHA_VANTAGE_API_KEY"); v != "" {
		cfg.ApiKey = v
	}
	if cfg.ApiKey == "" {
		cfg.ApiKey = "demo"
	}

	opts := []alphavantage.ClientOption{}
	if cfg.TimeoutSec > 0 {
		opts = append(opts, alphavantage.WithTimeout(time.Duration(cfg.TimeoutSec)*time.Second))
	}
	return alphavantage.NewClient(cfg.BaseURL, cfg.ApiKey, opts...)
}
