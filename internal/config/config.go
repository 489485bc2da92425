package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds application settings, read from app.env in the config
// directory with environment variables taking precedence.
type Config struct {
	DBSource          string        `mapstructure:"DB_SOURCE"`
	ServerAddress     string        `mapstructure:"SERVER_ADDRESS"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	GeocoderEnabled   bool          `mapstructure:"GEOCODER_ENABLED"`
	GeocoderBaseURL   string        `mapstructure:"GEOCODER_BASE_URL"`
	GeocoderTimeout   time.Duration `mapstructure:"GEOCODER_TIMEOUT"`
	GeocoderCacheSize int           `mapstructure:"GEOCODER_CACHE_SIZE"`
}

// LoadConfig reads configuration from the app.env file at path.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GEOCODER_ENABLED", true)
	v.SetDefault("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org")
	v.SetDefault("GEOCODER_TIMEOUT", "5s")
	v.SetDefault("GEOCODER_CACHE_SIZE", 1000)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return Config{}, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}
