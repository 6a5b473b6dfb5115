package datasource

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned when no OpenWeatherMap key was configured
var ErrMissingAPIKey = errors.New("openweather.api_key is not set (OPENWEATHER_API_KEY)")

// Config represents the application configuration
type Config struct {
	OpenWeather struct {
		APIKey  string `mapstructure:"api_key"`
		BaseURL string `mapstructure:"base_url"`
	} `mapstructure:"openweather"`

	Nominatim struct {
		BaseURL   string `mapstructure:"base_url"`
		Email     string `mapstructure:"email"`
		UserAgent string `mapstructure:"user_agent"`
	} `mapstructure:"nominatim"`

	HTTP struct {
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"http"`

	// Geolocation configures the device locator used by the terminal client.
	// Fixed is set when both Lat and Lon were configured; 0,0 is a valid position.
	Geolocation struct {
		Timeout time.Duration `mapstructure:"timeout"`
		Lat     float64       `mapstructure:"lat"`
		Lon     float64       `mapstructure:"lon"`
		Fixed   bool          `mapstructure:"-"`
	} `mapstructure:"geolocation"`

	// Timezone is the IANA zone used to split the forecast into calendar days
	Timezone string `mapstructure:"timezone"`

	Server struct {
		Port int `mapstructure:"port"`
	} `mapstructure:"server"`

	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("openweather.api_key", "")
	v.SetDefault("openweather.base_url", "https://api.openweathermap.org")
	v.SetDefault("nominatim.base_url", "https://nominatim.openstreetmap.org")
	v.SetDefault("nominatim.email", "")
	v.SetDefault("nominatim.user_agent", "weather-lookup/1.0")
	v.SetDefault("http.timeout", "10s")
	v.SetDefault("geolocation.timeout", "10s")
	v.SetDefault("timezone", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
}

// LoadConfig reads .env (if present), the optional YAML file at path and the environment,
// in increasing order of precedence.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("openweather.api_key", "OPENWEATHER_API_KEY", "OPENWEATHERMAP_API_KEY")
	_ = v.BindEnv("server.port", "SERVER_PORT", "PORT")
	// no defaults for the position, so IsSet only reports configured values
	_ = v.BindEnv("geolocation.lat", "GEOLOCATION_LAT")
	_ = v.BindEnv("geolocation.lon", "GEOLOCATION_LON")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Geolocation.Fixed = v.IsSet("geolocation.lat") && v.IsSet("geolocation.lon")

	return &cfg, nil
}

// Validate reports configuration that cannot work
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OpenWeather.APIKey) == "" {
		return ErrMissingAPIKey
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location returns the configured timezone, the local zone when unset
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
