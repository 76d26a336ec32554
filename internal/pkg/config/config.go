package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (API token etc.), security settings
// - default: Values common across all environments (timeouts, page sizes, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	API     APIConfig
	Session SessionConfig
	List    ListConfig
	Log     LogConfig
}

type APIConfig struct {
	BaseURL string        `envconfig:"API_BASE_URL" default:"https://dummy-1.hiublue.com"`
	Timeout time.Duration `envconfig:"API_TIMEOUT" default:"30s"`
}

type SessionConfig struct {
	Token string `envconfig:"API_TOKEN" required:"true"`
}

type ListConfig struct {
	PageSize       int           `envconfig:"LIST_PAGE_SIZE" default:"5"`
	SearchDebounce time.Duration `envconfig:"SEARCH_DEBOUNCE" default:"500ms"`
	NoticeDuration time.Duration `envconfig:"NOTICE_DURATION" default:"2s"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

func LoadConfig() (Config, error) {
	// Missing .env is fine; real environment variables win either way
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:8889", // Test port
			Timeout: 5 * time.Second,
		},
		Session: SessionConfig{
			Token: "test-token",
		},
		List: ListConfig{
			PageSize:       5,
			SearchDebounce: 500 * time.Millisecond,
			NoticeDuration: 2 * time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
	}
}
