package config

import (
	"errors"
	"io/fs"
	"log"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultPath = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

var defaults = map[string]any{
	"API_ADDRESS":     ":8080",
	"TIMEZONE":        "Local",
	"LOG_LEVEL":       "info",
	"LOG_FORMAT":      "text",
	"MIGRATIONS_DIR":  "./migrations",
	"REQUEST_TIMEOUT": "10s",
	"TOKEN_TTL":       "1h",
}

type Config struct {
	v *viper.Viper
}

// New loads config once per process, later calls return the same instance
func New(path string) *Config {
	once.Do(func() {
		cfg, err := Load(path)
		if err != nil {
			log.Fatal("loading config error: ", err)
		}
		instance = cfg
	})
	return instance
}

// Load reads .env file at path into the environment, missing file is fine.
// Values are looked up in the environment with defaults applied
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.New("loading envs error: " + err.Error())
	}
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	return &Config{
		v: v,
	}, nil
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetDuration(key string) time.Duration {
	return c.v.GetDuration(key)
}
