package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

const defaultEnvPath = "./configs/.env"

type Config struct {
}

// New loads ENV_FILE (./configs/.env by default) once. A missing file is
// fine; values already present in the environment win over the file.
func New() *Config {
	once.Do(func() {
		path := os.Getenv("ENV_FILE")
		if path == "" {
			path = defaultEnvPath
		}
		err := godotenv.Load(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Fatal("loading envs error: ", err)
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func (c *Config) GetInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func (c *Config) GetFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(os.Getenv(key)), 64)
	if err != nil {
		return def
	}
	return v
}

// GetDuration parses values like "5m" or "90s".
func (c *Config) GetDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

// GetLocation resolves an IANA zone name, falling back to UTC.
func (c *Config) GetLocation(key string) *time.Location {
	name := strings.TrimSpace(os.Getenv(key))
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("unknown timezone %q in %s, using UTC", name, key)
		return time.UTC
	}
	return loc
}
