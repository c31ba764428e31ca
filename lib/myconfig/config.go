package myconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort           = "8080"
	DefaultBaseURL        = "http://localhost:8080"
	DefaultAddToCartDelay = 2 * time.Second
	DefaultHTTPTimeout    = 5 * time.Second
)

type KVBackend string

const (
	KVBackendMemory    KVBackend = "memory"
	KVBackendFile      KVBackend = "file"
	KVBackendRedis     KVBackend = "redis"
	KVBackendDatastore KVBackend = "datastore"
)

type Config struct {
	Port           string
	BaseURL        string
	AddToCartDelay time.Duration
	HTTPTimeout    time.Duration
	KVBackend      KVBackend
	KVFile         string
	RedisAddr      string
	GoogleProject  string
}

// Load reads the environment, after merging in the given .env files when
// they exist. Variables already present in the environment win.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		err := godotenv.Load(f)
		if err != nil {
			return Config{}, fmt.Errorf("error loading env file %s: %w", f, err)
		}
	}

	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from any lookup function, such as os.LookupEnv
// or a map in tests.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(name string, dflt string) string {
		value, found := lookup(name)
		if !found || strings.TrimSpace(value) == "" {
			return dflt
		}
		return strings.TrimSpace(value)
	}

	cfg := Config{
		Port:          get("PORT", DefaultPort),
		BaseURL:       strings.TrimSuffix(get("BASKET_API_BASE_URL", DefaultBaseURL), "/"),
		KVBackend:     KVBackend(get("KV_BACKEND", string(KVBackendFile))),
		KVFile:        get("KV_FILE", defaultKVFile()),
		RedisAddr:     get("REDIS_ADDR", ""),
		GoogleProject: get("GOOGLE_CLOUD_PROJECT", ""),
	}

	var err error
	cfg.AddToCartDelay, err = parseDuration("ADD_TO_CART_DELAY", get("ADD_TO_CART_DELAY", ""), DefaultAddToCartDelay)
	if err != nil {
		return Config{}, err
	}
	cfg.HTTPTimeout, err = parseDuration("HTTP_TIMEOUT", get("HTTP_TIMEOUT", ""), DefaultHTTPTimeout)
	if err != nil {
		return Config{}, err
	}

	switch cfg.KVBackend {
	case KVBackendMemory, KVBackendFile:
	case KVBackendDatastore:
		if cfg.GoogleProject == "" {
			return Config{}, fmt.Errorf("GOOGLE_CLOUD_PROJECT is required for KV_BACKEND=%s", cfg.KVBackend)
		}
	case KVBackendRedis:
		if cfg.RedisAddr == "" {
			return Config{}, fmt.Errorf("REDIS_ADDR is required for KV_BACKEND=%s", cfg.KVBackend)
		}
	default:
		return Config{}, fmt.Errorf("unsupported KV_BACKEND %q", cfg.KVBackend)
	}

	return cfg, nil
}

func parseDuration(name string, value string, dflt time.Duration) (time.Duration, error) {
	if value == "" {
		return dflt, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s %q: must not be negative", name, value)
	}
	return d, nil
}

func defaultKVFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".shopfrontend.yaml"
	}
	return filepath.Join(home, ".shopfrontend.yaml")
}
