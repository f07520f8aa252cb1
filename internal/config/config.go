package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const envPrefix = "BESTHAIR_"

type Config struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`
	RootURL    string `env:"ROOT_URL" envDefault:"https://www.besthair.com.au"`

	// StaticDir and ContentDir override the embedded assets and datasets.
	StaticDir  string `env:"STATIC_DIR"`
	ContentDir string `env:"CONTENT_DIR"`

	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Development bool   `env:"DEVELOPMENT" envDefault:"false"`

	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"false"`
	MetricsPath    string `env:"METRICS_PATH" envDefault:"/metrics"`

	RequestTimeout    time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	OutputDir        string `env:"OUTPUT_DIR" envDefault:"dist"`
	BuildConcurrency int    `env:"BUILD_CONCURRENCY" envDefault:"8"`

	CacheHTML   string `env:"CACHE_HTML" envDefault:"public, max-age=0, must-revalidate"`
	CacheStatic string `env:"CACHE_STATIC" envDefault:"public, max-age=604800"`
}

// Load reads an optional .env file and then the BESTHAIR_* environment.
// Variables already set in the environment win over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	return FromEnvironment(nil)
}

// FromEnvironment parses the configuration from vars, or from the process
// environment when vars is nil.
func FromEnvironment(vars map[string]string) (Config, error) {
	opts := env.Options{Prefix: envPrefix}
	if vars != nil {
		opts.Environment = vars
	}

	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.RootURL = strings.TrimSuffix(strings.TrimSpace(cfg.RootURL), "/")
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	parsed, err := url.Parse(c.RootURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: root url %q must be absolute", c.RootURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("config: root url %q must use http or https", c.RootURL)
	}
	if c.BuildConcurrency < 1 {
		return fmt.Errorf("config: build concurrency must be positive, got %d", c.BuildConcurrency)
	}
	if c.MetricsEnabled && !strings.HasPrefix(c.MetricsPath, "/") {
		return fmt.Errorf("config: metrics path %q must start with /", c.MetricsPath)
	}
	return nil
}
