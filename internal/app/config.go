package app

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"houseprice/internal/domain"
	"houseprice/internal/predict"
)

// DefaultAPIURL is used when no API URL is configured anywhere.
const DefaultAPIURL = "https://houseprice-predictor-p3rk.onrender.com"

// ConfigFile is the optional YAML file read from the home directory.
const ConfigFile = "config.yaml"

// Environment variables read by Load.
const (
	EnvAPIURL      = "HOUSEPRICE_API_URL"
	EnvPredictPath = "HOUSEPRICE_PREDICT_PATH"
	EnvTimeout     = "HOUSEPRICE_TIMEOUT"
	EnvLogLevel    = "HOUSEPRICE_LOG_LEVEL"
	EnvLogFile     = "HOUSEPRICE_LOG_FILE"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home        string        // config directory, e.g. $HOME/.houseprice
	APIURL      string        // prediction service base URL
	PredictPath string        // appended to APIURL; empty posts to APIURL itself
	Timeout     time.Duration // zero means no client-side timeout
	LogLevel    string
	LogFile     string
	NoColor     bool

	HTTP     *http.Client          // optional; built from Timeout when nil
	Detector domain.SchemeDetector // optional; environment detector when nil
}

// fileConfig mirrors config.yaml. Pointers tell "unset" from "empty".
type fileConfig struct {
	APIURL      *string `yaml:"api_url"`
	PredictPath *string `yaml:"predict_path"`
	Timeout     *string `yaml:"timeout"`
	LogLevel    *string `yaml:"log_level"`
	LogFile     *string `yaml:"log_file"`
	NoColor     *bool   `yaml:"no_color"`
}

// Defaults returns the built-in configuration rooted at home.
func Defaults(home string) Config {
	return Config{
		Home:        home,
		APIURL:      DefaultAPIURL,
		PredictPath: predict.DefaultPath,
		LogLevel:    "warn",
	}
}

// Load builds a Config. Later sources override earlier ones: defaults,
// <home>/config.yaml, envFile (if it exists), process environment.
func Load(home, envFile string) (Config, error) {
	cfg := Defaults(home)

	if err := cfg.applyFile(filepath.Join(home, ConfigFile)); err != nil {
		return Config{}, err
	}

	dotenv := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			dotenv = m
		case errors.Is(err, os.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("read %s: %w", envFile, err)
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if fc.APIURL != nil {
		c.APIURL = *fc.APIURL
	}
	if fc.PredictPath != nil {
		c.PredictPath = *fc.PredictPath
	}
	if fc.Timeout != nil {
		d, err := time.ParseDuration(*fc.Timeout)
		if err != nil {
			return fmt.Errorf("parse %s: timeout: %w", path, err)
		}
		c.Timeout = d
	}
	if fc.LogLevel != nil {
		c.LogLevel = *fc.LogLevel
	}
	if fc.LogFile != nil {
		c.LogFile = *fc.LogFile
	}
	if fc.NoColor != nil {
		c.NoColor = *fc.NoColor
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAPIURL); ok && v != "" {
		c.APIURL = v
	}
	// An explicitly empty path selects the base-URL variant.
	if v, ok := lookup(EnvPredictPath); ok {
		c.PredictPath = v
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		c.Timeout = d
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvLogFile); ok && v != "" {
		c.LogFile = v
	}
	return nil
}

// Validate checks the settings every command needs.
func (c Config) Validate() error {
	if c.Home == "" {
		return fmt.Errorf("home directory is required")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}

// ValidateAPI checks the settings a prediction needs.
func (c Config) ValidateAPI() error {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("api url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api url %q must be an absolute http(s) URL", c.APIURL)
	}
	if c.PredictPath != "" && !strings.HasPrefix(c.PredictPath, "/") {
		return fmt.Errorf("predict path %q must start with /", c.PredictPath)
	}
	return nil
}
