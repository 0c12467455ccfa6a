// Package config provides runtime configuration values for the service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"
)

// Config holds configuration knobs for the HTTP server and storage.
type Config struct {
	HTTPAddr        string
	DataDir         string
	ShutdownTimeout time.Duration
	CORSOrigins     []string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvs(key string, defSec int) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		DataDir:         getenv("DATA_DIR", "data"),
		ShutdownTimeout: durenvs("SHUTDOWN_TIMEOUT", 15),
		CORSOrigins:     splitList(getenv("CORS_ORIGINS", "*")),
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// fileConfig mirrors Config in the optional YAML configuration file. Unset
// fields keep the environment-derived value.
type fileConfig struct {
	HTTPAddr        string   `yaml:"http_addr"`
	DataDir         string   `yaml:"data_dir"`
	ShutdownTimeout int      `yaml:"shutdown_timeout_sec"`
	CORSOrigins     []string `yaml:"cors_origins"`
}

// ApplyFile overlays the YAML file at path onto c and returns the result.
func (c Config) ApplyFile(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrapf(err, "config: read %s", path)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return c, errors.Wrapf(err, "config: parse %s", path)
	}
	if fc.HTTPAddr != "" {
		c.HTTPAddr = fc.HTTPAddr
	}
	if fc.DataDir != "" {
		c.DataDir = fc.DataDir
	}
	if fc.ShutdownTimeout > 0 {
		c.ShutdownTimeout = time.Duration(fc.ShutdownTimeout) * time.Second
	}
	if len(fc.CORSOrigins) > 0 {
		c.CORSOrigins = fc.CORSOrigins
	}
	return c, nil
}
