// SPDX-License-Identifier: MIT

package health

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig is returned when an environment value cannot be parsed.
var ErrInvalidConfig = errors.New("health: invalid config")

// Environment names recognised in APP_ENV.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Defaults applied when a variable is unset.
const (
	DefaultPort            = 5000
	DefaultShutdownTimeout = 5 * time.Second
)

// Config holds the host settings.
type Config struct {
	Host            string        // HOST, empty means all interfaces
	Port            int           // PORT, 0 picks a free port
	Env             string        // APP_ENV
	ConsoleDebug    bool          // CONSOLE_DEBUG
	ShutdownTimeout time.Duration // SHUTDOWN_TIMEOUT
}

// Addr returns host:port for net.Listen.
func (c Config) Addr() string { return net.JoinHostPort(c.Host, strconv.Itoa(c.Port)) }

// LoadConfig reads the given dotenv files (missing files are skipped) and the
// process environment. Process variables win over file values, matching
// dotenv semantics.
func LoadConfig(envFiles ...string) (Config, error) {
	fileVals := make(map[string]string)
	for _, path := range envFiles {
		vals, err := godotenv.Read(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("LoadConfig: %s: %w", path, err)
		}
		for k, v := range vals {
			if _, seen := fileVals[k]; !seen {
				fileVals[k] = v
			}
		}
	}

	return LoadConfigFrom(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVals[key]
		return v, ok
	})
}

// LoadConfigFrom builds a Config from an arbitrary lookup function.
func LoadConfigFrom(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{
		Port:            DefaultPort,
		Env:             EnvDevelopment,
		ShutdownTimeout: DefaultShutdownTimeout,
	}

	if v, ok := lookup("HOST"); ok {
		cfg.Host = v
	}
	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port < 0 || port > 65535 {
			return Config{}, fmt.Errorf("PORT=%q: %w", v, ErrInvalidConfig)
		}
		cfg.Port = port
	}
	if v, ok := lookup("APP_ENV"); ok && v != "" {
		cfg.Env = v
	}
	if v, ok := lookup("CONSOLE_DEBUG"); ok && v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("CONSOLE_DEBUG=%q: %w", v, ErrInvalidConfig)
		}
		cfg.ConsoleDebug = debug
	}
	if v, ok := lookup("SHUTDOWN_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT=%q: %w", v, ErrInvalidConfig)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}
