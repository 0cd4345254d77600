package server

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/crawl-report/pkg/stringsutil"
)

const (
	defaultPort            = 8080
	defaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	Port            int
	UseHttp2        bool
	CorsOrigins     []string
	ShutdownTimeout time.Duration
}

// Address is the listen address for Port on all interfaces.
func (c *Config) Address() string {
	return ":" + strconv.Itoa(c.Port)
}

// LoadConfig reads PORT, USE_HTTP2, CORS_ORIGINS and SHUTDOWN_TIMEOUT.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:            defaultPort,
		CorsOrigins:     stringsutil.SplitCSV(os.Getenv("CORS_ORIGINS")),
		ShutdownTimeout: defaultShutdownTimeout,
	}
	if len(cfg.CorsOrigins) == 0 {
		cfg.CorsOrigins = []string{"*"}
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port < 1 || port > 65535 {
			return nil, fmt.Errorf("invalid PORT %q: must be a number between 1 and 65535", v)
		}
		cfg.Port = port
	}

	if v := os.Getenv("USE_HTTP2"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid USE_HTTP2 %q: %w", v, err)
		}
		cfg.UseHttp2 = b
	}

	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q", v)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}
