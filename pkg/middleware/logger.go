package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type LoggerOpts func(*middleware.RequestLoggerConfig)

// SkipPrefixes disables request logging for paths such as health probes.
func SkipPrefixes(prefixes ...string) LoggerOpts {
	return func(cfg *middleware.RequestLoggerConfig) {
		cfg.Skipper = func(c echo.Context) bool {
			path := c.Request().URL.Path
			for _, p := range prefixes {
				if strings.HasPrefix(path, p) {
					return true
				}
			}
			return false
		}
	}
}

// Logger logs one line per request. 4xx responses log at warn level and
// 5xx or handler errors at error level.
func Logger(opts ...LoggerOpts) echo.MiddlewareFunc {
	cfg := middleware.RequestLoggerConfig{
		LogStatus:     true,
		LogLatency:    true,
		LogMethod:     true,
		LogURI:        true,
		LogRequestID:  true,
		LogError:      true,
		HandleError:   true,
		LogValuesFunc: logRequest,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return middleware.RequestLoggerWithConfig(cfg)
}

func logRequest(c echo.Context, v middleware.RequestLoggerValues) error {
	attrs := []slog.Attr{
		slog.String("method", v.Method),
		slog.String("uri", v.URI),
		slog.Int("status", v.Status),
		slog.Duration("latency", v.Latency),
	}
	if v.RequestID != "" {
		attrs = append(attrs, slog.String("request_id", v.RequestID))
	}

	level := slog.LevelInfo
	switch {
	case v.Error != nil || v.Status >= http.StatusInternalServerError:
		level = slog.LevelError
		if v.Error != nil {
			attrs = append(attrs, slog.String("err", v.Error.Error()))
		}
	case v.Status >= http.StatusBadRequest:
		level = slog.LevelWarn
	}

	slog.LogAttrs(c.Request().Context(), level, "REQUEST", attrs...)
	return nil
}
